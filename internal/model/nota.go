package model

import "time"

// Nota is the single free-text annotation of a task.
type Nota struct {
	ID        int       `json:"id"`
	TareaID   int       `json:"tarea_id"`
	NotaDesc  string    `json:"nota_desc"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
