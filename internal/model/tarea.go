package model

import "time"

// Tarea is the tracked work item. Optional columns are pointers so
// NULLs survive the round trip to JSON.
type Tarea struct {
	ID          int       `json:"id"`
	CodigoUnico string    `json:"codigo_unico"`
	Titulo      string    `json:"titulo"`
	URLTarea    *string   `json:"url_tarea"`
	Empresa     *string   `json:"empresa"`
	Submodulo   *string   `json:"submodulo"`
	Rama        *string   `json:"rama"`
	HashCommit  *string   `json:"hash_commit"`
	Estado      *int      `json:"estado"`
	NomEstado   *string   `json:"nom_estado"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TareaInput carries the client-supplied fields for create and update.
// An absent field stays nil and is stored as NULL; updates are full
// replaces, not patches.
type TareaInput struct {
	CodigoUnico string  `json:"codigo_unico"`
	Titulo      string  `json:"titulo"`
	URLTarea    *string `json:"url_tarea"`
	Empresa     *string `json:"empresa"`
	Submodulo   *string `json:"submodulo"`
	Rama        *string `json:"rama"`
	HashCommit  *string `json:"hash_commit"`
	Estado      *int    `json:"estado"`
}
