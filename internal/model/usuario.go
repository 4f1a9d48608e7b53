package model

import "time"

// Usuario is an account created out of band; there is no registration
// endpoint.
type Usuario struct {
	ID           int       `json:"id"`
	Usuario      string    `json:"usuario"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
