package model

// Estado is one entry of the fixed status lookup set.
type Estado struct {
	ID        int    `json:"id"`
	NomEstado string `json:"nom_estado"`
}
