package mq

import "time"

// Routing keys for task lifecycle events.
const (
	RoutingKeyTareaCreada      = "tarea.creada"
	RoutingKeyTareaActualizada = "tarea.actualizada"
	RoutingKeyTareaEliminada   = "tarea.eliminada"
)

type TareaEventPayload struct {
	CodigoUnico string    `json:"codigo_unico"`
	Titulo      string    `json:"titulo"`
	Estado      *int      `json:"estado"`
	OccurredAt  time.Time `json:"occurred_at"`
}
