package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tareas-backend/internal/model"
	"tareas-backend/internal/repository"
)

type NotaStore interface {
	ListByTarea(ctx context.Context, tareaID int) ([]model.Nota, error)
	Upsert(ctx context.Context, tareaID int, notaDesc string) error
}

type NotaHandler struct {
	notas  NotaStore
	logger *zap.Logger
}

func NewNotaHandler(notas NotaStore, logger *zap.Logger) *NotaHandler {
	return &NotaHandler{notas: notas, logger: logger}
}

// ListNotas handles GET /api/tareas/:id/notas. A task carries at most
// one note, so the array holds zero or one element.
func (h *NotaHandler) ListNotas(c *gin.Context) {
	tareaID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Id de tarea inválido"})
		return
	}

	notas, err := h.notas.ListByTarea(c.Request.Context(), tareaID)
	if err != nil {
		h.logger.Error("ListNotas: failed to fetch notas",
			zap.Int("tarea_id", tareaID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener notas"})
		return
	}

	c.JSON(http.StatusOK, notas)
}

// UpsertNota handles POST /api/tareas/:id/notas: the task's note is
// created or its text replaced, atomically at the datastore.
func (h *NotaHandler) UpsertNota(c *gin.Context) {
	tareaID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Id de tarea inválido"})
		return
	}

	var req struct {
		NotaDesc string `json:"nota_desc"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.NotaDesc == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "La descripción de la nota es requerida"})
		return
	}

	if err := h.notas.Upsert(c.Request.Context(), tareaID, req.NotaDesc); err != nil {
		if errors.Is(err, repository.ErrNotaTareaMissing) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tarea no encontrada"})
			return
		}
		h.logger.Error("UpsertNota: failed to save nota",
			zap.Int("tarea_id", tareaID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al guardar nota"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Nota guardada exitosamente"})
}
