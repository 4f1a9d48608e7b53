package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tareas-backend/internal/model"
)

type EstadoLister interface {
	List(ctx context.Context) ([]model.Estado, error)
}

type EstadoHandler struct {
	estados EstadoLister
	logger  *zap.Logger
}

func NewEstadoHandler(estados EstadoLister, logger *zap.Logger) *EstadoHandler {
	return &EstadoHandler{estados: estados, logger: logger}
}

// ListEstados handles GET /api/tareas/estados.
func (h *EstadoHandler) ListEstados(c *gin.Context) {
	estados, err := h.estados.List(c.Request.Context())
	if err != nil {
		h.logger.Error("ListEstados: failed to fetch estados", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener estados"})
		return
	}

	c.JSON(http.StatusOK, estados)
}
