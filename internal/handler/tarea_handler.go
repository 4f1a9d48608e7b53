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

type TareaReader interface {
	List(ctx context.Context) ([]model.Tarea, error)
	Search(ctx context.Context, q string) ([]model.Tarea, error)
	GetByCodigo(ctx context.Context, codigo string) (*model.Tarea, error)
	GetByID(ctx context.Context, id int) (*model.Tarea, error)
}

type TareaWriter interface {
	Create(ctx context.Context, in *model.TareaInput) (int, error)
	Update(ctx context.Context, codigo string, in *model.TareaInput) error
	Delete(ctx context.Context, codigo string) error
}

type TareaHandler struct {
	reader TareaReader
	writer TareaWriter
	logger *zap.Logger
}

func NewTareaHandler(reader TareaReader, writer TareaWriter, logger *zap.Logger) *TareaHandler {
	return &TareaHandler{reader: reader, writer: writer, logger: logger}
}

// ListTareas handles GET /api/tareas.
func (h *TareaHandler) ListTareas(c *gin.Context) {
	tareas, err := h.reader.List(c.Request.Context())
	if err != nil {
		h.logger.Error("ListTareas: failed to fetch tareas", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener tareas"})
		return
	}

	c.JSON(http.StatusOK, tareas)
}

// SearchTareas handles GET /api/tareas/search?q=. An empty q matches
// every row.
func (h *TareaHandler) SearchTareas(c *gin.Context) {
	q := c.Query("q")

	tareas, err := h.reader.Search(c.Request.Context(), q)
	if err != nil {
		h.logger.Error("SearchTareas: search failed", zap.String("q", q), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en búsqueda"})
		return
	}

	c.JSON(http.StatusOK, tareas)
}

// GetByCodigo handles GET /api/tareas/buscar/:codigo.
func (h *TareaHandler) GetByCodigo(c *gin.Context) {
	codigo := c.Param("codigo")

	tarea, err := h.reader.GetByCodigo(c.Request.Context(), codigo)
	if err != nil {
		if errors.Is(err, repository.ErrTareaNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tarea no encontrada"})
			return
		}
		h.logger.Error("GetByCodigo: failed to fetch tarea",
			zap.String("codigo_unico", codigo),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al buscar tarea"})
		return
	}

	c.JSON(http.StatusOK, tarea)
}

// GetByID handles GET /api/tareas/:id.
func (h *TareaHandler) GetByID(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tarea no encontrada"})
		return
	}

	tarea, err := h.reader.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTareaNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tarea no encontrada"})
			return
		}
		h.logger.Error("GetByID: failed to fetch tarea", zap.Int("tarea_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener tarea"})
		return
	}

	c.JSON(http.StatusOK, tarea)
}

// CreateTarea handles POST /api/tareas.
func (h *TareaHandler) CreateTarea(c *gin.Context) {
	var in model.TareaInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Código único y título son requeridos"})
		return
	}

	if in.CodigoUnico == "" || in.Titulo == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Código único y título son requeridos"})
		return
	}

	id, err := h.writer.Create(c.Request.Context(), &in)
	if err != nil {
		if errors.Is(err, repository.ErrCodigoDuplicado) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "El código único ya existe"})
			return
		}
		h.logger.Error("CreateTarea: failed to create tarea",
			zap.String("codigo_unico", in.CodigoUnico),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear tarea"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Tarea creada exitosamente",
		"id":      id,
	})
}

// UpdateTarea handles PUT /api/tareas/:codigo. The update is a full
// replace: fields absent from the body overwrite their columns with
// NULL, so clients always resend the complete task.
func (h *TareaHandler) UpdateTarea(c *gin.Context) {
	codigo := c.Param("codigo")

	var in model.TareaInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de la petición inválido"})
		return
	}

	if err := h.writer.Update(c.Request.Context(), codigo, &in); err != nil {
		if errors.Is(err, repository.ErrTareaNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tarea no encontrada"})
			return
		}
		h.logger.Error("UpdateTarea: failed to update tarea",
			zap.String("codigo_unico", codigo),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar tarea"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tarea actualizada exitosamente"})
}

// DeleteTarea handles DELETE /api/tareas/:codigo. Notes cascade at the
// datastore.
func (h *TareaHandler) DeleteTarea(c *gin.Context) {
	codigo := c.Param("codigo")

	if err := h.writer.Delete(c.Request.Context(), codigo); err != nil {
		if errors.Is(err, repository.ErrTareaNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tarea no encontrada"})
			return
		}
		h.logger.Error("DeleteTarea: failed to delete tarea",
			zap.String("codigo_unico", codigo),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar tarea"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tarea eliminada exitosamente"})
}
