package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tareas-backend/internal/model"
	"tareas-backend/internal/service/auth"
)

type LoginService interface {
	Login(ctx context.Context, usuario, password string) (string, *model.Usuario, error)
}

type AuthHandler struct {
	service LoginService
	logger  *zap.Logger
}

func NewAuthHandler(service LoginService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: logger}
}

// Login handles POST /api/tareas/login. Unknown usernames and wrong
// passwords are indistinguishable on the wire.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Usuario  string `json:"usuario"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Usuario == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Usuario y password son requeridos"})
		return
	}

	token, u, err := h.service.Login(c.Request.Context(), req.Usuario, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario o password incorrectos"})
			return
		}
		h.logger.Error("Login: unexpected failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al iniciar sesión"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"usuario": u.Usuario,
	})
}
