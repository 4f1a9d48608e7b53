package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tareas-backend/internal/model"
	"tareas-backend/internal/service/auth"
)

type fakeLoginService struct {
	token string
	user  *model.Usuario
	err   error
}

func (f *fakeLoginService) Login(ctx context.Context, usuario, password string) (string, *model.Usuario, error) {
	if f.err != nil {
		return "", nil, f.err
	}
	return f.token, f.user, nil
}

func newAuthTestRouter(svc LoginService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(svc, zap.NewNop())

	r := gin.New()
	r.POST("/api/tareas/login", h.Login)
	return r
}

func TestLoginSuccess(t *testing.T) {
	r := newAuthTestRouter(&fakeLoginService{
		token: "signed-token",
		user:  &model.Usuario{ID: 1, Usuario: "maria"},
	})

	w := doJSON(t, r, http.MethodPost, "/api/tareas/login", gin.H{
		"usuario":  "maria",
		"password": "correct-horse",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token   string `json:"token"`
		Usuario string `json:"usuario"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, "maria", resp.Usuario)
}

func TestLoginInvalidCredentials(t *testing.T) {
	r := newAuthTestRouter(&fakeLoginService{err: auth.ErrInvalidCredentials})

	w := doJSON(t, r, http.MethodPost, "/api/tareas/login", gin.H{
		"usuario":  "maria",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotContains(t, w.Body.String(), "token")
}

func TestLoginDatastoreFailureIsServerError(t *testing.T) {
	r := newAuthTestRouter(&fakeLoginService{err: errors.New("db down")})

	w := doJSON(t, r, http.MethodPost, "/api/tareas/login", gin.H{
		"usuario":  "maria",
		"password": "correct-horse",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "token")
}

func TestLoginMissingFields(t *testing.T) {
	r := newAuthTestRouter(&fakeLoginService{token: "x"})

	for _, body := range []gin.H{
		{},
		{"usuario": "maria"},
		{"password": "secret"},
	} {
		w := doJSON(t, r, http.MethodPost, "/api/tareas/login", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}
