package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tareas-backend/internal/model"
	"tareas-backend/internal/repository"
)

// fakeNotaStore mirrors the one-note-per-task upsert: known task ids
// hold at most one note each.
type fakeNotaStore struct {
	knownTareas map[int]bool
	notas       map[int]model.Nota
	nextID      int
}

func newFakeNotaStore(tareaIDs ...int) *fakeNotaStore {
	known := map[int]bool{}
	for _, id := range tareaIDs {
		known[id] = true
	}
	return &fakeNotaStore{knownTareas: known, notas: map[int]model.Nota{}, nextID: 1}
}

func (f *fakeNotaStore) ListByTarea(ctx context.Context, tareaID int) ([]model.Nota, error) {
	if n, ok := f.notas[tareaID]; ok {
		return []model.Nota{n}, nil
	}
	return []model.Nota{}, nil
}

func (f *fakeNotaStore) Upsert(ctx context.Context, tareaID int, notaDesc string) error {
	if !f.knownTareas[tareaID] {
		return repository.ErrNotaTareaMissing
	}
	if n, ok := f.notas[tareaID]; ok {
		n.NotaDesc = notaDesc
		n.UpdatedAt = time.Now()
		f.notas[tareaID] = n
		return nil
	}
	f.notas[tareaID] = model.Nota{
		ID:        f.nextID,
		TareaID:   tareaID,
		NotaDesc:  notaDesc,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.nextID++
	return nil
}

func newNotaTestRouter(store *fakeNotaStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewNotaHandler(store, zap.NewNop())

	r := gin.New()
	api := r.Group("/api/tareas")
	api.GET("/:id/notas", h.ListNotas)
	api.POST("/:id/notas", h.UpsertNota)
	return r
}

func TestUpsertNotaTwiceKeepsOneRow(t *testing.T) {
	store := newFakeNotaStore(1)
	r := newNotaTestRouter(store)

	w := doJSON(t, r, http.MethodPost, "/api/tareas/1/notas", gin.H{"nota_desc": "primera"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/tareas/1/notas", gin.H{"nota_desc": "segunda"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/tareas/1/notas", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var notas []model.Nota
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notas))
	require.Len(t, notas, 1)
	assert.Equal(t, "segunda", notas[0].NotaDesc)
}

func TestUpsertNotaMissingDesc(t *testing.T) {
	r := newNotaTestRouter(newFakeNotaStore(1))

	w := doJSON(t, r, http.MethodPost, "/api/tareas/1/notas", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/tareas/1/notas", gin.H{"nota_desc": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpsertNotaUnknownTarea(t *testing.T) {
	r := newNotaTestRouter(newFakeNotaStore(1))

	w := doJSON(t, r, http.MethodPost, "/api/tareas/99/notas", gin.H{"nota_desc": "huerfana"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpsertNotaBadTareaID(t *testing.T) {
	r := newNotaTestRouter(newFakeNotaStore(1))

	w := doJSON(t, r, http.MethodPost, "/api/tareas/abc/notas", gin.H{"nota_desc": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListNotasEmpty(t *testing.T) {
	r := newNotaTestRouter(newFakeNotaStore(1))

	w := doJSON(t, r, http.MethodGet, "/api/tareas/1/notas", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var notas []model.Nota
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notas))
	assert.Empty(t, notas)
}
