package status

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tareas-backend/internal/model"
)

var testEstados = []model.Estado{
	{ID: 1, NomEstado: "pendiente"},
	{ID: 2, NomEstado: "en progreso"},
}

type fakeEstadoStore struct {
	estados []model.Estado
	err     error
	calls   int
}

func (f *fakeEstadoStore) List(ctx context.Context) ([]model.Estado, error) {
	f.calls++
	return f.estados, f.err
}

type fakeCache struct {
	data   map[string]string
	getErr error
	setErr error
	sets   int
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	v, ok := f.data[key]
	if !ok {
		return "", redis.Nil
	}
	return v, nil
}

func (f *fakeCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.sets++
	f.data[key] = value
	return nil
}

func TestListWithoutCache(t *testing.T) {
	store := &fakeEstadoStore{estados: testEstados}
	s := NewService(store, nil, zap.NewNop())

	estados, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testEstados, estados)
	assert.Equal(t, 1, store.calls)
}

func TestListPopulatesCacheOnMiss(t *testing.T) {
	store := &fakeEstadoStore{estados: testEstados}
	cache := &fakeCache{data: map[string]string{}}
	s := NewService(store, cache, zap.NewNop())

	estados, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testEstados, estados)
	assert.Equal(t, 1, cache.sets)

	// second call is served from the cache
	estados, err = s.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testEstados, estados)
	assert.Equal(t, 1, store.calls)
}

func TestListCacheHit(t *testing.T) {
	data, err := json.Marshal(testEstados)
	require.NoError(t, err)

	store := &fakeEstadoStore{estados: nil}
	cache := &fakeCache{data: map[string]string{cacheKey: string(data)}}
	s := NewService(store, cache, zap.NewNop())

	estados, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testEstados, estados)
	assert.Equal(t, 0, store.calls)
}

func TestListDegradesWhenCacheErrors(t *testing.T) {
	store := &fakeEstadoStore{estados: testEstados}
	cache := &fakeCache{data: map[string]string{}, getErr: errors.New("redis down"), setErr: errors.New("redis down")}
	s := NewService(store, cache, zap.NewNop())

	estados, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testEstados, estados)
	assert.Equal(t, 1, store.calls)
}

func TestListStoreError(t *testing.T) {
	store := &fakeEstadoStore{err: errors.New("db down")}
	s := NewService(store, nil, zap.NewNop())

	_, err := s.List(context.Background())
	assert.Error(t, err)
}
