package status

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"tareas-backend/internal/model"
	"tareas-backend/pkg/metrics"
)

const (
	cacheKey = "estados:all"
	cacheTTL = 5 * time.Minute
)

type EstadoStore interface {
	List(ctx context.Context) ([]model.Estado, error)
}

// Cache is the subset of redis commands the service needs; a nil Cache
// disables caching.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// Service serves the status lookup set through a read-through cache.
// The lookup is seed data, so a short TTL is plenty and a cache outage
// just degrades to the database.
type Service struct {
	estados EstadoStore
	cache   Cache
	logger  *zap.Logger
}

func NewService(estados EstadoStore, cache Cache, logger *zap.Logger) *Service {
	return &Service{
		estados: estados,
		cache:   cache,
		logger:  logger,
	}
}

func (s *Service) List(ctx context.Context) ([]model.Estado, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
			var estados []model.Estado
			if err := json.Unmarshal([]byte(cached), &estados); err == nil {
				metrics.IncrementStatusCache("hit")
				return estados, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			metrics.IncrementStatusCache("error")
			s.logger.Warn("Status cache read failed", zap.Error(err))
		} else {
			metrics.IncrementStatusCache("miss")
		}
	}

	estados, err := s.estados.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(estados); err == nil {
			if err := s.cache.Set(ctx, cacheKey, string(data), cacheTTL); err != nil {
				s.logger.Warn("Status cache write failed", zap.Error(err))
			}
		}
	}

	return estados, nil
}

// RedisCache adapts a redis client to the Cache interface.
type RedisCache struct {
	rdb *redis.Client
}

func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return c.rdb.Get(ctx, key).Result()
}

func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}
