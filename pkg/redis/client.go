package redis

import (
	"github.com/redis/go-redis/v9"

	"tareas-backend/pkg/config"
)

// NewClient builds the redis client used for lookup caching.
func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
