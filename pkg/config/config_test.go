package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverrideDBFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.example.com")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "app")

	cfg := DBConfig{Host: "localhost", Port: 5432, User: "postgres", Name: "tareas"}
	OverrideDBFromEnv(&cfg)

	assert.Equal(t, "db.example.com", cfg.Host)
	assert.Equal(t, 5433, cfg.Port)
	assert.Equal(t, "app", cfg.User)
	// untouched when the variable is unset
	assert.Equal(t, "tareas", cfg.Name)
}

func TestOverrideDBFromEnvBadPort(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")

	cfg := DBConfig{Port: 5432}
	OverrideDBFromEnv(&cfg)
	assert.Equal(t, 5432, cfg.Port)
}

func TestOverrideCORSFromEnv(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, http://localhost:3000 ,")

	cfg := CORSConfig{AllowedOrigins: []string{"https://old.example.com"}}
	OverrideCORSFromEnv(&cfg)

	assert.Equal(t, []string{"https://a.example.com", "http://localhost:3000"}, cfg.AllowedOrigins)
}

func TestOverrideAuthFromEnv(t *testing.T) {
	t.Setenv("AUTH_REQUIRED", "true")

	cfg := AuthConfig{}
	OverrideAuthFromEnv(&cfg)
	assert.True(t, cfg.Required)

	t.Setenv("AUTH_REQUIRED", "nonsense")
	cfg = AuthConfig{Required: true}
	OverrideAuthFromEnv(&cfg)
	assert.True(t, cfg.Required)
}
