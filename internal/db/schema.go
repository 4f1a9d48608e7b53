package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Table creation is idempotent and runs once at startup. The UNIQUE
// constraint on notas.tarea_id is what makes the note upsert atomic.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS estados (
		id SERIAL PRIMARY KEY,
		nom_estado VARCHAR(100) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tareas (
		id SERIAL PRIMARY KEY,
		codigo_unico VARCHAR(100) UNIQUE NOT NULL,
		titulo VARCHAR(255) NOT NULL,
		url_tarea VARCHAR(500),
		empresa VARCHAR(255),
		submodulo VARCHAR(255),
		rama VARCHAR(255),
		hash_commit VARCHAR(255),
		estado INT REFERENCES estados(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS notas (
		id SERIAL PRIMARY KEY,
		tarea_id INT NOT NULL UNIQUE REFERENCES tareas(id) ON DELETE CASCADE,
		nota_desc TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS usuarios (
		id SERIAL PRIMARY KEY,
		usuario VARCHAR(100) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// The lookup set is seed data; fixed ids keep references stable across
// environments.
const seedEstados = `
	INSERT INTO estados (id, nom_estado) VALUES
		(1, 'pendiente'),
		(2, 'en progreso'),
		(3, 'en revision'),
		(4, 'completada'),
		(5, 'bloqueada')
	ON CONFLICT (id) DO NOTHING
`

const syncEstadosSequence = `
	SELECT setval(pg_get_serial_sequence('estados', 'id'), (SELECT MAX(id) FROM estados))
`

// InitSchema ensures all tables exist and the status lookup is seeded.
// Any failure here is fatal to process startup.
func InitSchema(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			logger.Error("Schema bootstrap failed", zap.Error(err))
			return fmt.Errorf("schema bootstrap: %w", err)
		}
	}

	if _, err := pool.Exec(ctx, seedEstados); err != nil {
		logger.Error("Status seed failed", zap.Error(err))
		return fmt.Errorf("status seed: %w", err)
	}
	if _, err := pool.Exec(ctx, syncEstadosSequence); err != nil {
		logger.Error("Status sequence sync failed", zap.Error(err))
		return fmt.Errorf("status sequence sync: %w", err)
	}

	logger.Info("Database schema verified")
	return nil
}
