package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"tareas-backend/internal/model"
	"tareas-backend/pkg/metrics"
)

type UsuarioRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewUsuarioRepository(db *pgxpool.Pool, logger *zap.Logger) *UsuarioRepository {
	return &UsuarioRepository{db: db, logger: logger}
}

// FindByUsuario returns the account for a username.
func (r *UsuarioRepository) FindByUsuario(ctx context.Context, usuario string) (*model.Usuario, error) {
	start := time.Now()
	defer func() { metrics.RecordDBQueryDuration("find_by_usuario", "usuarios", time.Since(start)) }()

	query := `
        SELECT id, usuario, password_hash, created_at
        FROM usuarios
        WHERE usuario = $1
    `
	var u model.Usuario
	err := r.db.QueryRow(ctx, query, usuario).Scan(
		&u.ID, &u.Usuario, &u.PasswordHash, &u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUsuarioNotFound
	}
	if err != nil {
		r.logger.Error("Failed to fetch usuario", zap.Error(err))
		return nil, err
	}
	return &u, nil
}
