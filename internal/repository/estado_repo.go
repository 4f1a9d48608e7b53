package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"tareas-backend/internal/model"
	"tareas-backend/pkg/metrics"
)

type EstadoRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewEstadoRepository(db *pgxpool.Pool, logger *zap.Logger) *EstadoRepository {
	return &EstadoRepository{db: db, logger: logger}
}

// List returns the full lookup set. Statuses are seed data; there is no
// write path.
func (r *EstadoRepository) List(ctx context.Context) ([]model.Estado, error) {
	start := time.Now()
	defer func() { metrics.RecordDBQueryDuration("list", "estados", time.Since(start)) }()

	rows, err := r.db.Query(ctx, `SELECT id, nom_estado FROM estados ORDER BY id ASC`)
	if err != nil {
		r.logger.Error("Failed to query estados", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	estados := []model.Estado{}
	for rows.Next() {
		var e model.Estado
		if err := rows.Scan(&e.ID, &e.NomEstado); err != nil {
			return nil, err
		}
		estados = append(estados, e)
	}
	return estados, rows.Err()
}
