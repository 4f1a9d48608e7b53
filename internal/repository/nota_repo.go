package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"tareas-backend/internal/model"
	"tareas-backend/pkg/metrics"
)

type NotaRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewNotaRepository(db *pgxpool.Pool, logger *zap.Logger) *NotaRepository {
	return &NotaRepository{db: db, logger: logger}
}

func (r *NotaRepository) ListByTarea(ctx context.Context, tareaID int) ([]model.Nota, error) {
	start := time.Now()
	defer func() { metrics.RecordDBQueryDuration("list", "notas", time.Since(start)) }()

	query := `
        SELECT id, tarea_id, nota_desc, created_at, updated_at
        FROM notas
        WHERE tarea_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, tareaID)
	if err != nil {
		r.logger.Error("Failed to query notas",
			zap.Int("tarea_id", tareaID),
			zap.Error(err),
		)
		return nil, err
	}
	defer rows.Close()

	notas := []model.Nota{}
	for rows.Next() {
		var n model.Nota
		if err := rows.Scan(&n.ID, &n.TareaID, &n.NotaDesc, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		notas = append(notas, n)
	}
	return notas, rows.Err()
}

// Upsert writes the task's single note in one statement. The UNIQUE
// constraint on tarea_id makes concurrent upserts for the same task
// converge on one row instead of racing a read against a write.
func (r *NotaRepository) Upsert(ctx context.Context, tareaID int, notaDesc string) error {
	start := time.Now()
	defer func() { metrics.RecordDBQueryDuration("upsert", "notas", time.Since(start)) }()

	query := `
        INSERT INTO notas (tarea_id, nota_desc)
        VALUES ($1, $2)
        ON CONFLICT (tarea_id)
        DO UPDATE SET nota_desc = EXCLUDED.nota_desc, updated_at = NOW()
    `
	_, err := r.db.Exec(ctx, query, tareaID, notaDesc)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrNotaTareaMissing
		}
		r.logger.Error("Failed to upsert nota",
			zap.Int("tarea_id", tareaID),
			zap.Error(err),
		)
		return err
	}
	r.logger.Info("Nota guardada", zap.Int("tarea_id", tareaID))
	return nil
}
