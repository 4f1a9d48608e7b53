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

// Every read joins estados so nom_estado is always present alongside
// the raw estado id.
const tareaColumns = `
	t.id, t.codigo_unico, t.titulo, t.url_tarea, t.empresa, t.submodulo,
	t.rama, t.hash_commit, t.estado, e.nom_estado, t.created_at, t.updated_at
`

type TareaRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTareaRepository(db *pgxpool.Pool, logger *zap.Logger) *TareaRepository {
	return &TareaRepository{db: db, logger: logger}
}

func (r *TareaRepository) List(ctx context.Context) ([]model.Tarea, error) {
	start := time.Now()
	defer func() { metrics.RecordDBQueryDuration("list", "tareas", time.Since(start)) }()

	query := `
        SELECT ` + tareaColumns + `
        FROM tareas t
        LEFT JOIN estados e ON e.id = t.estado
        ORDER BY t.created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query tareas", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanTareas(rows)
}

// Search matches q as a case-insensitive substring of codigo_unico or
// titulo. An empty q matches every row.
func (r *TareaRepository) Search(ctx context.Context, q string) ([]model.Tarea, error) {
	start := time.Now()
	defer func() { metrics.RecordDBQueryDuration("search", "tareas", time.Since(start)) }()

	query := `
        SELECT ` + tareaColumns + `
        FROM tareas t
        LEFT JOIN estados e ON e.id = t.estado
        WHERE t.codigo_unico ILIKE '%' || $1 || '%'
           OR t.titulo ILIKE '%' || $1 || '%'
        ORDER BY t.created_at DESC
    `
	rows, err := r.db.Query(ctx, query, q)
	if err != nil {
		r.logger.Error("Failed to search tareas", zap.String("q", q), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanTareas(rows)
}

func (r *TareaRepository) GetByCodigo(ctx context.Context, codigo string) (*model.Tarea, error) {
	start := time.Now()
	defer func() { metrics.RecordDBQueryDuration("get_by_codigo", "tareas", time.Since(start)) }()

	query := `
        SELECT ` + tareaColumns + `
        FROM tareas t
        LEFT JOIN estados e ON e.id = t.estado
        WHERE t.codigo_unico = $1
    `
	return r.getOne(ctx, query, codigo)
}

func (r *TareaRepository) GetByID(ctx context.Context, id int) (*model.Tarea, error) {
	start := time.Now()
	defer func() { metrics.RecordDBQueryDuration("get_by_id", "tareas", time.Since(start)) }()

	query := `
        SELECT ` + tareaColumns + `
        FROM tareas t
        LEFT JOIN estados e ON e.id = t.estado
        WHERE t.id = $1
    `
	return r.getOne(ctx, query, id)
}

func (r *TareaRepository) getOne(ctx context.Context, query string, arg any) (*model.Tarea, error) {
	var t model.Tarea
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&t.ID, &t.CodigoUnico, &t.Titulo, &t.URLTarea, &t.Empresa,
		&t.Submodulo, &t.Rama, &t.HashCommit, &t.Estado, &t.NomEstado,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTareaNotFound
	}
	if err != nil {
		r.logger.Error("Failed to fetch tarea", zap.Error(err))
		return nil, err
	}
	return &t, nil
}

func (r *TareaRepository) Insert(ctx context.Context, in *model.TareaInput) (int, error) {
	start := time.Now()
	defer func() { metrics.RecordDBQueryDuration("insert", "tareas", time.Since(start)) }()

	query := `
        INSERT INTO tareas (codigo_unico, titulo, url_tarea, empresa, submodulo, rama, hash_commit, estado)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
	var id int
	err := r.db.QueryRow(ctx, query,
		in.CodigoUnico,
		in.Titulo,
		in.URLTarea,
		in.Empresa,
		in.Submodulo,
		in.Rama,
		in.HashCommit,
		in.Estado,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrCodigoDuplicado
		}
		r.logger.Error("Failed to insert tarea",
			zap.String("codigo_unico", in.CodigoUnico),
			zap.Error(err),
		)
		return 0, err
	}
	r.logger.Info("Tarea inserted",
		zap.Int("tarea_id", id),
		zap.String("codigo_unico", in.CodigoUnico),
	)
	return id, nil
}

// Update replaces every mutable column. Fields the client did not send
// arrive nil and overwrite the stored value with NULL; clients must
// always resend the full task.
func (r *TareaRepository) Update(ctx context.Context, codigo string, in *model.TareaInput) error {
	start := time.Now()
	defer func() { metrics.RecordDBQueryDuration("update", "tareas", time.Since(start)) }()

	query := `
        UPDATE tareas
        SET titulo = $1, url_tarea = $2, empresa = $3, submodulo = $4,
            rama = $5, hash_commit = $6, estado = $7, updated_at = NOW()
        WHERE codigo_unico = $8
    `
	result, err := r.db.Exec(ctx, query,
		in.Titulo,
		in.URLTarea,
		in.Empresa,
		in.Submodulo,
		in.Rama,
		in.HashCommit,
		in.Estado,
		codigo,
	)
	if err != nil {
		r.logger.Error("Failed to update tarea",
			zap.String("codigo_unico", codigo),
			zap.Error(err),
		)
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrTareaNotFound
	}
	r.logger.Info("Tarea updated", zap.String("codigo_unico", codigo))
	return nil
}

// Delete removes the task; its notes cascade at the datastore.
func (r *TareaRepository) Delete(ctx context.Context, codigo string) error {
	start := time.Now()
	defer func() { metrics.RecordDBQueryDuration("delete", "tareas", time.Since(start)) }()

	result, err := r.db.Exec(ctx, `DELETE FROM tareas WHERE codigo_unico = $1`, codigo)
	if err != nil {
		r.logger.Error("Failed to delete tarea",
			zap.String("codigo_unico", codigo),
			zap.Error(err),
		)
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrTareaNotFound
	}
	r.logger.Info("Tarea deleted", zap.String("codigo_unico", codigo))
	return nil
}

func scanTareas(rows pgx.Rows) ([]model.Tarea, error) {
	tareas := []model.Tarea{}
	for rows.Next() {
		var t model.Tarea
		if err := rows.Scan(
			&t.ID, &t.CodigoUnico, &t.Titulo, &t.URLTarea, &t.Empresa,
			&t.Submodulo, &t.Rama, &t.HashCommit, &t.Estado, &t.NomEstado,
			&t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tareas = append(tareas, t)
	}
	return tareas, rows.Err()
}
