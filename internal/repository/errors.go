package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrTareaNotFound means no task matched the lookup key.
	ErrTareaNotFound = errors.New("tarea not found")

	// ErrCodigoDuplicado means codigo_unico already exists.
	ErrCodigoDuplicado = errors.New("codigo_unico already exists")

	// ErrUsuarioNotFound means no user matched the username.
	ErrUsuarioNotFound = errors.New("usuario not found")

	// ErrNotaTareaMissing means a note referenced a task that does not
	// exist.
	ErrNotaTareaMissing = errors.New("tarea for nota not found")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}
