package repository

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL class 23 integrity violation for duplicate keys.
const pgDuplicateKeyCode = "23505"

// MapError rewrites the two storage errors every repository cares
// about into the caller's domain sentinels: sql.ErrNoRows becomes
// notFoundErr and a unique-constraint violation becomes duplicateErr.
// Anything else passes through untouched.
func MapError(err error, notFoundErr, duplicateErr error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return notFoundErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgDuplicateKeyCode {
		return duplicateErr
	}

	return err
}
