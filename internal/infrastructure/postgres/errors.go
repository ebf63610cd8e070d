package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hoagiehub/hoagie-api/internal/domain/apperr"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// mapPgError converts store-level failures into domain error kinds at the
// repository boundary. A unique violation is a duplicate email (the only
// unique constraint in the schema); a foreign key violation means a referenced
// entity is absent.
func mapPgError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperr.ErrDuplicateEmail
		case pgForeignKeyViolation:
			return apperr.ErrNotFound
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.ErrNotFound
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE/ILIKE metacharacters so untrusted input is matched
// literally, never interpreted as a pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
