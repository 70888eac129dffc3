package service

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation reports whether err is a Postgres duplicate-key error.
// Unique indexes on the natural keys (email, slug, job_id, email+job pair) are
// the authoritative uniqueness check; application-level lookups only exist to
// produce friendlier errors on the common path.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
