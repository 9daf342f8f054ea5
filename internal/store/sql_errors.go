package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It identifies the portable meaning of a
// backend-specific driver error.
type ErrorClassification int

const (
	// Unclassified is the default classification for unrecognised errors
	// (and nil). Callers should treat such failures as unexpected.
	Unclassified ErrorClassification = iota

	// UniqueViolation indicates that a write failed because it would have
	// duplicated a value covered by a unique constraint (e.g. users.email).
	UniqueViolation
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver and maps it
// to an [ErrorClassification] value.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and maps the PostgreSQL error code to a classification.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	// Attempt to unwrap to a pgconn.PgError.
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return Unclassified
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation: // 23505
		return UniqueViolation
	}

	// Default: treat unrecognised codes as unclassified.
	return Unclassified
}

// SQLiteErrorClassifier implements [ErrorClassificator] for the
// mattn/go-sqlite3 driver used by the development backend.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator]. SQLite reports constraint
// failures via sqlite3.Error with the SQLITE_CONSTRAINT primary code and
// a SQLITE_CONSTRAINT_UNIQUE (or legacy PRIMARYKEY) extended code.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return Unclassified
	}

	if sqliteErr.Code == sqlite3.ErrConstraint &&
		(sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey) {
		return UniqueViolation
	}

	return Unclassified
}
