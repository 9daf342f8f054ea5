package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Supported migration dialects. The store package tags every connection
// with one of these so Migrate can pick the matching SQL set.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

//go:embed postgres/*.sql
var postgresMigrations embed.FS

//go:embed sqlite/*.sql
var sqliteMigrations embed.FS

// Migrate applies all pending migrations for the given dialect. The two
// backends carry separate SQL files because their autoincrement syntax
// differs; the resulting schemas are equivalent.
func Migrate(db *sql.DB, dialect string) error {
	switch dialect {
	case DialectPostgres:
		goose.SetBaseFS(postgresMigrations)
		if err := goose.SetDialect("pgx"); err != nil {
			return fmt.Errorf("migration error setting dialect for db: %w", err)
		}
		if err := goose.Up(db, "postgres"); err != nil {
			return fmt.Errorf("migration error: %w", err)
		}
	case DialectSQLite:
		goose.SetBaseFS(sqliteMigrations)
		if err := goose.SetDialect("sqlite3"); err != nil {
			return fmt.Errorf("migration error setting dialect for db: %w", err)
		}
		if err := goose.Up(db, "sqlite"); err != nil {
			return fmt.Errorf("migration error: %w", err)
		}
	default:
		return fmt.Errorf("migration error: unknown dialect %q", dialect)
	}

	return nil
}
