package store

import (
	"context"
	"fmt"

	"github.com/akhmadiev/storefront/internal/config"
	"github.com/akhmadiev/storefront/internal/logger"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	UserRepository
	ProductRepository
}

// NewStorages connects to the configured database backend, applies pending
// schema migrations and wires the repositories on top of the shared
// connection.
//
// Backend selection follows the runtime environment: production uses
// PostgreSQL via the DSN from cfg.Storage.DB, any other environment uses a
// local SQLite file. Both backends run the same repository code; only the
// driver, migrations dialect and error classifier differ.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	db, err := connect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		ProductRepository: NewProductRepository(db, log),
	}, nil
}

func connect(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*DB, error) {
	if cfg.IsProduction() {
		return NewConnectPostgres(ctx, cfg.Storage.DB, log)
	}
	return NewConnectSQLite(ctx, cfg.Storage.SQLite, log)
}
