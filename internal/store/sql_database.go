package store

import (
	"database/sql"

	"github.com/akhmadiev/storefront/internal/logger"
	"github.com/akhmadiev/storefront/migrations"
)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	dialect            string
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// classify funnels a driver error through the backend's classifier.
// A nil classifier (e.g. in sqlmock-backed tests) classifies everything
// as Unclassified.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Unclassified
	}
	return db.errorClassificator.Classify(err)
}
