// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Rules:
//   - the token signing secret must be set; without it no session or
//     reset token can be issued or verified;
//   - the production environment requires a PostgreSQL DSN;
//   - outside production a SQLite path must be available (the defaults
//     always provide one, so this only fires when explicitly blanked).
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.SecretKey == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.IsProduction() && cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if !cfg.IsProduction() && cfg.Storage.SQLite.Path == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
