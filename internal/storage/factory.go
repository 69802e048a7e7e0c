package storage

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"radioai/internal/config"
)

// NewStorage creates the storage backend selected by the configuration
func NewStorage(cfg config.StorageConfig, logger *slog.Logger) (Storage, error) {
	switch cfg.Driver {
	case "", "memory":
		return NewMemoryStorage(), nil
	case DriverSQLite:
		dsn := cfg.DSN
		if dsn == "" {
			// Ensure data directory exists with secure permissions (0750)
			if err := os.MkdirAll(cfg.DataDir, 0750); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
			dsn = filepath.Join(cfg.DataDir, "radioai.db") + "?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=30000"
		}
		return NewSQLStorage(DriverSQLite, dsn, logger)
	case DriverPostgres:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres driver")
		}
		return NewSQLStorage(DriverPostgres, cfg.DSN, logger)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
