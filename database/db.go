package database

import (
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"repuestos-web/config"
)

// Connect opens (creating if needed) the SQLite store under the data directory.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, err
	}
	return Open(cfg.DBPath())
}

// Open opens the SQLite database at path. TranslateError maps the driver's
// unique-constraint violation onto gorm.ErrDuplicatedKey so callers can
// detect code collisions without driver-specific checks.
func Open(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
}
