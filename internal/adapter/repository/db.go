package repository

import (
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDatabase opens a gorm.DB for the given DSN and migrates the schema.
// Accepted DSN forms: file:path/to.db, sqlite:///path/to.db, :memory:.
// An empty DSN falls back to a local SQLite file.
func OpenDatabase(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = "file:gameshelf.db"
	}
	if strings.HasPrefix(dsn, "sqlite:///") {
		dsn = "file:" + strings.TrimPrefix(dsn, "sqlite:///")
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
