// Package testutil opens throwaway databases for package tests.
package testutil

import (
	"testing"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/luxstyle-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/luxstyle-booking/internal/db"
)

// NewDB returns a migrated in-memory sqlite database closed at test cleanup.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := dbpkg.Open(&config.Config{DBUrl: "sqlite://:memory:"})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
