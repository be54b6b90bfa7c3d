// Package dbtest opens migrated in-memory SQLite databases for tests.
package dbtest

import (
	"testing"

	"fleet-management/fleetboard/internal/db"

	"github.com/jmoiron/sqlx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// New returns a fresh migrated database behind both GORM and sqlx.
func New(t testing.TB) (*gorm.DB, *sqlx.DB) {
	t.Helper()

	orm, err := gorm.Open(sqlite.Open(":memory:"), db.GormConfig())
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := orm.DB()
	if err != nil {
		t.Fatalf("Failed to access test pool: %v", err)
	}
	// Every new connection to :memory: is a new empty database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Migrate(orm); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	sx, err := db.WrapSQLX(orm)
	if err != nil {
		t.Fatalf("Failed to wrap sqlx: %v", err)
	}
	return orm, sx
}
