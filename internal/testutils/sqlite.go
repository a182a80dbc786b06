package testutils

import (
	"fmt"
	"sync/atomic"
	"testing"

	"parts-inventory-backend/internal/database"

	"gorm.io/gorm"
)

var sqliteSeq atomic.Int64

// NewSQLiteDB opens a fresh, migrated in-memory SQLite database private to the test.
// It is closed automatically when the test ends.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=private", sqliteSeq.Add(1))
	db, err := database.Initialize(database.DriverSQLite, dsn, nil)
	if err != nil {
		t.Fatalf("failed to open sqlite test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
