package repo

import (
	"HomeCrew/internal/model"
	"testing"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// newTestDB opens an in-memory SQLite (modernc.org/sqlite) for
// repository tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file::memory:?cache=shared"}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Record{}, &model.Asset{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return db
}
