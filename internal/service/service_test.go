package service

import (
	"HomeCrew/internal/model"
	"testing"

	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

func zapNop() *zap.SugaredLogger { return zap.NewNop().Sugar() }

// newTestDB opens an in-memory SQLite (modernc.org/sqlite) for service
// tests running against the real repositories.
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

func seedUser(t *testing.T, db *gorm.DB, login string) int64 {
	t.Helper()
	u := &model.User{Login: login, Password: "hash"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u.ID
}
