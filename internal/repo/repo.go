package repo

import (
	"HomeCrew/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the Postgres connection and runs the migrations for all
// server models.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.User{}, &model.Record{}, &model.Asset{}); err != nil {
		return nil, err
	}
	return db, nil
}
