package repo

import (
	"HomeCrew/internal/model"
	"context"

	"gorm.io/gorm"
)

// RecordRepository is the record access contract for the service layer.
// Every method is scoped to one owning user; records of other users are
// invisible.
type RecordRepository interface {
	Create(ctx context.Context, rec *model.Record) error

	// GetByID returns gorm.ErrRecordNotFound when the record does not
	// exist or belongs to another user.
	GetByID(ctx context.Context, userID int64, id string) (*model.Record, error)

	// Update overwrites the stored field JSON.
	Update(ctx context.Context, userID int64, id string, fields []byte) error

	// Delete returns gorm.ErrRecordNotFound when nothing was deleted.
	Delete(ctx context.Context, userID int64, id string) error

	ListByType(ctx context.Context, userID int64, recordType string) ([]model.Record, error)
}

type recordRepo struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepo{db: db}
}

func (r *recordRepo) Create(ctx context.Context, rec *model.Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recordRepo) GetByID(ctx context.Context, userID int64, id string) (*model.Record, error) {
	var rec model.Record
	tx := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).First(&rec)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &rec, nil
}

func (r *recordRepo) Update(ctx context.Context, userID int64, id string, fields []byte) error {
	tx := r.db.WithContext(ctx).Model(&model.Record{}).
		Where("user_id = ? AND id = ?", userID, id).
		Update("fields", fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *recordRepo) Delete(ctx context.Context, userID int64, id string) error {
	tx := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).Delete(&model.Record{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *recordRepo) ListByType(ctx context.Context, userID int64, recordType string) ([]model.Record, error) {
	var recs []model.Record
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, recordType).
		Order("created_at").
		Find(&recs)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return recs, nil
}
