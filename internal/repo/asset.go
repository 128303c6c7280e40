package repo

import (
	"HomeCrew/internal/model"
	"context"

	"gorm.io/gorm"
)

// AssetRepository is the asset metadata contract. The file bytes are
// handled by the service layer; only the rows live here.
type AssetRepository interface {
	Create(ctx context.Context, asset *model.Asset) error

	// GetByID returns gorm.ErrRecordNotFound when the asset does not
	// exist or belongs to another user.
	GetByID(ctx context.Context, userID int64, id string) (*model.Asset, error)
}

type assetRepo struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) AssetRepository {
	return &assetRepo{db: db}
}

func (r *assetRepo) Create(ctx context.Context, asset *model.Asset) error {
	return r.db.WithContext(ctx).Create(asset).Error
}

func (r *assetRepo) GetByID(ctx context.Context, userID int64, id string) (*model.Asset, error) {
	var a model.Asset
	tx := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).First(&a)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &a, nil
}
