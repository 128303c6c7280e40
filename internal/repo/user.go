package repo

import (
	"HomeCrew/internal/model"
	"context"

	"gorm.io/gorm"
)

// UserRepository is the minimal user access contract for the service
// layer.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)

	// GetUserByLogin returns gorm.ErrRecordNotFound when no such login
	// exists.
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if tx := r.db.WithContext(ctx).Create(user); tx.Error != nil {
		return nil, tx.Error
	}
	return user, nil
}

func (r *userRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	var u model.User
	if tx := r.db.WithContext(ctx).Where("login = ?", login).First(&u); tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}
