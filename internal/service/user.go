package service

import (
	"HomeCrew/internal/model"
	"HomeCrew/internal/repo"
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrLoginTaken is returned by Register when the login already exists.
	ErrLoginTaken = errors.New("login is already taken")

	// ErrInvalidCredentials is returned by Login on a wrong login or password.
	ErrInvalidCredentials = errors.New("invalid login or password")
)

// UserService covers registration and password checks.
type UserService struct {
	users repo.UserRepository
}

func NewUserService(users repo.UserRepository) *UserService {
	return &UserService{users: users}
}

// Register creates an account with a bcrypt-hashed password.
func (s *UserService) Register(ctx context.Context, login, password, fullName, email string) (*model.User, error) {
	if login == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	existing, err := s.users.GetUserByLogin(ctx, login)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrLoginTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.users.CreateUser(ctx, &model.User{
		Login:    login,
		Password: string(hash),
		FullName: fullName,
		Email:    email,
	})
}

// Login verifies the credentials and returns the account.
func (s *UserService) Login(ctx context.Context, login, password string) (*model.User, error) {
	u, err := s.users.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
