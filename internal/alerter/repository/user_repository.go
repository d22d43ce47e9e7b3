package repository

import (
	"context"
	"errors"

	"golang-stock-alert/internal/entity"

	"gorm.io/gorm"
)

// UserRepository resolves alert owners. Account management (sign-up,
// credentials) lives outside this service; rows are provisioned by the
// surrounding platform.
type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// NewUserRepository creates a new GORM-based user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

type userRepository struct {
	db *gorm.DB
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
