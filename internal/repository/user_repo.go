package repository

import (
	"context"

	"gorm.io/gorm"

	"clubreview/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByUsername fetches a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User

	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// FavoriteClubNames returns the names of the clubs the user favorited,
// ordered by club name.
func (r *UserRepository) FavoriteClubNames(ctx context.Context, username string) ([]string, error) {
	names := []string{}

	err := r.db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Joins("JOIN clubs ON clubs.code = favorites.club_code").
		Where("favorites.user_username = ?", username).
		Order("clubs.name").
		Pluck("clubs.name", &names).Error
	if err != nil {
		return nil, err
	}

	return names, nil
}
