package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"clubreview/internal/domain"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add records that the user favorited the club. The existence check runs
// inside the transaction, and the composite primary key backstops it: a
// duplicate pair is ErrAlreadyFavorited either way, never a raw DB error.
func (r *FavoriteRepository) Add(ctx context.Context, username, code string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		err := tx.Model(&domain.Favorite{}).
			Where("club_code = ? AND user_username = ?", code, username).
			Count(&n).Error
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrAlreadyFavorited
		}

		favorite := domain.Favorite{ClubCode: code, Username: username}
		if err := tx.Create(&favorite).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyFavorited
			}
			return err
		}
		return nil
	})
}

// Exists reports whether the user already favorited the club.
func (r *FavoriteRepository) Exists(ctx context.Context, username, code string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Where("club_code = ? AND user_username = ?", code, username).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
