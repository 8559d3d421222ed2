package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"clubreview/internal/domain"
)

// TagCount pairs a tag with the number of clubs carrying it.
type TagCount struct {
	TagName       string
	NumberOfClubs int64
}

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// GetOrCreate returns the tag with the given name, creating it on first
// reference. Calling it twice with one name leaves exactly one row.
func (r *TagRepository) GetOrCreate(ctx context.Context, name string) (*domain.Tag, error) {
	tx := r.db.WithContext(ctx)
	if err := getOrCreateTag(tx, name); err != nil {
		return nil, err
	}

	var tag domain.Tag
	if err := tx.Where("name = ?", name).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// UsageCounts reports, per tag, how many clubs carry it, ordered by tag
// name. The inner join over club_tags means a tag attached to no club does
// not appear.
func (r *TagRepository) UsageCounts(ctx context.Context) ([]TagCount, error) {
	var rows []struct {
		TagName string
		N       int64
	}

	err := r.db.WithContext(ctx).
		Model(&domain.ClubTag{}).
		Select("tag_name, COUNT(club_code) AS n").
		Group("tag_name").
		Order("tag_name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make([]TagCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, TagCount{TagName: row.TagName, NumberOfClubs: row.N})
	}
	return counts, nil
}

// getOrCreateTag is the tx-scoped form used inside club create/update
// transactions. A duplicate-key error from a concurrent insert of the same
// name means the tag now exists, which is the outcome we wanted.
func getOrCreateTag(tx *gorm.DB, name string) error {
	var tag domain.Tag
	err := tx.FirstOrCreate(&tag, domain.Tag{Name: name}).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}
