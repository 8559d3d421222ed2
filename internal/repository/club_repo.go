package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"clubreview/internal/domain"
)

// ClubDetails is a club joined with its tag names and favorite count.
type ClubDetails struct {
	Code          string
	Name          string
	Description   string
	Tags          []string
	FavoriteCount int64
}

type ClubRepository struct {
	db *gorm.DB
}

func NewClubRepository(db *gorm.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

// GetByCode fetches a club by its code
func (r *ClubRepository) GetByCode(ctx context.Context, code string) (*domain.Club, error) {
	var club domain.Club

	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&club).Error

	if err != nil {
		return nil, err
	}

	return &club, nil
}

// GetByName fetches a club by its unique name
func (r *ClubRepository) GetByName(ctx context.Context, name string) (*domain.Club, error) {
	var club domain.Club

	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&club).Error

	if err != nil {
		return nil, err
	}

	return &club, nil
}

// List returns clubs ordered by name, each with its tag set and favorite
// count. When nameFilter is non-empty only clubs whose name contains the
// substring are returned. Counts are keyed by club code from a single
// grouped query, so a club with no favorites still reports 0.
func (r *ClubRepository) List(ctx context.Context, nameFilter string) ([]ClubDetails, error) {
	var clubs []domain.Club

	q := r.db.WithContext(ctx).Model(&domain.Club{})
	if nameFilter != "" {
		q = q.Where("name LIKE ?", "%"+nameFilter+"%")
	}
	if err := q.Order("name").Find(&clubs).Error; err != nil {
		return nil, err
	}

	counts, err := r.favoriteCounts(ctx)
	if err != nil {
		return nil, err
	}

	tagSets, err := r.tagSets(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]ClubDetails, 0, len(clubs))
	for _, club := range clubs {
		tags := tagSets[club.Code]
		if tags == nil {
			tags = []string{}
		}
		details = append(details, ClubDetails{
			Code:          club.Code,
			Name:          club.Name,
			Description:   club.Description,
			Tags:          tags,
			FavoriteCount: counts[club.Code],
		})
	}

	return details, nil
}

// GetDetails returns a single club with tags and favorite count.
func (r *ClubRepository) GetDetails(ctx context.Context, code string) (*ClubDetails, error) {
	var club domain.Club

	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&club).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClubNotFound
		}
		return nil, err
	}

	tags := []string{}
	err = r.db.WithContext(ctx).
		Model(&domain.ClubTag{}).
		Where("club_code = ?", code).
		Order("tag_name").
		Pluck("tag_name", &tags).Error
	if err != nil {
		return nil, err
	}

	var count int64
	err = r.db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Where("club_code = ?", code).
		Count(&count).Error
	if err != nil {
		return nil, err
	}

	return &ClubDetails{
		Code:          club.Code,
		Name:          club.Name,
		Description:   club.Description,
		Tags:          tags,
		FavoriteCount: count,
	}, nil
}

// Create inserts a club with its tag set in one transaction. The code and
// name uniqueness checks run inside the transaction, and a duplicate-key
// error at commit maps to the same sentinels, so a concurrent writer cannot
// slip a duplicate past the checks.
func (r *ClubRepository) Create(ctx context.Context, code, name, description string, tagNames []string) (*ClubDetails, error) {
	if hasDuplicateName(tagNames) {
		return nil, ErrDuplicateTag
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&domain.Club{}).Where("code = ?", code).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrClubCodeInUse
		}
		if err := tx.Model(&domain.Club{}).Where("name = ?", name).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrClubNameInUse
		}

		club := domain.Club{Code: code, Name: name, Description: description}
		if err := tx.Create(&club).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return clubConflict(tx, code)
			}
			return err
		}

		return attachTags(tx, code, tagNames)
	})
	if err != nil {
		return nil, err
	}

	return r.GetDetails(ctx, code)
}

// Update replaces a club's code, name, description and full tag set. Old
// tag associations are cleared, not merged. Favorites are repointed when
// the code changes so favorite counts survive the rename.
func (r *ClubRepository) Update(ctx context.Context, code, newCode, newName, newDescription string, newTags []string) (*ClubDetails, error) {
	if hasDuplicateName(newTags) {
		return nil, ErrDuplicateTag
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var club domain.Club
		if err := tx.Where("code = ?", code).First(&club).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClubNotFound
			}
			return err
		}

		var n int64
		if newCode != code {
			if err := tx.Model(&domain.Club{}).Where("code = ?", newCode).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return ErrClubCodeInUse
			}
		}
		if newName != club.Name {
			if err := tx.Model(&domain.Club{}).Where("name = ?", newName).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return ErrClubNameInUse
			}
		}

		err := tx.Model(&domain.Club{}).
			Where("code = ?", code).
			Updates(map[string]any{
				"code":        newCode,
				"name":        newName,
				"description": newDescription,
			}).Error
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return clubConflict(tx, newCode)
			}
			return err
		}

		if err := tx.Where("club_code = ?", code).Delete(&domain.ClubTag{}).Error; err != nil {
			return err
		}
		if err := attachTags(tx, newCode, newTags); err != nil {
			return err
		}

		if newCode != code {
			err := tx.Model(&domain.Favorite{}).
				Where("club_code = ?", code).
				Update("club_code", newCode).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetDetails(ctx, newCode)
}

// favoriteCounts returns favorite totals keyed by club code.
func (r *ClubRepository) favoriteCounts(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		ClubCode string
		N        int64
	}

	err := r.db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Select("club_code, COUNT(user_username) AS n").
		Group("club_code").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.ClubCode] = row.N
	}
	return counts, nil
}

// tagSets returns tag names keyed by club code, each set sorted by name.
func (r *ClubRepository) tagSets(ctx context.Context) (map[string][]string, error) {
	var rows []domain.ClubTag

	err := r.db.WithContext(ctx).
		Order("tag_name").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	sets := make(map[string][]string)
	for _, row := range rows {
		sets[row.ClubCode] = append(sets[row.ClubCode], row.TagName)
	}
	return sets, nil
}

// attachTags resolves each tag name and links it to the club inside tx.
func attachTags(tx *gorm.DB, code string, tagNames []string) error {
	for _, tagName := range tagNames {
		if err := getOrCreateTag(tx, tagName); err != nil {
			return err
		}
		link := domain.ClubTag{ClubCode: code, TagName: tagName}
		if err := tx.Create(&link).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateTag
			}
			return err
		}
	}
	return nil
}

// clubConflict decides which uniqueness constraint a commit-time duplicate
// hit: the code if it is now taken, the name otherwise.
func clubConflict(tx *gorm.DB, code string) error {
	var n int64
	if err := tx.Model(&domain.Club{}).Where("code = ?", code).Count(&n).Error; err == nil && n > 0 {
		return ErrClubCodeInUse
	}
	return ErrClubNameInUse
}

func hasDuplicateName(names []string) bool {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			return true
		}
		seen[name] = struct{}{}
	}
	return false
}
