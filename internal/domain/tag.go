package domain

// Tag is a reusable label attachable to many clubs. Tags are created on
// first reference and never mutated or deleted.
type Tag struct {
	Name string `json:"name" gorm:"primaryKey;size:64"`
}

func (Tag) TableName() string {
	return "tags"
}

// ClubTag records that a club carries a tag. The composite primary key
// keeps a (club, tag) pair from being stored twice.
type ClubTag struct {
	ClubCode string `gorm:"primaryKey;size:64"`
	TagName  string `gorm:"primaryKey;size:64"`
}

func (ClubTag) TableName() string {
	return "club_tags"
}
