package domain

// Favorite records that a user bookmarked a club. Each row is a pure
// association; the composite primary key rejects a duplicate (club, user)
// pair at commit time.
type Favorite struct {
	ClubCode string `json:"club_code" gorm:"primaryKey;size:64"`
	Username string `json:"username" gorm:"primaryKey;size:64;column:user_username"`
}

func (Favorite) TableName() string {
	return "favorites"
}
