package domain

// User is created by the seed command only; there is no public signup.
type User struct {
	Username string `json:"username" gorm:"primaryKey;size:64"`
}

func (User) TableName() string {
	return "users"
}
