package domain

// Club is a directory entry for a student organization. The code is the
// public identifier; the name must also be unique.
type Club struct {
	Code        string `json:"code" gorm:"primaryKey;size:64"`
	Name        string `json:"name" gorm:"size:64;not null;uniqueIndex"`
	Description string `json:"description" gorm:"type:text"`
}

func (Club) TableName() string {
	return "clubs"
}
