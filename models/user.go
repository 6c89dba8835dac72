package models

// User model for authentication
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:80;uniqueIndex;not null" json:"username"`
	Password string `gorm:"size:120;not null" json:"-"`
}

func (User) TableName() string {
	return "users"
}
