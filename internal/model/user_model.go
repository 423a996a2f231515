package model

import "time"

type UserModel struct {
	ID        int       `gorm:"primaryKey;autoIncrement"`
	Username  string    `gorm:"uniqueIndex;not null"`
	Password  string    `gorm:"not null"`
	IsAdmin   bool      `gorm:"default:false"`
	CreatedAt time.Time
}

func (UserModel) TableName() string {
	return "users"
}
