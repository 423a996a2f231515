package model

import "time"

type CreatorModel struct {
	ID          int     `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"not null"`
	Subscribers string  `gorm:"type:varchar(50)"`
	Testimonial *string `gorm:"type:text"`
	AvatarURL   string  `gorm:"type:varchar(1024)"`
	Featured    bool    `gorm:"default:false"`
	CreatedAt   time.Time
}

func (CreatorModel) TableName() string {
	return "creators"
}
