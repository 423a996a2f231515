package model

import "time"

type VideoContentModel struct {
	ID             int    `gorm:"primaryKey;autoIncrement"`
	Section        string `gorm:"type:varchar(20);not null;index"`
	Title          string `gorm:"not null"`
	Description    string `gorm:"type:text"`
	VideoURL       string `gorm:"type:varchar(1024)"`
	BeforeVideoURL string `gorm:"type:varchar(1024)"`
	AfterVideoURL  string `gorm:"type:varchar(1024)"`
	ThumbnailURL   string `gorm:"type:varchar(1024)"`
	Active         bool   `gorm:"default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (VideoContentModel) TableName() string {
	return "video_content"
}
