package model

import "time"

type PortfolioItemModel struct {
	ID           int    `gorm:"primaryKey;autoIncrement"`
	Title        string `gorm:"not null"`
	Description  string `gorm:"type:text"`
	VideoURL     string `gorm:"type:varchar(1024);not null"`
	ThumbnailURL string `gorm:"type:varchar(1024)"`
	Category     string `gorm:"type:varchar(100);index"`
	Featured     bool   `gorm:"default:false"`
	CreatedAt    time.Time
}

func (PortfolioItemModel) TableName() string {
	return "portfolio_items"
}
