package entity

import "time"

type PortfolioItem struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	VideoURL     string    `json:"videoUrl"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	Category     string    `json:"category"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"createdAt"`
}
