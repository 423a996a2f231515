package model

import "time"

// CreatorID is deliberately not a foreign key: testimonials survive creator
// deletion and readers tolerate the dangling reference.
type TestimonialModel struct {
	ID        int    `gorm:"primaryKey;autoIncrement"`
	Quote     string `gorm:"type:text;not null"`
	CreatorID *int   `gorm:"index"`
	Rating    int    `gorm:"not null"`
	Featured  bool   `gorm:"default:false"`
	CreatedAt time.Time
}

func (TestimonialModel) TableName() string {
	return "testimonials"
}
