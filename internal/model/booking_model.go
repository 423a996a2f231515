package model

import "time"

type BookingModel struct {
	ID             int    `gorm:"primaryKey;autoIncrement"`
	Name           string `gorm:"not null"`
	Email          string `gorm:"not null"`
	Channel        string `gorm:"not null"`
	ServiceType    string `gorm:"type:varchar(50);not null"`
	ProjectDetails string `gorm:"type:text;not null"`
	BudgetRange    string `gorm:"type:varchar(50);not null"`
	Status         string `gorm:"type:varchar(20);default:'pending';index"`
	CreatedAt      time.Time
}

func (BookingModel) TableName() string {
	return "bookings"
}
