package entity

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingApproved  BookingStatus = "approved"
	BookingCompleted BookingStatus = "completed"
	BookingRejected  BookingStatus = "rejected"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a project request submitted through the public booking form.
// Status moves freely between the five values; bookings are never deleted.
type Booking struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	Channel        string        `json:"channel"`
	ServiceType    string        `json:"serviceType"`
	ProjectDetails string        `json:"projectDetails"`
	BudgetRange    string        `json:"budgetRange"`
	Status         BookingStatus `json:"status"`
	CreatedAt      time.Time     `json:"createdAt"`
}
