package entity

import "time"

// Creator is a featured client channel shown on the landing page. Testimonial
// is nullable: not every creator left a quote.
type Creator struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Subscribers string    `json:"subscribers"`
	Testimonial *string   `json:"testimonial"`
	AvatarURL   string    `json:"avatarUrl"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
}
