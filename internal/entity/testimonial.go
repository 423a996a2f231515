package entity

import "time"

// Testimonial is a landing-page quote. CreatorID is a lookup key only: the
// referenced creator may have been deleted, and consumers must tolerate a miss.
type Testimonial struct {
	ID        int       `json:"id"`
	Quote     string    `json:"quote"`
	CreatorID *int      `json:"creatorId"`
	Rating    int       `json:"rating"`
	Featured  bool      `json:"featured"`
	CreatedAt time.Time `json:"createdAt"`
}
