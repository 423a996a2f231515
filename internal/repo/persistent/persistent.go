// Package persistent implements the storage contracts on GORM. Record-not-found
// is translated to the absent-value result; every other error propagates to the
// caller as a storage failure.
package persistent

import (
	"errors"

	"zyro-visual/internal/repo"

	"gorm.io/gorm"
)

// NewStorage builds the GORM-backed repository bundle.
func NewStorage(db *gorm.DB) *repo.Storage {
	return &repo.Storage{
		Users:        &userRepository{db: db},
		Bookings:     &bookingRepository{db: db},
		Portfolio:    &portfolioRepository{db: db},
		Creators:     &creatorRepository{db: db},
		Testimonials: &testimonialRepository{db: db},
		VideoContent: &videoContentRepository{db: db},
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
