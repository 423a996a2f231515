// Package repo declares the storage contracts the HTTP layer is written
// against. Two implementations exist: memory (reference, tests, local dev)
// and persistent (GORM over postgres/sqlite).
//
// Not-found is an absent value, not an error: lookups return (nil, nil) for an
// unknown id, and errors are reserved for the underlying persistence mechanism.
package repo

import "zyro-visual/internal/entity"

type UserRepository interface {
	GetByID(id int) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Create(user *entity.User) (*entity.User, error)
}

type BookingRepository interface {
	List() ([]*entity.Booking, error)
	GetByID(id int) (*entity.Booking, error)
	Create(booking *entity.Booking) (*entity.Booking, error)
	UpdateStatus(id int, status entity.BookingStatus) (*entity.Booking, error)
}

type PortfolioRepository interface {
	List() ([]*entity.PortfolioItem, error)
	GetByID(id int) (*entity.PortfolioItem, error)
	Create(item *entity.PortfolioItem) (*entity.PortfolioItem, error)
	Update(id int, patch PortfolioPatch) (*entity.PortfolioItem, error)
	Delete(id int) (bool, error)
}

type CreatorRepository interface {
	List() ([]*entity.Creator, error)
	GetByID(id int) (*entity.Creator, error)
	Create(creator *entity.Creator) (*entity.Creator, error)
	Update(id int, patch CreatorPatch) (*entity.Creator, error)
	Delete(id int) (bool, error)
}

type TestimonialRepository interface {
	List() ([]*entity.Testimonial, error)
	GetByID(id int) (*entity.Testimonial, error)
	Create(testimonial *entity.Testimonial) (*entity.Testimonial, error)
	Update(id int, patch TestimonialPatch) (*entity.Testimonial, error)
	Delete(id int) (bool, error)
}

type VideoContentRepository interface {
	List() ([]*entity.VideoContent, error)
	GetByID(id int) (*entity.VideoContent, error)
	Create(content *entity.VideoContent) (*entity.VideoContent, error)
	Update(id int, patch VideoContentPatch) (*entity.VideoContent, error)
	Delete(id int) (bool, error)
}

// Storage bundles the per-entity repositories so the whole backend can be
// swapped at the single injection point in app wiring.
type Storage struct {
	Users        UserRepository
	Bookings     BookingRepository
	Portfolio    PortfolioRepository
	Creators     CreatorRepository
	Testimonials TestimonialRepository
	VideoContent VideoContentRepository
}
