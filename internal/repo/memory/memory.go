// Package memory is the map-backed reference implementation of the storage
// contracts. It is the default backend for tests and the fallback for local
// development without a database.
package memory

import (
	"sort"
	"sync"
	"time"

	"zyro-visual/internal/entity"
	"zyro-visual/internal/repo"
)

// Store owns all entity maps. Ids are assigned from per-entity monotonic
// counters and never reused after deletion.
type Store struct {
	mu sync.RWMutex

	users        map[int]*entity.User
	bookings     map[int]*entity.Booking
	portfolio    map[int]*entity.PortfolioItem
	creators     map[int]*entity.Creator
	testimonials map[int]*entity.Testimonial
	videoContent map[int]*entity.VideoContent

	nextUserID         int
	nextBookingID      int
	nextPortfolioID    int
	nextCreatorID      int
	nextTestimonialID  int
	nextVideoContentID int
}

func NewStore() *Store {
	return &Store{
		users:        make(map[int]*entity.User),
		bookings:     make(map[int]*entity.Booking),
		portfolio:    make(map[int]*entity.PortfolioItem),
		creators:     make(map[int]*entity.Creator),
		testimonials: make(map[int]*entity.Testimonial),
		videoContent: make(map[int]*entity.VideoContent),

		nextUserID:         1,
		nextBookingID:      1,
		nextPortfolioID:    1,
		nextCreatorID:      1,
		nextTestimonialID:  1,
		nextVideoContentID: 1,
	}
}

// NewStorage wraps a fresh Store in the repo.Storage bundle.
func NewStorage() *repo.Storage {
	s := NewStore()
	return &repo.Storage{
		Users:        &userRepository{s},
		Bookings:     &bookingRepository{s},
		Portfolio:    &portfolioRepository{s},
		Creators:     &creatorRepository{s},
		Testimonials: &testimonialRepository{s},
		VideoContent: &videoContentRepository{s},
	}
}

// USERS

type userRepository struct{ s *Store }

func (r *userRepository) GetByID(id int) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *userRepository) GetByUsername(username string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, user := range r.s.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *userRepository) Create(user *entity.User) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *user
	stored.ID = r.s.nextUserID
	r.s.nextUserID++
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	r.s.users[stored.ID] = &stored

	copied := stored
	return &copied, nil
}

// BOOKINGS

type bookingRepository struct{ s *Store }

func (r *bookingRepository) List() ([]*entity.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	bookings := make([]*entity.Booking, 0, len(r.s.bookings))
	for _, b := range r.s.bookings {
		copied := *b
		bookings = append(bookings, &copied)
	}
	sortByID(bookings, func(b *entity.Booking) int { return b.ID })
	return bookings, nil
}

func (r *bookingRepository) GetByID(id int) (*entity.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	booking, ok := r.s.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *booking
	return &copied, nil
}

func (r *bookingRepository) Create(booking *entity.Booking) (*entity.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *booking
	stored.ID = r.s.nextBookingID
	r.s.nextBookingID++
	if stored.Status == "" {
		stored.Status = entity.BookingPending
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	r.s.bookings[stored.ID] = &stored

	copied := stored
	return &copied, nil
}

func (r *bookingRepository) UpdateStatus(id int, status entity.BookingStatus) (*entity.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	booking, ok := r.s.bookings[id]
	if !ok {
		return nil, nil
	}
	booking.Status = status

	copied := *booking
	return &copied, nil
}

// PORTFOLIO

type portfolioRepository struct{ s *Store }

func (r *portfolioRepository) List() ([]*entity.PortfolioItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	items := make([]*entity.PortfolioItem, 0, len(r.s.portfolio))
	for _, item := range r.s.portfolio {
		copied := *item
		items = append(items, &copied)
	}
	sortByID(items, func(i *entity.PortfolioItem) int { return i.ID })
	return items, nil
}

func (r *portfolioRepository) GetByID(id int) (*entity.PortfolioItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	item, ok := r.s.portfolio[id]
	if !ok {
		return nil, nil
	}
	copied := *item
	return &copied, nil
}

func (r *portfolioRepository) Create(item *entity.PortfolioItem) (*entity.PortfolioItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *item
	stored.ID = r.s.nextPortfolioID
	r.s.nextPortfolioID++
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	r.s.portfolio[stored.ID] = &stored

	copied := stored
	return &copied, nil
}

func (r *portfolioRepository) Update(id int, patch repo.PortfolioPatch) (*entity.PortfolioItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	item, ok := r.s.portfolio[id]
	if !ok {
		return nil, nil
	}
	if patch.Title != nil {
		item.Title = *patch.Title
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.VideoURL != nil {
		item.VideoURL = *patch.VideoURL
	}
	if patch.ThumbnailURL != nil {
		item.ThumbnailURL = *patch.ThumbnailURL
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Featured != nil {
		item.Featured = *patch.Featured
	}

	copied := *item
	return &copied, nil
}

func (r *portfolioRepository) Delete(id int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.portfolio[id]; !ok {
		return false, nil
	}
	delete(r.s.portfolio, id)
	return true, nil
}

// CREATORS

type creatorRepository struct{ s *Store }

func (r *creatorRepository) List() ([]*entity.Creator, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	creators := make([]*entity.Creator, 0, len(r.s.creators))
	for _, c := range r.s.creators {
		copied := *c
		creators = append(creators, &copied)
	}
	sortByID(creators, func(c *entity.Creator) int { return c.ID })
	return creators, nil
}

func (r *creatorRepository) GetByID(id int) (*entity.Creator, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	creator, ok := r.s.creators[id]
	if !ok {
		return nil, nil
	}
	copied := *creator
	return &copied, nil
}

func (r *creatorRepository) Create(creator *entity.Creator) (*entity.Creator, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *creator
	stored.ID = r.s.nextCreatorID
	r.s.nextCreatorID++
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	r.s.creators[stored.ID] = &stored

	copied := stored
	return &copied, nil
}

func (r *creatorRepository) Update(id int, patch repo.CreatorPatch) (*entity.Creator, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	creator, ok := r.s.creators[id]
	if !ok {
		return nil, nil
	}
	if patch.Name != nil {
		creator.Name = *patch.Name
	}
	if patch.Subscribers != nil {
		creator.Subscribers = *patch.Subscribers
	}
	if patch.Testimonial != nil {
		creator.Testimonial = patch.Testimonial
	}
	if patch.AvatarURL != nil {
		creator.AvatarURL = *patch.AvatarURL
	}
	if patch.Featured != nil {
		creator.Featured = *patch.Featured
	}

	copied := *creator
	return &copied, nil
}

func (r *creatorRepository) Delete(id int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.creators[id]; !ok {
		return false, nil
	}
	delete(r.s.creators, id)
	return true, nil
}

// TESTIMONIALS

type testimonialRepository struct{ s *Store }

func (r *testimonialRepository) List() ([]*entity.Testimonial, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	testimonials := make([]*entity.Testimonial, 0, len(r.s.testimonials))
	for _, t := range r.s.testimonials {
		copied := *t
		testimonials = append(testimonials, &copied)
	}
	sortByID(testimonials, func(t *entity.Testimonial) int { return t.ID })
	return testimonials, nil
}

func (r *testimonialRepository) GetByID(id int) (*entity.Testimonial, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	testimonial, ok := r.s.testimonials[id]
	if !ok {
		return nil, nil
	}
	copied := *testimonial
	return &copied, nil
}

func (r *testimonialRepository) Create(testimonial *entity.Testimonial) (*entity.Testimonial, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *testimonial
	stored.ID = r.s.nextTestimonialID
	r.s.nextTestimonialID++
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	r.s.testimonials[stored.ID] = &stored

	copied := stored
	return &copied, nil
}

func (r *testimonialRepository) Update(id int, patch repo.TestimonialPatch) (*entity.Testimonial, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	testimonial, ok := r.s.testimonials[id]
	if !ok {
		return nil, nil
	}
	if patch.Quote != nil {
		testimonial.Quote = *patch.Quote
	}
	if patch.CreatorID != nil {
		testimonial.CreatorID = patch.CreatorID
	}
	if patch.Rating != nil {
		testimonial.Rating = *patch.Rating
	}
	if patch.Featured != nil {
		testimonial.Featured = *patch.Featured
	}

	copied := *testimonial
	return &copied, nil
}

func (r *testimonialRepository) Delete(id int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.testimonials[id]; !ok {
		return false, nil
	}
	delete(r.s.testimonials, id)
	return true, nil
}

// VIDEO CONTENT

type videoContentRepository struct{ s *Store }

func (r *videoContentRepository) List() ([]*entity.VideoContent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	contents := make([]*entity.VideoContent, 0, len(r.s.videoContent))
	for _, v := range r.s.videoContent {
		copied := *v
		contents = append(contents, &copied)
	}
	sortByID(contents, func(v *entity.VideoContent) int { return v.ID })
	return contents, nil
}

func (r *videoContentRepository) GetByID(id int) (*entity.VideoContent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	content, ok := r.s.videoContent[id]
	if !ok {
		return nil, nil
	}
	copied := *content
	return &copied, nil
}

func (r *videoContentRepository) Create(content *entity.VideoContent) (*entity.VideoContent, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *content
	stored.ID = r.s.nextVideoContentID
	r.s.nextVideoContentID++
	now := time.Now().UTC()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now
	r.s.videoContent[stored.ID] = &stored

	copied := stored
	return &copied, nil
}

func (r *videoContentRepository) Update(id int, patch repo.VideoContentPatch) (*entity.VideoContent, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	content, ok := r.s.videoContent[id]
	if !ok {
		return nil, nil
	}
	if patch.Section != nil {
		content.Section = *patch.Section
	}
	if patch.Title != nil {
		content.Title = *patch.Title
	}
	if patch.Description != nil {
		content.Description = *patch.Description
	}
	if patch.VideoURL != nil {
		content.VideoURL = *patch.VideoURL
	}
	if patch.BeforeVideoURL != nil {
		content.BeforeVideoURL = *patch.BeforeVideoURL
	}
	if patch.AfterVideoURL != nil {
		content.AfterVideoURL = *patch.AfterVideoURL
	}
	if patch.ThumbnailURL != nil {
		content.ThumbnailURL = *patch.ThumbnailURL
	}
	if patch.Active != nil {
		content.Active = *patch.Active
	}
	content.UpdatedAt = time.Now().UTC()

	copied := *content
	return &copied, nil
}

func (r *videoContentRepository) Delete(id int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.videoContent[id]; !ok {
		return false, nil
	}
	delete(r.s.videoContent, id)
	return true, nil
}

// sortByID restores insertion order: ids are monotonic and never reused.
func sortByID[T any](items []T, id func(T) int) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}
