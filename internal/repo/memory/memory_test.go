package memory

import (
	"testing"

	"zyro-visual/internal/entity"
	"zyro-visual/internal/repo"

	"github.com/stretchr/testify/assert"
)

func TestCreatePortfolioItem_AssignsIDAndDefaults(t *testing.T) {
	storage := NewStorage()

	created, err := storage.Portfolio.Create(&entity.PortfolioItem{
		Title:    "Montage Reel",
		VideoURL: "https://youtube.com/watch?v=abc",
		Category: "montage",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	fetched, err := storage.Portfolio.GetByID(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Montage Reel", fetched.Title)
	assert.Equal(t, created.CreatedAt, fetched.CreatedAt)
}

func TestGetByID_UnknownReturnsNilNil(t *testing.T) {
	storage := NewStorage()

	item, err := storage.Portfolio.GetByID(42)
	assert.NoError(t, err)
	assert.Nil(t, item)

	booking, err := storage.Bookings.GetByID(42)
	assert.NoError(t, err)
	assert.Nil(t, booking)
}

func TestIDs_MonotonicAndNeverReused(t *testing.T) {
	storage := NewStorage()

	first, _ := storage.Creators.Create(&entity.Creator{Name: "First"})
	second, _ := storage.Creators.Create(&entity.Creator{Name: "Second"})
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)

	deleted, err := storage.Creators.Delete(second.ID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	third, _ := storage.Creators.Create(&entity.Creator{Name: "Third"})
	assert.Equal(t, 3, third.ID)
}

func TestDelete_SecondCallReturnsFalse(t *testing.T) {
	storage := NewStorage()

	created, _ := storage.Testimonials.Create(&entity.Testimonial{Quote: "Great work", Rating: 5})

	deleted, err := storage.Testimonials.Delete(created.ID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	again, err := storage.Testimonials.Delete(created.ID)
	assert.NoError(t, err)
	assert.False(t, again)

	fetched, err := storage.Testimonials.GetByID(created.ID)
	assert.NoError(t, err)
	assert.Nil(t, fetched)
}

func TestUpdate_PartialPatchLeavesOtherFields(t *testing.T) {
	storage := NewStorage()

	created, _ := storage.Portfolio.Create(&entity.PortfolioItem{
		Title:       "Original Title",
		Description: "Original description",
		VideoURL:    "https://youtube.com/watch?v=abc",
		Category:    "montage",
		Featured:    true,
	})

	newTitle := "Updated Title"
	updated, err := storage.Portfolio.Update(created.ID, repo.PortfolioPatch{Title: &newTitle})

	assert.NoError(t, err)
	assert.Equal(t, "Updated Title", updated.Title)
	assert.Equal(t, "Original description", updated.Description)
	assert.Equal(t, "montage", updated.Category)
	assert.True(t, updated.Featured)
}

func TestUpdate_UnknownIDReturnsNilWithoutMutation(t *testing.T) {
	storage := NewStorage()

	created, _ := storage.Creators.Create(&entity.Creator{Name: "Keep Me"})

	name := "Changed"
	updated, err := storage.Creators.Update(999, repo.CreatorPatch{Name: &name})
	assert.NoError(t, err)
	assert.Nil(t, updated)

	fetched, _ := storage.Creators.GetByID(created.ID)
	assert.Equal(t, "Keep Me", fetched.Name)
}

func TestUpdate_FalseValuesApply(t *testing.T) {
	storage := NewStorage()

	created, _ := storage.VideoContent.Create(&entity.VideoContent{
		Section:  entity.SectionHero,
		Title:    "Showreel",
		VideoURL: "https://youtube.com/watch?v=reel",
		Active:   true,
	})

	active := false
	updated, err := storage.VideoContent.Update(created.ID, repo.VideoContentPatch{Active: &active})

	assert.NoError(t, err)
	assert.False(t, updated.Active)
	assert.Equal(t, "Showreel", updated.Title)
}

func TestCreateBooking_DefaultsToPending(t *testing.T) {
	storage := NewStorage()

	created, err := storage.Bookings.Create(&entity.Booking{
		Name:           "Alex",
		Email:          "alex@example.com",
		Channel:        "AlexPlays",
		ServiceType:    "montage",
		ProjectDetails: "10 minute ranked montage",
		BudgetRange:    "$200-$500",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.BookingPending, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestUpdateBookingStatus(t *testing.T) {
	storage := NewStorage()

	created, _ := storage.Bookings.Create(&entity.Booking{Name: "Alex", Email: "alex@example.com"})

	updated, err := storage.Bookings.UpdateStatus(created.ID, entity.BookingApproved)
	assert.NoError(t, err)
	assert.Equal(t, entity.BookingApproved, updated.Status)

	missing, err := storage.Bookings.UpdateStatus(999, entity.BookingRejected)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestList_ReturnsItemsInCreationOrder(t *testing.T) {
	storage := NewStorage()

	for _, title := range []string{"One", "Two", "Three"} {
		_, err := storage.Portfolio.Create(&entity.PortfolioItem{Title: title})
		assert.NoError(t, err)
	}

	items, err := storage.Portfolio.List()
	assert.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, "One", items[0].Title)
	assert.Equal(t, "Two", items[1].Title)
	assert.Equal(t, "Three", items[2].Title)
}

func TestTestimonial_OrphanedCreatorIDSurvives(t *testing.T) {
	storage := NewStorage()

	creator, _ := storage.Creators.Create(&entity.Creator{Name: "PixelPulse"})
	testimonial, _ := storage.Testimonials.Create(&entity.Testimonial{
		Quote:     "Doubled my watch time",
		CreatorID: &creator.ID,
		Rating:    5,
	})

	deleted, _ := storage.Creators.Delete(creator.ID)
	assert.True(t, deleted)

	fetched, err := storage.Testimonials.GetByID(testimonial.ID)
	assert.NoError(t, err)
	assert.NotNil(t, fetched.CreatorID)
	assert.Equal(t, creator.ID, *fetched.CreatorID)

	// The referenced creator is simply gone; the lookup misses.
	gone, err := storage.Creators.GetByID(*fetched.CreatorID)
	assert.NoError(t, err)
	assert.Nil(t, gone)
}

func TestReturnedRecords_AreCopies(t *testing.T) {
	storage := NewStorage()

	created, _ := storage.Portfolio.Create(&entity.PortfolioItem{Title: "Immutable"})
	created.Title = "Mutated"

	fetched, _ := storage.Portfolio.GetByID(created.ID)
	assert.Equal(t, "Immutable", fetched.Title)
}

func TestUsers_GetByUsername(t *testing.T) {
	storage := NewStorage()

	created, err := storage.Users.Create(&entity.User{
		Username: "shakti",
		Password: "shivit721",
		IsAdmin:  true,
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	found, err := storage.Users.GetByUsername("shakti")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.True(t, found.IsAdmin)

	missing, err := storage.Users.GetByUsername("nobody")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}
