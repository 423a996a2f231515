package repo

import "zyro-visual/internal/entity"

// Patch types carry partial updates: a nil field is "leave unchanged", a set
// field overwrites the whole value. Merging is shallow.

type PortfolioPatch struct {
	Title        *string
	Description  *string
	VideoURL     *string
	ThumbnailURL *string
	Category     *string
	Featured     *bool
}

type CreatorPatch struct {
	Name        *string
	Subscribers *string
	Testimonial *string
	AvatarURL   *string
	Featured    *bool
}

type TestimonialPatch struct {
	Quote     *string
	CreatorID *int
	Rating    *int
	Featured  *bool
}

type VideoContentPatch struct {
	Section        *entity.VideoSection
	Title          *string
	Description    *string
	VideoURL       *string
	BeforeVideoURL *string
	AfterVideoURL  *string
	ThumbnailURL   *string
	Active         *bool
}
