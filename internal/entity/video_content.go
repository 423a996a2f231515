package entity

import "time"

type VideoSection string

const (
	SectionHero        VideoSection = "hero"
	SectionPortfolio   VideoSection = "portfolio"
	SectionBeforeAfter VideoSection = "before_after"
)

// VideoContent feeds a page slot. Hero and portfolio sections use VideoURL;
// the before_after section uses the BeforeVideoURL/AfterVideoURL pair.
type VideoContent struct {
	ID             int          `json:"id"`
	Section        VideoSection `json:"section"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	VideoURL       string       `json:"videoUrl"`
	BeforeVideoURL string       `json:"beforeVideoUrl"`
	AfterVideoURL  string       `json:"afterVideoUrl"`
	ThumbnailURL   string       `json:"thumbnailUrl"`
	Active         bool         `json:"active"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}
