package main

import (
	"fmt"

	"zyro-visual/internal/entity"
	"zyro-visual/internal/repo"
	"zyro-visual/internal/repo/persistent"
	"zyro-visual/pkg/config"
	"zyro-visual/pkg/database"
	"zyro-visual/pkg/logger"
)

// Seeds demo landing-page content for local development.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.New(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	storage := persistent.NewStorage(db)
	if err := seed(storage, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seed(storage *repo.Storage, log *logger.Logger) error {
	existing, err := storage.Portfolio.List()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Info("Portfolio already has %d items, skipping seed", len(existing))
		return nil
	}

	portfolioItems := []*entity.PortfolioItem{
		{
			Title:       "Valorant Ace Montage",
			Description: "Fast-cut montage with custom VFX and beat sync",
			VideoURL:    "https://www.youtube.com/watch?v=demo-valorant",
			Category:    "montage",
			Featured:    true,
		},
		{
			Title:       "Stream Highlights Week 12",
			Description: "Weekly highlight compilation for a variety streamer",
			VideoURL:    "https://www.youtube.com/watch?v=demo-highlights",
			Category:    "gaming_highlights",
		},
		{
			Title:       "Indie Game Launch Trailer",
			Description: "Cinematic gameplay trailer with motion graphics",
			VideoURL:    "https://www.youtube.com/watch?v=demo-trailer",
			Category:    "trailer",
			Featured:    true,
		},
	}
	for _, item := range portfolioItems {
		if _, err := storage.Portfolio.Create(item); err != nil {
			return err
		}
		log.Info("Created portfolio item: %s", item.Title)
	}

	quote := "Editing quality doubled my watch time."
	creators := []*entity.Creator{
		{Name: "PixelPulse", Subscribers: "1.2M", Testimonial: &quote, Featured: true},
		{Name: "NovaPlays", Subscribers: "480K"},
		{Name: "GlitchRat", Subscribers: "95K"},
	}
	creatorIDs := make([]int, 0, len(creators))
	for _, creator := range creators {
		created, err := storage.Creators.Create(creator)
		if err != nil {
			return err
		}
		creatorIDs = append(creatorIDs, created.ID)
		log.Info("Created creator: %s", created.Name)
	}

	testimonials := []*entity.Testimonial{
		{
			Quote:     "Turnaround was insane. Two days for a full montage.",
			CreatorID: &creatorIDs[0],
			Rating:    5,
			Featured:  true,
		},
		{
			Quote:  "The before/after difference speaks for itself.",
			Rating: 5,
		},
		{
			Quote:     "Great communication through the whole project.",
			CreatorID: &creatorIDs[1],
			Rating:    4,
		},
	}
	for _, testimonial := range testimonials {
		if _, err := storage.Testimonials.Create(testimonial); err != nil {
			return err
		}
	}
	log.Info("Created %d testimonials", len(testimonials))

	videoContent := []*entity.VideoContent{
		{
			Section:  entity.SectionHero,
			Title:    "Showreel 2025",
			VideoURL: "https://www.youtube.com/watch?v=demo-showreel",
			Active:   true,
		},
		{
			Section:        entity.SectionBeforeAfter,
			Title:          "Raw vs Final Grade",
			BeforeVideoURL: "https://www.youtube.com/watch?v=demo-before",
			AfterVideoURL:  "https://www.youtube.com/watch?v=demo-after",
			Active:         true,
		},
	}
	for _, content := range videoContent {
		if _, err := storage.VideoContent.Create(content); err != nil {
			return err
		}
		log.Info("Created video content: %s (%s)", content.Title, content.Section)
	}

	return nil
}
