package app

import (
	"time"

	controller "zyro-visual/internal/controller/http"
	"zyro-visual/internal/repo"
	"zyro-visual/internal/session"
	"zyro-visual/internal/usecase"
	"zyro-visual/pkg/config"
	"zyro-visual/pkg/logger"
	"zyro-visual/pkg/middleware"
	"zyro-visual/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Deps is the single injection point: swap Storage or Sessions and every
// route follows. Redis and S3 are optional.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	Storage  *repo.Storage
	Sessions session.Store
	Redis    *redis.Client
	S3       *s3.Client
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(d.Logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     d.Config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.Sessions(d.Sessions, d.Config.SessionCookieName, d.Logger))

	authUseCase := usecase.NewAuthUseCase(d.Storage.Users, d.Logger)
	bookingUseCase := usecase.NewBookingUseCase(d.Storage.Bookings, d.Logger)
	portfolioUseCase := usecase.NewPortfolioUseCase(d.Storage.Portfolio, d.Logger)
	creatorUseCase := usecase.NewCreatorUseCase(d.Storage.Creators, d.Logger)
	testimonialUseCase := usecase.NewTestimonialUseCase(d.Storage.Testimonials, d.Logger)
	videoUseCase := usecase.NewVideoContentUseCase(d.Storage.VideoContent, d.Logger)

	authHandler := controller.NewAuthHandler(
		authUseCase, d.Sessions, d.Config.SessionCookieName, d.Config.IsProduction(), d.Logger)
	bookingHandler := controller.NewBookingHandler(bookingUseCase, d.Logger)
	portfolioHandler := controller.NewPortfolioHandler(portfolioUseCase, d.Logger)
	creatorHandler := controller.NewCreatorHandler(creatorUseCase, d.Logger)
	testimonialHandler := controller.NewTestimonialHandler(testimonialUseCase, d.Logger)
	videoHandler := controller.NewVideoContentHandler(videoUseCase, d.Logger)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authHandler.Me)
			auth.POST("/register", middleware.RequireAdmin(), authHandler.Register)
		}

		bookings := api.Group("/bookings")
		{
			createBooking := []gin.HandlerFunc{bookingHandler.CreateBooking}
			if d.Redis != nil {
				createBooking = []gin.HandlerFunc{
					middleware.RateLimit(d.Redis, d.Config.BookingRateLimit, time.Minute),
					bookingHandler.CreateBooking,
				}
			}
			bookings.POST("", createBooking...)
			bookings.GET("", middleware.RequireAuth(), bookingHandler.ListBookings)
			bookings.GET("/:id", middleware.RequireAuth(), bookingHandler.GetBooking)
			bookings.PATCH("/:id/status", middleware.RequireAuth(), bookingHandler.UpdateBookingStatus)
		}

		portfolio := api.Group("/portfolio")
		{
			portfolio.GET("", portfolioHandler.ListPortfolio)
			portfolio.GET("/:id", portfolioHandler.GetPortfolioItem)
			portfolio.POST("", middleware.RequireAuth(), portfolioHandler.CreatePortfolioItem)
			portfolio.PATCH("/:id", middleware.RequireAuth(), portfolioHandler.UpdatePortfolioItem)
			portfolio.DELETE("/:id", middleware.RequireAuth(), portfolioHandler.DeletePortfolioItem)
		}

		creators := api.Group("/creators")
		{
			creators.GET("", creatorHandler.ListCreators)
			creators.GET("/:id", creatorHandler.GetCreator)
			creators.POST("", middleware.RequireAuth(), creatorHandler.CreateCreator)
			creators.PATCH("/:id", middleware.RequireAuth(), creatorHandler.UpdateCreator)
			creators.DELETE("/:id", middleware.RequireAuth(), creatorHandler.DeleteCreator)
		}

		testimonials := api.Group("/testimonials")
		{
			testimonials.GET("", testimonialHandler.ListTestimonials)
			testimonials.GET("/:id", testimonialHandler.GetTestimonial)
			testimonials.POST("", middleware.RequireAuth(), testimonialHandler.CreateTestimonial)
			testimonials.PATCH("/:id", middleware.RequireAuth(), testimonialHandler.UpdateTestimonial)
			testimonials.DELETE("/:id", middleware.RequireAuth(), testimonialHandler.DeleteTestimonial)
		}

		videoContent := api.Group("/video-content")
		{
			videoContent.GET("", videoHandler.ListVideoContent)
			videoContent.GET("/:id", videoHandler.GetVideoContent)
			videoContent.POST("", middleware.RequireAuth(), videoHandler.CreateVideoContent)
			videoContent.PATCH("/:id", middleware.RequireAuth(), videoHandler.UpdateVideoContent)
			videoContent.DELETE("/:id", middleware.RequireAuth(), videoHandler.DeleteVideoContent)
		}

		if d.S3 != nil {
			uploadUseCase := usecase.NewUploadUseCase(d.S3, d.Logger)
			uploadHandler := controller.NewUploadHandler(uploadUseCase, d.Logger)
			api.POST("/uploads", middleware.RequireAuth(), uploadHandler.UploadImage)
		}
	}

	return r
}
