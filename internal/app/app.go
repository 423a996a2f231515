package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zyro-visual/internal/entity"
	"zyro-visual/internal/model"
	"zyro-visual/internal/repo"
	"zyro-visual/internal/repo/persistent"
	"zyro-visual/internal/session"
	"zyro-visual/pkg/cache"
	"zyro-visual/pkg/config"
	"zyro-visual/pkg/database"
	"zyro-visual/pkg/logger"
	"zyro-visual/pkg/s3"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	cfg          *config.Config
	log          *logger.Logger
	db           *gorm.DB
	redisClient  *redis.Client
	s3Client     *s3.Client
	sessionStore session.Store
	storage      *repo.Storage
	httpServer   *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}
	if err := model.AutoMigrate(db); err != nil {
		log.Error("Failed to migrate database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		// Redis is optional: sessions fall back to the in-process store
		log.Warn("Redis unavailable, using in-memory sessions: %v", err)
		redisClient = nil
	}

	var sessionStore session.Store
	if redisClient != nil {
		sessionStore = session.NewRedisStore(redisClient)
	} else {
		sessionStore = session.NewMemoryStore()
	}

	var s3Client *s3.Client
	if cfg.AWSAccessKeyID != "" {
		s3Client, err = s3.NewClient(cfg)
		if err != nil {
			log.Error("Failed to create S3 client: %v", err)
			return nil, err
		}
	} else {
		log.Warn("No AWS credentials configured, image uploads disabled")
	}

	return &App{
		cfg:          cfg,
		log:          log,
		db:           db,
		redisClient:  redisClient,
		s3Client:     s3Client,
		sessionStore: sessionStore,
		storage:      persistent.NewStorage(db),
	}, nil
}

func (a *App) Run() error {
	if err := a.seedAdmin(); err != nil {
		return err
	}

	router := NewRouter(Deps{
		Config:   a.cfg,
		Logger:   a.log,
		Storage:  a.storage,
		Sessions: a.sessionStore,
		Redis:    a.redisClient,
		S3:       a.s3Client,
	})

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: router,
	}

	go func() {
		a.log.Info("Server starting on port %s (%s)", a.cfg.ServerPort, a.cfg.Environment)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

// seedAdmin makes sure the dashboard is reachable on a fresh database.
func (a *App) seedAdmin() error {
	existing, err := a.storage.Users.GetByUsername(a.cfg.AdminUsername)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	_, err = a.storage.Users.Create(&entity.User{
		Username: a.cfg.AdminUsername,
		Password: a.cfg.AdminPassword,
		IsAdmin:  true,
	})
	if err != nil {
		return err
	}
	a.log.Info("Admin user %s created", a.cfg.AdminUsername)
	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if sqlDB, err := a.db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if store, ok := a.sessionStore.(*session.MemoryStore); ok {
		store.Close()
	}

	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.log.Error("Server forced to shutdown: %v", err)
			return err
		}
	}

	a.log.Info("Server exited")
	return nil
}
