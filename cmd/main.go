package main

import (
	"os"
	"os/signal"
	"syscall"

	configs "github.com/findme-ke/findme-api/config"
	"github.com/findme-ke/findme-api/internal/constants"
	"github.com/findme-ke/findme-api/internal/handler"
	"github.com/findme-ke/findme-api/internal/middleware"
	"github.com/findme-ke/findme-api/internal/repository"
	"github.com/findme-ke/findme-api/internal/router"
	"github.com/findme-ke/findme-api/internal/service"
	"github.com/findme-ke/findme-api/pkg/database"
	"github.com/findme-ke/findme-api/pkg/logger"
	"github.com/findme-ke/findme-api/pkg/objectstore"
	"go.uber.org/zap"
)

func main() {
	config, err := configs.LoadConfig()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	// Initialize Zap logger
	if err := logger.InitLogger(config.App.Environment); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	logger.GetLogger().Info("Application starting",
		zap.String("app_name", config.App.Name),
		zap.String("environment", config.App.Environment),
		zap.String("version", constants.AppVersion),
	)

	db, err := database.NewPostgresDB(config.Database)
	if err != nil {
		logger.GetLogger().Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	// Run auto migrations
	if err := database.AutoMigrate(db); err != nil {
		logger.GetLogger().Fatal("Failed to run database migrations", zap.Error(err))
	}
	logger.GetLogger().Info("Database migrated successfully")

	// Seed initial data
	if config.App.SeedData {
		if err := database.Seed(db); err != nil {
			logger.GetLogger().Error("Failed to seed database", zap.Error(err))
			// Don't fail - seed data may already exist
		} else {
			logger.GetLogger().Info("Database seeded successfully")
		}
	}

	// Object store for report photos (optional)
	photoStore, err := objectstore.NewPhotoStore(config.S3)
	if err != nil {
		logger.GetLogger().Fatal("Failed to initialize object store", zap.Error(err))
	}
	logger.GetLogger().Info("Object store initialized",
		zap.Bool("enabled", photoStore != nil),
	)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	personRepo := repository.NewMissingPersonRepository(db)

	// Services
	jwtService := service.NewJWTService(config.JWT.Secret, config.JWT.ExpirationTime)
	userService := service.NewUserService(userRepo, jwtService)
	personService := service.NewMissingPersonService(personRepo)
	searchService := service.NewSearchService(personRepo)
	photoService := service.NewPhotoService(photoStore)

	// Handlers
	authHandler := handler.NewAuthHandler(userService)
	personHandler := handler.NewMissingPersonHandler(personService, photoService)
	searchHandler := handler.NewSearchHandler(searchService)
	healthHandler := handler.NewHealthHandler(db)

	// Initialize middleware
	jwtMiddleware := middleware.NewJWTMiddleware(jwtService)

	r := router.NewRouter(
		authHandler,
		personHandler,
		searchHandler,
		healthHandler,

		jwtMiddleware,
		config,
	).SetupRoutes()

	go func() {
		logger.GetLogger().Info("Server starting",
			zap.String("port", config.App.Port),
			zap.String("host", "0.0.0.0"),
		)
		if err := r.Run(":" + config.App.Port); err != nil {
			logger.GetLogger().Fatal("Failed to start server",
				zap.Error(err),
				zap.String("port", config.App.Port),
			)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.GetLogger().Info("Shutting down server...")
}
