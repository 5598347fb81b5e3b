package main

import (
	"log"
	"os"

	"motorhub/internal/config"
	"motorhub/internal/database"
	"motorhub/internal/domain"
	"motorhub/internal/middleware"
	"motorhub/internal/modules/admin"
	"motorhub/internal/modules/auth"
	"motorhub/internal/modules/booking"
	"motorhub/internal/modules/onboarding"
	"motorhub/internal/modules/review"
	"motorhub/internal/pkg/imagestore"
	"motorhub/internal/pkg/mailer"
	"motorhub/internal/pkg/token"
	"motorhub/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	workshopRepo := repository.NewWorkshopRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	identityRepo := repository.NewIdentityRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	tokens := token.New(cfg.JWTSecret, cfg.JWTAccessTTL)
	mail := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.FromEmail)
	images := imagestore.New(cfg.UploadDir)

	authService := auth.NewService(userRepo, workshopRepo, identityRepo, tokens)
	bookingService := booking.NewService(bookingRepo, userRepo, workshopRepo, cfg.StrictTransitions)
	onboardingService := onboarding.NewService(workshopRepo, identityRepo, mail, images)
	reviewService := review.NewService(reviewRepo, userRepo, workshopRepo)
	adminService := admin.NewService(userRepo, workshopRepo, statsRepo)

	authHandler := auth.NewHandler(authService)
	bookingHandler := booking.NewHandler(bookingService)
	onboardingHandler := onboarding.NewHandler(onboardingService, images)
	reviewHandler := review.NewHandler(reviewService)
	adminHandler := admin.NewHandler(adminService)

	if cfg.AppEnv == "prod" || cfg.AppEnv == "production" || cfg.AppEnv == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery(), middleware.RequestLogger(), middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	// Public surface: registration, login, workshop browsing.
	authHandler.RegisterPublicRoutes(api)
	onboardingHandler.RegisterPublicRoutes(api)
	reviewHandler.RegisterPublicRoutes(api)

	// Authenticated surface.
	protected := api.Group("")
	protected.Use(middleware.Auth(tokens))
	authHandler.RegisterProtectedRoutes(protected)
	bookingHandler.RegisterRoutes(protected)
	reviewHandler.RegisterProtectedRoutes(protected)

	workshopOnly := protected.Group("")
	workshopOnly.Use(middleware.RequireRole(domain.RoleWorkshop))
	onboardingHandler.RegisterWorkshopRoutes(workshopOnly)

	// Admin surface.
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.Auth(tokens), middleware.AdminOnly())
	adminHandler.RegisterRoutes(adminGroup)
	onboardingHandler.RegisterAdminRoutes(adminGroup)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
