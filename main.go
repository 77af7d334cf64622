package main

import (
	"log"

	api "legox-backend/cmd/api"
	authdomain "legox-backend/internal/auth/domain"
	authRepo "legox-backend/internal/auth/repository"
	authUsecase "legox-backend/internal/auth/usecase"
	catalogdomain "legox-backend/internal/catalog/domain"
	catalogRepo "legox-backend/internal/catalog/repository"
	catalogUsecase "legox-backend/internal/catalog/usecase"
	listingdomain "legox-backend/internal/listing/domain"
	listingRepo "legox-backend/internal/listing/repository"
	listingUsecase "legox-backend/internal/listing/usecase"
	statsUsecase "legox-backend/internal/stats/usecase"
	"legox-backend/pkg/config"
	"legox-backend/pkg/database"
	"legox-backend/pkg/mailer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas (set/theme rows are seeded externally)
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.AuthToken{}, &catalogdomain.Set{}, &catalogdomain.Theme{}, &listingdomain.Listing{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	tokenRepository := authRepo.NewTokenRepository(db)
	setRepository := catalogRepo.NewSetRepository(db)
	themeRepository := catalogRepo.NewThemeRepository(db)
	listingRepository := listingRepo.NewGormListingRepository(db)

	// Mailer is optional; without credentials registration mail is skipped
	var loginMailer mailer.Mailer
	if cfg.MailgunDomain != "" && cfg.MailgunAPIKey != "" {
		loginMailer = mailer.NewMailgunClient(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailSender)
	} else {
		log.Printf("[WARN] Mailgun not configured, registration mail disabled")
	}

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, tokenRepository, loginMailer, cfg)
	catalogUsecaseInstance := catalogUsecase.NewCatalogUsecase(setRepository, themeRepository, cfg.SearchLimit)
	listingUsecaseInstance := listingUsecase.NewListingUsecase(listingRepository)
	salesUsecaseInstance := statsUsecase.NewSalesUsecase(catalogUsecaseInstance, listingRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, catalogUsecaseInstance, listingUsecaseInstance, salesUsecaseInstance, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
