package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	_ "github.com/Raffi85/NetDash-Website/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/Raffi85/NetDash-Website/internal/cache"
	"github.com/Raffi85/NetDash-Website/internal/config"
	"github.com/Raffi85/NetDash-Website/internal/db"
	"github.com/Raffi85/NetDash-Website/internal/handler"
	"github.com/Raffi85/NetDash-Website/internal/logger"
	"github.com/Raffi85/NetDash-Website/internal/mail"
	"github.com/Raffi85/NetDash-Website/internal/repository"
	"github.com/Raffi85/NetDash-Website/internal/router"
	"github.com/Raffi85/NetDash-Website/internal/service"
	"github.com/Raffi85/NetDash-Website/internal/session"
)

// @title NetDash API
// @version 1.0
// @description Cybersecurity dashboard platform API with cookie sessions, subscription plans, reviews and demo access.
// @host localhost:5000
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	log := logger.New()
	slog.SetDefault(log)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		slog.Error("database init", "error", err)
		os.Exit(1)
	}

	if err := db.Migrate(gormDB, db.Migrations); err != nil {
		slog.Error("migrate", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})

	cacheClient := cache.New(redisClient)
	sessions := session.NewManager(session.NewRedisStore(redisClient))

	mailer := mail.NewSMTPDispatcher(mail.Settings{
		Server:   cfg.SMTPServer,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	})

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	tokenRepo := repository.NewResetTokenRepository(gormDB)
	planRepo := repository.NewPlanRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)
	contactRepo := repository.NewContactRepository(gormDB)
	purchaseRepo := repository.NewPurchaseRepository(gormDB)
	demoRepo := repository.NewDemoSessionRepository(gormDB)
	emailConfigRepo := repository.NewEmailConfigRepository(gormDB)

	// SMTP settings stored by a previous admin override take precedence
	// over the environment.
	if stored, err := emailConfigRepo.Get(context.Background()); err != nil {
		slog.Warn("load stored email config", "error", err)
	} else if stored != nil {
		mailer.UpdateSettings(mail.Settings{
			Server:   stored.SMTPServer,
			Port:     stored.SMTPPort,
			Username: stored.SMTPUsername,
			Password: stored.SMTPPassword,
		})
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, sessions, mailer)
	resetService := service.NewResetService(userRepo, tokenRepo, mailer, cfg.BaseURL)
	userService := service.NewUserService(userRepo, sessions)
	planService := service.NewPlanService(planRepo, cacheClient)
	reviewService := service.NewReviewService(reviewRepo, userRepo)
	contactService := service.NewContactService(contactRepo)
	purchaseService := service.NewPurchaseService(purchaseRepo, userRepo, planRepo, mailer)
	demoService := service.NewDemoService(demoRepo)
	analyticsService := service.NewAnalyticsService(userRepo, purchaseRepo, reviewRepo, contactRepo)
	settingsService := service.NewSettingsService(emailConfigRepo, mailer)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, resetService, cfg.SecureCookie)
	userHandler := handler.NewUserHandler(userService, cfg.SecureCookie)
	planHandler := handler.NewPlanHandler(planService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	contactHandler := handler.NewContactHandler(contactService)
	purchaseHandler := handler.NewPurchaseHandler(purchaseService)
	demoHandler := handler.NewDemoHandler(demoService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	settingsHandler := handler.NewSettingsHandler(settingsService)

	// Register routes
	router.Register(
		e,
		cfg,
		sessions,
		userRepo,
		authHandler,
		userHandler,
		planHandler,
		reviewHandler,
		contactHandler,
		purchaseHandler,
		demoHandler,
		analyticsHandler,
		settingsHandler,
	)

	addr := ":" + cfg.ServerPort
	slog.Info("server starting", "addr", addr)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		slog.Error("server start", "error", err)
		os.Exit(1)
	}
}
