package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/jobmaroc/backend/docs"
	"github.com/jobmaroc/backend/internal/api"
	"github.com/jobmaroc/backend/internal/core/ports"
	"github.com/jobmaroc/backend/internal/core/service"
	"github.com/jobmaroc/backend/internal/infrastructure/db/postgres"
	redisinfra "github.com/jobmaroc/backend/internal/infrastructure/db/redis"
	"github.com/jobmaroc/backend/internal/infrastructure/identity"
	"github.com/jobmaroc/backend/internal/infrastructure/mail"
	"github.com/jobmaroc/backend/internal/infrastructure/queue"
	"github.com/jobmaroc/backend/internal/pkg/config"
	"github.com/jobmaroc/backend/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        JobMaroc API
// @version      1.0
// @description  Job board backend: accounts, offers, applications and notifications.
// @BasePath     /
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Stores ---
	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("schema migration failed")
	}
	if err := postgres.SeedRoles(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("role seeding failed")
	}

	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr:    cfg.Redis.Addr,
		DB:      cfg.Redis.DB,
		Timeout: cfg.Redis.Timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}

	// --- Repositories ---
	userRepo := postgres.NewUserRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	talentRepo := postgres.NewTalentRepository(db)
	managerRepo := postgres.NewManagerRepository(db)
	companyRepo := postgres.NewCompanyRepository(db)
	offerRepo := postgres.NewOfferRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)
	statsRepo := postgres.NewStatsRepository(db)
	statsCache := redisinfra.NewStatsCache(rdb, log)

	// --- External services ---
	var verifier ports.IdentityVerifier
	if cfg.GoogleClientID != "" {
		verifier, err = identity.NewGoogleVerifier(ctx, cfg.GoogleClientID)
		if err != nil {
			log.Fatal().Err(err).Msg("google verifier setup failed")
		}
	}
	mailer := mail.NewSMTPMailer(mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}, log)

	// --- Core services ---
	tokenService, err := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("token service setup failed")
	}

	notificationService := service.NewNotificationService(notificationRepo, userRepo, mailer, log)
	dispatcher := queue.NewDispatcher(cfg.NotificationWorkers, notificationService, log)
	dispatcher.Start(ctx)

	authService := service.NewAuthService(userRepo, roleRepo, talentRepo, tokenService, verifier, log)
	userService := service.NewUserService(userRepo, roleRepo, talentRepo, managerRepo, companyRepo, dispatcher, log)
	offerService := service.NewOfferService(offerRepo, managerRepo, userRepo, dispatcher, log)
	applicationService := service.NewApplicationService(applicationRepo, offerRepo, talentRepo, dispatcher, log)
	statsService := service.NewStatsService(statsRepo, statsCache, log)

	// --- HTTP ---
	e := api.NewRouter(api.Dependencies{
		DB:            db,
		RDB:           rdb,
		Log:           log,
		Tokens:        tokenService,
		Users:         userRepo,
		Roles:         roleRepo,
		Companies:     companyRepo,
		Auth:          authService,
		UserService:   userService,
		Offers:        offerService,
		Applications:  applicationService,
		Notifications: notificationService,
		Stats:         statsService,
		CORSOrigins:   cfg.CORSOrigins,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
