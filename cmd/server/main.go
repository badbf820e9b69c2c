package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "residence-portal-backend/internal/api/http"
	"residence-portal-backend/internal/config"
	"residence-portal-backend/internal/jobs"
	"residence-portal-backend/internal/logger"
	"residence-portal-backend/internal/repository/postgres"
	"residence-portal-backend/internal/scheduler"
	"residence-portal-backend/internal/security"
	"residence-portal-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Optional .env overlay for local development
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting residence portal backend...", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TokenExpiryHours)

	emailSvc := service.NewEmailService(
		cfg.Email.APIKey,
		cfg.Email.FromEmail,
		cfg.Email.FromName,
		cfg.Email.FMEmail,
		cfg.Email.FMName,
	)

	moveSvc := service.NewMoveRequestService(
		store.MoveRequestRepository,
		store.CommentRepository,
		store.CashReceiptRepository,
		emailSvc,
	)
	commentSvc := service.NewCommentService(store.CommentRepository, store.MoveRequestRepository)
	receiptSvc := service.NewReceiptService(store.CashReceiptRepository, cfg.Portal.BuildingName)

	authHandler := httpapi.NewAuthHandler(tokenManager, cfg.Auth)
	moveHandler := httpapi.NewMoveRequestHandler(moveSvc)
	commentHandler := httpapi.NewCommentHandler(commentSvc)
	receiptHandler := httpapi.NewReceiptHandler(receiptSvc)

	router := httpapi.NewRouter(tokenManager, authHandler, moveHandler, commentHandler, receiptHandler)

	if cfg.Scheduler.Enabled {
		jobRunner := jobs.NewJobRunner(store.MoveRequestRepository, emailSvc, cfg)
		sched := scheduler.NewScheduler(jobRunner)
		sched.Start()
		defer sched.Stop()
	}

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
