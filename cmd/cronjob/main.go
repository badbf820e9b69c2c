package main

import (
	"database/sql"
	"flag"
	"log"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"residence-portal-backend/internal/config"
	"residence-portal-backend/internal/jobs"
	"residence-portal-backend/internal/logger"
	"residence-portal-backend/internal/repository/postgres"
	"residence-portal-backend/internal/service"
)

// Manual runner for the reminder jobs, useful when the in-process scheduler
// is disabled and reminders run from an external cron.
func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	job := flag.String("job", "all", "Job to run: deposit-reminders, cash-appointment-reminders, all")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	store := postgres.NewStore(db)
	emailSvc := service.NewEmailService(
		cfg.Email.APIKey,
		cfg.Email.FromEmail,
		cfg.Email.FromName,
		cfg.Email.FMEmail,
		cfg.Email.FMName,
	)
	runner := jobs.NewJobRunner(store.MoveRequestRepository, emailSvc, cfg)

	switch *job {
	case "deposit-reminders":
		runner.SendDepositReminders()
	case "cash-appointment-reminders":
		runner.SendCashAppointmentReminders()
	case "all":
		runner.RunAllReminderJobs()
	default:
		log.Fatalf("Unknown job: %s", *job)
	}
}
