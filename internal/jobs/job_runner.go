package jobs

import (
	"residence-portal-backend/internal/config"
	"residence-portal-backend/internal/logger"
	"residence-portal-backend/internal/repository"
	"residence-portal-backend/internal/service"
)

// JobRunner coordinates the scheduled reminder jobs. Jobs only send
// notifications; workflow state is never mutated outside the engine.
type JobRunner struct {
	moveRepo repository.MoveRequestRepository
	emailSvc service.EmailService
	config   *config.Config
}

func NewJobRunner(moveRepo repository.MoveRequestRepository, emailSvc service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		moveRepo: moveRepo,
		emailSvc: emailSvc,
		config:   cfg,
	}
}

// Config exposes the loaded configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllReminderJobs runs every reminder job once (for manual execution)
func (jr *JobRunner) RunAllReminderJobs() {
	jr.SendDepositReminders()
	jr.SendCashAppointmentReminders()
}
