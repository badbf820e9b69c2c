package jobs

import (
	"context"
	"time"

	"residence-portal-backend/internal/domain"
	"residence-portal-backend/internal/logger"
)

// SendDepositReminders emails residents whose request has been sitting in
// DepositPending longer than the configured number of days.
func (jr *JobRunner) SendDepositReminders() {
	jr.runWithRecovery("SendDepositReminders", func() {
		ctx := context.Background()
		requests, err := jr.moveRepo.ListByStatus(ctx, domain.MoveStatusDepositPending)
		if err != nil {
			logger.Error("Failed to list deposit-pending requests", "error", err)
			return
		}

		afterDays := jr.config.Scheduler.DepositReminderAfterDays
		if afterDays <= 0 {
			afterDays = 3
		}
		cutoff := time.Now().UTC().AddDate(0, 0, -afterDays)

		sent := 0
		for i := range requests {
			req := &requests[i]
			updated, err := time.Parse(time.RFC3339, req.UpdatedOn)
			if err != nil || updated.After(cutoff) {
				continue
			}
			if err := jr.emailSvc.SendDepositReminder(ctx, req); err != nil {
				logger.Warn("Deposit reminder failed", "move_request_id", req.ID, "error", err)
				continue
			}
			sent++
		}
		logger.Info("Deposit reminders sent", "count", sent)
	})
}

// SendCashAppointmentReminders notifies the facilities desk about cash deposit
// appointments scheduled for tomorrow.
func (jr *JobRunner) SendCashAppointmentReminders() {
	jr.runWithRecovery("SendCashAppointmentReminders", func() {
		ctx := context.Background()
		requests, err := jr.moveRepo.ListByStatus(ctx, domain.MoveStatusDepositPending)
		if err != nil {
			logger.Error("Failed to list deposit-pending requests", "error", err)
			return
		}

		tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
		sent := 0
		for i := range requests {
			req := &requests[i]
			if req.Deposit.Method != domain.PaymentMethodCash || req.Deposit.CashAppointmentDate != tomorrow {
				continue
			}
			if err := jr.emailSvc.SendCashAppointmentReminder(ctx, req); err != nil {
				logger.Warn("Cash appointment reminder failed", "move_request_id", req.ID, "error", err)
				continue
			}
			sent++
		}
		logger.Info("Cash appointment reminders sent", "count", sent)
	})
}
