package service

import (
	"context"
	"fmt"

	"residence-portal-backend/internal/domain"
	"residence-portal-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
	fmEmail   string
	fmName    string
}

// NewEmailService builds the SendGrid-backed notification sender. fmEmail is
// the facilities desk inbox that receives resident-initiated events.
func NewEmailService(apiKey, fromEmail, fromName, fmEmail, fmName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		fmEmail:   fmEmail,
		fmName:    fmName,
	}
}

func (s *emailService) send(to, toName, subject, body string) error {
	if s.apiKey == "" || to == "" {
		// Email is optional in dev; skip silently when unconfigured.
		return nil
	}
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	logger.Debug("Email sent", "to", to, "subject", subject)
	return nil
}

func (s *emailService) SendMoveRequestSubmitted(ctx context.Context, req *domain.MoveRequest) error {
	body := fmt.Sprintf("Hello %s,\n\n%s requested a %s for unit %s on %s (%s).\n\nPlease review the request in the facilities dashboard.",
		s.fmName, req.ResidentName, req.Type, req.UnitNumber, req.MoveDate, req.TimeWindow)
	return s.send(s.fmEmail, s.fmName, fmt.Sprintf("New %s request - unit %s", req.Type, req.UnitNumber), body)
}

func (s *emailService) SendDepositInstructions(ctx context.Context, req *domain.MoveRequest) error {
	var detail string
	if req.Deposit.Method == domain.PaymentMethodBank {
		detail = "Transfer details: " + req.Deposit.BankDetails
	} else {
		detail = "Cash appointment: " + req.Deposit.CashAppointmentDate
	}
	body := fmt.Sprintf("Hello %s,\n\nYour %s request was approved. A deposit of %s is due via %s.\n%s",
		req.ResidentName, req.Type, formatCents(req.Deposit.AmountCents), req.Deposit.Method, detail)
	return s.send(req.ContactEmail, req.ResidentName, "Move request approved - deposit due", body)
}

func (s *emailService) SendPaymentClaimed(ctx context.Context, req *domain.MoveRequest) error {
	body := fmt.Sprintf("Hello %s,\n\n%s (unit %s) reported the deposit as paid on %s. Please verify the payment.",
		s.fmName, req.ResidentName, req.UnitNumber, req.Deposit.PaidDate)
	return s.send(s.fmEmail, s.fmName, fmt.Sprintf("Deposit payment reported - unit %s", req.UnitNumber), body)
}

func (s *emailService) SendPaymentVerified(ctx context.Context, req *domain.MoveRequest) error {
	body := fmt.Sprintf("Hello %s,\n\nYour deposit of %s has been verified. Please declare your moving insurance in the portal to complete the approval.",
		req.ResidentName, formatCents(req.Deposit.AmountCents))
	return s.send(req.ContactEmail, req.ResidentName, "Deposit verified", body)
}

func (s *emailService) SendMoveRequestRejected(ctx context.Context, req *domain.MoveRequest) error {
	body := fmt.Sprintf("Hello %s,\n\nYour %s request for unit %s was rejected.\n\nReason: %s",
		req.ResidentName, req.Type, req.UnitNumber, req.RejectionReason)
	return s.send(req.ContactEmail, req.ResidentName, "Move request rejected", body)
}

func (s *emailService) SendDepositReminder(ctx context.Context, req *domain.MoveRequest) error {
	body := fmt.Sprintf("Hello %s,\n\nA deposit of %s for your %s request is still outstanding. Please complete the payment so your move can proceed.",
		req.ResidentName, formatCents(req.Deposit.AmountCents), req.Type)
	return s.send(req.ContactEmail, req.ResidentName, "Reminder: move deposit outstanding", body)
}

func (s *emailService) SendCashAppointmentReminder(ctx context.Context, req *domain.MoveRequest) error {
	body := fmt.Sprintf("Hello %s,\n\nReminder: a cash deposit appointment for unit %s is scheduled on %s (amount %s).",
		s.fmName, req.UnitNumber, req.Deposit.CashAppointmentDate, formatCents(req.Deposit.AmountCents))
	return s.send(s.fmEmail, s.fmName, fmt.Sprintf("Cash appointment tomorrow - unit %s", req.UnitNumber), body)
}
