package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"residence-portal-backend/internal/domain"
	"residence-portal-backend/internal/logger"
	"residence-portal-backend/internal/metrics"
	"residence-portal-backend/internal/repository"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type moveRequestService struct {
	moveRepo    repository.MoveRequestRepository
	commentRepo repository.CommentRepository
	receiptRepo repository.CashReceiptRepository
	emailSvc    EmailService

	// One mutex per move-request id. Transitions on the same id serialize so
	// precondition checks always observe a consistent state.
	locks sync.Map
}

func NewMoveRequestService(
	moveRepo repository.MoveRequestRepository,
	commentRepo repository.CommentRepository,
	receiptRepo repository.CashReceiptRepository,
	emailSvc EmailService,
) MoveRequestService {
	return &moveRequestService{
		moveRepo:    moveRepo,
		commentRepo: commentRepo,
		receiptRepo: receiptRepo,
		emailSvc:    emailSvc,
	}
}

func (s *moveRequestService) lockFor(id string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func requireRole(actor domain.Actor, role domain.AuthorRole) error {
	if actor.Role != role {
		return fmt.Errorf("%w: operation requires role %q, got %q", domain.ErrPreconditionFailed, role, actor.Role)
	}
	return nil
}

func validDate(value string) bool {
	_, err := time.Parse(dateLayout, value)
	return err == nil
}

func formatCents(cents int32) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

func (s *moveRequestService) CreateMoveRequest(ctx context.Context, actor domain.Actor, in CreateMoveRequestInput) (*domain.MoveRequest, error) {
	if err := requireRole(actor, domain.RoleResident); err != nil {
		return nil, err
	}
	if err := validateCreateInput(in); err != nil {
		return nil, err
	}

	req := &domain.MoveRequest{
		ID:              uuid.NewString(),
		Type:            in.Type,
		ResidentName:    strings.TrimSpace(in.ResidentName),
		UnitNumber:      strings.TrimSpace(in.UnitNumber),
		ContactPhone:    strings.TrimSpace(in.ContactPhone),
		ContactEmail:    strings.TrimSpace(in.ContactEmail),
		MoveDate:        in.MoveDate,
		TimeWindow:      in.TimeWindow,
		DurationHours:   in.DurationHours,
		LoadingDock:     in.LoadingDock,
		NeedsElevator:   in.NeedsElevator,
		TrolleyCount:    in.TrolleyCount,
		AccessCardCount: in.AccessCardCount,
		CompanyType:     in.CompanyType,
		CompanyName:     in.CompanyName,
		CompanyPhone:    in.CompanyPhone,
		CompanyInsured:  in.CompanyInsured,
		Deposit:         domain.Deposit{Method: in.PaymentMethod},
		Status:          domain.MoveStatusPending,
	}

	if err := s.moveRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	_ = s.emailSvc.SendMoveRequestSubmitted(ctx, req)
	return req, nil
}

func validateCreateInput(in CreateMoveRequestInput) error {
	switch in.Type {
	case domain.MoveTypeIn, domain.MoveTypeOut:
	default:
		return fmt.Errorf("%w: move type must be %q or %q", domain.ErrValidationFailed, domain.MoveTypeIn, domain.MoveTypeOut)
	}
	if strings.TrimSpace(in.ResidentName) == "" || strings.TrimSpace(in.UnitNumber) == "" || strings.TrimSpace(in.ContactPhone) == "" {
		return fmt.Errorf("%w: resident name, unit and contact phone are required", domain.ErrValidationFailed)
	}
	if !validDate(in.MoveDate) {
		return fmt.Errorf("%w: move date must be YYYY-MM-DD", domain.ErrValidationFailed)
	}
	if in.TimeWindow == "" {
		return fmt.Errorf("%w: time window is required", domain.ErrValidationFailed)
	}
	// The resident may state a payment preference at intake; the method is
	// finalized when the FM approves with the deposit terms.
	switch in.PaymentMethod {
	case domain.PaymentMethodBank, domain.PaymentMethodCash, "":
	default:
		return fmt.Errorf("%w: payment method must be %q or %q", domain.ErrValidationFailed, domain.PaymentMethodBank, domain.PaymentMethodCash)
	}
	switch in.CompanyType {
	case domain.CompanyTypeProfessional:
		if in.CompanyName == "" || in.CompanyPhone == "" {
			return fmt.Errorf("%w: company name and phone are required for professional movers", domain.ErrValidationFailed)
		}
		// The insured question must be answered yes or no; absence is an
		// intake error, never a default.
		if in.CompanyInsured == nil {
			return fmt.Errorf("%w: the company-insured question must be answered", domain.ErrValidationFailed)
		}
	case domain.CompanyTypeSelf, domain.CompanyTypeFamily:
	default:
		return fmt.Errorf("%w: unknown moving company type %q", domain.ErrValidationFailed, in.CompanyType)
	}
	return nil
}

func (s *moveRequestService) GetMoveRequest(ctx context.Context, id string) (*domain.MoveRequest, error) {
	return s.moveRepo.GetByID(ctx, id)
}

func (s *moveRequestService) ListMoveRequests(ctx context.Context, status domain.MoveStatus, unit string, page, pageSize int32) ([]domain.MoveRequest, int32, error) {
	return s.moveRepo.List(ctx, status, unit, page, pageSize)
}

func (s *moveRequestService) UpdateSchedule(ctx context.Context, actor domain.Actor, id string, in ScheduleUpdateInput) (*domain.MoveRequest, error) {
	if err := requireRole(actor, domain.RoleResident); err != nil {
		return nil, err
	}
	if !validDate(in.MoveDate) {
		return nil, fmt.Errorf("%w: move date must be YYYY-MM-DD", domain.ErrValidationFailed)
	}

	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	req, err := s.moveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != domain.MoveStatusPending {
		return nil, fmt.Errorf("%w: schedule editable only while %s, request is %s", domain.ErrPreconditionFailed, domain.MoveStatusPending, req.Status)
	}

	req.MoveDate = in.MoveDate
	req.TimeWindow = in.TimeWindow
	req.DurationHours = in.DurationHours
	req.LoadingDock = in.LoadingDock
	req.NeedsElevator = in.NeedsElevator
	req.TrolleyCount = in.TrolleyCount
	req.AccessCardCount = in.AccessCardCount

	if err := s.moveRepo.Update(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *moveRequestService) ApproveWithDeposit(ctx context.Context, actor domain.Actor, id string, method domain.PaymentMethod, amountCents int32, bankDetails, cashDate string) error {
	if err := requireRole(actor, domain.RoleFM); err != nil {
		return err
	}
	if amountCents <= 0 {
		return fmt.Errorf("%w: deposit amount must be positive", domain.ErrValidationFailed)
	}
	var detail string
	switch method {
	case domain.PaymentMethodBank:
		if bankDetails == "" {
			return fmt.Errorf("%w: bank details are required for bank transfer", domain.ErrValidationFailed)
		}
		detail = bankDetails
	case domain.PaymentMethodCash:
		if !validDate(cashDate) {
			return fmt.Errorf("%w: cash appointment date is required for cash payment", domain.ErrValidationFailed)
		}
		detail = "appointment " + cashDate
	default:
		return fmt.Errorf("%w: payment method must be %q or %q", domain.ErrValidationFailed, domain.PaymentMethodBank, domain.PaymentMethodCash)
	}

	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	req, err := s.moveRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if req.Status != domain.MoveStatusPending {
		return fmt.Errorf("%w: approve requires status %s, request is %s", domain.ErrPreconditionFailed, domain.MoveStatusPending, req.Status)
	}

	from := req.Status
	req.Status = domain.MoveStatusDepositPending
	req.Deposit.Method = method
	req.Deposit.AmountCents = amountCents
	req.Deposit.BankDetails = bankDetails
	req.Deposit.CashAppointmentDate = cashDate

	if err := s.moveRepo.Update(ctx, req); err != nil {
		return err
	}

	s.appendTransitionComment(ctx, req.ID, domain.RoleSystem, "system",
		fmt.Sprintf("Approved. Deposit of %s due via %s (%s)", formatCents(amountCents), method, detail),
		from, req.Status)
	metrics.TransitionsTotal.WithLabelValues(string(from), string(req.Status)).Inc()

	_ = s.emailSvc.SendDepositInstructions(ctx, req)
	return nil
}

func (s *moveRequestService) Reject(ctx context.Context, actor domain.Actor, id, reason string) error {
	if err := requireRole(actor, domain.RoleFM); err != nil {
		return err
	}
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("%w: rejection reason is required", domain.ErrValidationFailed)
	}

	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	req, err := s.moveRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if req.Status != domain.MoveStatusPending {
		return fmt.Errorf("%w: reject requires status %s, request is %s", domain.ErrPreconditionFailed, domain.MoveStatusPending, req.Status)
	}

	from := req.Status
	req.Status = domain.MoveStatusRejected
	req.RejectionReason = reason
	req.CompletedDate = time.Now().UTC().Format(dateLayout)

	if err := s.moveRepo.Update(ctx, req); err != nil {
		return err
	}

	s.appendTransitionComment(ctx, req.ID, domain.RoleFM, actor.Name,
		"Rejected: "+reason, from, req.Status)
	metrics.TransitionsTotal.WithLabelValues(string(from), string(req.Status)).Inc()

	_ = s.emailSvc.SendMoveRequestRejected(ctx, req)
	return nil
}

func (s *moveRequestService) ClaimPayment(ctx context.Context, actor domain.Actor, id, paidDate, proofRef string) error {
	if err := requireRole(actor, domain.RoleResident); err != nil {
		return err
	}
	if !validDate(paidDate) {
		return fmt.Errorf("%w: paid date must be YYYY-MM-DD", domain.ErrValidationFailed)
	}

	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	req, err := s.moveRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if req.Status != domain.MoveStatusDepositPending {
		return fmt.Errorf("%w: claim requires status %s, request is %s", domain.ErrPreconditionFailed, domain.MoveStatusDepositPending, req.Status)
	}
	if req.Deposit.Method == domain.PaymentMethodBank && proofRef == "" {
		return fmt.Errorf("%w: transfer proof is required for bank payments", domain.ErrValidationFailed)
	}

	from := req.Status
	req.Status = domain.MoveStatusPaymentClaimed
	req.Deposit.PaidDate = paidDate
	req.Deposit.ProofRef = proofRef

	if err := s.moveRepo.Update(ctx, req); err != nil {
		return err
	}

	msg := fmt.Sprintf("Deposit payment reported on %s", paidDate)
	if proofRef != "" {
		msg += ", proof attached: " + proofRef
	} else {
		msg += ", no proof attached"
	}
	s.appendTransitionComment(ctx, req.ID, domain.RoleResident, actor.Name, msg, from, req.Status)
	metrics.TransitionsTotal.WithLabelValues(string(from), string(req.Status)).Inc()

	_ = s.emailSvc.SendPaymentClaimed(ctx, req)
	return nil
}

func (s *moveRequestService) VerifyPayment(ctx context.Context, actor domain.Actor, id string) error {
	if err := requireRole(actor, domain.RoleFM); err != nil {
		return err
	}

	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	req, err := s.moveRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if req.Status != domain.MoveStatusPaymentClaimed {
		return fmt.Errorf("%w: verify requires status %s, request is %s", domain.ErrPreconditionFailed, domain.MoveStatusPaymentClaimed, req.Status)
	}

	from := req.Status
	s.markDepositVerified(req, actor.Name)

	if err := s.moveRepo.Update(ctx, req); err != nil {
		return err
	}

	s.appendTransitionComment(ctx, req.ID, domain.RoleFM, actor.Name,
		"Deposit verified. Please declare your moving insurance to complete approval.",
		from, req.Status)
	metrics.TransitionsTotal.WithLabelValues(string(from), string(req.Status)).Inc()

	_ = s.emailSvc.SendPaymentVerified(ctx, req)
	return nil
}

// markDepositVerified applies the shared effect of VerifyPayment and
// RecordCashReceipt: both paths land on DepositVerified with the deposit paid.
func (s *moveRequestService) markDepositVerified(req *domain.MoveRequest, verifier string) {
	req.Status = domain.MoveStatusDepositVerified
	req.Deposit.Paid = true
	req.Deposit.VerifiedBy = verifier
	req.Deposit.VerifiedDate = time.Now().UTC().Format(dateLayout)
	if req.Deposit.PaidDate == "" {
		req.Deposit.PaidDate = req.Deposit.VerifiedDate
	}
}

func (s *moveRequestService) RecordCashReceipt(ctx context.Context, actor domain.Actor, id string, in CashReceiptInput) (*domain.CashReceipt, error) {
	if err := requireRole(actor, domain.RoleFM); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.ReceivedBy) == "" {
		return nil, fmt.Errorf("%w: received-by is required on a cash receipt", domain.ErrValidationFailed)
	}
	date := in.Date
	if date == "" {
		date = time.Now().UTC().Format(dateLayout)
	} else if !validDate(date) {
		return nil, fmt.Errorf("%w: receipt date must be YYYY-MM-DD", domain.ErrValidationFailed)
	}

	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	req, err := s.moveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != domain.MoveStatusPaymentClaimed {
		return nil, fmt.Errorf("%w: cash receipt requires status %s, request is %s", domain.ErrPreconditionFailed, domain.MoveStatusPaymentClaimed, req.Status)
	}
	if req.Deposit.Method != domain.PaymentMethodCash {
		return nil, fmt.Errorf("%w: cash receipt applies only to cash deposits", domain.ErrPreconditionFailed)
	}

	receipt := &domain.CashReceipt{
		ID:            uuid.NewString(),
		ReceiptNumber: newReceiptNumber(time.Now().UTC()),
		MoveRequestID: req.ID,
		Date:          date,
		AmountCents:   req.Deposit.AmountCents,
		PaymentMethod: domain.PaymentMethodCash,
		ReceivedBy:    in.ReceivedBy,
		Notes:         in.Notes,
		ResidentName:  req.ResidentName,
		UnitNumber:    req.UnitNumber,
	}
	from := req.Status
	s.markDepositVerified(req, in.ReceivedBy)
	req.Deposit.ReceiptID = receipt.ID

	// Receipt and status advance commit together; a failed write leaves the
	// request at PaymentClaimed with no receipt row, so the call can be retried.
	if err := s.receiptRepo.CreateForVerification(ctx, receipt, req); err != nil {
		return nil, err
	}

	s.appendTransitionComment(ctx, req.ID, domain.RoleFM, actor.Name,
		fmt.Sprintf("Cash deposit of %s received, receipt %s issued. Please declare your moving insurance.",
			formatCents(receipt.AmountCents), receipt.ReceiptNumber),
		from, req.Status)
	metrics.TransitionsTotal.WithLabelValues(string(from), string(req.Status)).Inc()

	_ = s.emailSvc.SendPaymentVerified(ctx, req)
	return receipt, nil
}

func (s *moveRequestService) SelectInsurance(ctx context.Context, actor domain.Actor, id string, hasInsurance bool) error {
	if err := requireRole(actor, domain.RoleResident); err != nil {
		return err
	}

	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	req, err := s.moveRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if req.Status != domain.MoveStatusDepositVerified {
		return fmt.Errorf("%w: insurance declaration requires status %s, request is %s", domain.ErrPreconditionFailed, domain.MoveStatusDepositVerified, req.Status)
	}

	from := req.Status
	req.Status = domain.MoveStatusFullyApproved
	req.InsuranceSelected = true
	req.HasInsurance = hasInsurance
	req.InsuranceSelectedDate = time.Now().UTC().Format(dateLayout)

	if err := s.moveRepo.Update(ctx, req); err != nil {
		return err
	}

	choice := "has moving insurance"
	if !hasInsurance {
		choice = "declared no moving insurance"
	}
	s.appendTransitionComment(ctx, req.ID, domain.RoleResident, actor.Name,
		fmt.Sprintf("Resident %s. Request fully approved.", choice), from, req.Status)
	metrics.TransitionsTotal.WithLabelValues(string(from), string(req.Status)).Inc()
	return nil
}

func (s *moveRequestService) Cancel(ctx context.Context, actor domain.Actor, id string) error {
	if err := requireRole(actor, domain.RoleResident); err != nil {
		return err
	}

	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	req, err := s.moveRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if req.Status == domain.MoveStatusInProgress || req.Status.IsTerminal() {
		return fmt.Errorf("%w: request in status %s cannot be cancelled", domain.ErrPreconditionFailed, req.Status)
	}

	from := req.Status
	req.Status = domain.MoveStatusCancelled
	req.CompletedDate = time.Now().UTC().Format(dateLayout)

	if err := s.moveRepo.Update(ctx, req); err != nil {
		return err
	}

	s.appendTransitionComment(ctx, req.ID, domain.RoleSystem, "system",
		"Request cancelled by resident.", from, req.Status)
	metrics.TransitionsTotal.WithLabelValues(string(from), string(req.Status)).Inc()
	return nil
}

// appendTransitionComment records a transition in the audit thread. The state
// change is already persisted at this point; a failed append is logged, not
// surfaced, so a notification hiccup cannot mask a completed transition.
func (s *moveRequestService) appendTransitionComment(ctx context.Context, entityID string, role domain.AuthorRole, authorName, message string, from, to domain.MoveStatus) {
	c := &domain.Comment{
		ID:           uuid.NewString(),
		EntityID:     entityID,
		EntityKind:   domain.EntityKindMoveRequest,
		AuthorRole:   role,
		AuthorName:   authorName,
		Message:      message,
		StatusChange: &domain.StatusChange{From: from, To: to},
	}
	if err := s.commentRepo.Create(ctx, c); err != nil {
		logger.Error("Failed to append transition comment", "move_request_id", entityID, "error", err)
	}
}
