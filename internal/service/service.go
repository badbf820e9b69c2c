package service

import (
	"context"

	"residence-portal-backend/internal/domain"
)

// CreateMoveRequestInput carries the intake form for a new move request.
type CreateMoveRequestInput struct {
	Type         domain.MoveType `json:"type"`
	ResidentName string          `json:"resident_name"`
	UnitNumber   string          `json:"unit_number"`
	ContactPhone string          `json:"contact_phone"`
	ContactEmail string          `json:"contact_email"`

	MoveDate        string `json:"move_date"`
	TimeWindow      string `json:"time_window"`
	DurationHours   int32  `json:"duration_hours"`
	LoadingDock     string `json:"loading_dock"`
	NeedsElevator   bool   `json:"needs_elevator"`
	TrolleyCount    int32  `json:"trolley_count"`
	AccessCardCount int32  `json:"access_card_count"`

	CompanyType    domain.CompanyType `json:"company_type"`
	CompanyName    string             `json:"company_name"`
	CompanyPhone   string             `json:"company_phone"`
	CompanyInsured *bool              `json:"company_insured"`

	PaymentMethod domain.PaymentMethod `json:"payment_method"`
}

// ScheduleUpdateInput holds the scheduling fields editable while Pending.
type ScheduleUpdateInput struct {
	MoveDate        string `json:"move_date"`
	TimeWindow      string `json:"time_window"`
	DurationHours   int32  `json:"duration_hours"`
	LoadingDock     string `json:"loading_dock"`
	NeedsElevator   bool   `json:"needs_elevator"`
	TrolleyCount    int32  `json:"trolley_count"`
	AccessCardCount int32  `json:"access_card_count"`
}

// CashReceiptInput carries the FM-entered fields of a manual payment receipt.
type CashReceiptInput struct {
	Date       string `json:"date"`
	ReceivedBy string `json:"received_by"`
	Notes      string `json:"notes"`
}

// MoveRequestService is the workflow engine. Every transition is a total
// function that fails closed: a false precondition returns an error and leaves
// both the entity and the audit thread untouched.
type MoveRequestService interface {
	CreateMoveRequest(ctx context.Context, actor domain.Actor, in CreateMoveRequestInput) (*domain.MoveRequest, error)
	GetMoveRequest(ctx context.Context, id string) (*domain.MoveRequest, error)
	ListMoveRequests(ctx context.Context, status domain.MoveStatus, unit string, page, pageSize int32) ([]domain.MoveRequest, int32, error)
	UpdateSchedule(ctx context.Context, actor domain.Actor, id string, in ScheduleUpdateInput) (*domain.MoveRequest, error)

	ApproveWithDeposit(ctx context.Context, actor domain.Actor, id string, method domain.PaymentMethod, amountCents int32, bankDetails, cashDate string) error
	Reject(ctx context.Context, actor domain.Actor, id, reason string) error
	ClaimPayment(ctx context.Context, actor domain.Actor, id, paidDate, proofRef string) error
	VerifyPayment(ctx context.Context, actor domain.Actor, id string) error
	RecordCashReceipt(ctx context.Context, actor domain.Actor, id string, in CashReceiptInput) (*domain.CashReceipt, error)
	SelectInsurance(ctx context.Context, actor domain.Actor, id string, hasInsurance bool) error
	Cancel(ctx context.Context, actor domain.Actor, id string) error
}

type CommentService interface {
	AddComment(ctx context.Context, actor domain.Actor, entityID string, message string) (*domain.Comment, error)
	GetComments(ctx context.Context, entityID string) ([]domain.Comment, error)
	MarkRead(ctx context.Context, forRole domain.AuthorRole, entityID string) error
	UnreadCount(ctx context.Context, forRole domain.AuthorRole, entityID string) (int32, error)
}

type ReceiptService interface {
	GetReceiptByMoveRequest(ctx context.Context, moveRequestID string) (*domain.CashReceipt, error)
	RenderReceiptPDF(ctx context.Context, moveRequestID string) ([]byte, error)
}

// EmailService sends workflow notifications. Sends are best-effort: the engine
// logs failures but never fails a transition over one.
type EmailService interface {
	SendMoveRequestSubmitted(ctx context.Context, req *domain.MoveRequest) error
	SendDepositInstructions(ctx context.Context, req *domain.MoveRequest) error
	SendPaymentClaimed(ctx context.Context, req *domain.MoveRequest) error
	SendPaymentVerified(ctx context.Context, req *domain.MoveRequest) error
	SendMoveRequestRejected(ctx context.Context, req *domain.MoveRequest) error
	SendDepositReminder(ctx context.Context, req *domain.MoveRequest) error
	SendCashAppointmentReminder(ctx context.Context, req *domain.MoveRequest) error
}
