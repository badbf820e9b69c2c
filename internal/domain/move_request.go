package domain

type MoveStatus string

const (
	MoveStatusPending         MoveStatus = "Pending"
	MoveStatusApproved        MoveStatus = "Approved" // in the vocabulary, not produced by any transition
	MoveStatusDepositPending  MoveStatus = "DepositPending"
	MoveStatusPaymentClaimed  MoveStatus = "PaymentClaimed"
	MoveStatusDepositVerified MoveStatus = "DepositVerified"
	MoveStatusFullyApproved   MoveStatus = "FullyApproved"
	MoveStatusInProgress      MoveStatus = "InProgress"
	MoveStatusCompleted       MoveStatus = "Completed"
	MoveStatusRejected        MoveStatus = "Rejected"
	MoveStatusCancelled       MoveStatus = "Cancelled"
)

// IsTerminal reports whether no further transition is defined from s.
func (s MoveStatus) IsTerminal() bool {
	return s == MoveStatusCompleted || s == MoveStatusRejected || s == MoveStatusCancelled
}

type MoveType string

const (
	MoveTypeIn  MoveType = "MoveIn"
	MoveTypeOut MoveType = "MoveOut"
)

type PaymentMethod string

const (
	PaymentMethodBank PaymentMethod = "bank"
	PaymentMethodCash PaymentMethod = "cash"
)

type CompanyType string

const (
	CompanyTypeProfessional CompanyType = "professional"
	CompanyTypeSelf         CompanyType = "self"
	CompanyTypeFamily       CompanyType = "family"
)

// Deposit is the payment handshake sub-record of a MoveRequest. The method is
// chosen at creation and immutable afterwards; Paid only flips on verification.
type Deposit struct {
	Method              PaymentMethod `json:"method"`
	AmountCents         int32         `json:"amount_cents"`
	BankDetails         string        `json:"bank_details,omitempty"`
	CashAppointmentDate string        `json:"cash_appointment_date,omitempty"` // YYYY-MM-DD
	Paid                bool          `json:"paid"`
	PaidDate            string        `json:"paid_date,omitempty"`
	ProofRef            string        `json:"proof_ref,omitempty"`
	VerifiedBy          string        `json:"verified_by,omitempty"`
	VerifiedDate        string        `json:"verified_date,omitempty"`
	ReceiptID           string        `json:"receipt_id,omitempty"`
}

type MoveRequest struct {
	ID   string   `json:"id"`
	Type MoveType `json:"type"`

	// Requester identity, immutable after creation.
	ResidentName string `json:"resident_name"`
	UnitNumber   string `json:"unit_number"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email,omitempty"`

	// Scheduling, editable only while status is Pending.
	MoveDate        string `json:"move_date"` // YYYY-MM-DD
	TimeWindow      string `json:"time_window"`
	DurationHours   int32  `json:"duration_hours"`
	LoadingDock     string `json:"loading_dock,omitempty"`
	NeedsElevator   bool   `json:"needs_elevator"`
	TrolleyCount    int32  `json:"trolley_count"`
	AccessCardCount int32  `json:"access_card_count"`

	// Moving-company facts. CompanyInsured is a mandatory yes/no answer at
	// intake for professional movers; nil means the question was never answered.
	CompanyType    CompanyType `json:"company_type"`
	CompanyName    string      `json:"company_name,omitempty"`
	CompanyPhone   string      `json:"company_phone,omitempty"`
	CompanyInsured *bool       `json:"company_insured,omitempty"`

	Deposit Deposit `json:"deposit"`

	// Workflow-stage insurance declaration, distinct from the intake flag.
	InsuranceSelected     bool   `json:"insurance_selected"`
	HasInsurance          bool   `json:"has_insurance"`
	InsuranceSelectedDate string `json:"insurance_selected_date,omitempty"`

	Status          MoveStatus `json:"status"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	CompletedDate   string     `json:"completed_date,omitempty"`

	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}
