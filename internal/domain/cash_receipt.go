package domain

// CashReceipt is an immutable financial record proving a manual cash deposit
// was received. Created exactly once per verified cash payment.
type CashReceipt struct {
	ID            string        `json:"id"`
	ReceiptNumber string        `json:"receipt_number"` // CR-<YYYYMMDD>-<3-digit>
	MoveRequestID string        `json:"move_request_id"`
	Date          string        `json:"date"` // YYYY-MM-DD
	AmountCents   int32         `json:"amount_cents"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	ReceivedBy    string        `json:"received_by"`
	Notes         string        `json:"notes,omitempty"`
	ResidentName  string        `json:"resident_name"`
	UnitNumber    string        `json:"unit_number"`
	CreatedOn     string        `json:"created_on"`
}
