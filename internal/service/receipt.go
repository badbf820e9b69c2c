package service

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"time"

	"residence-portal-backend/internal/domain"
	"residence-portal-backend/internal/repository"

	"github.com/jung-kurt/gofpdf/v2"
)

// newReceiptNumber builds the human-legible ledger number for a cash receipt,
// seeded by the issue date: CR-<YYYYMMDD>-<3-digit>.
func newReceiptNumber(now time.Time) string {
	return fmt.Sprintf("CR-%s-%03d", now.Format("20060102"), rand.Intn(1000))
}

type receiptService struct {
	receiptRepo  repository.CashReceiptRepository
	buildingName string
}

func NewReceiptService(receiptRepo repository.CashReceiptRepository, buildingName string) ReceiptService {
	return &receiptService{receiptRepo: receiptRepo, buildingName: buildingName}
}

func (s *receiptService) GetReceiptByMoveRequest(ctx context.Context, moveRequestID string) (*domain.CashReceipt, error) {
	return s.receiptRepo.GetByMoveRequestID(ctx, moveRequestID)
}

func (s *receiptService) RenderReceiptPDF(ctx context.Context, moveRequestID string) ([]byte, error) {
	receipt, err := s.receiptRepo.GetByMoveRequestID(ctx, moveRequestID)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(180, 10, s.buildingName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(180, 8, "Cash Deposit Receipt", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(180, 6, fmt.Sprintf("Receipt No: %s", receipt.ReceiptNumber), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(180, 8, "Payment Details", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(90, 7, fmt.Sprintf("Resident: %s", receipt.ResidentName), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(90, 7, fmt.Sprintf("Unit: %s", receipt.UnitNumber), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(90, 7, fmt.Sprintf("Date: %s", receipt.Date), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(90, 7, fmt.Sprintf("Method: %s", receipt.PaymentMethod), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(90, 7, fmt.Sprintf("Amount: %s", formatCents(receipt.AmountCents)), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(90, 7, fmt.Sprintf("Received by: %s", receipt.ReceivedBy), "RB", 1, "L", false, 0, "")
	if receipt.Notes != "" {
		pdf.CellFormat(180, 7, fmt.Sprintf("Notes: %s", receipt.Notes), "LRB", 1, "L", false, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(180, 6, fmt.Sprintf("Generated %s for move request %s", time.Now().Format("02-Jan-2006 03:04 PM"), receipt.MoveRequestID), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt pdf: %w", err)
	}
	return buf.Bytes(), nil
}
