package postgres

import (
	"context"
	"errors"
	"testing"

	"residence-portal-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestCashReceiptRepository_CreateForVerification(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCashReceiptRepository(db)
	ctx := context.Background()

	newReceipt := func() *domain.CashReceipt {
		return &domain.CashReceipt{
			ID:            "r-1",
			ReceiptNumber: "CR-20240122-042",
			MoveRequestID: "mr-1",
			Date:          "2024-01-22",
			AmountCents:   30000,
			PaymentMethod: domain.PaymentMethodCash,
			ReceivedBy:    "Morgan FM",
			ResidentName:  "Dana Resident",
			UnitNumber:    "12-03",
		}
	}
	req := &domain.MoveRequest{
		ID:     "mr-1",
		Status: domain.MoveStatusDepositVerified,
	}

	t.Run("Commits receipt and request together", func(t *testing.T) {
		cr := newReceipt()
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO cash_receipts").
			WithArgs(cr.ID, cr.ReceiptNumber, cr.MoveRequestID, cr.Date, cr.AmountCents, string(cr.PaymentMethod),
				cr.ReceivedBy, cr.Notes, cr.ResidentName, cr.UnitNumber, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE move_requests SET").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.CreateForVerification(ctx, cr, req)
		assert.NoError(t, err)
		assert.NotEmpty(t, cr.CreatedOn)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rolls back the receipt when the request update fails", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO cash_receipts").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE move_requests SET").
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err := repo.CreateForVerification(ctx, newReceipt(), req)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCashReceiptRepository_GetByMoveRequestID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCashReceiptRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "receipt_number", "move_request_id", "date", "amount_cents", "payment_method", "received_by", "notes", "resident_name", "unit_number", "created_on"}).
			AddRow("r-1", "CR-20240122-042", "mr-1", "2024-01-22", 30000, "cash", "Morgan FM", "", "Dana Resident", "12-03", "2024-01-22T15:00:00Z")

		mock.ExpectQuery("SELECT (.+) FROM cash_receipts WHERE move_request_id = \\$1").
			WithArgs("mr-1").
			WillReturnRows(rows)

		cr, err := repo.GetByMoveRequestID(ctx, "mr-1")
		assert.NoError(t, err)
		assert.NotNil(t, cr)
		assert.Equal(t, "CR-20240122-042", cr.ReceiptNumber)
		assert.Equal(t, int32(30000), cr.AmountCents)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM cash_receipts WHERE move_request_id = \\$1").
			WithArgs("mr-missing").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		cr, err := repo.GetByMoveRequestID(ctx, "mr-missing")
		assert.Nil(t, cr)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
