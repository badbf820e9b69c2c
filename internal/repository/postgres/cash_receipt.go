package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"residence-portal-backend/internal/domain"
	"residence-portal-backend/internal/repository"
)

type cashReceiptRepository struct {
	db *sql.DB
}

func NewCashReceiptRepository(db *sql.DB) repository.CashReceiptRepository {
	return &cashReceiptRepository{db: db}
}

func insertCashReceipt(ctx context.Context, ex execer, cr *domain.CashReceipt) error {
	cr.CreatedOn = time.Now().UTC().Format(time.RFC3339)
	query := `INSERT INTO cash_receipts (id, receipt_number, move_request_id, date, amount_cents, payment_method, received_by, notes, resident_name, unit_number, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := ex.ExecContext(ctx, query,
		cr.ID, cr.ReceiptNumber, cr.MoveRequestID, cr.Date, cr.AmountCents, cr.PaymentMethod,
		cr.ReceivedBy, cr.Notes, cr.ResidentName, cr.UnitNumber, cr.CreatedOn)
	return err
}

func (r *cashReceiptRepository) CreateForVerification(ctx context.Context, cr *domain.CashReceipt, req *domain.MoveRequest) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := insertCashReceipt(ctx, tx, cr); err != nil {
		tx.Rollback()
		return err
	}
	if err := updateMoveRequest(ctx, tx, req); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (r *cashReceiptRepository) GetByMoveRequestID(ctx context.Context, moveRequestID string) (*domain.CashReceipt, error) {
	cr := &domain.CashReceipt{}
	query := `SELECT id, receipt_number, move_request_id, date, amount_cents, payment_method, received_by, notes, resident_name, unit_number, created_on
	          FROM cash_receipts WHERE move_request_id = $1`
	err := r.db.QueryRowContext(ctx, query, moveRequestID).Scan(
		&cr.ID, &cr.ReceiptNumber, &cr.MoveRequestID, &cr.Date, &cr.AmountCents, &cr.PaymentMethod,
		&cr.ReceivedBy, &cr.Notes, &cr.ResidentName, &cr.UnitNumber, &cr.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: cash receipt for move request %s", domain.ErrNotFound, moveRequestID)
	}
	if err != nil {
		return nil, err
	}
	return cr, nil
}
