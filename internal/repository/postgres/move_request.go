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

const moveRequestColumns = `id, type, resident_name, unit_number, contact_phone, contact_email,
	move_date, time_window, duration_hours, loading_dock, needs_elevator, trolley_count, access_card_count,
	company_type, company_name, company_phone, company_insured,
	deposit_method, deposit_amount_cents, deposit_bank_details, deposit_cash_date,
	deposit_paid, deposit_paid_date, deposit_proof_ref, deposit_verified_by, deposit_verified_date, deposit_receipt_id,
	insurance_selected, has_insurance, insurance_selected_date,
	status, rejection_reason, completed_date, created_on, updated_on`

type moveRequestRepository struct {
	db *sql.DB
}

func NewMoveRequestRepository(db *sql.DB) repository.MoveRequestRepository {
	return &moveRequestRepository{db: db}
}

func (r *moveRequestRepository) Create(ctx context.Context, mr *domain.MoveRequest) error {
	now := time.Now().UTC().Format(time.RFC3339)
	mr.CreatedOn = now
	mr.UpdatedOn = now
	query := `INSERT INTO move_requests (` + moveRequestColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
	                  $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33, $34, $35)`
	_, err := r.db.ExecContext(ctx, query,
		mr.ID, mr.Type, mr.ResidentName, mr.UnitNumber, mr.ContactPhone, mr.ContactEmail,
		mr.MoveDate, mr.TimeWindow, mr.DurationHours, mr.LoadingDock, mr.NeedsElevator, mr.TrolleyCount, mr.AccessCardCount,
		mr.CompanyType, mr.CompanyName, mr.CompanyPhone, mr.CompanyInsured,
		mr.Deposit.Method, mr.Deposit.AmountCents, mr.Deposit.BankDetails, mr.Deposit.CashAppointmentDate,
		mr.Deposit.Paid, mr.Deposit.PaidDate, mr.Deposit.ProofRef, mr.Deposit.VerifiedBy, mr.Deposit.VerifiedDate, mr.Deposit.ReceiptID,
		mr.InsuranceSelected, mr.HasInsurance, mr.InsuranceSelectedDate,
		mr.Status, mr.RejectionReason, mr.CompletedDate, mr.CreatedOn, mr.UpdatedOn)
	return err
}

func (r *moveRequestRepository) GetByID(ctx context.Context, id string) (*domain.MoveRequest, error) {
	query := `SELECT ` + moveRequestColumns + ` FROM move_requests WHERE id = $1`
	mr, err := scanMoveRequest(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: move request %s", domain.ErrNotFound, id)
	}
	return mr, err
}

func (r *moveRequestRepository) Update(ctx context.Context, mr *domain.MoveRequest) error {
	return updateMoveRequest(ctx, r.db, mr)
}

func updateMoveRequest(ctx context.Context, ex execer, mr *domain.MoveRequest) error {
	mr.UpdatedOn = time.Now().UTC().Format(time.RFC3339)
	query := `UPDATE move_requests SET
	    move_date=$1, time_window=$2, duration_hours=$3, loading_dock=$4, needs_elevator=$5,
	    trolley_count=$6, access_card_count=$7,
	    deposit_method=$8, deposit_amount_cents=$9, deposit_bank_details=$10, deposit_cash_date=$11,
	    deposit_paid=$12, deposit_paid_date=$13, deposit_proof_ref=$14, deposit_verified_by=$15,
	    deposit_verified_date=$16, deposit_receipt_id=$17,
	    insurance_selected=$18, has_insurance=$19, insurance_selected_date=$20,
	    status=$21, rejection_reason=$22, completed_date=$23, updated_on=$24
	  WHERE id=$25`
	res, err := ex.ExecContext(ctx, query,
		mr.MoveDate, mr.TimeWindow, mr.DurationHours, mr.LoadingDock, mr.NeedsElevator,
		mr.TrolleyCount, mr.AccessCardCount,
		mr.Deposit.Method, mr.Deposit.AmountCents, mr.Deposit.BankDetails, mr.Deposit.CashAppointmentDate,
		mr.Deposit.Paid, mr.Deposit.PaidDate, mr.Deposit.ProofRef, mr.Deposit.VerifiedBy,
		mr.Deposit.VerifiedDate, mr.Deposit.ReceiptID,
		mr.InsuranceSelected, mr.HasInsurance, mr.InsuranceSelectedDate,
		mr.Status, mr.RejectionReason, mr.CompletedDate, mr.UpdatedOn, mr.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: move request %s", domain.ErrNotFound, mr.ID)
	}
	return nil
}

func (r *moveRequestRepository) List(ctx context.Context, status domain.MoveStatus, unit string, page, pageSize int32) ([]domain.MoveRequest, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	query := `SELECT ` + moveRequestColumns + ` FROM move_requests WHERE 1=1`
	args := []interface{}{}
	argIdx := 1
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}
	if unit != "" {
		query += fmt.Sprintf(" AND unit_number = $%d", argIdx)
		args = append(args, unit)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") AS sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.MoveRequest
	for rows.Next() {
		mr, err := scanMoveRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *mr)
	}
	return out, count, rows.Err()
}

func (r *moveRequestRepository) ListByStatus(ctx context.Context, status domain.MoveStatus) ([]domain.MoveRequest, error) {
	query := `SELECT ` + moveRequestColumns + ` FROM move_requests WHERE status = $1 ORDER BY created_on ASC`
	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.MoveRequest
	for rows.Next() {
		mr, err := scanMoveRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *mr)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMoveRequest(row rowScanner) (*domain.MoveRequest, error) {
	mr := &domain.MoveRequest{}
	err := row.Scan(
		&mr.ID, &mr.Type, &mr.ResidentName, &mr.UnitNumber, &mr.ContactPhone, &mr.ContactEmail,
		&mr.MoveDate, &mr.TimeWindow, &mr.DurationHours, &mr.LoadingDock, &mr.NeedsElevator, &mr.TrolleyCount, &mr.AccessCardCount,
		&mr.CompanyType, &mr.CompanyName, &mr.CompanyPhone, &mr.CompanyInsured,
		&mr.Deposit.Method, &mr.Deposit.AmountCents, &mr.Deposit.BankDetails, &mr.Deposit.CashAppointmentDate,
		&mr.Deposit.Paid, &mr.Deposit.PaidDate, &mr.Deposit.ProofRef, &mr.Deposit.VerifiedBy, &mr.Deposit.VerifiedDate, &mr.Deposit.ReceiptID,
		&mr.InsuranceSelected, &mr.HasInsurance, &mr.InsuranceSelectedDate,
		&mr.Status, &mr.RejectionReason, &mr.CompletedDate, &mr.CreatedOn, &mr.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return mr, nil
}
