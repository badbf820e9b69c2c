package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"residence-portal-backend/internal/domain"
)

// In-memory fakes for the repositories, so workflow tests can assert on real
// state instead of mock call scripts.

type fakeMoveRepo struct {
	mu             sync.Mutex
	items          map[string]domain.MoveRequest
	failNextUpdate error
}

func newFakeMoveRepo() *fakeMoveRepo {
	return &fakeMoveRepo{items: map[string]domain.MoveRequest{}}
}

func (f *fakeMoveRepo) Create(_ context.Context, req *domain.MoveRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now().UTC().Format(time.RFC3339)
	req.CreatedOn = now
	req.UpdatedOn = now
	f.items[req.ID] = *req
	return nil
}

func (f *fakeMoveRepo) GetByID(_ context.Context, id string) (*domain.MoveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: move request %s", domain.ErrNotFound, id)
	}
	cp := req
	return &cp, nil
}

func (f *fakeMoveRepo) Update(_ context.Context, req *domain.MoveRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNextUpdate != nil {
		err := f.failNextUpdate
		f.failNextUpdate = nil
		return err
	}
	if _, ok := f.items[req.ID]; !ok {
		return fmt.Errorf("%w: move request %s", domain.ErrNotFound, req.ID)
	}
	req.UpdatedOn = time.Now().UTC().Format(time.RFC3339)
	f.items[req.ID] = *req
	return nil
}

func (f *fakeMoveRepo) List(_ context.Context, status domain.MoveStatus, unit string, page, pageSize int32) ([]domain.MoveRequest, int32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.MoveRequest
	for _, req := range f.items {
		if status != "" && req.Status != status {
			continue
		}
		if unit != "" && req.UnitNumber != unit {
			continue
		}
		out = append(out, req)
	}
	return out, int32(len(out)), nil
}

func (f *fakeMoveRepo) ListByStatus(ctx context.Context, status domain.MoveStatus) ([]domain.MoveRequest, error) {
	out, _, err := f.List(ctx, status, "", 1, 1000)
	return out, err
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments []domain.Comment
}

func (f *fakeCommentRepo) Create(_ context.Context, c *domain.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c.CreatedOn = time.Now().UTC().Format("2006-01-02T15:04:05.000000000Z07:00")
	f.comments = append(f.comments, *c)
	return nil
}

func (f *fakeCommentRepo) ListByEntity(_ context.Context, entityID string, kind domain.EntityKind) ([]domain.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Comment
	for _, c := range f.comments {
		if c.EntityID == entityID && c.EntityKind == kind {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCommentRepo) MarkRead(_ context.Context, entityID string, kind domain.EntityKind, forRole domain.AuthorRole) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.comments {
		c := &f.comments[i]
		if c.EntityID == entityID && c.EntityKind == kind && c.AuthorRole != forRole {
			c.Read = true
		}
	}
	return nil
}

func (f *fakeCommentRepo) UnreadCount(_ context.Context, entityID string, kind domain.EntityKind, forRole domain.AuthorRole) (int32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int32
	for _, c := range f.comments {
		if c.EntityID == entityID && c.EntityKind == kind && c.AuthorRole != forRole && !c.Read {
			count++
		}
	}
	return count, nil
}

type fakeReceiptRepo struct {
	mu       sync.Mutex
	byMoveID map[string]domain.CashReceipt
	moves    *fakeMoveRepo
}

func newFakeReceiptRepo() *fakeReceiptRepo {
	return &fakeReceiptRepo{byMoveID: map[string]domain.CashReceipt{}}
}

func (f *fakeReceiptRepo) Create(_ context.Context, r *domain.CashReceipt) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byMoveID[r.MoveRequestID]; ok {
		return fmt.Errorf("cash receipt for move request %s already exists", r.MoveRequestID)
	}
	r.CreatedOn = time.Now().UTC().Format(time.RFC3339)
	f.byMoveID[r.MoveRequestID] = *r
	return nil
}

func (f *fakeReceiptRepo) CreateForVerification(ctx context.Context, r *domain.CashReceipt, req *domain.MoveRequest) error {
	if err := f.moves.Update(ctx, req); err != nil {
		return err
	}
	return f.Create(ctx, r)
}

func (f *fakeReceiptRepo) GetByMoveRequestID(_ context.Context, moveRequestID string) (*domain.CashReceipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.byMoveID[moveRequestID]
	if !ok {
		return nil, fmt.Errorf("%w: cash receipt for move request %s", domain.ErrNotFound, moveRequestID)
	}
	cp := r
	return &cp, nil
}

// nopEmail counts sends and never fails.
type nopEmail struct {
	mu    sync.Mutex
	sends []string
}

func (e *nopEmail) record(kind string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sends = append(e.sends, kind)
	return nil
}

func (e *nopEmail) SendMoveRequestSubmitted(context.Context, *domain.MoveRequest) error {
	return e.record("submitted")
}
func (e *nopEmail) SendDepositInstructions(context.Context, *domain.MoveRequest) error {
	return e.record("deposit_instructions")
}
func (e *nopEmail) SendPaymentClaimed(context.Context, *domain.MoveRequest) error {
	return e.record("payment_claimed")
}
func (e *nopEmail) SendPaymentVerified(context.Context, *domain.MoveRequest) error {
	return e.record("payment_verified")
}
func (e *nopEmail) SendMoveRequestRejected(context.Context, *domain.MoveRequest) error {
	return e.record("rejected")
}
func (e *nopEmail) SendDepositReminder(context.Context, *domain.MoveRequest) error {
	return e.record("deposit_reminder")
}
func (e *nopEmail) SendCashAppointmentReminder(context.Context, *domain.MoveRequest) error {
	return e.record("cash_appointment_reminder")
}
