package http

import (
	"context"

	"residence-portal-backend/internal/domain"
	"residence-portal-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockMoveRequestService
type MockMoveRequestService struct {
	mock.Mock
}

func (m *MockMoveRequestService) CreateMoveRequest(ctx context.Context, actor domain.Actor, in service.CreateMoveRequestInput) (*domain.MoveRequest, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MoveRequest), args.Error(1)
}
func (m *MockMoveRequestService) GetMoveRequest(ctx context.Context, id string) (*domain.MoveRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MoveRequest), args.Error(1)
}
func (m *MockMoveRequestService) ListMoveRequests(ctx context.Context, status domain.MoveStatus, unit string, page, pageSize int32) ([]domain.MoveRequest, int32, error) {
	args := m.Called(ctx, status, unit, page, pageSize)
	return args.Get(0).([]domain.MoveRequest), args.Get(1).(int32), args.Error(2)
}
func (m *MockMoveRequestService) UpdateSchedule(ctx context.Context, actor domain.Actor, id string, in service.ScheduleUpdateInput) (*domain.MoveRequest, error) {
	args := m.Called(ctx, actor, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MoveRequest), args.Error(1)
}
func (m *MockMoveRequestService) ApproveWithDeposit(ctx context.Context, actor domain.Actor, id string, method domain.PaymentMethod, amountCents int32, bankDetails, cashDate string) error {
	args := m.Called(ctx, actor, id, method, amountCents, bankDetails, cashDate)
	return args.Error(0)
}
func (m *MockMoveRequestService) Reject(ctx context.Context, actor domain.Actor, id, reason string) error {
	args := m.Called(ctx, actor, id, reason)
	return args.Error(0)
}
func (m *MockMoveRequestService) ClaimPayment(ctx context.Context, actor domain.Actor, id, paidDate, proofRef string) error {
	args := m.Called(ctx, actor, id, paidDate, proofRef)
	return args.Error(0)
}
func (m *MockMoveRequestService) VerifyPayment(ctx context.Context, actor domain.Actor, id string) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}
func (m *MockMoveRequestService) RecordCashReceipt(ctx context.Context, actor domain.Actor, id string, in service.CashReceiptInput) (*domain.CashReceipt, error) {
	args := m.Called(ctx, actor, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashReceipt), args.Error(1)
}
func (m *MockMoveRequestService) SelectInsurance(ctx context.Context, actor domain.Actor, id string, hasInsurance bool) error {
	args := m.Called(ctx, actor, id, hasInsurance)
	return args.Error(0)
}
func (m *MockMoveRequestService) Cancel(ctx context.Context, actor domain.Actor, id string) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}
