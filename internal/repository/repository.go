package repository

import (
	"context"

	"residence-portal-backend/internal/domain"
)

type MoveRequestRepository interface {
	Create(ctx context.Context, req *domain.MoveRequest) error
	GetByID(ctx context.Context, id string) (*domain.MoveRequest, error)
	Update(ctx context.Context, req *domain.MoveRequest) error
	List(ctx context.Context, status domain.MoveStatus, unit string, page, pageSize int32) ([]domain.MoveRequest, int32, error)
	ListByStatus(ctx context.Context, status domain.MoveStatus) ([]domain.MoveRequest, error)
}

type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) error
	ListByEntity(ctx context.Context, entityID string, kind domain.EntityKind) ([]domain.Comment, error)
	// MarkRead flips the read flag on all entries for the entity that were
	// authored by someone other than forRole.
	MarkRead(ctx context.Context, entityID string, kind domain.EntityKind, forRole domain.AuthorRole) error
	UnreadCount(ctx context.Context, entityID string, kind domain.EntityKind, forRole domain.AuthorRole) (int32, error)
}

type CashReceiptRepository interface {
	// CreateForVerification inserts the receipt and applies the verified
	// move request in a single transaction, so a failed write leaves
	// neither an orphan receipt nor a half-advanced request.
	CreateForVerification(ctx context.Context, r *domain.CashReceipt, req *domain.MoveRequest) error
	GetByMoveRequestID(ctx context.Context, moveRequestID string) (*domain.CashReceipt, error)
}
