package service

import (
	"context"
	"fmt"
	"strings"

	"residence-portal-backend/internal/domain"
	"residence-portal-backend/internal/repository"

	"github.com/google/uuid"
)

type commentService struct {
	commentRepo repository.CommentRepository
	moveRepo    repository.MoveRequestRepository
}

func NewCommentService(commentRepo repository.CommentRepository, moveRepo repository.MoveRequestRepository) CommentService {
	return &commentService{commentRepo: commentRepo, moveRepo: moveRepo}
}

func (s *commentService) AddComment(ctx context.Context, actor domain.Actor, entityID string, message string) (*domain.Comment, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: message must not be empty", domain.ErrValidationFailed)
	}
	if _, err := s.moveRepo.GetByID(ctx, entityID); err != nil {
		return nil, err
	}

	c := &domain.Comment{
		ID:         uuid.NewString(),
		EntityID:   entityID,
		EntityKind: domain.EntityKindMoveRequest,
		AuthorRole: actor.Role,
		AuthorName: actor.Name,
		Message:    message,
	}
	if err := s.commentRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *commentService) GetComments(ctx context.Context, entityID string) ([]domain.Comment, error) {
	if _, err := s.moveRepo.GetByID(ctx, entityID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByEntity(ctx, entityID, domain.EntityKindMoveRequest)
}

func (s *commentService) MarkRead(ctx context.Context, forRole domain.AuthorRole, entityID string) error {
	return s.commentRepo.MarkRead(ctx, entityID, domain.EntityKindMoveRequest, forRole)
}

func (s *commentService) UnreadCount(ctx context.Context, forRole domain.AuthorRole, entityID string) (int32, error) {
	return s.commentRepo.UnreadCount(ctx, entityID, domain.EntityKindMoveRequest, forRole)
}
