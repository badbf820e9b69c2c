package postgres

import (
	"context"
	"database/sql"

	"residence-portal-backend/internal/repository"

	_ "github.com/lib/pq"
)

// execer is satisfied by both *sql.DB and *sql.Tx, letting statement helpers
// run inside or outside a transaction.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

type Store struct {
	db *sql.DB
	repository.MoveRequestRepository
	repository.CommentRepository
	repository.CashReceiptRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		MoveRequestRepository: NewMoveRequestRepository(db),
		CommentRepository:     NewCommentRepository(db),
		CashReceiptRepository: NewCashReceiptRepository(db),
	}
}
