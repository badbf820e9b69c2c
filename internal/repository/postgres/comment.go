package postgres

import (
	"context"
	"database/sql"
	"time"

	"residence-portal-backend/internal/domain"
	"residence-portal-backend/internal/repository"
)

// commentTimeLayout is fixed-width (no trimmed fractional zeros) so the TEXT
// created_on column sorts chronologically under ORDER BY.
const commentTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type commentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, c *domain.Comment) error {
	c.CreatedOn = time.Now().UTC().Format(commentTimeLayout)
	var from, to sql.NullString
	if c.StatusChange != nil {
		from = sql.NullString{String: string(c.StatusChange.From), Valid: true}
		to = sql.NullString{String: string(c.StatusChange.To), Valid: true}
	}
	query := `INSERT INTO comments (id, entity_id, entity_kind, author_role, author_name, message, read, status_from, status_to, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.EntityID, c.EntityKind, c.AuthorRole, c.AuthorName, c.Message, c.Read, from, to, c.CreatedOn)
	return err
}

func (r *commentRepository) ListByEntity(ctx context.Context, entityID string, kind domain.EntityKind) ([]domain.Comment, error) {
	query := `SELECT id, entity_id, entity_kind, author_role, author_name, message, read, status_from, status_to, created_on
	          FROM comments WHERE entity_id = $1 AND entity_kind = $2 ORDER BY created_on ASC`
	rows, err := r.db.QueryContext(ctx, query, entityID, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Comment
	for rows.Next() {
		var c domain.Comment
		var from, to sql.NullString
		if err := rows.Scan(&c.ID, &c.EntityID, &c.EntityKind, &c.AuthorRole, &c.AuthorName, &c.Message, &c.Read, &from, &to, &c.CreatedOn); err != nil {
			return nil, err
		}
		if from.Valid || to.Valid {
			c.StatusChange = &domain.StatusChange{
				From: domain.MoveStatus(from.String),
				To:   domain.MoveStatus(to.String),
			}
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *commentRepository) MarkRead(ctx context.Context, entityID string, kind domain.EntityKind, forRole domain.AuthorRole) error {
	query := `UPDATE comments SET read = true
	          WHERE entity_id = $1 AND entity_kind = $2 AND author_role <> $3 AND read = false`
	_, err := r.db.ExecContext(ctx, query, entityID, kind, forRole)
	return err
}

func (r *commentRepository) UnreadCount(ctx context.Context, entityID string, kind domain.EntityKind, forRole domain.AuthorRole) (int32, error) {
	query := `SELECT count(*) FROM comments
	          WHERE entity_id = $1 AND entity_kind = $2 AND author_role <> $3 AND read = false`
	var count int32
	err := r.db.QueryRowContext(ctx, query, entityID, kind, forRole).Scan(&count)
	return count, err
}
