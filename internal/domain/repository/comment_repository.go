package repository

import (
	"context"

	"github.com/hoagiehub/hoagie-api/internal/domain/entity"
)

// CreateComment carries the persisted fields of a new comment.
type CreateComment struct {
	Text     string
	AuthorID string
	HoagieID string
}

// CommentRepository defines the store operations of the comment collection.
// List is scoped to a hoagie when hoagieID is non-empty, global otherwise;
// both orderings are newest-created-first.
type CommentRepository interface {
	Create(ctx context.Context, in CreateComment) (*entity.Comment, error)
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	List(ctx context.Context, hoagieID string, limit, offset int) ([]entity.Comment, int, error)
	UpdateText(ctx context.Context, id, text string) (*entity.Comment, error)
	Delete(ctx context.Context, id string) (*entity.Comment, error)
}
