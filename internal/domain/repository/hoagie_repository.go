package repository

import (
	"context"

	"github.com/hoagiehub/hoagie-api/internal/domain/entity"
)

// CreateHoagie carries the persisted fields of a new hoagie.
type CreateHoagie struct {
	Name        string
	Ingredients []string
	Picture     string
	CreatorID   string
}

// UpdateHoagie carries a partial update; nil fields are left untouched.
// Creator and comment count are not reachable through this path.
type UpdateHoagie struct {
	Name          *string
	Ingredients   []string
	Picture       *string
	Collaborators []string
}

// HoagieRepository defines the store operations of the hoagie aggregate.
//
// AddCollaborator and RemoveCollaborator have set semantics and must be atomic
// at the store level (add-if-absent, remove-if-present). The counter methods
// are single atomic adjustments: concurrent increments never lose updates, and
// DecrementCommentCount never drives the count below zero; it reports a clamp
// instead so callers can surface the anomaly.
type HoagieRepository interface {
	Create(ctx context.Context, in CreateHoagie) (*entity.Hoagie, error)
	GetByID(ctx context.Context, id string) (*entity.Hoagie, error)
	List(ctx context.Context, creatorID string, limit, offset int) ([]entity.Hoagie, int, error)
	Update(ctx context.Context, id string, in UpdateHoagie) (*entity.Hoagie, error)
	Delete(ctx context.Context, id string) (*entity.Hoagie, error)

	AddCollaborator(ctx context.Context, hoagieID, userID string) error
	RemoveCollaborator(ctx context.Context, hoagieID, userID string) error

	IncrementCommentCount(ctx context.Context, hoagieID string) error
	DecrementCommentCount(ctx context.Context, hoagieID string) (clamped bool, err error)
}
