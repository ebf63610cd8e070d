package repository

import (
	"context"

	"github.com/hoagiehub/hoagie-api/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
//
// GetByEmail is the only read path that includes password material; it exists
// for the credential check. SearchByName must treat the query literally: LIKE
// metacharacters in it are matched as characters, not patterns.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	SearchByName(ctx context.Context, query string, limit int) ([]entity.UserSummary, error)
}
