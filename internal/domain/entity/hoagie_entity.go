package entity

import (
	"time"
)

// Hoagie is the aggregate root for the hoagie domain.
//
// Creator is set at creation and never reassigned. Collaborators is a set:
// unique, unordered, and the creator never appears in it. CommentCount is
// denormalized from the comments collection and is mutated only through the
// aggregate's atomic counter operations.
type Hoagie struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Ingredients   []string      `json:"ingredients"`
	Picture       string        `json:"picture,omitempty"`
	Creator       UserSummary   `json:"creator"`
	Collaborators []UserSummary `json:"collaborators"`
	CommentCount  int           `json:"comment_count"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// HasCollaborator reports whether userID is in the collaborator set.
func (h *Hoagie) HasCollaborator(userID string) bool {
	for _, c := range h.Collaborators {
		if c.ID == userID {
			return true
		}
	}
	return false
}
