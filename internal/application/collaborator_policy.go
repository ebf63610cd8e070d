package application

import (
	"github.com/hoagiehub/hoagie-api/internal/domain/entity"
)

// CanMutateCollaborators is the collaboration authorization rule: only the
// creator of a hoagie may change its collaborator set. Collaborators cannot
// add or remove other collaborators, or themselves. Pure function; callers
// consult it before any collaborator-set mutation.
func CanMutateCollaborators(h *entity.Hoagie, requesterID string) bool {
	return h != nil && requesterID != "" && h.Creator.ID == requesterID
}
