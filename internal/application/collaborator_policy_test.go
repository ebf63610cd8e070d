package application

import (
	"testing"

	"github.com/hoagiehub/hoagie-api/internal/domain/entity"
)

func TestCanMutateCollaborators(t *testing.T) {
	h := &entity.Hoagie{
		ID:      "h1",
		Creator: entity.UserSummary{ID: "creator"},
		Collaborators: []entity.UserSummary{
			{ID: "collab"},
		},
	}

	cases := []struct {
		name      string
		hoagie    *entity.Hoagie
		requester string
		want      bool
	}{
		{"creator", h, "creator", true},
		{"collaborator", h, "collab", false},
		{"stranger", h, "stranger", false},
		{"empty requester", h, "", false},
		{"nil hoagie", nil, "creator", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CanMutateCollaborators(c.hoagie, c.requester); got != c.want {
				t.Errorf("CanMutateCollaborators(%s) = %v, want %v", c.requester, got, c.want)
			}
		})
	}
}
