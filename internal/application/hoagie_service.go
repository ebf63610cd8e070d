package application

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/hoagiehub/hoagie-api/internal/domain/apperr"
	"github.com/hoagiehub/hoagie-api/internal/domain/entity"
	repo "github.com/hoagiehub/hoagie-api/internal/domain/repository"
	"github.com/hoagiehub/hoagie-api/pkg/helpers"
	"github.com/hoagiehub/hoagie-api/pkg/pagination"
)

// HoagieService owns hoagie records, their collaborator sets and the
// denormalized comment count. The comment count is mutated only through the
// atomic counter operations at the bottom of this file; nothing else writes
// that field.
type HoagieService struct {
	Repo      repo.HoagieRepository
	Logger    *logrus.Logger
	GCS       *storage.Client // optional; picture uploads
	GCSBucket string
}

func NewHoagieService(r repo.HoagieRepository, logger *logrus.Logger, gcs *storage.Client, gcsBucket string) *HoagieService {
	return &HoagieService{Repo: r, Logger: logger, GCS: gcs, GCSBucket: gcsBucket}
}

// CreateHoagieInput carries the fields of a new hoagie.
type CreateHoagieInput struct {
	Name        string
	Ingredients []string
	Picture     string
	CreatorID   string
}

// UpdateHoagieInput is a partial update; nil fields are untouched. Creator and
// comment count are not settable through this path.
type UpdateHoagieInput struct {
	Name          *string
	Ingredients   []string
	Picture       *string
	Collaborators []string
}

func cleanIngredients(in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	for _, ing := range in {
		ing = strings.TrimSpace(ing)
		if ing == "" {
			return nil, apperr.Invalid("ingredients must not contain empty entries")
		}
		out = append(out, ing)
	}
	if len(out) == 0 {
		return nil, apperr.Invalid("ingredients must not be empty")
	}
	return out, nil
}

func (s *HoagieService) Create(ctx context.Context, in CreateHoagieInput) (*entity.Hoagie, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, apperr.Invalid("name must not be empty")
	}
	ingredients, err := cleanIngredients(in.Ingredients)
	if err != nil {
		return nil, err
	}
	if err := validateID(in.CreatorID, "creator id"); err != nil {
		return nil, err
	}
	return s.Repo.Create(ctx, repo.CreateHoagie{
		Name:        in.Name,
		Ingredients: ingredients,
		Picture:     in.Picture,
		CreatorID:   in.CreatorID,
	})
}

// List returns a page of hoagies, newest first. A creator filter, when given,
// must be a well-formed id: an invalid value is rejected rather than silently
// returning the unfiltered set.
func (s *HoagieService) List(ctx context.Context, page, limit int, creatorID string) ([]entity.Hoagie, pagination.Meta, error) {
	p := pagination.Normalize(page, limit)
	if creatorID != "" {
		if err := validateID(creatorID, "creator filter"); err != nil {
			return nil, pagination.Meta{}, err
		}
	}
	items, total, err := s.Repo.List(ctx, creatorID, p.Limit, p.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return items, pagination.NewMeta(p, total), nil
}

func (s *HoagieService) Get(ctx context.Context, id string) (*entity.Hoagie, error) {
	if err := validateID(id, "hoagie id"); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, id)
}

func (s *HoagieService) Update(ctx context.Context, id string, in UpdateHoagieInput) (*entity.Hoagie, error) {
	if err := validateID(id, "hoagie id"); err != nil {
		return nil, err
	}
	if in.Name != nil {
		trimmed := strings.TrimSpace(*in.Name)
		if trimmed == "" {
			return nil, apperr.Invalid("name must not be empty")
		}
		in.Name = &trimmed
	}
	if in.Ingredients != nil {
		ingredients, err := cleanIngredients(in.Ingredients)
		if err != nil {
			return nil, err
		}
		in.Ingredients = ingredients
	}
	if in.Collaborators != nil {
		h, err := s.Repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		// Replace-set update; the creator never appears in its own set.
		set := make([]string, 0, len(in.Collaborators))
		seen := make(map[string]bool, len(in.Collaborators))
		for _, uid := range in.Collaborators {
			if err := validateID(uid, "collaborator id"); err != nil {
				return nil, err
			}
			if uid == h.Creator.ID || seen[uid] {
				continue
			}
			seen[uid] = true
			set = append(set, uid)
		}
		in.Collaborators = set
	}
	return s.Repo.Update(ctx, id, repo.UpdateHoagie{
		Name:          in.Name,
		Ingredients:   in.Ingredients,
		Picture:       in.Picture,
		Collaborators: in.Collaborators,
	})
}

// Remove deletes a hoagie; its comments are removed with it so no comment can
// outlive its hoagie.
func (s *HoagieService) Remove(ctx context.Context, id string) (*entity.Hoagie, error) {
	if err := validateID(id, "hoagie id"); err != nil {
		return nil, err
	}
	return s.Repo.Delete(ctx, id)
}

// AddCollaborator adds userID to the hoagie's collaborator set on behalf of
// requesterID. Only the creator may mutate the set; adding a user already in
// the set, or the creator itself, is a no-op success.
func (s *HoagieService) AddCollaborator(ctx context.Context, hoagieID, userID, requesterID string) (*entity.Hoagie, error) {
	h, err := s.authorizeCollaboratorChange(ctx, hoagieID, userID, requesterID)
	if err != nil {
		return nil, err
	}
	if userID == h.Creator.ID {
		return h, nil
	}
	if err := s.Repo.AddCollaborator(ctx, hoagieID, userID); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, hoagieID)
}

// RemoveCollaborator removes userID from the set under the same creator-only
// rule. Removing a user who is not in the set is a no-op success.
func (s *HoagieService) RemoveCollaborator(ctx context.Context, hoagieID, userID, requesterID string) (*entity.Hoagie, error) {
	h, err := s.authorizeCollaboratorChange(ctx, hoagieID, userID, requesterID)
	if err != nil {
		return nil, err
	}
	if userID == h.Creator.ID {
		return h, nil
	}
	if err := s.Repo.RemoveCollaborator(ctx, hoagieID, userID); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, hoagieID)
}

func (s *HoagieService) authorizeCollaboratorChange(ctx context.Context, hoagieID, userID, requesterID string) (*entity.Hoagie, error) {
	if err := validateID(hoagieID, "hoagie id"); err != nil {
		return nil, err
	}
	if err := validateID(userID, "user id"); err != nil {
		return nil, err
	}
	if err := validateID(requesterID, "requester id"); err != nil {
		return nil, err
	}
	h, err := s.Repo.GetByID(ctx, hoagieID)
	if err != nil {
		return nil, err
	}
	if !CanMutateCollaborators(h, requesterID) {
		return nil, apperr.ErrForbidden
	}
	return h, nil
}

// UploadPicture streams an image to object storage and persists its public
// URL as the hoagie's picture reference.
func (s *HoagieService) UploadPicture(ctx context.Context, hoagieID string, r io.Reader, filename, contentType string) (*entity.Hoagie, error) {
	if err := validateID(hoagieID, "hoagie id"); err != nil {
		return nil, err
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return nil, apperr.ErrUnavailable
	}
	if _, err := s.Repo.GetByID(ctx, hoagieID); err != nil {
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("hoagies", hoagieID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return nil, err
	}
	return s.Repo.Update(ctx, hoagieID, repo.UpdateHoagie{Picture: &url})
}

// IncrementCommentCount atomically bumps the hoagie's comment counter. Invoked
// by the comment service after a comment write commits.
func (s *HoagieService) IncrementCommentCount(ctx context.Context, hoagieID string) error {
	return s.Repo.IncrementCommentCount(ctx, hoagieID)
}

// DecrementCommentCount atomically lowers the counter, clamping at zero. A
// clamp means the counter had already drifted; it is logged as an anomaly and
// the operation still succeeds.
func (s *HoagieService) DecrementCommentCount(ctx context.Context, hoagieID string) error {
	clamped, err := s.Repo.DecrementCommentCount(ctx, hoagieID)
	if err != nil {
		return err
	}
	if clamped && s.Logger != nil {
		s.Logger.WithField("hoagie_id", hoagieID).Warn("comment count decrement clamped at zero")
	}
	return nil
}
