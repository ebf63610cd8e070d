package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/hoagiehub/hoagie-api/internal/domain/apperr"
	"github.com/hoagiehub/hoagie-api/internal/domain/entity"
	repo "github.com/hoagiehub/hoagie-api/internal/domain/repository"
	"github.com/hoagiehub/hoagie-api/pkg/pagination"
)

// reconcileQueueKey is the redis list holding counter adjustments that failed
// after their triggering write committed, for out-of-band reconciliation.
const reconcileQueueKey = "reconcile:comment_count"

// HoagieCounters is the command surface the comment service uses to keep the
// denormalized comment count in sync. The hoagie service implements it; the
// calls are deliberate, observable follow-up commands, not implicit triggers.
type HoagieCounters interface {
	IncrementCommentCount(ctx context.Context, hoagieID string) error
	DecrementCommentCount(ctx context.Context, hoagieID string) error
}

// CommentService owns comment records. Each comment is subordinate to a
// hoagie; creating or deleting one adjusts that hoagie's comment counter as a
// second, non-transactional step. When that step fails the divergence is
// logged and queued for reconciliation, never surfaced to the caller whose
// write already succeeded.
type CommentService struct {
	Repo     repo.CommentRepository
	Counters HoagieCounters
	Logger   *logrus.Logger
	Redis    *redis.Client // optional; reconciliation queue
}

func NewCommentService(r repo.CommentRepository, counters HoagieCounters, logger *logrus.Logger, rdb *redis.Client) *CommentService {
	return &CommentService{Repo: r, Counters: counters, Logger: logger, Redis: rdb}
}

func (s *CommentService) Create(ctx context.Context, text, authorID, hoagieID string) (*entity.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperr.Invalid("text must not be empty")
	}
	if err := validateID(authorID, "author id"); err != nil {
		return nil, err
	}
	if err := validateID(hoagieID, "hoagie id"); err != nil {
		return nil, err
	}
	c, err := s.Repo.Create(ctx, repo.CreateComment{Text: text, AuthorID: authorID, HoagieID: hoagieID})
	if err != nil {
		return nil, err
	}
	if err := s.Counters.IncrementCommentCount(ctx, hoagieID); err != nil {
		s.recordInconsistency(ctx, hoagieID, +1, err)
	}
	return c, nil
}

// List returns a page of comments, newest first, scoped to a hoagie when
// hoagieID is non-empty.
func (s *CommentService) List(ctx context.Context, hoagieID string, page, limit int) ([]entity.Comment, pagination.Meta, error) {
	p := pagination.Normalize(page, limit)
	if hoagieID != "" {
		if err := validateID(hoagieID, "hoagie id"); err != nil {
			return nil, pagination.Meta{}, err
		}
	}
	items, total, err := s.Repo.List(ctx, hoagieID, p.Limit, p.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return items, pagination.NewMeta(p, total), nil
}

func (s *CommentService) Get(ctx context.Context, id string) (*entity.Comment, error) {
	if err := validateID(id, "comment id"); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, id)
}

func (s *CommentService) Update(ctx context.Context, id, text string) (*entity.Comment, error) {
	if err := validateID(id, "comment id"); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperr.Invalid("text must not be empty")
	}
	return s.Repo.UpdateText(ctx, id, text)
}

// Remove deletes a comment and decrements its hoagie's counter. A missing
// comment returns ErrNotFound without touching any counter.
func (s *CommentService) Remove(ctx context.Context, id string) (*entity.Comment, error) {
	if err := validateID(id, "comment id"); err != nil {
		return nil, err
	}
	c, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Counters.DecrementCommentCount(ctx, c.HoagieID); err != nil {
		s.recordInconsistency(ctx, c.HoagieID, -1, err)
	}
	return c, nil
}

// recordInconsistency logs a counter divergence and queues it for out-of-band
// reconciliation. The triggering operation already succeeded from the caller's
// point of view, so this is neither recovered nor fatal.
func (s *CommentService) recordInconsistency(ctx context.Context, hoagieID string, delta int, cause error) {
	if s.Logger != nil {
		s.Logger.WithError(cause).WithFields(logrus.Fields{
			"hoagie_id": hoagieID,
			"delta":     delta,
		}).Error("comment count update failed after comment write; queued for reconciliation")
	}
	if s.Redis == nil {
		return
	}
	b, _ := json.Marshal(map[string]any{
		"hoagie_id": hoagieID,
		"delta":     delta,
		"at":        time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err := s.Redis.LPush(ctx, reconcileQueueKey, b).Err(); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("hoagie_id", hoagieID).Error("reconciliation enqueue failed")
	}
}
