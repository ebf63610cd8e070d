package application

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hoagiehub/hoagie-api/internal/domain/apperr"
	"github.com/hoagiehub/hoagie-api/internal/domain/entity"
	repo "github.com/hoagiehub/hoagie-api/internal/domain/repository"
)

// In-memory repositories used by the service tests. They honor the store
// contracts the real postgres implementations provide: unique emails,
// set-semantics collaborator writes and atomic clamped counters.

type mockUserRepo struct {
	mu      sync.Mutex
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byID:    make(map[string]*entity.User),
		byEmail: make(map[string]*entity.User),
	}
}

func (m *mockUserRepo) Create(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byEmail[u.Email]; ok {
		return apperr.ErrDuplicateEmail
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	m.byID[u.ID] = &cp
	m.byEmail[u.Email] = &cp
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byEmail[email]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepo) SearchByName(_ context.Context, query string, limit int) ([]entity.UserSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.UserSummary
	for _, u := range m.byID {
		if strings.Contains(strings.ToLower(u.Name), strings.ToLower(query)) {
			out = append(out, u.Summary())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type mockHoagieRepo struct {
	mu      sync.Mutex
	users   map[string]entity.UserSummary
	hoagies map[string]*entity.Hoagie
	order   []string // creation order, oldest first
}

func newMockHoagieRepo() *mockHoagieRepo {
	return &mockHoagieRepo{
		users:   make(map[string]entity.UserSummary),
		hoagies: make(map[string]*entity.Hoagie),
	}
}

func (m *mockHoagieRepo) addUser(name string) entity.UserSummary {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := entity.UserSummary{ID: uuid.NewString(), Name: name, Email: name + "@example.com"}
	m.users[u.ID] = u
	return u
}

func (m *mockHoagieRepo) Create(_ context.Context, in repo.CreateHoagie) (*entity.Hoagie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	creator, ok := m.users[in.CreatorID]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	h := &entity.Hoagie{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Ingredients:   append([]string(nil), in.Ingredients...),
		Picture:       in.Picture,
		Creator:       creator,
		Collaborators: []entity.UserSummary{},
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	m.hoagies[h.ID] = h
	m.order = append(m.order, h.ID)
	cp := *h
	return &cp, nil
}

func (m *mockHoagieRepo) GetByID(_ context.Context, id string) (*entity.Hoagie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.hoagies[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *h
	cp.Collaborators = append([]entity.UserSummary(nil), h.Collaborators...)
	return &cp, nil
}

func (m *mockHoagieRepo) List(_ context.Context, creatorID string, limit, offset int) ([]entity.Hoagie, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []entity.Hoagie
	for i := len(m.order) - 1; i >= 0; i-- { // newest first
		h := m.hoagies[m.order[i]]
		if h == nil {
			continue
		}
		if creatorID != "" && h.Creator.ID != creatorID {
			continue
		}
		all = append(all, *h)
	}
	total := len(all)
	if offset >= total {
		return []entity.Hoagie{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (m *mockHoagieRepo) Update(_ context.Context, id string, in repo.UpdateHoagie) (*entity.Hoagie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.hoagies[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	if in.Name != nil {
		h.Name = *in.Name
	}
	if in.Ingredients != nil {
		h.Ingredients = append([]string(nil), in.Ingredients...)
	}
	if in.Picture != nil {
		h.Picture = *in.Picture
	}
	if in.Collaborators != nil {
		set := make([]entity.UserSummary, 0, len(in.Collaborators))
		for _, uid := range in.Collaborators {
			u, ok := m.users[uid]
			if !ok {
				return nil, apperr.ErrNotFound
			}
			set = append(set, u)
		}
		h.Collaborators = set
	}
	h.UpdatedAt = time.Now()
	cp := *h
	cp.Collaborators = append([]entity.UserSummary(nil), h.Collaborators...)
	return &cp, nil
}

func (m *mockHoagieRepo) Delete(_ context.Context, id string) (*entity.Hoagie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.hoagies[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	delete(m.hoagies, id)
	return h, nil
}

func (m *mockHoagieRepo) AddCollaborator(_ context.Context, hoagieID, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.hoagies[hoagieID]
	if !ok {
		return apperr.ErrNotFound
	}
	u, ok := m.users[userID]
	if !ok {
		return apperr.ErrNotFound
	}
	for _, c := range h.Collaborators {
		if c.ID == userID {
			return nil // add-if-absent
		}
	}
	h.Collaborators = append(h.Collaborators, u)
	return nil
}

func (m *mockHoagieRepo) RemoveCollaborator(_ context.Context, hoagieID, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.hoagies[hoagieID]
	if !ok {
		return apperr.ErrNotFound
	}
	out := h.Collaborators[:0]
	for _, c := range h.Collaborators {
		if c.ID != userID {
			out = append(out, c)
		}
	}
	h.Collaborators = out
	return nil
}

func (m *mockHoagieRepo) IncrementCommentCount(_ context.Context, hoagieID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.hoagies[hoagieID]
	if !ok {
		return apperr.ErrNotFound
	}
	h.CommentCount++
	return nil
}

func (m *mockHoagieRepo) DecrementCommentCount(_ context.Context, hoagieID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.hoagies[hoagieID]
	if !ok {
		return false, apperr.ErrNotFound
	}
	if h.CommentCount == 0 {
		return true, nil
	}
	h.CommentCount--
	return false, nil
}

type mockCommentRepo struct {
	mu       sync.Mutex
	comments map[string]*entity.Comment
	order    []string
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{comments: make(map[string]*entity.Comment)}
}

func (m *mockCommentRepo) Create(_ context.Context, in repo.CreateComment) (*entity.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := &entity.Comment{
		ID:        uuid.NewString(),
		Text:      in.Text,
		Author:    entity.UserSummary{ID: in.AuthorID},
		HoagieID:  in.HoagieID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	m.comments[c.ID] = c
	m.order = append(m.order, c.ID)
	cp := *c
	return &cp, nil
}

func (m *mockCommentRepo) GetByID(_ context.Context, id string) (*entity.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.comments[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockCommentRepo) List(_ context.Context, hoagieID string, limit, offset int) ([]entity.Comment, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []entity.Comment
	for i := len(m.order) - 1; i >= 0; i-- {
		c := m.comments[m.order[i]]
		if c == nil {
			continue
		}
		if hoagieID != "" && c.HoagieID != hoagieID {
			continue
		}
		all = append(all, *c)
	}
	total := len(all)
	if offset >= total {
		return []entity.Comment{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (m *mockCommentRepo) UpdateText(_ context.Context, id, text string) (*entity.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.comments[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	c.Text = text
	c.UpdatedAt = time.Now()
	cp := *c
	return &cp, nil
}

func (m *mockCommentRepo) Delete(_ context.Context, id string) (*entity.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.comments[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	delete(m.comments, id)
	return c, nil
}

// failingCounters simulates the counter step failing after the comment write
// committed.
type failingCounters struct {
	err   error
	incs  int
	decs  int
	mu    sync.Mutex
	calls []string
}

func (f *failingCounters) IncrementCommentCount(context.Context, string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.incs++
	f.calls = append(f.calls, "inc")
	return f.err
}

func (f *failingCounters) DecrementCommentCount(context.Context, string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.decs++
	f.calls = append(f.calls, "dec")
	return f.err
}
