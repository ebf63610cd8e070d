package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"

	"github.com/hoagiehub/hoagie-api/internal/domain/apperr"
)

func newUserService(t *testing.T) (*UserService, *mockUserRepo) {
	t.Helper()
	repo := newMockUserRepo()
	logger, _ := test.NewNullLogger()
	svc := NewUserService(repo, logger, nil, false, false, "")
	return svc, repo
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, "Ada", "ada@example.com", "secret123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.ID == "" {
		t.Fatal("expected assigned id")
	}

	stored, err := repo.GetByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if stored.Password == "secret123" {
		t.Fatal("plaintext password stored")
	}
	if !strings.HasPrefix(stored.Password, "$2") {
		t.Fatalf("expected bcrypt hash, got %q", stored.Password)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Ada", "ada@example.com", "secret123"); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, err := svc.Register(ctx, "Other Ada", "ada@example.com", "different")
	if !errors.Is(err, apperr.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestRegisterRejectsEmptyFields(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	cases := []struct {
		name, email, password string
	}{
		{"", "a@example.com", "secret123"},
		{"   ", "a@example.com", "secret123"},
		{"Ada", "", "secret123"},
		{"Ada", "a@example.com", ""},
	}
	for _, c := range cases {
		if _, err := svc.Register(ctx, c.name, c.email, c.password); !errors.Is(err, apperr.ErrInvalidInput) {
			t.Errorf("Register(%q,%q,%q): expected ErrInvalidInput, got %v", c.name, c.email, c.password, err)
		}
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Ada", "ada@example.com", "secret123"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, err := svc.Login(ctx, "ada@example.com", "wrong")
	if !errors.Is(err, apperr.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newUserService(t)
	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	if !errors.Is(err, apperr.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginSuccess(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, "Ada", "ada@example.com", "secret123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	u, err := svc.Login(ctx, "ada@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.ID != reg.ID {
		t.Fatalf("expected user %s, got %s", reg.ID, u.ID)
	}
}

func TestLoginTestBypass(t *testing.T) {
	repo := newMockUserRepo()
	logger, _ := test.NewNullLogger()
	svc := NewUserService(repo, logger, nil, false, true, "test@example.com")
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Test User", "test@example.com", "realpassword"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Bypass: any password works for the configured email.
	u, err := svc.Login(ctx, "test@example.com", "totally-wrong")
	if err != nil {
		t.Fatalf("bypass Login: %v", err)
	}
	if u.Email != "test@example.com" {
		t.Fatalf("unexpected user %q", u.Email)
	}

	// The bypass is scoped to that one email.
	if _, err := svc.Register(ctx, "Ada", "ada@example.com", "secret123"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Login(ctx, "ada@example.com", "totally-wrong"); !errors.Is(err, apperr.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for other account, got %v", err)
	}
}

func TestLoginTestBypassRequiresAccount(t *testing.T) {
	repo := newMockUserRepo()
	logger, _ := test.NewNullLogger()
	svc := NewUserService(repo, logger, nil, false, true, "test@example.com")

	// No such account seeded; the bypass never invents one.
	_, err := svc.Login(context.Background(), "test@example.com", "anything")
	if !errors.Is(err, apperr.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSearchQueryTooShort(t *testing.T) {
	svc, _ := newUserService(t)
	// "é" is one character in two bytes; the minimum counts characters.
	for _, q := range []string{"", "a", " a ", "  ", "é"} {
		if _, err := svc.Search(context.Background(), q, 10); !errors.Is(err, apperr.ErrInvalidInput) {
			t.Errorf("Search(%q): expected ErrInvalidInput, got %v", q, err)
		}
	}
}

func TestSearchMultibyteQuery(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()
	if _, err := svc.Register(ctx, "Zoé", "zoe@example.com", "secret123"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	res, err := svc.Search(ctx, "oé", 10)
	if err != nil {
		t.Fatalf("Search(two-rune query): %v", err)
	}
	if len(res) != 1 || res[0].Name != "Zoé" {
		t.Fatalf("expected [Zoé], got %+v", res)
	}
}

func TestSearchMatchesSubstring(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	for _, name := range []string{"Alice Smith", "Bob Smithers", "Carol Jones"} {
		email := strings.ReplaceAll(strings.ToLower(name), " ", ".") + "@example.com"
		if _, err := svc.Register(ctx, name, email, "secret123"); err != nil {
			t.Fatalf("Register %s: %v", name, err)
		}
	}

	res, err := svc.Search(ctx, "smith", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(res) != 2 {
		t.Fatalf("expected 2 results, got %d", len(res))
	}
	for _, r := range res {
		if !strings.Contains(strings.ToLower(r.Name), "smith") {
			t.Errorf("unexpected result %q", r.Name)
		}
	}
}

func TestSearchLimitClamped(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()
	if _, err := svc.Register(ctx, "Ada", "ada@example.com", "secret123"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	// Oversized and non-positive limits both fall into the supported range.
	if _, err := svc.Search(ctx, "ad", 10000); err != nil {
		t.Fatalf("Search with huge limit: %v", err)
	}
	if _, err := svc.Search(ctx, "ad", -5); err != nil {
		t.Fatalf("Search with negative limit: %v", err)
	}
}

func TestGetByIDMalformed(t *testing.T) {
	svc, _ := newUserService(t)
	_, err := svc.GetByID(context.Background(), "not-a-uuid")
	if !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
