package auth

import (
	"BookShelf/internal/app_errors"
	"BookShelf/internal/models"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func testManager(ttl time.Duration, at time.Time) *JWTManager {
	m := NewJWTManager("super-secret", "BookShelf", "BookShelfClients", ttl)
	m.now = func() time.Time { return at }
	return m
}

func TestGenerateAndParse_RoundTrip(t *testing.T) {
	t.Parallel()

	t0 := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m := testManager(30*time.Minute, t0)
	userID := uuid.New()

	tok, err := m.Generate(userID, "alice", models.RoleModerator)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	// Still inside the validity window.
	m.now = func() time.Time { return t0.Add(30*time.Minute - time.Second) }
	claims, err := m.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("user id mismatch: got %s want %s", claims.UserID, userID)
	}
	if claims.Username() != "alice" {
		t.Fatalf("username mismatch: got %q want %q", claims.Username(), "alice")
	}
	if claims.Role != models.RoleModerator {
		t.Fatalf("role mismatch: got %q want %q", claims.Role, models.RoleModerator)
	}
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	t0 := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m := testManager(30*time.Minute, t0)

	tok, err := m.Generate(uuid.New(), "alice", models.RoleUser)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	m.now = func() time.Time { return t0.Add(30*time.Minute + time.Second) }
	_, err = m.Parse(tok)
	if !errors.Is(err, app_errors.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	t0 := time.Now()
	m := testManager(time.Hour, t0)
	tok, err := m.Generate(uuid.New(), "bob", models.RoleUser)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	other := NewJWTManager("different-secret", "BookShelf", "BookShelfClients", time.Hour)
	_, err = other.Parse(tok)
	if !errors.Is(err, app_errors.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for wrong secret, got %v", err)
	}
}

func TestParse_IssuerMismatch(t *testing.T) {
	t.Parallel()

	t0 := time.Now()
	m := testManager(time.Hour, t0)
	tok, err := m.Generate(uuid.New(), "bob", models.RoleUser)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	other := NewJWTManager("super-secret", "SomeoneElse", "BookShelfClients", time.Hour)
	_, err = other.Parse(tok)
	if !errors.Is(err, app_errors.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for issuer mismatch, got %v", err)
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("k", "", "", time.Hour)
	_, err := m.Parse("not.a.jwt")
	if !errors.Is(err, app_errors.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for malformed token, got %v", err)
	}
}
