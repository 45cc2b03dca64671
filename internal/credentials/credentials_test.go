package credentials

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "nested", "credentials.toml"))
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}
	return s
}

func TestToken_MissingFileIsUnauthenticated(t *testing.T) {
	s := newStore(t)
	tok, err := s.Token()
	if err != nil {
		t.Fatalf("Token returned error: %v", err)
	}
	if tok != "" {
		t.Fatalf("Token = %q, want empty", tok)
	}
}

func TestSaveTokenClear(t *testing.T) {
	s := newStore(t)

	if err := s.Save("  abc.def  "); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	info, err := os.Stat(s.Path())
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("mode = %o, want 600", perm)
	}
	if tok, err := s.Token(); err != nil || tok != "abc.def" {
		t.Fatalf("Token = %q, %v, want abc.def", tok, err)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("second Clear returned error: %v", err)
	}
	if tok, _ := s.Token(); tok != "" {
		t.Fatalf("Token after Clear = %q, want empty", tok)
	}
}

func TestToken_RereadsFile(t *testing.T) {
	s := newStore(t)
	if err := s.Save("first"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := os.WriteFile(s.Path(), []byte("token = \"second\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if tok, _ := s.Token(); tok != "second" {
		t.Fatalf("Token = %q, want second", tok)
	}
}

func TestSave_EmptyToken(t *testing.T) {
	if err := newStore(t).Save("   "); !errors.Is(err, ErrEmptyToken) {
		t.Fatalf("Save(blank) error = %v, want ErrEmptyToken", err)
	}
}

func TestToken_InvalidFile(t *testing.T) {
	s := newStore(t)
	if err := os.MkdirAll(filepath.Dir(s.Path()), 0o700); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(s.Path(), []byte("token = ["), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := s.Token(); err == nil {
		t.Fatalf("Token returned nil error for invalid TOML")
	}
}

func TestInspect_JWT(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	iat := exp.Add(-2 * time.Hour)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "editor@example.com",
		"exp": exp.Unix(),
		"iat": iat.Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	claims, err := Inspect(signed)
	if err != nil {
		t.Fatalf("Inspect returned error: %v", err)
	}
	if claims.Subject != "editor@example.com" {
		t.Fatalf("Subject = %q", claims.Subject)
	}
	if !claims.ExpiresAt.Equal(exp) || !claims.IssuedAt.Equal(iat) {
		t.Fatalf("times = %v / %v, want %v / %v", claims.IssuedAt, claims.ExpiresAt, iat, exp)
	}
	if claims.Expired(time.Now()) {
		t.Fatalf("Expired(now) = true, want false")
	}
	if !claims.Expired(exp) || !claims.Expired(exp.Add(time.Minute)) {
		t.Fatalf("Expired at or after expiry = false, want true")
	}
}

func TestInspect_Opaque(t *testing.T) {
	_, err := Inspect("opaque-session-token")
	if !errors.Is(err, ErrNotJWT) {
		t.Fatalf("Inspect error = %v, want ErrNotJWT", err)
	}
	if (Claims{}).Expired(time.Now()) {
		t.Fatalf("Claims without expiry reported expired")
	}
}
