package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/mkravets/tasklist/internal/common"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := GenerateToken(42, "alice@example.com", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := ParseToken(tok, secret)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("user id mismatch: got %d want 42", claims.UserID)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("email mismatch: got %q", claims.Email)
	}
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	// valid signature, expiry already elapsed
	tok, err := GenerateToken(1, "a@b.c", secret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ParseToken(tok, secret)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken(1, "a@b.c", []byte("secret-one"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ParseToken(tok, []byte("secret-two"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestParseToken_Malformed(t *testing.T) {
	t.Parallel()

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ParseToken(tok, []byte("secret")); !errors.Is(err, common.ErrInvalidToken) {
			t.Fatalf("token %q: want ErrInvalidToken, got %v", tok, err)
		}
	}
}
