package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !VerifyPassword("s3cret", hash) {
		t.Fatal("correct password must verify")
	}
	if VerifyPassword("wrong", hash) {
		t.Fatal("wrong password must not verify")
	}
}

func TestHashPassword_SelfDescribingCost(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("Cost error: %v", err)
	}
	if cost != 10 {
		t.Fatalf("want work factor 10, got %d", cost)
	}
}

func TestVerifyPassword_MalformedHashIsFalseNotError(t *testing.T) {
	t.Parallel()

	for _, h := range []string{"", "garbage", "$2a$xx$broken"} {
		if VerifyPassword("anything", h) {
			t.Fatalf("malformed hash %q must not verify", h)
		}
	}
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same password must differ (random salt)")
	}
}
