package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("password1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if hash == "password1" {
		t.Fatalf("hash must not equal plaintext")
	}

	if !h.Verify("password1", hash) {
		t.Fatalf("expected matching password to verify")
	}
	if h.Verify("password2", hash) {
		t.Fatalf("expected non-matching password to fail")
	}
}

func TestPasswordHasher_SaltedOutput(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(bcrypt.MinCost)

	h1, err := h.Hash("password1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	h2, err := h.Hash("password1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same plaintext must differ")
	}
}

func TestPasswordHasher_VerifyMalformedHash(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(bcrypt.MinCost)

	if h.Verify("password1", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must not verify")
	}
	if h.Verify("password1", "") {
		t.Fatalf("empty hash must not verify")
	}
}

func TestNewPasswordHasher_CostOutOfRange(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(99)
	hash, err := h.Hash("password1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Fatalf("expected a bcrypt hash, got %q", hash)
	}
}
