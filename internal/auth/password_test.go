package auth

import (
	"strings"
	"testing"
)

// =========================================================================
// HELPER
// =========================================================================

// newTestPasswordService returns a PasswordService with bcrypt cost 4.
// Cost 4 is the minimum allowed by the bcrypt library. This makes tests
// run in milliseconds instead of ~250ms each.
func newTestPasswordService() *PasswordService {
	return newPasswordServiceWithCost(4)
}

// =========================================================================
// HASH TESTS
// =========================================================================

func TestHash_ProducesBcryptString(t *testing.T) {
	ps := newTestPasswordService()

	hash, err := ps.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	// bcrypt hashes start with the version marker "$2"
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("Hash() = %q, doesn't look like a bcrypt hash", hash)
	}
}

func TestHash_SamePasswordDifferentHashes(t *testing.T) {
	ps := newTestPasswordService()

	// A fresh random salt per call means two hashes of the same plaintext
	// must differ — if they didn't, the salt isn't doing its job.
	h1, _ := ps.Hash("secret1")
	h2, _ := ps.Hash("secret1")

	if h1 == h2 {
		t.Error("Hash() returned identical hashes for the same plaintext — salt not random?")
	}
}

func TestHash_TooLong(t *testing.T) {
	ps := newTestPasswordService()

	// 73 bytes exceeds bcrypt's 72-byte limit
	_, err := ps.Hash(strings.Repeat("a", 73))
	if err == nil {
		t.Fatal("Hash() should reject passwords longer than 72 bytes")
	}
}

func TestHash_ExactlyAtLimit(t *testing.T) {
	ps := newTestPasswordService()

	if _, err := ps.Hash(strings.Repeat("a", 72)); err != nil {
		t.Fatalf("Hash() should accept a 72-byte password, got error: %v", err)
	}
}

// =========================================================================
// VERIFY TESTS
// =========================================================================

func TestVerify_CorrectPassword(t *testing.T) {
	ps := newTestPasswordService()

	hash, err := ps.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if err := ps.Verify(hash, "secret1"); err != nil {
		t.Errorf("Verify() with correct password error = %v", err)
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	ps := newTestPasswordService()

	hash, _ := ps.Hash("secret1")

	if err := ps.Verify(hash, "wrong"); err == nil {
		t.Error("Verify() should fail for the wrong password")
	}
}

func TestVerify_EmptyPassword(t *testing.T) {
	ps := newTestPasswordService()

	hash, _ := ps.Hash("secret1")

	if err := ps.Verify(hash, ""); err == nil {
		t.Error("Verify() should fail for an empty password")
	}
}

func TestVerify_CorruptHash(t *testing.T) {
	ps := newTestPasswordService()

	// A damaged database row must degrade to a failed login, not a panic.
	if err := ps.Verify("not-a-bcrypt-hash", "secret1"); err == nil {
		t.Error("Verify() should fail for a corrupt stored hash")
	}
}
