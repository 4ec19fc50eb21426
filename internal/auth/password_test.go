package auth

import "testing"

func TestHashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher(4)

	hash, err := hasher.Hash("secret123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if !hasher.Verify("secret123", hash) {
		t.Error("expected matching password to verify")
	}
	if hasher.Verify("wrong", hash) {
		t.Error("expected non-matching password to fail verification")
	}
}

func TestHashIsSalted(t *testing.T) {
	hasher := NewPasswordHasher(4)

	first, err := hasher.Hash("secret123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	second, err := hasher.Hash("secret123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password should differ (per-call salt)")
	}
}

func TestInvalidCostFallsBack(t *testing.T) {
	hasher := NewPasswordHasher(99)

	hash, err := hasher.Hash("secret123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if !hasher.Verify("secret123", hash) {
		t.Error("expected fallback-cost hash to verify")
	}
}
