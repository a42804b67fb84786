package utils

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	passwords := []string{"secret1", "correct horse battery staple", "пароль", "p"}

	for _, p := range passwords {
		digest, err := HashPassword(p, bcrypt.MinCost)
		if err != nil {
			t.Fatalf("unexpected error hashing %q: %v", p, err)
		}

		ok, err := VerifyPassword(p, digest)
		if err != nil {
			t.Fatalf("unexpected error verifying %q: %v", p, err)
		}
		if !ok {
			t.Errorf("expected %q to verify against its own digest", p)
		}
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("secret1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := HashPassword("secret1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Error("expected two digests of the same password to differ (fresh salt per call)")
	}
}

func TestHashPassword_Empty(t *testing.T) {
	if _, err := HashPassword("", bcrypt.MinCost); err == nil {
		t.Error("expected error for empty password")
	}
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	digest, err := HashPassword("secret1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ok, err := VerifyPassword("secret2", digest)
	if err != nil {
		t.Fatalf("mismatch must be a false result, not an error: %v", err)
	}
	if ok {
		t.Error("expected mismatching password to fail verification")
	}
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	tests := []struct {
		name   string
		digest string
	}{
		{"empty digest", ""},
		{"not bcrypt", "plainly-not-a-digest"},
		{"truncated", strings.Repeat("$2a$10$abc", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := VerifyPassword("whatever", tt.digest)
			if err == nil {
				t.Error("expected error for malformed digest")
			}
			if ok {
				t.Error("malformed digest must never verify")
			}
		})
	}
}

func TestDummyPasswordDigest_WellFormed(t *testing.T) {
	// the digest itself must be parseable so the timing-equalisation path
	// performs a real bcrypt comparison
	if _, err := bcrypt.Cost([]byte(DummyPasswordDigest)); err != nil {
		t.Fatalf("dummy digest is not a valid bcrypt string: %v", err)
	}
}
