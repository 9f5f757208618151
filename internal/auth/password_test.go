package auth

import (
	"strings"
	"testing"
)

func TestHashPassword_KnownVector(t *testing.T) {
	// Fixed vector: sha256("secret"), lowercase hex. If this ever changes,
	// seeded rows in existing databases stop matching.
	got := HashPassword("secret")
	want := "2bb80d537b1da3e38bd30361aa855686bde0eacd7162fef6a25fe97bf527a25b"

	if got != want {
		t.Errorf("HashPassword(%q) = %q, want %q", "secret", got, want)
	}
}

func TestHashPassword_Deterministic(t *testing.T) {
	// Unlike salted schemes, the digest must be reproducible — it's compared
	// against values already persisted in the admins table.
	hash1 := HashPassword("same-password")
	hash2 := HashPassword("same-password")

	if hash1 != hash2 {
		t.Errorf("HashPassword() not deterministic: %q != %q", hash1, hash2)
	}
}

func TestHashPassword_OutputShape(t *testing.T) {
	hash := HashPassword("anything at all")

	if len(hash) != 64 {
		t.Errorf("digest length = %d, want 64", len(hash))
	}
	if hash != strings.ToLower(hash) {
		t.Errorf("digest %q contains uppercase characters", hash)
	}
}

func TestHashPassword_EmptyInput(t *testing.T) {
	// Even the empty string hashes to a full-length digest.
	hash := HashPassword("")

	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if hash != want {
		t.Errorf("HashPassword(\"\") = %q, want %q", hash, want)
	}
}
