// Package auth — password digest utilities for the seeded admin credential.
//
// The admins table stores a hex-encoded SHA-256 digest of the password, never
// the plaintext. Existing deployments already carry rows in that format, so the
// digest here must be byte-for-byte reproducible: same input, same stored value.
// That rules out salted schemes like bcrypt, whose output embeds a random salt.
//
// SHA-256 is a fast hash, which makes it a poor choice for passwords an
// attacker might brute-force — and the credential is additionally hardcoded at
// the seeding site. Both issues are flagged for integrators in DESIGN.md; this
// package only reproduces the stored format, it does not endorse it. Nothing in
// the request path verifies against the digest today.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the hex-encoded SHA-256 digest of plaintext.
//
// The output is always 64 lowercase hex characters:
//
//	HashPassword("secret") → "2bb80d537b1da3e38bd30361aa855686bde0eacd7162fef6a25fe97bf527a25b"
//
// hex.EncodeToString produces lowercase, matching the digests already present
// in deployed admins tables.
func HashPassword(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
