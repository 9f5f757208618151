// Package model defines the data structures used throughout the application.
package model

// AdminCredential represents a row in the admins table.
//
// A single row is seeded at startup and nothing in the request path reads it —
// no endpoint performs a login or verifies a password against it. It exists so
// the persisted schema matches deployments that already carry the row; treat it
// as inert data, not as an authentication design.
//
// Password holds a hex-encoded one-way digest, never the plaintext. The struct
// has no JSON tags on purpose: credentials must never end up in a response body,
// and leaving the fields untagged keeps accidental encoding obvious in review.
type AdminCredential struct {
	ID       int64
	Username string // unique across all rows
	Password string // hex digest of the password
}
