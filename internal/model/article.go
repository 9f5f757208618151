// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — similar to classes in other languages,
// but without inheritance. Go favours composition over inheritance.
package model

// Article represents a single news item.
//
// The `json:"..."` tags pin the wire keys to the database column names, so the
// JSON a client sees has exactly the same keys as a SELECT on the news table.
// Field order here is the serialization order — it's part of the contract, not
// something inferred at runtime.
//
// WHY string TIMESTAMPS (not time.Time)?
// created_date and modified_date are stored as "YYYY-MM-DD HH:MM:SS" UTC text
// with second resolution, and clients receive that exact text. Parsing into
// time.Time and re-formatting on every read would add a round-trip that can
// only lose fidelity. The repository owns the format; the model just carries it.
//
// WHY ModifiedDate *string?
// An article that has never been updated has no modified_date — the column is
// NULL and the JSON value must be null, not "". A pointer's nil zero value
// gives us that distinction; encoding/json renders a nil *string as null.
type Article struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Content      string  `json:"content"`
	Author       string  `json:"author"`
	CreatedDate  string  `json:"created_date"`
	ModifiedDate *string `json:"modified_date"`
}
