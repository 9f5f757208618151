package sqlite

import (
	"context"
	"fmt"

	"github.com/sakif/news-service/internal/auth"
	"github.com/sakif/news-service/internal/model"
)

// The seed credential. The digest of seedPassword is what ends up in the
// password column — the plaintext never leaves this file. Deployments that
// care about this row should replace it out of band; seeding only happens
// when the table is empty, so a replaced row survives restarts.
const (
	seedUsername = "Frank"
	seedPassword = "BAxd0800..??"
)

// seedAdmin inserts the default credential when the admins table is empty.
//
// The emptiness check (not an upsert) is what makes seeding idempotent AND
// non-destructive: running it against a table that already has rows — seeded
// or operator-managed — changes nothing.
func (db *DB) seedAdmin() error {
	var count int
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM admins`).Scan(&count); err != nil {
		return fmt.Errorf("counting admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	_, err := db.conn.Exec(
		`INSERT INTO admins (username, password) VALUES (?, ?)`,
		seedUsername,
		auth.HashPassword(seedPassword),
	)
	if err != nil {
		return fmt.Errorf("inserting seed admin: %w", err)
	}

	return nil
}

// Admins returns every credential row. No request handler uses this — the
// admins table is write-once seed data as far as the HTTP surface is
// concerned — but operational tooling and tests need to inspect what the
// initializer produced.
func (db *DB) Admins(ctx context.Context) ([]model.AdminCredential, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, username, password FROM admins ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing admins: %w", err)
	}
	defer rows.Close()

	var admins []model.AdminCredential
	for rows.Next() {
		var a model.AdminCredential
		if err := rows.Scan(&a.ID, &a.Username, &a.Password); err != nil {
			return nil, fmt.Errorf("sqlite: scanning admin row: %w", err)
		}
		admins = append(admins, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating admins: %w", err)
	}

	return admins, nil
}
