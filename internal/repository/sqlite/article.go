package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sakif/news-service/internal/apperror"
	"github.com/sakif/news-service/internal/model"
	"github.com/sakif/news-service/internal/repository"
)

// COMPILE-TIME INTERFACE CHECK:
// `var _ X = (*Y)(nil)` assigns a nil *DB to the interface type. If *DB ever
// stops implementing repository.ArticleRepository, the compiler errors here —
// immediately, instead of at some distant call site.
var _ repository.ArticleRepository = (*DB)(nil)

// Create inserts a new article and fills in the store-assigned id and
// creation timestamp on the passed struct.
//
// The id comes from the AUTOINCREMENT primary key via LastInsertId — the
// application never generates ids, so the column is the single source of
// id uniqueness. created_date is written exactly once here and no other
// statement in this package touches it again. modified_date starts NULL
// and stays NULL until the first Update.
//
// The ? placeholders are filled in order by the driver, which handles
// escaping — never build SQL with string concatenation.
func (db *DB) Create(ctx context.Context, article *model.Article) error {
	article.CreatedDate = db.now()
	article.ModifiedDate = nil

	result, err := db.conn.ExecContext(ctx,
		`INSERT INTO news (title, content, author, created_date)
		 VALUES (?, ?, ?, ?)`,
		article.Title,
		article.Content,
		article.Author,
		article.CreatedDate,
	)
	if err != nil {
		return apperror.Storage("inserting article", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperror.Storage("reading inserted article id", err)
	}
	article.ID = id

	return nil
}

// GetByID retrieves a single article by its id.
//
// sql.ErrNoRows is not really an error — it just means no matching row
// exists. It gets translated to the domain's not-found error so the handler
// knows to answer 404. This is the only operation that reports a missing
// row; see Update and Delete.
func (db *DB) GetByID(ctx context.Context, id int64) (*model.Article, error) {
	var (
		article  model.Article
		modified sql.NullString
	)

	err := db.conn.QueryRowContext(ctx,
		`SELECT id, title, content, author, created_date, modified_date
		 FROM news
		 WHERE id = ?`,
		id,
	).Scan(
		&article.ID,
		&article.Title,
		&article.Content,
		&article.Author,
		&article.CreatedDate,
		&modified,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound()
		}
		return nil, apperror.Storage(fmt.Sprintf("getting article %d", id), err)
	}

	// NULL modified_date stays a nil pointer so it serializes as JSON null.
	if modified.Valid {
		article.ModifiedDate = &modified.String
	}

	return &article, nil
}

// List retrieves every article, newest created_date first.
//
// The timestamp layout sorts lexicographically, so ORDER BY on the text
// column gives chronological order; rows created within the same second tie
// and their relative order is whatever the store returns.
//
// The slice starts at length zero (not nil) so an empty table serializes as
// a JSON [] rather than null.
func (db *DB) List(ctx context.Context) ([]model.Article, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, title, content, author, created_date, modified_date
		 FROM news
		 ORDER BY created_date DESC`,
	)
	if err != nil {
		return nil, apperror.Storage("listing articles", err)
	}
	// sql.Rows holds a pool connection until closed — never skip this.
	defer rows.Close()

	articles := make([]model.Article, 0)
	for rows.Next() {
		var (
			a        model.Article
			modified sql.NullString
		)
		if err := rows.Scan(
			&a.ID, &a.Title, &a.Content, &a.Author, &a.CreatedDate, &modified,
		); err != nil {
			return nil, apperror.Storage("scanning article row", err)
		}
		if modified.Valid {
			a.ModifiedDate = &modified.String
		}
		articles = append(articles, a)
	}
	// rows.Err() catches failures that happened DURING iteration.
	if err := rows.Err(); err != nil {
		return nil, apperror.Storage("iterating articles", err)
	}

	return articles, nil
}

// Update rewrites title, content, and modified_date for the row matching
// article.ID. author and created_date are deliberately not in the SET list —
// they are immutable after creation.
//
// NO ROWS-AFFECTED CHECK, ON PURPOSE:
// An UPDATE whose WHERE clause matches nothing is reported as success.
// Callers observe the same "updated" outcome whether or not the id exists;
// only GetByID distinguishes missing rows. Adding a not-found signal here
// would be an externally visible behavior change.
func (db *DB) Update(ctx context.Context, article *model.Article) error {
	now := db.now()
	article.ModifiedDate = &now

	_, err := db.conn.ExecContext(ctx,
		`UPDATE news
		 SET title = ?, content = ?, modified_date = ?
		 WHERE id = ?`,
		article.Title,
		article.Content,
		now,
		article.ID,
	)
	if err != nil {
		return apperror.Storage(fmt.Sprintf("updating article %d", article.ID), err)
	}

	return nil
}

// Delete removes the row with the matching id, if present. A hard delete —
// no tombstone. Same contract as Update: deleting a nonexistent id is a
// silent no-op success.
func (db *DB) Delete(ctx context.Context, id int64) error {
	_, err := db.conn.ExecContext(ctx,
		`DELETE FROM news WHERE id = ?`,
		id,
	)
	if err != nil {
		return apperror.Storage(fmt.Sprintf("deleting article %d", id), err)
	}

	return nil
}
