package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/sakif/news-service/internal/apperror"
	"github.com/sakif/news-service/internal/model"
	"github.com/sakif/news-service/internal/repository"
)

// =========================================================================
// MOCK REPOSITORY
// =========================================================================
//
// mockArticleRepo implements repository.ArticleRepository in memory. The
// service doesn't know or care which implementation it gets — that's the
// point of programming to the interface. The mock also counts writes so
// validation tests can assert that rejected input never reaches storage.

type mockArticleRepo struct {
	articles map[int64]*model.Article
	nextID   int64
	writes   int   // Create/Update/Delete calls that reached the repo
	failWith error // when set, every call returns this error
}

var _ repository.ArticleRepository = (*mockArticleRepo)(nil)

func newMockRepo() *mockArticleRepo {
	return &mockArticleRepo{articles: make(map[int64]*model.Article)}
}

func (m *mockArticleRepo) List(_ context.Context) ([]model.Article, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	result := make([]model.Article, 0, len(m.articles))
	for _, a := range m.articles {
		result = append(result, *a)
	}
	return result, nil
}

func (m *mockArticleRepo) GetByID(_ context.Context, id int64) (*model.Article, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	article, ok := m.articles[id]
	if !ok {
		return nil, apperror.NotFound()
	}
	result := *article
	return &result, nil
}

func (m *mockArticleRepo) Create(_ context.Context, article *model.Article) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.writes++
	m.nextID++
	article.ID = m.nextID
	article.CreatedDate = "2026-08-28 10:00:00"
	stored := *article
	m.articles[article.ID] = &stored
	return nil
}

func (m *mockArticleRepo) Update(_ context.Context, article *model.Article) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.writes++
	existing, ok := m.articles[article.ID]
	if !ok {
		return nil // matches the real store: no row, no error
	}
	modified := "2026-08-28 11:00:00"
	existing.Title = article.Title
	existing.Content = article.Content
	existing.ModifiedDate = &modified
	return nil
}

func (m *mockArticleRepo) Delete(_ context.Context, id int64) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.writes++
	delete(m.articles, id)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// =========================================================================
// CREATE TESTS
// =========================================================================

func TestCreate_Valid(t *testing.T) {
	repo := newMockRepo()
	svc := NewArticleService(repo, testLogger())

	article, err := svc.Create(context.Background(), "Title", "Content", "Author")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if article.ID <= 0 {
		t.Errorf("Create() id = %d, want positive", article.ID)
	}
	if article.Title != "Title" || article.Content != "Content" || article.Author != "Author" {
		t.Errorf("Create() returned %+v, fields don't match input", article)
	}
}

func TestCreate_MissingFields(t *testing.T) {
	tests := []struct {
		name                   string
		title, content, author string
	}{
		{"empty title", "", "c", "a"},
		{"empty content", "t", "", "a"},
		{"empty author", "t", "c", ""},
		{"all empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockRepo()
			svc := NewArticleService(repo, testLogger())

			_, err := svc.Create(context.Background(), tt.title, tt.content, tt.author)
			if !errors.Is(err, apperror.ErrValidation) {
				t.Fatalf("Create() error = %v, want ErrValidation", err)
			}
			if got := err.Error(); got != "title, content, author required" {
				t.Errorf("message = %q, want %q", got, "title, content, author required")
			}
			// Rejected input must never reach the repository.
			if repo.writes != 0 {
				t.Errorf("repo saw %d writes for invalid input, want 0", repo.writes)
			}
		})
	}
}

func TestCreate_WhitespaceIsNotMissing(t *testing.T) {
	// Presence checks only — a blank-but-nonempty field passes, as it always
	// has for clients of this API.
	repo := newMockRepo()
	svc := NewArticleService(repo, testLogger())

	if _, err := svc.Create(context.Background(), " ", " ", " "); err != nil {
		t.Fatalf("Create() with whitespace fields error = %v, want nil", err)
	}
}

func TestCreate_RepoError(t *testing.T) {
	repo := newMockRepo()
	repo.failWith = apperror.Storage("inserting article", errors.New("disk full"))
	svc := NewArticleService(repo, testLogger())

	_, err := svc.Create(context.Background(), "t", "c", "a")
	if !errors.Is(err, apperror.ErrStorage) {
		t.Errorf("Create() error = %v, want ErrStorage in the chain", err)
	}
}

// =========================================================================
// GET / LIST TESTS
// =========================================================================

func TestGetByID_NotFoundPropagates(t *testing.T) {
	svc := NewArticleService(newMockRepo(), testLogger())

	_, err := svc.GetByID(context.Background(), 404)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestList_Empty(t *testing.T) {
	svc := NewArticleService(newMockRepo(), testLogger())

	articles, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(articles) != 0 {
		t.Errorf("List() returned %d articles, want 0", len(articles))
	}
}

// =========================================================================
// UPDATE TESTS
// =========================================================================

func TestUpdate_Valid(t *testing.T) {
	repo := newMockRepo()
	svc := NewArticleService(repo, testLogger())
	created, _ := svc.Create(context.Background(), "old", "old body", "a")

	if err := svc.Update(context.Background(), created.ID, "new", "new body"); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	updated, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if updated.Title != "new" || updated.Content != "new body" {
		t.Errorf("after update got title=%q content=%q", updated.Title, updated.Content)
	}
	if updated.Author != "a" {
		t.Errorf("Author = %q, want untouched %q", updated.Author, "a")
	}
	if updated.ModifiedDate == nil {
		t.Error("ModifiedDate still nil after update")
	}
}

func TestUpdate_MissingFields(t *testing.T) {
	tests := []struct {
		name           string
		title, content string
	}{
		{"empty title", "", "c"},
		{"empty content", "t", ""},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockRepo()
			svc := NewArticleService(repo, testLogger())

			err := svc.Update(context.Background(), 1, tt.title, tt.content)
			if !errors.Is(err, apperror.ErrValidation) {
				t.Fatalf("Update() error = %v, want ErrValidation", err)
			}
			if got := err.Error(); got != "title and content required" {
				t.Errorf("message = %q, want %q", got, "title and content required")
			}
			if repo.writes != 0 {
				t.Errorf("repo saw %d writes for invalid input, want 0", repo.writes)
			}
		})
	}
}

func TestUpdate_MissingIDSucceeds(t *testing.T) {
	svc := NewArticleService(newMockRepo(), testLogger())

	// No such row — still success, still no error. The write is a no-op.
	if err := svc.Update(context.Background(), 12345, "t", "c"); err != nil {
		t.Errorf("Update() on missing id error = %v, want nil", err)
	}
}

// =========================================================================
// DELETE TESTS
// =========================================================================

func TestDelete(t *testing.T) {
	repo := newMockRepo()
	svc := NewArticleService(repo, testLogger())
	created, _ := svc.Create(context.Background(), "t", "c", "a")

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := svc.GetByID(context.Background(), created.ID); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrNotFound", err)
	}
}

func TestDelete_MissingIDSucceeds(t *testing.T) {
	svc := NewArticleService(newMockRepo(), testLogger())

	if err := svc.Delete(context.Background(), 98765); err != nil {
		t.Errorf("Delete() on missing id error = %v, want nil", err)
	}
}
