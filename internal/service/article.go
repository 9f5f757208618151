// Package service contains the business logic layer of the application.
//
// THE THREE-LAYER ARCHITECTURE:
//
//	Handler (HTTP layer)     → parses requests, writes responses
//	Service (Business layer) → validates, enforces rules, orchestrates
//	Repository (Data layer)  → reads/writes to the database
//
// The service accepts primitives and returns domain errors — it has zero
// knowledge of HTTP. Handlers translate apperror values to status codes; the
// repository translates SQL outcomes to domain errors. Neither direction
// leaks through this layer.
//
// ArticleService takes a repository.ArticleRepository (interface), NOT a
// *sqlite.DB. Tests pass an in-memory mock; production wiring passes the
// SQLite implementation; this file never imports either.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/news-service/internal/apperror"
	"github.com/sakif/news-service/internal/model"
	"github.com/sakif/news-service/internal/repository"
)

// Fixed validation messages — these exact strings are the 400 response
// bodies, so they are part of the external contract, not just log text.
const (
	msgCreateFieldsRequired = "title, content, author required"
	msgUpdateFieldsRequired = "title and content required"
)

// ArticleService handles the business rules for news articles.
type ArticleService struct {
	repo   repository.ArticleRepository
	logger *slog.Logger
}

// NewArticleService creates an ArticleService. The caller decides which
// repository implementation to inject (SQLite in production, a mock in tests).
func NewArticleService(repo repository.ArticleRepository, logger *slog.Logger) *ArticleService {
	return &ArticleService{
		repo:   repo,
		logger: logger,
	}
}

// List returns all articles, newest first. An empty store yields an empty
// slice, never an error.
func (s *ArticleService) List(ctx context.Context) ([]model.Article, error) {
	articles, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list articles", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing articles: %w", err)
	}
	return articles, nil
}

// GetByID returns the article with the given id, or an error wrapping
// apperror.ErrNotFound when no row matches.
func (s *ArticleService) GetByID(ctx context.Context, id int64) (*model.Article, error) {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		// Not-found is a normal outcome, not a failure worth logging.
		return nil, err
	}
	return article, nil
}

// Create validates and saves a new article, returning it with the
// store-assigned id and creation timestamp filled in.
//
// PRESENCE CHECKS ONLY:
// A missing field and an empty string are the same thing to the caller, and
// that's the entire validation surface — no length limits, no sanitization,
// and deliberately no whitespace trimming (a title of " " is accepted, as it
// always has been).
func (s *ArticleService) Create(ctx context.Context, title, content, author string) (*model.Article, error) {
	if title == "" || content == "" || author == "" {
		return nil, apperror.ValidationFailed(msgCreateFieldsRequired)
	}

	article := &model.Article{
		Title:   title,
		Content: content,
		Author:  author,
	}

	if err := s.repo.Create(ctx, article); err != nil {
		s.logger.Error("failed to create article",
			slog.String("title", title),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating article: %w", err)
	}

	s.logger.Info("article created",
		slog.Int64("id", article.ID),
		slog.String("title", article.Title),
		slog.String("author", article.Author),
	)

	return article, nil
}

// Update rewrites title and content of the article with the given id and
// stamps modified_date. author and created_date are not updatable through
// this interface.
//
// There is no existence check before (or after) the write: an id that
// matches no row makes the UPDATE a no-op and Update still returns nil.
// That asymmetry with GetByID is deliberate — see the repository contract.
func (s *ArticleService) Update(ctx context.Context, id int64, title, content string) error {
	if title == "" || content == "" {
		return apperror.ValidationFailed(msgUpdateFieldsRequired)
	}

	article := &model.Article{
		ID:      id,
		Title:   title,
		Content: content,
	}

	if err := s.repo.Update(ctx, article); err != nil {
		s.logger.Error("failed to update article",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("updating article: %w", err)
	}

	s.logger.Info("article updated", slog.Int64("id", id))
	return nil
}

// Delete removes the article with the given id. Deleting an id that matches
// no row is also a success — same contract as Update.
func (s *ArticleService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete article",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("deleting article: %w", err)
	}

	s.logger.Info("article deleted", slog.Int64("id", id))
	return nil
}
