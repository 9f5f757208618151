package repository

import (
	"context"

	"github.com/sakif/news-service/internal/model"
)

// ArticleRepository is the storage contract for news articles.
//
// Create fills in the store-assigned ID and the creation timestamp on the
// passed article. Update touches title, content, and the modification
// timestamp of the row matching article.ID and succeeds even when no row
// matches; Delete behaves the same way. Only GetByID reports a missing row.
type ArticleRepository interface {
	List(ctx context.Context) ([]model.Article, error)
	GetByID(ctx context.Context, id int64) (*model.Article, error)
	Create(ctx context.Context, article *model.Article) error
	Update(ctx context.Context, article *model.Article) error
	Delete(ctx context.Context, id int64) error
}
