package contract

import (
	"context"

	"github.com/mikiasgoitom/ScribeSpace/internal/domain/entity"
)

// IArticleCache defines caching operations for articles.
type IArticleCache interface {
	// Detail (by id)
	GetArticle(ctx context.Context, articleID string) (*entity.Article, bool, error)
	SetArticle(ctx context.Context, article *entity.Article) error
	InvalidateArticle(ctx context.Context, articleID string) error

	// Unfiltered list
	GetArticleList(ctx context.Context) ([]*entity.Article, bool, error)
	SetArticleList(ctx context.Context, articles []*entity.Article) error
	InvalidateArticleList(ctx context.Context) error
}
