package contract

import (
	"context"

	"github.com/mikiasgoitom/ScribeSpace/internal/domain/entity"
)

// IArticleRepository provides methods for managing article data in the database.
// Every read returns articles with their joined tag names attached.
type IArticleRepository interface {
	CreateArticle(ctx context.Context, article *entity.Article) error
	GetArticles(ctx context.Context) ([]*entity.Article, error)
	GetArticleByID(ctx context.Context, articleID string) (*entity.Article, error)
	GetArticlesByUserID(ctx context.Context, userID string) ([]*entity.Article, error)
	// GetArticlesByTagNames returns at most limit articles carrying at least
	// one of the given tag names, never the excluded article.
	GetArticlesByTagNames(ctx context.Context, tagNames []string, excludeArticleID string, limit int) ([]*entity.Article, error)
	UpdateImageURL(ctx context.Context, articleID, imageURL string) (*entity.Article, error)
	// IncrementViews atomically adds one to the view count and returns the updated article.
	IncrementViews(ctx context.Context, articleID string) (*entity.Article, error)
}
