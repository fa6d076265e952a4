package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/ScribeSpace/internal/domain/entity"
)

type IArticleUseCase interface {
	PublishArticle(ctx context.Context, title, content, userID string, tags []string) (*entity.ArticleSummary, error)
	GetArticles(ctx context.Context) ([]*entity.Article, error)
	GetArticleByID(ctx context.Context, articleID string) (*entity.Article, error)
	GetArticlesByUserID(ctx context.Context, userID string) ([]*entity.Article, error)
	GetRecommendations(ctx context.Context, tags []string, excludeArticleID string) ([]*entity.Article, error)
	UpdateImageURL(ctx context.Context, articleID, imageURL string) (*entity.Article, error)
	IncrementViews(ctx context.Context, articleID string) (*entity.Article, error)
}
