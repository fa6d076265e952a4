package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/ScribeSpace/internal/domain/apperror"
	"github.com/mikiasgoitom/ScribeSpace/internal/domain/contract"
	"github.com/mikiasgoitom/ScribeSpace/internal/domain/entity"
	"github.com/mikiasgoitom/ScribeSpace/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/ScribeSpace/internal/usecase/contract"
)

// ArticleUseCase implements the IArticleUseCase interface
type ArticleUseCase struct {
	articleRepo  contract.IArticleRepository
	tagRepo      contract.ITagRepository
	uuidgen      contract.IUUIDGenerator
	logger       usecasecontract.IAppLogger
	articleCache contract.IArticleCache
	now          func() time.Time
}

// NewArticleUseCase creates a new instance of ArticleUseCase
func NewArticleUseCase(articleRepo contract.IArticleRepository, tagRepo contract.ITagRepository, uuidgen contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *ArticleUseCase {
	return &ArticleUseCase{
		articleRepo: articleRepo,
		tagRepo:     tagRepo,
		uuidgen:     uuidgen,
		logger:      logger,
		now:         time.Now,
	}
}

// check if ArticleUseCase implements the IArticleUseCase
var _ usecasecontract.IArticleUseCase = (*ArticleUseCase)(nil)

// SetArticleCache enables the read cache. Without one every read hits the store.
func (uc *ArticleUseCase) SetArticleCache(cache contract.IArticleCache) {
	uc.articleCache = cache
}

// PublishArticle stores the article, then resolves and links each tag in the
// order given. A tag failure leaves the article stored and returns
// apperror.ErrPartialTagging naming it.
func (uc *ArticleUseCase) PublishArticle(ctx context.Context, title, content, userID string, tags []string) (*entity.ArticleSummary, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is required: %w", apperror.ErrValidation)
	}
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("userId is required: %w", apperror.ErrValidation)
	}
	if tags == nil {
		tags = []string{}
	}

	now := uc.now().UTC()
	article := &entity.Article{
		ID:        uc.uuidgen.NewUUID(),
		Title:     title,
		Content:   content,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
		Views:     0,
	}

	if err := uc.articleRepo.CreateArticle(ctx, article); err != nil {
		uc.logger.Errorf("failed to create article: %v", err)
		metrics.RecordPublish("error")
		return nil, err
	}
	// after the links are written, on success and on partial tagging alike
	defer uc.invalidateList(ctx)

	for _, name := range tags {
		tagID, err := uc.tagRepo.ResolveTagID(ctx, name)
		if err == nil {
			err = uc.tagRepo.LinkTagToArticle(ctx, article.ID, tagID)
		}
		if err != nil {
			uc.logger.Errorf("article %s stored but tag %q failed: %v", article.ID, name, err)
			metrics.RecordPublish("partial")
			return nil, fmt.Errorf("%w (article %s, tag %q): %v", apperror.ErrPartialTagging, article.ID, name, err)
		}
	}

	metrics.RecordPublish("ok")
	uc.logger.Infof("article published id=%s user=%s tags=%d", article.ID, userID, len(tags))
	return &entity.ArticleSummary{
		ArticleID: article.ID,
		Title:     article.Title,
		Content:   article.Content,
		UserID:    article.UserID,
		Tags:      tags,
		CreatedAt: article.CreatedAt,
	}, nil
}

// GetArticles returns every article with its tags.
func (uc *ArticleUseCase) GetArticles(ctx context.Context) ([]*entity.Article, error) {
	if uc.articleCache != nil {
		start := time.Now()
		cached, found, err := uc.articleCache.GetArticleList(ctx)
		elapsed := time.Since(start)
		if err == nil && found {
			uc.logger.Debugf("cache hit: articles list took=%s", elapsed)
			return cached, nil
		}
		if err != nil {
			uc.logger.Warningf("cache error: articles list err=%v took=%s", err, elapsed)
		}
	}

	articles, err := uc.articleRepo.GetArticles(ctx)
	if err != nil {
		return nil, err
	}

	if uc.articleCache != nil {
		if err := uc.articleCache.SetArticleList(ctx, articles); err != nil {
			uc.logger.Warningf("cache set failed: articles list err=%v", err)
		}
	}
	return articles, nil
}

// GetArticleByID returns one article or an error wrapping apperror.ErrNotFound.
func (uc *ArticleUseCase) GetArticleByID(ctx context.Context, articleID string) (*entity.Article, error) {
	if articleID == "" {
		return nil, fmt.Errorf("article id is required: %w", apperror.ErrValidation)
	}

	if uc.articleCache != nil {
		cached, found, err := uc.articleCache.GetArticle(ctx, articleID)
		if err == nil && found {
			uc.logger.Debugf("cache hit: article id=%s", articleID)
			return cached, nil
		}
		if err != nil {
			uc.logger.Warningf("cache error: article id=%s err=%v", articleID, err)
		}
	}

	article, err := uc.articleRepo.GetArticleByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	if uc.articleCache != nil {
		if err := uc.articleCache.SetArticle(ctx, article); err != nil {
			uc.logger.Warningf("cache set failed: article id=%s err=%v", articleID, err)
		}
	}
	return article, nil
}

// GetArticlesByUserID returns the user's articles; an unknown user yields an
// empty list.
func (uc *ArticleUseCase) GetArticlesByUserID(ctx context.Context, userID string) ([]*entity.Article, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required: %w", apperror.ErrValidation)
	}
	return uc.articleRepo.GetArticlesByUserID(ctx, userID)
}

// GetRecommendations returns up to entity.MaxRecommendations articles sharing
// a tag with tags, never excludeArticleID itself.
func (uc *ArticleUseCase) GetRecommendations(ctx context.Context, tags []string, excludeArticleID string) ([]*entity.Article, error) {
	if excludeArticleID == "" {
		return nil, fmt.Errorf("excludeArticleID is required: %w", apperror.ErrValidation)
	}

	names := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != "" {
			names = append(names, t)
		}
	}
	if len(names) == 0 {
		return []*entity.Article{}, nil
	}

	articles, err := uc.articleRepo.GetArticlesByTagNames(ctx, names, excludeArticleID, entity.MaxRecommendations)
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		uc.logger.Debugf("no articles found matching tags %v", names)
	}
	return articles, nil
}

// UpdateImageURL sets the article's image and returns the updated article.
func (uc *ArticleUseCase) UpdateImageURL(ctx context.Context, articleID, imageURL string) (*entity.Article, error) {
	if articleID == "" {
		return nil, fmt.Errorf("article id is required: %w", apperror.ErrValidation)
	}
	if strings.TrimSpace(imageURL) == "" {
		return nil, fmt.Errorf("image_url is required: %w", apperror.ErrValidation)
	}

	article, err := uc.articleRepo.UpdateImageURL(ctx, articleID, imageURL)
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx, articleID)
	return article, nil
}

// IncrementViews adds one view and returns the updated article.
func (uc *ArticleUseCase) IncrementViews(ctx context.Context, articleID string) (*entity.Article, error) {
	if articleID == "" {
		return nil, fmt.Errorf("article id is required: %w", apperror.ErrValidation)
	}

	article, err := uc.articleRepo.IncrementViews(ctx, articleID)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			uc.logger.Errorf("failed to increment views for article %s: %v", articleID, err)
		}
		return nil, err
	}
	metrics.RecordView()
	uc.invalidate(ctx, articleID)
	return article, nil
}

func (uc *ArticleUseCase) invalidate(ctx context.Context, articleID string) {
	if uc.articleCache == nil {
		return
	}
	if err := uc.articleCache.InvalidateArticle(ctx, articleID); err != nil {
		uc.logger.Warningf("cache invalidate failed: article id=%s err=%v", articleID, err)
	}
	uc.invalidateList(ctx)
}

func (uc *ArticleUseCase) invalidateList(ctx context.Context) {
	if uc.articleCache == nil {
		return
	}
	if err := uc.articleCache.InvalidateArticleList(ctx); err != nil {
		uc.logger.Warningf("cache invalidate failed: articles list err=%v", err)
	}
}
