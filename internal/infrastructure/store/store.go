package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/ScribeSpace/internal/domain/contract"
	"github.com/mikiasgoitom/ScribeSpace/internal/domain/entity"
	"github.com/mikiasgoitom/ScribeSpace/internal/infrastructure/metrics"
)

const articleListKey = "articles:list"

type ArticleCacheStore struct {
	rdb       redis.Cmdable
	detailTTL time.Duration
	listTTL   time.Duration
}

var _ contract.IArticleCache = (*ArticleCacheStore)(nil)

func NewArticleCacheStore(rdb redis.Cmdable, detailTTL, listTTL time.Duration) *ArticleCacheStore {
	if detailTTL <= 0 {
		detailTTL = 10 * time.Minute
	}
	if listTTL <= 0 {
		listTTL = 30 * time.Second
	}
	return &ArticleCacheStore{
		rdb:       rdb,
		detailTTL: detailTTL,
		listTTL:   listTTL,
	}
}

func articleDetailKey(id string) string { return fmt.Sprintf("article:id:%s", id) }

func (c *ArticleCacheStore) GetArticle(ctx context.Context, articleID string) (*entity.Article, bool, error) {
	b, err := c.rdb.Get(ctx, articleDetailKey(articleID)).Bytes()
	if err != nil {
		metrics.RecordCache("detail", false)
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var article entity.Article
	if err := json.Unmarshal(b, &article); err != nil {
		// corrupt entries count as a miss and get overwritten on the next set
		metrics.RecordCache("detail", false)
		return nil, false, nil
	}
	metrics.RecordCache("detail", true)
	return &article, true, nil
}

func (c *ArticleCacheStore) SetArticle(ctx context.Context, article *entity.Article) error {
	data, err := json.Marshal(article)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, articleDetailKey(article.ID), data, c.detailTTL).Err()
}

func (c *ArticleCacheStore) InvalidateArticle(ctx context.Context, articleID string) error {
	return c.rdb.Del(ctx, articleDetailKey(articleID)).Err()
}

func (c *ArticleCacheStore) GetArticleList(ctx context.Context) ([]*entity.Article, bool, error) {
	b, err := c.rdb.Get(ctx, articleListKey).Bytes()
	if err != nil {
		metrics.RecordCache("list", false)
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var articles []*entity.Article
	if err := json.Unmarshal(b, &articles); err != nil {
		metrics.RecordCache("list", false)
		return nil, false, nil
	}
	metrics.RecordCache("list", true)
	return articles, true, nil
}

func (c *ArticleCacheStore) SetArticleList(ctx context.Context, articles []*entity.Article) error {
	data, err := json.Marshal(articles)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, articleListKey, data, c.listTTL).Err()
}

func (c *ArticleCacheStore) InvalidateArticleList(ctx context.Context) error {
	return c.rdb.Del(ctx, articleListKey).Err()
}
