package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/mikiasgoitom/ScribeSpace/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/ScribeSpace/internal/usecase/contract"
)

// MockArticleUsecase is a mock implementation of the article use case.
type MockArticleUsecase struct {
	ShouldFailPublish         bool
	ShouldFailGetArticles     bool
	ShouldFailGetByID         bool
	ShouldFailGetByUser       bool
	ShouldFailRecommendations bool
	ShouldFailUpdateImage     bool
	ShouldFailIncrementViews  bool

	// Err overrides the generic failure error when set.
	Err error

	Articles []*entity.Article

	// Captured arguments
	LastContent string
	LastTags    []string
	LastExclude string
	LastImage   string
}

var _ usecasecontract.IArticleUseCase = (*MockArticleUsecase)(nil)

func NewMockArticleUsecase() *MockArticleUsecase {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &MockArticleUsecase{
		Articles: []*entity.Article{
			{ID: "article-1", Title: "First", Content: `{"blocks":[]}`, UserID: "user-1", CreatedAt: created, UpdatedAt: created, Views: 3, Tags: []string{"go"}},
			{ID: "article-2", Title: "Second", Content: `"plain"`, UserID: "user-1", CreatedAt: created, UpdatedAt: created},
		},
	}
}

func (m *MockArticleUsecase) fail(msg string) error {
	if m.Err != nil {
		return m.Err
	}
	return errors.New(msg)
}

func (m *MockArticleUsecase) PublishArticle(ctx context.Context, title, content, userID string, tags []string) (*entity.ArticleSummary, error) {
	if m.ShouldFailPublish {
		return nil, m.fail("publish failed")
	}
	m.LastContent = content
	m.LastTags = tags
	return &entity.ArticleSummary{
		ArticleID: "article-new",
		Title:     title,
		Content:   content,
		UserID:    userID,
		Tags:      tags,
		CreatedAt: time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC),
	}, nil
}

func (m *MockArticleUsecase) GetArticles(ctx context.Context) ([]*entity.Article, error) {
	if m.ShouldFailGetArticles {
		return nil, m.fail("list failed")
	}
	return m.Articles, nil
}

func (m *MockArticleUsecase) GetArticleByID(ctx context.Context, articleID string) (*entity.Article, error) {
	if m.ShouldFailGetByID {
		return nil, m.fail("get failed")
	}
	for _, a := range m.Articles {
		if a.ID == articleID {
			return a, nil
		}
	}
	return m.Articles[0], nil
}

func (m *MockArticleUsecase) GetArticlesByUserID(ctx context.Context, userID string) ([]*entity.Article, error) {
	if m.ShouldFailGetByUser {
		return nil, m.fail("get by user failed")
	}
	var out []*entity.Article
	for _, a := range m.Articles {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MockArticleUsecase) GetRecommendations(ctx context.Context, tags []string, excludeArticleID string) ([]*entity.Article, error) {
	if m.ShouldFailRecommendations {
		return nil, m.fail("recommendations failed")
	}
	m.LastTags = tags
	m.LastExclude = excludeArticleID
	var out []*entity.Article
	for _, a := range m.Articles {
		if a.ID != excludeArticleID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MockArticleUsecase) UpdateImageURL(ctx context.Context, articleID, imageURL string) (*entity.Article, error) {
	if m.ShouldFailUpdateImage {
		return nil, m.fail("update image failed")
	}
	m.LastImage = imageURL
	a := *m.Articles[0]
	a.ID = articleID
	a.ImageURL = &imageURL
	return &a, nil
}

func (m *MockArticleUsecase) IncrementViews(ctx context.Context, articleID string) (*entity.Article, error) {
	if m.ShouldFailIncrementViews {
		return nil, m.fail("increment failed")
	}
	a := *m.Articles[0]
	a.ID = articleID
	a.Views++
	return &a, nil
}
