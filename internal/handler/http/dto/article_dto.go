package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/mikiasgoitom/ScribeSpace/internal/domain/entity"
)

// PublishArticleRequest is the body of POST /api/articles/publish. Content
// is any JSON document; it is stored as its serialized text.
type PublishArticleRequest struct {
	Title   string          `json:"title" binding:"required,notblank"`
	Content json.RawMessage `json:"content"`
	UserID  string          `json:"userId" binding:"required,notblank"`
	Tags    []string        `json:"tags"`
}

// ContentText returns the compact serialized form of Content. A missing
// content serializes as null.
func (r PublishArticleRequest) ContentText() string {
	if len(r.Content) == 0 {
		return "null"
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, r.Content); err != nil {
		return string(r.Content)
	}
	return buf.String()
}

// RecommendationsRequest is the body of POST /api/articles/getRecommendations.
type RecommendationsRequest struct {
	Tags             []string `json:"tags"`
	ExcludeArticleID string   `json:"excludeArticleID"`
}

// UpdateImageURLRequest is the body of PUT /api/articles/updateImageUrl/:articleId.
type UpdateImageURLRequest struct {
	ImageURL string `json:"image_url" binding:"required,notblank"`
}

// ViewsResponse answers a view increment.
type ViewsResponse struct {
	Message string `json:"message"`
	Views   int    `json:"views"`
}

// UploadMediaResponse carries the public URL of an uploaded file.
type UploadMediaResponse struct {
	URL string `json:"url"`
}

// ArticleSummaryResponse echoes a published article.
type ArticleSummaryResponse struct {
	ArticleID string    `json:"articleId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    string    `json:"userId"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToArticleSummaryResponse(s entity.ArticleSummary) ArticleSummaryResponse {
	return ArticleSummaryResponse{
		ArticleID: s.ArticleID,
		Title:     s.Title,
		Content:   s.Content,
		UserID:    s.UserID,
		Tags:      s.Tags,
		CreatedAt: s.CreatedAt,
	}
}

// ArticleResponse is the DTO for a stored article with its tag names.
type ArticleResponse struct {
	ArticleID string    `json:"article_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ImageURL  *string   `json:"image_url"`
	Views     int       `json:"views"`
	Tags      []string  `json:"tags"`
}

func ToArticleResponse(a entity.Article) ArticleResponse {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return ArticleResponse{
		ArticleID: a.ID,
		Title:     a.Title,
		Content:   a.Content,
		UserID:    a.UserID,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
		ImageURL:  a.ImageURL,
		Views:     a.Views,
		Tags:      tags,
	}
}

func ToArticleResponses(articles []*entity.Article) []ArticleResponse {
	out := make([]ArticleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, ToArticleResponse(*a))
	}
	return out
}
