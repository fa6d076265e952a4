package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/ScribeSpace/internal/domain/apperror"
	"github.com/mikiasgoitom/ScribeSpace/internal/domain/entity"
	"github.com/mikiasgoitom/ScribeSpace/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/ScribeSpace/internal/usecase/contract"
)

// ArticleHandler serves the /api/articles routes.
type ArticleHandler struct {
	articleUsecase usecasecontract.IArticleUseCase
	mediaUsecase   usecasecontract.IMediaUseCase
	maxUploadBytes int64
}

func NewArticleHandler(articleUsecase usecasecontract.IArticleUseCase, mediaUsecase usecasecontract.IMediaUseCase, maxUploadBytes int64) *ArticleHandler {
	return &ArticleHandler{
		articleUsecase: articleUsecase,
		mediaUsecase:   mediaUsecase,
		maxUploadBytes: maxUploadBytes,
	}
}

// PublishArticle handles POST /publish.
func (h *ArticleHandler) PublishArticle(c *gin.Context) {
	var req dto.PublishArticleRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	summary, err := h.articleUsecase.PublishArticle(c.Request.Context(), req.Title, req.ContentText(), req.UserID, req.Tags)
	if err != nil {
		if errors.Is(err, apperror.ErrValidation) {
			FailureHandler(c, http.StatusBadRequest, "Invalid article", err)
			return
		}
		FailureHandler(c, http.StatusInternalServerError, "Error publishing article", err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToArticleSummaryResponse(*summary))
}

// GetArticles handles GET /getArticles.
func (h *ArticleHandler) GetArticles(c *gin.Context) {
	articles, err := h.articleUsecase.GetArticles(c.Request.Context())
	if err != nil {
		FailureHandler(c, http.StatusInternalServerError, "Error getting articles", err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToArticleResponses(articles))
}

// GetArticleByID handles GET /getArticle/:id.
func (h *ArticleHandler) GetArticleByID(c *gin.Context) {
	article, err := h.articleUsecase.GetArticleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			ErrorHandler(c, http.StatusNotFound, "Article not found")
			return
		}
		FailureHandler(c, http.StatusInternalServerError, "Error getting article", err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToArticleResponse(*article))
}

// UploadMedia handles POST /uploadMedia (multipart: file, articleId, userId).
func (h *ArticleHandler) UploadMedia(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	header, err := c.FormFile("file")
	if err != nil {
		if isTooLarge(err) {
			FailureHandler(c, http.StatusRequestEntityTooLarge, "File too large", err)
			return
		}
		ErrorHandler(c, http.StatusBadRequest, "No file uploaded")
		return
	}
	file, err := header.Open()
	if err != nil {
		FailureHandler(c, http.StatusInternalServerError, "Failed to upload media", err)
		return
	}
	defer file.Close()

	url, err := h.mediaUsecase.UploadArticleMedia(c.Request.Context(), c.PostForm("articleId"), c.PostForm("userId"), entity.MediaFile{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	})
	if err != nil {
		if errors.Is(err, apperror.ErrValidation) {
			FailureHandler(c, http.StatusBadRequest, "Invalid upload", err)
			return
		}
		FailureHandler(c, http.StatusInternalServerError, "Failed to upload media", err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.UploadMediaResponse{URL: url})
}

// GetRecommendations handles POST /getRecommendations.
func (h *ArticleHandler) GetRecommendations(c *gin.Context) {
	var req dto.RecommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Tags) == 0 || req.ExcludeArticleID == "" {
		ErrorHandler(c, http.StatusBadRequest, "Tags and excludeArticleID are required")
		return
	}

	articles, err := h.articleUsecase.GetRecommendations(c.Request.Context(), req.Tags, req.ExcludeArticleID)
	if err != nil {
		if errors.Is(err, apperror.ErrValidation) {
			FailureHandler(c, http.StatusBadRequest, "Tags and excludeArticleID are required", err)
			return
		}
		FailureHandler(c, http.StatusInternalServerError, "Error getting recommended articles", err)
		return
	}
	if len(articles) == 0 {
		ErrorHandler(c, http.StatusNotFound, "No recommendations found")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToArticleResponses(articles))
}

// UpdateImageURL handles PUT /updateImageUrl/:articleId.
func (h *ArticleHandler) UpdateImageURL(c *gin.Context) {
	var req dto.UpdateImageURLRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	article, err := h.articleUsecase.UpdateImageURL(c.Request.Context(), c.Param("articleId"), req.ImageURL)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			ErrorHandler(c, http.StatusNotFound, "Article not found")
			return
		}
		FailureHandler(c, http.StatusInternalServerError, "Error updating image URL", err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToArticleResponse(*article))
}

// IncrementViews handles PUT /incrementViews/:articleId. Every failure,
// including an unknown article, answers 500.
func (h *ArticleHandler) IncrementViews(c *gin.Context) {
	article, err := h.articleUsecase.IncrementViews(c.Request.Context(), c.Param("articleId"))
	if err != nil {
		FailureHandler(c, http.StatusInternalServerError, "Server error", err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ViewsResponse{Message: "Views updated successfully", Views: article.Views})
}

// GetArticlesByUserID handles GET /user/:userId.
func (h *ArticleHandler) GetArticlesByUserID(c *gin.Context) {
	articles, err := h.articleUsecase.GetArticlesByUserID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		FailureHandler(c, http.StatusInternalServerError, "Server error", err)
		return
	}
	if len(articles) == 0 {
		ErrorHandler(c, http.StatusNotFound, "No articles found for this user")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToArticleResponses(articles))
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
