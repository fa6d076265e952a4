package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/ScribeSpace/internal/domain/apperror"
	usecasecontract "github.com/mikiasgoitom/ScribeSpace/internal/usecase/contract"
)

// MediaHandler streams stored media objects.
type MediaHandler struct {
	mediaUsecase usecasecontract.IMediaUseCase
	cacheControl time.Duration
}

func NewMediaHandler(mediaUsecase usecasecontract.IMediaUseCase, cacheControl time.Duration) *MediaHandler {
	return &MediaHandler{mediaUsecase: mediaUsecase, cacheControl: cacheControl}
}

// ServeMedia handles GET /media/*filepath.
func (h *MediaHandler) ServeMedia(c *gin.Context) {
	media, err := h.mediaUsecase.OpenMedia(c.Request.Context(), c.Param("filepath"))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			ErrorHandler(c, http.StatusNotFound, "Media not found")
			return
		}
		FailureHandler(c, http.StatusInternalServerError, "Error reading media", err)
		return
	}
	defer media.Content.Close()

	headers := map[string]string{
		"Cache-Control":          fmt.Sprintf("public, max-age=%d", int(h.cacheControl.Seconds())),
		"X-Content-Type-Options": "nosniff",
	}
	c.DataFromReader(http.StatusOK, media.Size, media.ContentType, media.Content, headers)
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler answers GET /healthz.
type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		FailureHandler(c, http.StatusServiceUnavailable, "unhealthy", err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"status": "ok"})
}
