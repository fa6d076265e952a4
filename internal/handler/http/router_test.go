package http_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	handler "github.com/mikiasgoitom/ScribeSpace/internal/handler/http"
	"github.com/mikiasgoitom/ScribeSpace/internal/handler/http/middleware"
	"github.com/mikiasgoitom/ScribeSpace/internal/handler/http/mocks"
)

func newTestEngine() *gin.Engine {
	logger := zerolog.Nop()
	engine := gin.New()
	handler.NewRouter(
		mocks.NewMockArticleUsecase(),
		mocks.NewMockMediaUsecase(),
		mocks.NewMockUserUsecase(),
		stubPinger{},
		&logger,
		stubConfig{},
	).SetupRoutes(engine)
	return engine
}

func TestRouter_Routes(t *testing.T) {
	r := newTestEngine()

	cases := []struct {
		method string
		path   string
		body   interface{}
		status int
	}{
		{http.MethodGet, "/api/articles/getArticles", nil, http.StatusOK},
		{http.MethodGet, "/api/articles/getArticle/article-1", nil, http.StatusOK},
		{http.MethodGet, "/api/articles/user/user-1", nil, http.StatusOK},
		{http.MethodPut, "/api/articles/incrementViews/article-1", nil, http.StatusOK},
		{http.MethodPost, "/api/articles/getRecommendations", `{"tags":["go"],"excludeArticleID":"article-1"}`, http.StatusOK},
		{http.MethodGet, "/api/users/getUserById/user-1", nil, http.StatusOK},
		{http.MethodPost, "/api/users/login", `{"email":"test@example.com","password":"x"}`, http.StatusOK},
		{http.MethodGet, "/healthz", nil, http.StatusOK},
		{http.MethodGet, "/metrics", nil, http.StatusOK},
		{http.MethodGet, "/media/missing.png", nil, http.StatusNotFound},
		{http.MethodGet, "/api/v1/unknown", nil, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := serve(r, jsonRequest(t, tc.method, tc.path, tc.body))
			assert.Equal(t, tc.status, w.Code)
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestRouter_CORS(t *testing.T) {
	r := newTestEngine()

	req := jsonRequest(t, http.MethodGet, "/api/articles/getArticles", nil)
	req.Header.Set("Origin", "https://scribe.test")
	w := serve(r, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://scribe.test", w.Header().Get("Access-Control-Allow-Origin"))

	req = jsonRequest(t, http.MethodGet, "/api/articles/getArticles", nil)
	req.Header.Set("Origin", "https://evil.test")
	w = serve(r, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
