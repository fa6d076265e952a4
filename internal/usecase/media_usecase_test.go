package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/ScribeSpace/internal/domain/apperror"
	"github.com/mikiasgoitom/ScribeSpace/internal/domain/entity"
)

func TestUploadArticleMedia(t *testing.T) {
	ctx := context.Background()

	t.Run("stores under the article folder", func(t *testing.T) {
		storage := newMemStorage()
		uc := NewMediaUseCase(storage, &seqUUID{}, nopLogger{})

		url, err := uc.UploadArticleMedia(ctx, "a-1", "u-1", entity.MediaFile{
			FileName:    "cover.png",
			ContentType: "image/png",
			Size:        4,
			Content:     strings.NewReader("data"),
		})
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.test/media/a-1/uuid-1_cover.png", url)
		assert.Equal(t, []byte("data"), storage.objects["a-1/uuid-1_cover.png"])
		assert.Equal(t, "image/png", storage.types["a-1/uuid-1_cover.png"])
	})

	t.Run("file names cannot add path segments", func(t *testing.T) {
		storage := newMemStorage()
		uc := NewMediaUseCase(storage, &seqUUID{}, nopLogger{})

		_, err := uc.UploadArticleMedia(ctx, "a-1", "u-1", entity.MediaFile{FileName: "../../etc/passwd", Content: strings.NewReader("x")})
		require.NoError(t, err)
		assert.Contains(t, storage.objects, "a-1/uuid-1_.._.._etc_passwd")
	})

	t.Run("missing file", func(t *testing.T) {
		uc := NewMediaUseCase(newMemStorage(), &seqUUID{}, nopLogger{})

		_, err := uc.UploadArticleMedia(ctx, "a-1", "u-1", entity.MediaFile{})
		assert.True(t, errors.Is(err, apperror.ErrUpload))
	})

	t.Run("storage failure", func(t *testing.T) {
		storage := newMemStorage()
		storage.uploadErr = apperror.ErrUpload
		uc := NewMediaUseCase(storage, &seqUUID{}, nopLogger{})

		_, err := uc.UploadArticleMedia(ctx, "a-1", "u-1", entity.MediaFile{FileName: "x.png", Content: strings.NewReader("x")})
		assert.True(t, errors.Is(err, apperror.ErrUpload))
	})
}

func TestOpenMedia(t *testing.T) {
	storage := newMemStorage()
	storage.objects["public/1.png"] = []byte("png")
	storage.types["public/1.png"] = "image/png"
	uc := NewMediaUseCase(storage, &seqUUID{}, nopLogger{})

	media, err := uc.OpenMedia(context.Background(), "/public/1.png")
	require.NoError(t, err)
	defer media.Content.Close()
	body, err := io.ReadAll(media.Content)
	require.NoError(t, err)
	assert.Equal(t, "png", string(body))
	assert.Equal(t, "image/png", media.ContentType)

	_, err = uc.OpenMedia(context.Background(), "public/none.png")
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, "png", extensionFor("image/png"))
	assert.Equal(t, "jpeg", extensionFor("image/jpeg; charset=binary"))
	assert.Equal(t, "svg+xml", extensionFor("image/svg+xml"))
	assert.Equal(t, "bin", extensionFor(""))
}
