package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/mikiasgoitom/ScribeSpace/internal/domain/apperror"
	"github.com/mikiasgoitom/ScribeSpace/internal/domain/contract"
	"github.com/mikiasgoitom/ScribeSpace/internal/domain/entity"
	"github.com/mikiasgoitom/ScribeSpace/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/ScribeSpace/internal/usecase/contract"
)

// MediaUseCase stores and serves uploaded media.
type MediaUseCase struct {
	storage contract.IMediaStorage
	uuidgen contract.IUUIDGenerator
	logger  usecasecontract.IAppLogger
}

func NewMediaUseCase(storage contract.IMediaStorage, uuidgen contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *MediaUseCase {
	return &MediaUseCase{storage: storage, uuidgen: uuidgen, logger: logger}
}

var _ usecasecontract.IMediaUseCase = (*MediaUseCase)(nil)

// UploadArticleMedia stores file at <articleID>/<uuid>_<name> and returns its
// public URL.
func (uc *MediaUseCase) UploadArticleMedia(ctx context.Context, articleID, userID string, file entity.MediaFile) (string, error) {
	if file.Content == nil {
		return "", fmt.Errorf("no file uploaded: %w", apperror.ErrUpload)
	}
	if strings.TrimSpace(articleID) == "" {
		return "", fmt.Errorf("articleId is required: %w", apperror.ErrValidation)
	}

	path := fmt.Sprintf("%s/%s_%s", safeSegment(articleID), uc.uuidgen.NewUUID(), safeSegment(file.FileName))
	if err := uc.storage.Upload(ctx, path, file.Content, file.ContentType); err != nil {
		uc.logger.Errorf("media upload failed path=%s user=%s: %v", path, userID, err)
		return "", err
	}
	metrics.RecordUpload(file.Size)
	uc.logger.Infof("media uploaded path=%s user=%s size=%d", path, userID, file.Size)
	return uc.storage.PublicURL(path), nil
}

// OpenMedia returns the stored object at path. The caller closes its Content.
func (uc *MediaUseCase) OpenMedia(ctx context.Context, path string) (*entity.StoredMedia, error) {
	return uc.storage.Open(ctx, strings.TrimPrefix(path, "/"))
}

// safeSegment turns a client-supplied name into a single path segment.
func safeSegment(name string) string {
	name = strings.NewReplacer("/", "_", "\\", "_").Replace(strings.TrimSpace(name))
	switch name {
	case "", ".", "..":
		return "file"
	}
	return name
}

// extensionFor returns the MIME subtype used as a file extension, e.g.
// "png" for image/png.
func extensionFor(contentType string) string {
	contentType, _, _ = strings.Cut(contentType, ";")
	_, sub, ok := strings.Cut(strings.TrimSpace(contentType), "/")
	if !ok || sub == "" {
		return "bin"
	}
	return safeSegment(sub)
}
