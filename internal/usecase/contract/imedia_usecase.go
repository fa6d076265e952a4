package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/ScribeSpace/internal/domain/entity"
)

type IMediaUseCase interface {
	// UploadArticleMedia stores a file under the article's folder and returns its public URL.
	UploadArticleMedia(ctx context.Context, articleID, userID string, file entity.MediaFile) (string, error)
	OpenMedia(ctx context.Context, path string) (*entity.StoredMedia, error)
}
