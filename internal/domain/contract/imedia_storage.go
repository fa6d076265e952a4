package contract

import (
	"context"
	"io"

	"github.com/mikiasgoitom/ScribeSpace/internal/domain/entity"
)

// IMediaStorage is the object bucket holding uploaded media.
type IMediaStorage interface {
	// Upload writes content at path, replacing any object already stored there.
	Upload(ctx context.Context, path string, content io.Reader, contentType string) error
	// Open returns the newest object stored at path.
	Open(ctx context.Context, path string) (*entity.StoredMedia, error)
	// PublicURL returns the URL under which the object at path is served.
	PublicURL(path string) string
}
