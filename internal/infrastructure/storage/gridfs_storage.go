package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mikiasgoitom/ScribeSpace/internal/domain/apperror"
	"github.com/mikiasgoitom/ScribeSpace/internal/domain/contract"
	"github.com/mikiasgoitom/ScribeSpace/internal/domain/entity"
)

// MediaRoute is the path prefix under which stored objects are served.
const MediaRoute = "/media/"

var tracer = otel.Tracer("github.com/mikiasgoitom/ScribeSpace/internal/infrastructure/storage")

// GridFSStorage keeps uploaded media in a GridFS bucket. Every upload adds a
// revision under the object path; reads return the newest one.
type GridFSStorage struct {
	bucket  *gridfs.Bucket
	baseURL string
}

var _ contract.IMediaStorage = (*GridFSStorage)(nil)

// NewGridFSStorage opens the named bucket. baseURL is the public origin of
// this service, e.g. https://api.example.com.
func NewGridFSStorage(db *mongo.Database, bucketName, baseURL string) (*GridFSStorage, error) {
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName(bucketName))
	if err != nil {
		return nil, fmt.Errorf("failed to open media bucket %s: %w", bucketName, err)
	}
	return &GridFSStorage{bucket: bucket, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Upload stores content at path with its content type in the file metadata.
func (s *GridFSStorage) Upload(ctx context.Context, path string, content io.Reader, contentType string) (err error) {
	_, span := tracer.Start(ctx, "GridFSStorage.Upload",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("media.path", path)),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if err = ValidatePath(path); err != nil {
		return err
	}
	opts := options.GridFSUpload().SetMetadata(bson.M{"contentType": contentType})
	if _, err = s.bucket.UploadFromStream(path, content, opts); err != nil {
		return fmt.Errorf("failed to store %s: %w: %v", path, apperror.ErrUpload, err)
	}
	return nil
}

// Open returns the newest revision stored at path. The caller closes Content.
func (s *GridFSStorage) Open(ctx context.Context, path string) (*entity.StoredMedia, error) {
	_, span := tracer.Start(ctx, "GridFSStorage.Open",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("media.path", path)),
	)
	defer span.End()

	if err := ValidatePath(path); err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrNotFound, err)
	}
	stream, err := s.bucket.OpenDownloadStreamByName(path, options.GridFSName().SetRevision(-1))
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, fmt.Errorf("media %s: %w", path, apperror.ErrNotFound)
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to open media %s: %w", path, err)
	}

	file := stream.GetFile()
	return &entity.StoredMedia{
		Path:        path,
		ContentType: contentTypeOf(file.Metadata),
		Size:        file.Length,
		Content:     stream,
	}, nil
}

// PublicURL returns the URL of the media route serving path.
func (s *GridFSStorage) PublicURL(path string) string {
	return s.baseURL + MediaRoute + EscapePath(path)
}

func contentTypeOf(metadata bson.Raw) string {
	if len(metadata) > 0 {
		if v, err := metadata.LookupErr("contentType"); err == nil {
			if ct, ok := v.StringValueOK(); ok && ct != "" {
				return ct
			}
		}
	}
	return "application/octet-stream"
}

// EscapePath escapes each segment of an object path for use in a URL.
func EscapePath(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}

// ValidatePath rejects empty paths and paths that try to climb out of the
// bucket namespace.
func ValidatePath(path string) error {
	if path == "" || strings.HasPrefix(path, "/") {
		return fmt.Errorf("invalid media path %q", path)
	}
	for _, seg := range strings.Split(path, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return fmt.Errorf("invalid media path %q", path)
		}
	}
	return nil
}
