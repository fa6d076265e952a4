package mocks

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/mikiasgoitom/ScribeSpace/internal/domain/apperror"
	"github.com/mikiasgoitom/ScribeSpace/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/ScribeSpace/internal/usecase/contract"
)

// MockMediaUsecase keeps uploaded objects in memory.
type MockMediaUsecase struct {
	ShouldFailUpload bool
	ShouldFailOpen   bool

	// Err overrides the generic failure error when set.
	Err error

	Objects map[string]string
	Types   map[string]string

	LastArticleID string
	LastUserID    string
}

var _ usecasecontract.IMediaUseCase = (*MockMediaUsecase)(nil)

func NewMockMediaUsecase() *MockMediaUsecase {
	return &MockMediaUsecase{
		Objects: map[string]string{},
		Types:   map[string]string{},
	}
}

func (m *MockMediaUsecase) UploadArticleMedia(ctx context.Context, articleID, userID string, file entity.MediaFile) (string, error) {
	if m.ShouldFailUpload {
		if m.Err != nil {
			return "", m.Err
		}
		return "", errors.New("upload failed")
	}
	if articleID == "" {
		return "", apperror.ErrValidation
	}
	m.LastArticleID = articleID
	m.LastUserID = userID
	body, err := io.ReadAll(file.Content)
	if err != nil {
		return "", err
	}
	path := articleID + "/" + file.FileName
	m.Objects[path] = string(body)
	m.Types[path] = file.ContentType
	return "https://cdn.test/media/" + path, nil
}

func (m *MockMediaUsecase) OpenMedia(ctx context.Context, path string) (*entity.StoredMedia, error) {
	if m.ShouldFailOpen {
		if m.Err != nil {
			return nil, m.Err
		}
		return nil, errors.New("open failed")
	}
	path = strings.TrimPrefix(path, "/")
	body, ok := m.Objects[path]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	return &entity.StoredMedia{
		Path:        path,
		ContentType: m.Types[path],
		Size:        int64(len(body)),
		Content:     io.NopCloser(strings.NewReader(body)),
	}, nil
}
