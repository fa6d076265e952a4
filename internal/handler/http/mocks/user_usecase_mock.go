package mocks

import (
	"context"
	"errors"
	"io"

	"github.com/mikiasgoitom/ScribeSpace/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/ScribeSpace/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the UserUsecase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailCreateUser bool
	ShouldFailLogin      bool
	ShouldFailGetByID    bool
	ShouldFailUpdateUser bool

	// Err overrides the generic failure error when set.
	Err error

	// Return values
	MockUser entity.User

	// Captured arguments
	LastUsername string
	LastPicture  *entity.MediaFile
	LastPayload  []byte
}

// Ensure MockUserUsecase implements the correct interface for handler.NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:           "mock-user-id",
			Username:     "testuser",
			Email:        "test@example.com",
			PasswordHash: "hashed-secret",
		},
	}
}

func (m *MockUserUsecase) fail(msg string) error {
	if m.Err != nil {
		return m.Err
	}
	return errors.New(msg)
}

func (m *MockUserUsecase) SignUp(ctx context.Context, username, email, password string) (*entity.User, error) {
	if m.ShouldFailCreateUser {
		return nil, m.fail("user creation failed")
	}
	m.LastUsername = username
	user := m.MockUser
	user.Username = username
	user.Email = email
	return &user, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, email, password string) (*entity.User, error) {
	if m.ShouldFailLogin {
		return nil, m.fail("login failed")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, m.fail("user lookup failed")
	}
	user := m.MockUser
	user.ID = userID
	return &user, nil
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, userID, username string, picture *entity.MediaFile) (*entity.User, error) {
	if m.ShouldFailUpdateUser {
		return nil, m.fail("update user failed")
	}
	m.LastUsername = username
	m.LastPicture = picture
	user := m.MockUser
	user.ID = userID
	if username != "" {
		user.Username = username
	}
	if picture != nil {
		if picture.Content != nil {
			m.LastPayload, _ = io.ReadAll(picture.Content)
		}
		url := "https://cdn.test/media/public/" + picture.FileName
		user.ProfilePicture = &url
	}
	return &user, nil
}
