package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/ScribeSpace/internal/domain/entity"
)

// IUserUseCase defines the interface for user-related operations.
type IUserUseCase interface {
	SignUp(ctx context.Context, username, email, password string) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.User, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	// UpdateProfile renames the user and, when picture is non-nil, uploads it
	// and stores its public URL.
	UpdateProfile(ctx context.Context, userID, username string, picture *entity.MediaFile) (*entity.User, error)
}
