package contract

import (
	"context"

	"github.com/mikiasgoitom/ScribeSpace/internal/domain/entity"
)

type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// UpdateProfile applies the profile fields and returns the updated user.
	UpdateProfile(ctx context.Context, id string, update entity.ProfileUpdate) (*entity.User, error)
}
