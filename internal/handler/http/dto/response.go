package dto

import (
	"time"

	"github.com/mikiasgoitom/ScribeSpace/internal/domain/entity"
)

// UserResponse is the DTO for a user. It never carries the password hash.
type UserResponse struct {
	UserID         string    `json:"user_id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	ProfilePicture *string   `json:"profile_picture"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// converts an entity.User to a UserResponse DTO.
func ToUserResponse(user entity.User) UserResponse {
	return UserResponse{
		UserID:         user.ID,
		Username:       user.Username,
		Email:          user.Email,
		ProfilePicture: user.ProfilePicture,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}

// UserEnvelope wraps a user with an optional message.
type UserEnvelope struct {
	Message string       `json:"message,omitempty"`
	User    UserResponse `json:"user"`
}

// ErrorResponse is a response for errors. Error holds the underlying cause
// when there is one.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
