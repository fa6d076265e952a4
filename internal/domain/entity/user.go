package entity

import (
	"time"
)

// User represents a registered author in the system. The password hash is a
// local copy; the auth provider keeps its own credential.
type User struct {
	ID             string    `bson:"_id" json:"user_id"`
	Username       string    `bson:"username" json:"username"`
	Email          string    `bson:"email" json:"email"`
	PasswordHash   string    `bson:"password" json:"-"`
	ProfilePicture *string   `bson:"profile_picture" json:"profile_picture"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

// ProfileUpdate carries the editable profile fields. A nil ProfilePicture
// leaves the stored picture untouched.
type ProfileUpdate struct {
	Username       string
	ProfilePicture *string
}
