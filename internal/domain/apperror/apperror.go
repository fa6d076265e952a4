// Package apperror holds the error kinds shared by repositories, use cases
// and handlers. Callers wrap them with fmt.Errorf("...: %w") and match with
// errors.Is.
package apperror

import "errors"

var (
	// ErrValidation marks a missing or malformed input.
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks a lookup that yielded no row.
	ErrNotFound = errors.New("not found")

	// ErrPartialTagging marks an article that was stored but could not be
	// linked to all of its tags.
	ErrPartialTagging = errors.New("article created but tag linking failed")

	// ErrAuthRejected marks a signup refused by the auth provider.
	ErrAuthRejected = errors.New("auth provider rejected the request")

	// ErrInvalidCredentials marks a failed password login.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUpload marks a missing file or a failed object-storage write.
	ErrUpload = errors.New("upload failed")
)
