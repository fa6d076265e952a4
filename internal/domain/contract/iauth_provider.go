package contract

import "context"

// IAuthProvider is the external identity service holding the login credential.
type IAuthProvider interface {
	SignUp(ctx context.Context, email, password string) error
	SignIn(ctx context.Context, email, password string) error
}
