package contract

// IHasher produces one-way password hashes.
type IHasher interface {
	HashPassword(password string) (string, error)
}
