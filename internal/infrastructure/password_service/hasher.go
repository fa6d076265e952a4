package passwordservice

import (
	"fmt"

	"github.com/mikiasgoitom/ScribeSpace/internal/domain/contract"

	"golang.org/x/crypto/bcrypt"
)

type Hasher struct {
	cost int
}

// check if IHasher was implemented at compile time
var _ contract.IHasher = (*Hasher)(nil)

// NewHasher returns a bcrypt hasher. Costs outside bcrypt's range fall back
// to bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedPassword), nil
}
