package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/klwxsrx/project-manager/internal/user/app/encoding"
)

type encoder struct {
	cost int
}

func NewEncoder(cost int) (encoding.PasswordEncoder, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost must be in range [%d, %d], got %d", bcrypt.MinCost, bcrypt.MaxCost, cost)
	}

	return encoder{cost: cost}, nil
}

func (e encoder) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), e.cost)
	if err != nil {
		return "", fmt.Errorf("generate bcrypt hash: %w", err)
	}

	return string(hash), nil
}

func (e encoder) CompareHash(passwordHash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil
}
