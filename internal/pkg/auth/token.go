package auth

import (
	"github.com/klwxsrx/project-manager/pkg/auth"
)

const TokenTypeBearer auth.TokenType = "bearer"

type BearerToken struct {
	Value string
}

func (t BearerToken) Type() auth.TokenType {
	return TokenTypeBearer
}
