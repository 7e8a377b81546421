package auth

import (
	"context"
	"errors"
)

var ErrUnauthenticated = errors.New("not authenticated")

type (
	// Provider resolves a request token into an authenticated principal.
	Provider[T Principal] interface {
		Authenticate(context.Context, Token) (Authentication[T], error)
	}

	Token interface {
		Type() TokenType
	}

	Authentication[T Principal] interface {
		IsAuthenticated() bool
		Principal() *T
	}

	Principal interface {
		ID() *string
		Roles() []string
	}

	Auth[T Principal] struct {
		AuthPrincipal *T
	}

	TokenType string
)

func (a Auth[T]) IsAuthenticated() bool {
	return a.AuthPrincipal != nil
}

func (a Auth[T]) Principal() *T {
	return a.AuthPrincipal
}
