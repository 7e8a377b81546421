package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/klwxsrx/project-manager/pkg/auth"
)

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type (
	Role string

	Principal struct {
		UserID   uuid.UUID
		Username string
		Role     Role
	}

	PermissionService = auth.PermissionService[Principal]

	// IdentityResolver turns a bearer token into the identity it was issued for.
	IdentityResolver interface {
		ResolveIdentity(ctx context.Context, token string) (Principal, error)
	}

	provider struct {
		resolver IdentityResolver
	}
)

func NewProvider(resolver IdentityResolver) auth.Provider[Principal] {
	return provider{resolver: resolver}
}

func NewPermissionService() PermissionService {
	return auth.NewPermissionService[Principal]()
}

func (p provider) Authenticate(ctx context.Context, token auth.Token) (auth.Authentication[Principal], error) {
	bearer, ok := token.(BearerToken)
	if !ok {
		return nil, fmt.Errorf("unknown token with type %s", token.Type())
	}

	principal, err := p.resolver.ResolveIdentity(ctx, bearer.Value)
	if err != nil {
		return nil, err
	}

	return auth.Auth[Principal]{AuthPrincipal: &principal}, nil
}

func (p Principal) ID() *string {
	id := p.UserID.String()
	return &id
}

func (p Principal) Roles() []string {
	return []string{string(p.Role)}
}
