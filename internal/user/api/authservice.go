package api

import (
	"context"

	"github.com/klwxsrx/project-manager/internal/pkg/auth"
	"github.com/klwxsrx/project-manager/internal/user/app/service"
)

type AuthenticationService interface {
	VerifyAuthentication(context.Context, service.SessionToken) (service.AuthenticationData, error)
}

type identityResolver struct {
	authService AuthenticationService
}

// NewIdentityResolver exposes token verification to other contexts as an auth.IdentityResolver.
func NewIdentityResolver(authService AuthenticationService) auth.IdentityResolver {
	return identityResolver{authService: authService}
}

func (r identityResolver) ResolveIdentity(ctx context.Context, token string) (auth.Principal, error) {
	data, err := r.authService.VerifyAuthentication(ctx, service.SessionToken(token))
	if err != nil {
		return auth.Principal{}, err
	}

	return auth.Principal{
		UserID:   data.UserID.UUID,
		Username: data.Username,
		Role:     auth.Role(data.Role),
	}, nil
}
