package http

import (
	"net/http"
	"strings"

	"github.com/klwxsrx/project-manager/internal/pkg/auth"
	pkgauth "github.com/klwxsrx/project-manager/pkg/auth"
)

const (
	AuthorizationHeader = "Authorization"
	RequestIDHeader     = "X-Request-ID"

	bearerScheme = "bearer"
)

// BearerTokenProvider extracts the token from an "Authorization: Bearer <token>" header.
func BearerTokenProvider(r *http.Request) (pkgauth.Token, bool) {
	scheme, value, ok := strings.Cut(strings.TrimSpace(r.Header.Get(AuthorizationHeader)), " ")
	if !ok || !strings.EqualFold(scheme, bearerScheme) {
		return nil, false
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return nil, false
	}

	return auth.BearerToken{Value: value}, true
}
