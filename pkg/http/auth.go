package http

import (
	"net/http"

	"github.com/klwxsrx/project-manager/pkg/auth"
)

type AuthTokenProvider func(*http.Request) (auth.Token, bool)

// WithAuth puts the authentication into the request context.
// Requests without a token proceed anonymously, provider errors end the request.
func WithAuth[T auth.Principal](provider auth.Provider[T], tokenProviders ...AuthTokenProvider) HandlerOption {
	return WithHandlerMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var ok bool
			var token auth.Token
			for _, tokenProvider := range tokenProviders {
				token, ok = tokenProvider(r)
				if ok {
					break
				}
			}
			if !ok {
				r = r.WithContext(auth.WithAuthentication[T](r.Context(), auth.Auth[T]{}))
				handler.ServeHTTP(w, r)
				return
			}

			authData, err := provider.Authenticate(r.Context(), token)
			if err != nil {
				writeHandlerResult(r.Context(), w, err)
				return
			}

			getHandlerMetadata(r.Context()).Authenticated = authData.IsAuthenticated()
			r = r.WithContext(auth.WithAuthentication(r.Context(), authData))
			handler.ServeHTTP(w, r)
		})
	})
}

func WithAuthenticationRequirement() HandlerOption {
	return WithHandlerMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			isAuthenticated, err := auth.IsAuthenticated(r.Context())
			if err != nil || !isAuthenticated {
				writeHandlerResult(r.Context(), w, auth.ErrUnauthenticated)
				return
			}

			handler.ServeHTTP(w, r)
		})
	})
}

// WithPermission checks the permission before the handler reads anything from the request.
func WithPermission[T auth.Principal](service auth.PermissionService[T], permission auth.Permission[T]) HandlerOption {
	return WithHandlerMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			err := service.Check(r.Context(), permission)
			if err != nil {
				writeHandlerResult(r.Context(), w, err)
				return
			}

			handler.ServeHTTP(w, r)
		})
	})
}
