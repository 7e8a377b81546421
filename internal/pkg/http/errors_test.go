package http_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/project-manager/internal/pkg/apperror"
	"github.com/klwxsrx/project-manager/internal/pkg/auth"
	internalhttp "github.com/klwxsrx/project-manager/internal/pkg/http"
	pkgauth "github.com/klwxsrx/project-manager/pkg/auth"
	pkghttp "github.com/klwxsrx/project-manager/pkg/http"
)

func TestErrorMapper(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   internalhttp.ErrorResponse
	}{
		{
			name:           "weak password",
			err:            apperror.New(apperror.KindWeakPassword, "password is too weak"),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   internalhttp.ErrorResponse{Code: "WEAK_PASSWORD", Message: "password is too weak"},
		},
		{
			name:           "wrapped project conflict",
			err:            fmt.Errorf("create project: %w", apperror.New(apperror.KindProjectAlreadyExists, "project already exists")),
			expectedStatus: http.StatusConflict,
			expectedBody:   internalhttp.ErrorResponse{Code: "PROJECT_ALREADY_EXISTS", Message: "project already exists"},
		},
		{
			name:           "token expired",
			err:            apperror.New(apperror.KindTokenInvalidOrExpired, "token is invalid or expired"),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   internalhttp.ErrorResponse{Code: "TOKEN_INVALID_OR_EXPIRED", Message: "token is invalid or expired"},
		},
		{
			name:           "unauthenticated request",
			err:            pkgauth.ErrUnauthenticated,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   internalhttp.ErrorResponse{Code: "MISSING_OR_MALFORMED_TOKEN", Message: "missing or malformed bearer token"},
		},
		{
			name:           "permission denied",
			err:            pkgauth.ErrPermissionDenied,
			expectedStatus: http.StatusForbidden,
			expectedBody:   internalhttp.ErrorResponse{Code: "UNAUTHORIZED", Message: "permission denied"},
		},
		{
			name:           "parsing error",
			err:            fmt.Errorf("%w: decode json body", pkghttp.ErrParsingError),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   internalhttp.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid input"},
		},
		{
			name:           "unknown error is hidden",
			err:            errors.New("connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   internalhttp.ErrorResponse{Code: "INTERNAL_ERROR", Message: "internal error"},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			status, body := internalhttp.ErrorMapper(test.err)
			assert.Equal(t, test.expectedStatus, status)
			assert.Equal(t, test.expectedBody, body)
		})
	}
}

func TestBearerTokenProvider(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectedOK    bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", expectedToken: "abc.def.ghi", expectedOK: true},
		{name: "scheme is case insensitive", header: "bearer abc", expectedToken: "abc", expectedOK: true},
		{name: "missing header"},
		{name: "other scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "empty token", header: "Bearer   "},
		{name: "no scheme", header: "abc.def.ghi"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r, err := http.NewRequest(http.MethodGet, "/projects", nil)
			assert.NoError(t, err)
			if test.header != "" {
				r.Header.Set(internalhttp.AuthorizationHeader, test.header)
			}

			token, ok := internalhttp.BearerTokenProvider(r)
			assert.Equal(t, test.expectedOK, ok)
			if test.expectedOK {
				assert.Equal(t, auth.BearerToken{Value: test.expectedToken}, token)
			}
		})
	}
}
