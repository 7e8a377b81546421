package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/project-manager/internal/pkg/apperror"
	pkgauth "github.com/klwxsrx/project-manager/pkg/auth"
	pkghttp "github.com/klwxsrx/project-manager/pkg/http"
	"github.com/klwxsrx/project-manager/pkg/strings"
)

const internalErrorCode = "INTERNAL_ERROR"

var ErrorStatusCodes = map[apperror.Kind]int{
	apperror.KindMissingCredentials:      http.StatusUnprocessableEntity,
	apperror.KindInvalidUsernameFormat:   http.StatusUnprocessableEntity,
	apperror.KindInvalidRole:             http.StatusUnprocessableEntity,
	apperror.KindWeakPassword:            http.StatusUnprocessableEntity,
	apperror.KindUsernameTaken:           http.StatusConflict,
	apperror.KindIdentityNotFound:        http.StatusNotFound,
	apperror.KindInvalidCredentials:      http.StatusBadRequest,
	apperror.KindMissingOrMalformedToken: http.StatusUnauthorized,
	apperror.KindTokenInvalidOrExpired:   http.StatusUnauthorized,
	apperror.KindUnauthorized:            http.StatusForbidden,
	apperror.KindInvalidInput:            http.StatusBadRequest,
	apperror.KindProjectNotFound:         http.StatusNotFound,
	apperror.KindProjectAlreadyExists:    http.StatusConflict,
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorMapper renders every failure as {"code","message"}, unknown errors never leak their text.
func ErrorMapper(err error) (int, any) {
	kind, message, ok := apperror.KindOf(err)
	if !ok {
		kind, message, ok = transportErrorKind(err)
	}
	if !ok {
		return http.StatusInternalServerError, ErrorResponse{
			Code:    internalErrorCode,
			Message: "internal error",
		}
	}

	status, ok := ErrorStatusCodes[kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	return status, ErrorResponse{
		Code:    strings.ToScreamingSnakeCase(string(kind)),
		Message: message,
	}
}

func transportErrorKind(err error) (apperror.Kind, string, bool) {
	switch {
	case errors.Is(err, pkgauth.ErrUnauthenticated):
		return apperror.KindMissingOrMalformedToken, "missing or malformed bearer token", true
	case errors.Is(err, pkgauth.ErrPermissionDenied):
		return apperror.KindUnauthorized, "permission denied", true
	case errors.Is(err, pkghttp.ErrParsingError):
		return apperror.KindInvalidInput, "invalid input", true
	default:
		return "", "", false
	}
}
