package apperror

import (
	"errors"
)

type Kind string

const (
	KindMissingCredentials      Kind = "MissingCredentials"
	KindInvalidUsernameFormat   Kind = "InvalidUsernameFormat"
	KindInvalidRole             Kind = "InvalidRole"
	KindWeakPassword            Kind = "WeakPassword"
	KindUsernameTaken           Kind = "UsernameTaken"
	KindIdentityNotFound        Kind = "IdentityNotFound"
	KindInvalidCredentials      Kind = "InvalidCredentials"
	KindMissingOrMalformedToken Kind = "MissingOrMalformedToken"
	KindTokenInvalidOrExpired   Kind = "TokenInvalidOrExpired"
	KindUnauthorized            Kind = "Unauthorized"
	KindInvalidInput            Kind = "InvalidInput"
	KindProjectNotFound         Kind = "ProjectNotFound"
	KindProjectAlreadyExists    Kind = "ProjectAlreadyExists"
)

// Error is a client-facing failure. Sentinels are compared with errors.Is.
type Error struct {
	kind    Kind
	message string
}

func New(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Kind() Kind {
	return e.kind
}

func KindOf(err error) (Kind, string, bool) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return "", "", false
	}

	return appErr.kind, appErr.message, true
}
