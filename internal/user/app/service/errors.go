package service

import (
	"github.com/klwxsrx/project-manager/internal/pkg/apperror"
)

var (
	ErrMissingCredentials    = apperror.New(apperror.KindMissingCredentials, "username and password are required")
	ErrInvalidUsernameFormat = apperror.New(apperror.KindInvalidUsernameFormat, "username must only contain letters, numbers, and underscores")
	ErrInvalidRole           = apperror.New(apperror.KindInvalidRole, "user role must be either admin or user")
	ErrWeakPassword          = apperror.New(apperror.KindWeakPassword, "password must be 8 to 72 bytes long and contain a digit, a lowercase letter, an uppercase letter and a special character")
	ErrUsernameTaken         = apperror.New(apperror.KindUsernameTaken, "user already exists")
	ErrIdentityNotFound      = apperror.New(apperror.KindIdentityNotFound, "user not found")
	ErrInvalidCredentials    = apperror.New(apperror.KindInvalidCredentials, "invalid username or password")
	ErrTokenInvalidOrExpired = apperror.New(apperror.KindTokenInvalidOrExpired, "token is invalid or expired")
)
