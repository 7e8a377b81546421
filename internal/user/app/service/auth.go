//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Authentication=Authentication"
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/klwxsrx/project-manager/internal/user/app/encoding"
	"github.com/klwxsrx/project-manager/internal/user/app/session"
	"github.com/klwxsrx/project-manager/internal/user/domain"
	"github.com/klwxsrx/project-manager/pkg/metric"
)

const (
	metricLogin           = "auth_login_total"
	metricTokenRejections = "auth_token_rejections_total"

	loginResultSuccess            = "success"
	loginResultMissingCredentials = "missing_credentials"
	loginResultInvalidCredentials = "invalid_credentials"
)

type (
	Authentication interface {
		Login(ctx context.Context, username, password string) (SessionToken, error)
		VerifyAuthentication(context.Context, SessionToken) (AuthenticationData, error)
	}

	AuthenticationData struct {
		UserID   domain.UserID
		Username string
		Role     domain.Role
	}

	SessionToken string

	authenticationService struct {
		userRepo        domain.UserRepository
		sessionTokens   session.TokenCodec
		passwordEncoder encoding.PasswordEncoder
		metrics         metric.Metrics
	}
)

func NewAuthentication(
	userRepo domain.UserRepository,
	sessionTokens session.TokenCodec,
	passwordEncoder encoding.PasswordEncoder,
	metrics metric.Metrics,
) Authentication {
	return &authenticationService{
		userRepo:        userRepo,
		sessionTokens:   sessionTokens,
		passwordEncoder: passwordEncoder,
		metrics:         metrics,
	}
}

// Login answers the same way for an unknown username and a wrong password.
func (s authenticationService) Login(ctx context.Context, username, password string) (SessionToken, error) {
	if username == "" || password == "" {
		s.countLogin(loginResultMissingCredentials)
		return "", ErrMissingCredentials
	}

	username = domain.NormalizeUsername(username)
	user, err := s.userRepo.FindOne(ctx, domain.FindUserSpecification{Username: &username})
	if errors.Is(err, domain.ErrUserNotFound) {
		s.countLogin(loginResultInvalidCredentials)
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("find user by username: %w", err)
	}

	if !s.passwordEncoder.CompareHash(user.PasswordHash, password) {
		s.countLogin(loginResultInvalidCredentials)
		return "", ErrInvalidCredentials
	}

	token, err := s.sessionTokens.Issue(ctx, user.ID.String())
	if err != nil {
		return "", fmt.Errorf("issue session token: %w", err)
	}

	s.countLogin(loginResultSuccess)
	return SessionToken(token.EncodedToken), nil
}

// VerifyAuthentication always reads the identity from the repository, so a deleted user is rejected at once.
func (s authenticationService) VerifyAuthentication(ctx context.Context, token SessionToken) (AuthenticationData, error) {
	tokenData, err := s.sessionTokens.Decode(ctx, session.EncodedToken(token))
	if errors.Is(err, session.ErrInvalidToken) {
		s.metrics.Increment(metricTokenRejections)
		return AuthenticationData{}, ErrTokenInvalidOrExpired
	}
	if err != nil {
		return AuthenticationData{}, fmt.Errorf("decode token: %w", err)
	}

	subject, err := uuid.Parse(tokenData.Subject)
	if err != nil {
		s.metrics.Increment(metricTokenRejections)
		return AuthenticationData{}, ErrIdentityNotFound
	}

	userID := domain.UserID{UUID: subject}
	user, err := s.userRepo.FindOne(ctx, domain.FindUserSpecification{ID: &userID})
	if errors.Is(err, domain.ErrUserNotFound) {
		s.metrics.Increment(metricTokenRejections)
		return AuthenticationData{}, ErrIdentityNotFound
	}
	if err != nil {
		return AuthenticationData{}, fmt.Errorf("find user by id: %w", err)
	}

	return AuthenticationData{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}

func (s authenticationService) countLogin(result string) {
	s.metrics.WithLabel("result", result).Increment(metricLogin)
}
