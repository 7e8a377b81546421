//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "User=User"
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/klwxsrx/project-manager/internal/pkg/auth"
	"github.com/klwxsrx/project-manager/internal/user/app/encoding"
	"github.com/klwxsrx/project-manager/internal/user/app/permission"
	"github.com/klwxsrx/project-manager/internal/user/domain"
	"github.com/klwxsrx/project-manager/pkg/event"
	"github.com/klwxsrx/project-manager/pkg/log"
	pkgtime "github.com/klwxsrx/project-manager/pkg/time"
)

type (
	User interface {
		Register(context.Context, Registration) (*UserData, error)
		GetByID(context.Context, domain.UserID) (*UserData, error)
	}

	Registration struct {
		Username string
		Password string
		Role     string
	}

	UserData struct {
		ID        domain.UserID
		Username  string
		Role      domain.Role
		CreatedAt time.Time
	}

	userService struct {
		userRepo        domain.UserRepository
		passwordEncoder encoding.PasswordEncoder
		permissions     auth.PermissionService
		eventDispatcher event.Dispatcher
		clock           pkgtime.Clock
		logger          log.Logger
	}
)

func NewUser(
	userRepo domain.UserRepository,
	passwordEncoder encoding.PasswordEncoder,
	permissions auth.PermissionService,
	eventDispatcher event.Dispatcher,
	clock pkgtime.Clock,
	logger log.Logger,
) User {
	return &userService{
		userRepo:        userRepo,
		passwordEncoder: passwordEncoder,
		permissions:     permissions,
		eventDispatcher: eventDispatcher,
		clock:           clock,
		logger:          logger,
	}
}

// Register validates in a fixed order and stops at the first failed check.
func (s *userService) Register(ctx context.Context, registration Registration) (*UserData, error) {
	if registration.Username == "" || registration.Password == "" {
		return nil, ErrMissingCredentials
	}
	if !domain.IsValidUsername(registration.Username) {
		return nil, ErrInvalidUsernameFormat
	}

	username := domain.NormalizeUsername(registration.Username)
	role, err := domain.ParseRole(registration.Role)
	if err != nil {
		return nil, ErrInvalidRole
	}
	if !domain.IsStrongPassword(registration.Password) {
		return nil, ErrWeakPassword
	}

	_, err = s.userRepo.FindOne(ctx, domain.FindUserSpecification{Username: &username})
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("find user by username: %w", err)
	}

	passwordHash, err := s.passwordEncoder.HashPassword(registration.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := domain.NewUser(s.userRepo.NextID(), username, passwordHash, role, s.clock.Now(ctx).UTC())
	err = s.userRepo.Insert(ctx, user)
	if errors.Is(err, domain.ErrUsernameAlreadyExists) {
		return nil, ErrUsernameTaken
	}
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	s.dispatchChanges(ctx, user)
	return toUserData(user), nil
}

func (s *userService) GetByID(ctx context.Context, userID domain.UserID) (*UserData, error) {
	if err := s.permissions.Check(ctx, permission.CanReadUser(userID)); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindOne(ctx, domain.FindUserSpecification{ID: &userID})
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, ErrIdentityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}

	return toUserData(user), nil
}

func (s *userService) dispatchChanges(ctx context.Context, user *domain.User) {
	err := s.eventDispatcher.Dispatch(ctx, user.Changes...)
	if err != nil {
		s.logger.WithError(err).WithField("userID", user.ID.String()).Warn(ctx, "failed to dispatch user events")
	}
}
