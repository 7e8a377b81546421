package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/project-manager/internal/pkg/auth"
	"github.com/klwxsrx/project-manager/internal/user/app/encoding"
	userappencodingmock "github.com/klwxsrx/project-manager/internal/user/app/encoding/mock"
	"github.com/klwxsrx/project-manager/internal/user/app/service"
	"github.com/klwxsrx/project-manager/internal/user/domain"
	userdomainmock "github.com/klwxsrx/project-manager/internal/user/domain/mock"
	pkgauth "github.com/klwxsrx/project-manager/pkg/auth"
	pkgeventmock "github.com/klwxsrx/project-manager/pkg/event/mock"
	"github.com/klwxsrx/project-manager/pkg/log"
	pkgtime "github.com/klwxsrx/project-manager/pkg/time"
)

const strongPassword = "Str0ng!Pass"

func TestUserService_Register_Returns(t *testing.T) {
	userID := domain.UserID{UUID: uuid.New()}

	tests := []struct {
		name            string
		registration    service.Registration
		userRepo        func(ctrl *gomock.Controller) domain.UserRepository
		passwordEncoder func(ctrl *gomock.Controller) encoding.PasswordEncoder
		dispatchErr     error
		expect          func(t *testing.T, data *service.UserData, err error)
	}{
		{
			name:         "missing_credentials_when_username_is_empty",
			registration: service.Registration{Password: strongPassword},
			expect: func(t *testing.T, _ *service.UserData, err error) {
				assert.ErrorIs(t, err, service.ErrMissingCredentials)
			},
		},
		{
			name:         "missing_credentials_before_format_check",
			registration: service.Registration{Username: "bad name!", Password: ""},
			expect: func(t *testing.T, _ *service.UserData, err error) {
				assert.ErrorIs(t, err, service.ErrMissingCredentials)
			},
		},
		{
			name:         "invalid_username_format",
			registration: service.Registration{Username: "bad name", Password: strongPassword},
			expect: func(t *testing.T, _ *service.UserData, err error) {
				assert.ErrorIs(t, err, service.ErrInvalidUsernameFormat)
			},
		},
		{
			name:         "invalid_role_before_weak_password",
			registration: service.Registration{Username: "alice", Password: "weak", Role: "superuser"},
			expect: func(t *testing.T, _ *service.UserData, err error) {
				assert.ErrorIs(t, err, service.ErrInvalidRole)
			},
		},
		{
			name:         "weak_password",
			registration: service.Registration{Username: "alice", Password: "weakpass"},
			expect: func(t *testing.T, _ *service.UserData, err error) {
				assert.ErrorIs(t, err, service.ErrWeakPassword)
			},
		},
		{
			name:         "username_taken_when_normalized_username_exists",
			registration: service.Registration{Username: "Alice", Password: strongPassword},
			userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				mock := userdomainmock.NewUserRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, spec domain.FindUserSpecification) (*domain.User, error) {
						require.NotNil(t, spec.Username)
						assert.Equal(t, "alice", *spec.Username)
						return &domain.User{ID: userID, Username: "alice"}, nil
					})
				return mock
			},
			expect: func(t *testing.T, _ *service.UserData, err error) {
				assert.ErrorIs(t, err, service.ErrUsernameTaken)
			},
		},
		{
			name:         "username_taken_when_insert_loses_race",
			registration: service.Registration{Username: "alice", Password: strongPassword},
			userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				mock := userdomainmock.NewUserRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUserNotFound)
				mock.EXPECT().NextID().Return(userID)
				mock.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(domain.ErrUsernameAlreadyExists)
				return mock
			},
			passwordEncoder: hashingEncoder,
			expect: func(t *testing.T, _ *service.UserData, err error) {
				assert.ErrorIs(t, err, service.ErrUsernameTaken)
			},
		},
		{
			name:         "error_when_repo_fails",
			registration: service.Registration{Username: "alice", Password: strongPassword},
			userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				mock := userdomainmock.NewUserRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(nil, errors.New("unexpected"))
				return mock
			},
			expect: func(t *testing.T, _ *service.UserData, err error) {
				assert.Error(t, err)
				assert.NotErrorIs(t, err, service.ErrUsernameTaken)
			},
		},
		{
			name:         "success_with_default_role",
			registration: service.Registration{Username: "Alice_01", Password: strongPassword},
			userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				mock := userdomainmock.NewUserRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUserNotFound)
				mock.EXPECT().NextID().Return(userID)
				mock.EXPECT().Insert(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, user *domain.User) {
						assert.Equal(t, userID, user.ID)
						assert.Equal(t, "alice_01", user.Username)
						assert.Equal(t, "hashed:"+strongPassword, user.PasswordHash)
						assert.Equal(t, domain.RoleUser, user.Role)
						assert.Len(t, user.Changes, 1)
						assert.IsType(t, domain.EventUserRegistered{}, user.Changes[0])
					}).
					Return(nil)
				return mock
			},
			passwordEncoder: hashingEncoder,
			expect: func(t *testing.T, data *service.UserData, err error) {
				require.NoError(t, err)
				assert.Equal(t, userID, data.ID)
				assert.Equal(t, "alice_01", data.Username)
				assert.Equal(t, domain.RoleUser, data.Role)
			},
		},
		{
			name:         "success_when_event_dispatch_fails",
			registration: service.Registration{Username: "root", Password: strongPassword, Role: "Admin"},
			userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				mock := userdomainmock.NewUserRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUserNotFound)
				mock.EXPECT().NextID().Return(userID)
				mock.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				return mock
			},
			passwordEncoder: hashingEncoder,
			dispatchErr:     errors.New("broker is down"),
			expect: func(t *testing.T, data *service.UserData, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.RoleAdmin, data.Role)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			var userRepo domain.UserRepository = userdomainmock.NewUserRepository(ctrl)
			if tc.userRepo != nil {
				userRepo = tc.userRepo(ctrl)
			}
			var passwordEncoder encoding.PasswordEncoder = userappencodingmock.NewPasswordEncoder(ctrl)
			if tc.passwordEncoder != nil {
				passwordEncoder = tc.passwordEncoder(ctrl)
			}
			dispatcher := pkgeventmock.NewDispatcher(ctrl)
			dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(tc.dispatchErr).AnyTimes()

			srv := service.NewUser(
				userRepo,
				passwordEncoder,
				auth.NewPermissionService(),
				dispatcher,
				pkgtime.NewAdjustableClock(),
				log.NewStub(),
			)

			data, err := srv.Register(context.Background(), tc.registration)
			tc.expect(t, data, err)
		})
	}
}

func TestUserService_GetByID_Returns(t *testing.T) {
	userID := domain.UserID{UUID: uuid.New()}
	otherUserID := domain.UserID{UUID: uuid.New()}

	tests := []struct {
		name      string
		principal *auth.Principal
		userRepo  func(ctrl *gomock.Controller) domain.UserRepository
		expect    func(t *testing.T, data *service.UserData, err error)
	}{
		{
			name:      "success_for_self",
			principal: &auth.Principal{UserID: userID.UUID, Role: auth.RoleUser},
			userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				mock := userdomainmock.NewUserRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), domain.FindUserSpecification{ID: &userID}).
					Return(&domain.User{ID: userID, Username: "alice", Role: domain.RoleUser}, nil)
				return mock
			},
			expect: func(t *testing.T, data *service.UserData, err error) {
				require.NoError(t, err)
				assert.Equal(t, "alice", data.Username)
			},
		},
		{
			name:      "permission_denied_for_other_user",
			principal: &auth.Principal{UserID: otherUserID.UUID, Role: auth.RoleUser},
			expect: func(t *testing.T, _ *service.UserData, err error) {
				assert.ErrorIs(t, err, pkgauth.ErrPermissionDenied)
			},
		},
		{
			name:      "identity_not_found",
			principal: &auth.Principal{UserID: otherUserID.UUID, Role: auth.RoleAdmin},
			userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				mock := userdomainmock.NewUserRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUserNotFound)
				return mock
			},
			expect: func(t *testing.T, _ *service.UserData, err error) {
				assert.ErrorIs(t, err, service.ErrIdentityNotFound)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			var userRepo domain.UserRepository = userdomainmock.NewUserRepository(ctrl)
			if tc.userRepo != nil {
				userRepo = tc.userRepo(ctrl)
			}

			srv := service.NewUser(
				userRepo,
				userappencodingmock.NewPasswordEncoder(ctrl),
				auth.NewPermissionService(),
				pkgeventmock.NewDispatcher(ctrl),
				pkgtime.NewAdjustableClock(),
				log.NewStub(),
			)

			ctx := pkgauth.WithAuthentication[auth.Principal](context.Background(), pkgauth.Auth[auth.Principal]{AuthPrincipal: tc.principal})
			data, err := srv.GetByID(ctx, userID)
			tc.expect(t, data, err)
		})
	}
}

func hashingEncoder(ctrl *gomock.Controller) encoding.PasswordEncoder {
	mock := userappencodingmock.NewPasswordEncoder(ctrl)
	mock.EXPECT().HashPassword(gomock.Any()).DoAndReturn(func(password string) (string, error) {
		return "hashed:" + password, nil
	}).AnyTimes()
	mock.EXPECT().CompareHash(gomock.Any(), gomock.Any()).DoAndReturn(func(hash, password string) bool {
		return hash == "hashed:"+password
	}).AnyTimes()
	return mock
}
