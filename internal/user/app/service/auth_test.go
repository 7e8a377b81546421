package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/project-manager/internal/user/app/service"
	"github.com/klwxsrx/project-manager/internal/user/app/session"
	userappsessionmock "github.com/klwxsrx/project-manager/internal/user/app/session/mock"
	"github.com/klwxsrx/project-manager/internal/user/domain"
	userdomainmock "github.com/klwxsrx/project-manager/internal/user/domain/mock"
	"github.com/klwxsrx/project-manager/pkg/metric"
)

func TestAuthenticationService_Login_Returns(t *testing.T) {
	user := &domain.User{
		ID:           domain.UserID{UUID: uuid.New()},
		Username:     "alice",
		PasswordHash: "hashed:" + strongPassword,
		Role:         domain.RoleUser,
	}

	tests := []struct {
		name          string
		username      string
		password      string
		userRepo      func(ctrl *gomock.Controller) domain.UserRepository
		sessionTokens func(ctrl *gomock.Controller) session.TokenCodec
		expect        func(t *testing.T, token service.SessionToken, err error)
	}{
		{
			name:     "missing_credentials",
			username: "alice",
			expect: func(t *testing.T, _ service.SessionToken, err error) {
				assert.ErrorIs(t, err, service.ErrMissingCredentials)
			},
		},
		{
			name:     "invalid_credentials_when_user_is_unknown",
			username: "bob",
			password: strongPassword,
			userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				mock := userdomainmock.NewUserRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUserNotFound)
				return mock
			},
			expect: func(t *testing.T, _ service.SessionToken, err error) {
				assert.ErrorIs(t, err, service.ErrInvalidCredentials)
			},
		},
		{
			name:     "invalid_credentials_when_password_is_wrong",
			username: "alice",
			password: "Wr0ng!Pass",
			userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				mock := userdomainmock.NewUserRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(user, nil)
				return mock
			},
			expect: func(t *testing.T, _ service.SessionToken, err error) {
				assert.ErrorIs(t, err, service.ErrInvalidCredentials)
			},
		},
		{
			name:     "error_when_repo_fails",
			username: "alice",
			password: strongPassword,
			userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				mock := userdomainmock.NewUserRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(nil, errors.New("unexpected"))
				return mock
			},
			expect: func(t *testing.T, _ service.SessionToken, err error) {
				assert.Error(t, err)
				assert.NotErrorIs(t, err, service.ErrInvalidCredentials)
			},
		},
		{
			name:     "success_with_normalized_username",
			username: "ALICE",
			password: strongPassword,
			userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				mock := userdomainmock.NewUserRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, spec domain.FindUserSpecification) (*domain.User, error) {
						require.NotNil(t, spec.Username)
						assert.Equal(t, "alice", *spec.Username)
						return user, nil
					})
				return mock
			},
			sessionTokens: func(ctrl *gomock.Controller) session.TokenCodec {
				mock := userappsessionmock.NewTokenCodec(ctrl)
				mock.EXPECT().Issue(gomock.Any(), user.ID.String()).
					Return(session.TokenData{EncodedToken: "signed-token", Subject: user.ID.String()}, nil)
				return mock
			},
			expect: func(t *testing.T, token service.SessionToken, err error) {
				require.NoError(t, err)
				assert.Equal(t, service.SessionToken("signed-token"), token)
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
			var sessionTokens session.TokenCodec = userappsessionmock.NewTokenCodec(ctrl)
			if tc.sessionTokens != nil {
				sessionTokens = tc.sessionTokens(ctrl)
			}

			srv := service.NewAuthentication(userRepo, sessionTokens, hashingEncoder(ctrl), metric.NewMetricsStub())
			token, err := srv.Login(context.Background(), tc.username, tc.password)
			tc.expect(t, token, err)
		})
	}
}

func TestAuthenticationService_VerifyAuthentication_Returns(t *testing.T) {
	userID := domain.UserID{UUID: uuid.New()}

	tests := []struct {
		name          string
		sessionTokens func(ctrl *gomock.Controller) session.TokenCodec
		userRepo      func(ctrl *gomock.Controller) domain.UserRepository
		expect        func(t *testing.T, data service.AuthenticationData, err error)
	}{
		{
			name: "token_invalid_or_expired",
			sessionTokens: func(ctrl *gomock.Controller) session.TokenCodec {
				mock := userappsessionmock.NewTokenCodec(ctrl)
				mock.EXPECT().Decode(gomock.Any(), session.EncodedToken("token")).
					Return(session.TokenData{}, session.ErrInvalidToken)
				return mock
			},
			expect: func(t *testing.T, _ service.AuthenticationData, err error) {
				assert.ErrorIs(t, err, service.ErrTokenInvalidOrExpired)
			},
		},
		{
			name: "identity_not_found_when_subject_is_not_user_id",
			sessionTokens: func(ctrl *gomock.Controller) session.TokenCodec {
				mock := userappsessionmock.NewTokenCodec(ctrl)
				mock.EXPECT().Decode(gomock.Any(), gomock.Any()).Return(session.TokenData{Subject: "admin"}, nil)
				return mock
			},
			expect: func(t *testing.T, _ service.AuthenticationData, err error) {
				assert.ErrorIs(t, err, service.ErrIdentityNotFound)
			},
		},
		{
			name: "identity_not_found_when_user_is_gone",
			sessionTokens: func(ctrl *gomock.Controller) session.TokenCodec {
				mock := userappsessionmock.NewTokenCodec(ctrl)
				mock.EXPECT().Decode(gomock.Any(), gomock.Any()).Return(session.TokenData{Subject: userID.String()}, nil)
				return mock
			},
			userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				mock := userdomainmock.NewUserRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), domain.FindUserSpecification{ID: &userID}).Return(nil, domain.ErrUserNotFound)
				return mock
			},
			expect: func(t *testing.T, _ service.AuthenticationData, err error) {
				assert.ErrorIs(t, err, service.ErrIdentityNotFound)
			},
		},
		{
			name: "success_with_current_role",
			sessionTokens: func(ctrl *gomock.Controller) session.TokenCodec {
				mock := userappsessionmock.NewTokenCodec(ctrl)
				mock.EXPECT().Decode(gomock.Any(), gomock.Any()).Return(session.TokenData{Subject: userID.String()}, nil)
				return mock
			},
			userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				mock := userdomainmock.NewUserRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), domain.FindUserSpecification{ID: &userID}).
					Return(&domain.User{ID: userID, Username: "root", Role: domain.RoleAdmin}, nil)
				return mock
			},
			expect: func(t *testing.T, data service.AuthenticationData, err error) {
				require.NoError(t, err)
				assert.Equal(t, service.AuthenticationData{UserID: userID, Username: "root", Role: domain.RoleAdmin}, data)
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

			srv := service.NewAuthentication(userRepo, tc.sessionTokens(ctrl), hashingEncoder(ctrl), metric.NewMetricsStub())
			data, err := srv.VerifyAuthentication(context.Background(), "token")
			tc.expect(t, data, err)
		})
	}
}
