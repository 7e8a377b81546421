package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/project-manager/internal/user/app/session"
	infrasession "github.com/klwxsrx/project-manager/internal/user/infra/session"
	pkgtime "github.com/klwxsrx/project-manager/pkg/time"
)

var testSecret = []byte("test-secret")

func newCodec(t *testing.T, clock pkgtime.Clock) session.TokenCodec {
	t.Helper()
	codec, err := infrasession.NewTokenCodec(session.Config{Secret: testSecret, Algorithm: "HS256"}, clock)
	require.NoError(t, err)
	return codec
}

func TestTokenCodecRoundTrip(t *testing.T) {
	t.Parallel()

	clock := pkgtime.NewAdjustableClock()
	issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 500_000_000, time.UTC)
	ctx := clock.Set(context.Background(), issuedAt)
	codec := newCodec(t, clock)

	token, err := codec.Issue(ctx, "user-id")
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Truncate(time.Second), token.IssuedAt)
	assert.Equal(t, session.TokenTTL, token.ExpiresAt.Sub(token.IssuedAt))

	data, err := codec.Decode(ctx, token.EncodedToken)
	require.NoError(t, err)
	assert.Equal(t, "user-id", data.Subject)
	assert.True(t, token.ExpiresAt.Equal(data.ExpiresAt))
	assert.True(t, token.IssuedAt.Equal(data.IssuedAt))
}

func TestTokenCodecExpiry(t *testing.T) {
	t.Parallel()

	clock := pkgtime.NewAdjustableClock()
	issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	codec := newCodec(t, clock)

	token, err := codec.Issue(clock.Set(context.Background(), issuedAt), "user-id")
	require.NoError(t, err)

	_, err = codec.Decode(clock.Set(context.Background(), issuedAt.Add(session.TokenTTL-time.Second)), token.EncodedToken)
	assert.NoError(t, err)

	_, err = codec.Decode(clock.Set(context.Background(), issuedAt.Add(session.TokenTTL)), token.EncodedToken)
	assert.ErrorIs(t, err, session.ErrInvalidToken)
}

func TestTokenCodecRejectsForeignTokens(t *testing.T) {
	t.Parallel()

	clock := pkgtime.NewAdjustableClock()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	ctx := clock.Set(context.Background(), now)
	codec := newCodec(t, clock)

	validClaims := jwt.RegisteredClaims{
		Subject:   "user-id",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(session.TokenTTL)),
	}
	sign := func(method jwt.SigningMethod, key any, claims jwt.Claims) session.EncodedToken {
		signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return session.EncodedToken(signed)
	}

	tests := []struct {
		name  string
		token session.EncodedToken
	}{
		{name: "malformed", token: "not-a-token"},
		{name: "empty", token: ""},
		{name: "wrong secret", token: sign(jwt.SigningMethodHS256, []byte("other-secret"), validClaims)},
		{name: "other hmac algorithm", token: sign(jwt.SigningMethodHS384, testSecret, validClaims)},
		{name: "none algorithm", token: sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, validClaims)},
		{name: "without expiration", token: sign(jwt.SigningMethodHS256, testSecret, jwt.RegisteredClaims{Subject: "user-id"})},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			_, err := codec.Decode(ctx, test.token)
			assert.ErrorIs(t, err, session.ErrInvalidToken)
		})
	}
}

func TestNewTokenCodecValidatesConfig(t *testing.T) {
	t.Parallel()

	tests := []session.Config{
		{Secret: nil, Algorithm: "HS256"},
		{Secret: testSecret, Algorithm: "RS256"},
		{Secret: testSecret, Algorithm: "none"},
		{Secret: testSecret, Algorithm: ""},
	}

	for _, config := range tests {
		_, err := infrasession.NewTokenCodec(config, pkgtime.NewAdjustableClock())
		assert.ErrorIs(t, err, session.ErrInvalidConfig, config.Algorithm)
	}
}
