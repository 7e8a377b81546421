package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/klwxsrx/project-manager/internal/user/app/session"
	pkgtime "github.com/klwxsrx/project-manager/pkg/time"
)

type jwtCodec struct {
	secret []byte
	method jwt.SigningMethod
	clock  pkgtime.Clock
}

func NewTokenCodec(config session.Config, clock pkgtime.Clock) (session.TokenCodec, error) {
	err := config.Validate()
	if err != nil {
		return nil, err
	}

	method := jwt.GetSigningMethod(config.Algorithm)
	if method == nil {
		return nil, fmt.Errorf("%w: unknown algorithm %q", session.ErrInvalidConfig, config.Algorithm)
	}

	return jwtCodec{
		secret: config.Secret,
		method: method,
		clock:  clock,
	}, nil
}

func (c jwtCodec) Issue(ctx context.Context, subject string) (session.TokenData, error) {
	issuedAt := c.clock.Now(ctx).Truncate(time.Second)
	expiresAt := issuedAt.Add(session.TokenTTL)

	token := jwt.NewWithClaims(c.method, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return session.TokenData{}, fmt.Errorf("sign token: %w", err)
	}

	return session.TokenData{
		EncodedToken: session.EncodedToken(signed),
		Subject:      subject,
		IssuedAt:     issuedAt,
		ExpiresAt:    expiresAt,
	}, nil
}

func (c jwtCodec) Decode(ctx context.Context, encoded session.EncodedToken) (session.TokenData, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(
		string(encoded),
		&claims,
		c.keyFunc,
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return c.clock.Now(ctx) }),
	)
	if err != nil {
		return session.TokenData{}, fmt.Errorf("%w: %w", session.ErrInvalidToken, err)
	}

	data := session.TokenData{
		EncodedToken: encoded,
		Subject:      claims.Subject,
		ExpiresAt:    claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		data.IssuedAt = claims.IssuedAt.Time
	}

	return data, nil
}

func (c jwtCodec) keyFunc(token *jwt.Token) (any, error) {
	if token.Method.Alg() != c.method.Alg() {
		return nil, errors.New("unexpected signing method")
	}

	return c.secret, nil
}
