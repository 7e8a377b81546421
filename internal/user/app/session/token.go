//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "TokenCodec=TokenCodec"
package session

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// TokenTTL is the fixed lifetime of an issued token.
const TokenTTL = 600 * time.Second

var (
	ErrInvalidToken  = errors.New("token is invalid or expired")
	ErrInvalidConfig = errors.New("invalid token config")

	supportedAlgorithms = map[string]struct{}{
		"HS256": {},
		"HS384": {},
		"HS512": {},
	}
)

type (
	TokenCodec interface {
		Issue(ctx context.Context, subject string) (TokenData, error)
		Decode(context.Context, EncodedToken) (TokenData, error)
	}

	TokenData struct {
		EncodedToken EncodedToken
		Subject      string
		IssuedAt     time.Time
		ExpiresAt    time.Time
	}

	EncodedToken string

	Config struct {
		Secret    []byte
		Algorithm string
	}
)

func (c Config) Validate() error {
	if len(c.Secret) == 0 {
		return fmt.Errorf("%w: secret must be not empty", ErrInvalidConfig)
	}
	if _, ok := supportedAlgorithms[c.Algorithm]; !ok {
		return fmt.Errorf("%w: unsupported algorithm %q", ErrInvalidConfig, c.Algorithm)
	}

	return nil
}
