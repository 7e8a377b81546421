//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "UserRepository=UserRepository"
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/klwxsrx/project-manager/pkg/event"
)

const (
	Name              = "user"
	AggregateNameUser = "user"
)

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameAlreadyExists = errors.New("username already exists")
)

type (
	User struct {
		ID           UserID
		Username     string
		PasswordHash string
		Role         Role
		CreatedAt    time.Time

		Changes []event.Event
	}

	UserRepository interface {
		NextID() UserID
		Insert(context.Context, *User) error
		FindOne(context.Context, FindUserSpecification) (*User, error)
	}

	// FindUserSpecification matches by every non-nil field.
	FindUserSpecification struct {
		ID       *UserID
		Username *string
	}

	UserID struct{ uuid.UUID }
)

func NewUser(id UserID, username, passwordHash string, role Role, createdAt time.Time) *User {
	return &User{
		ID:           id,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    createdAt,
		Changes: []event.Event{
			EventUserRegistered{
				EventID:  uuid.New(),
				UserID:   id,
				Username: username,
				Role:     role,
			},
		},
	}
}
