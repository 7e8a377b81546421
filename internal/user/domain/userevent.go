package domain

import (
	"fmt"

	"github.com/google/uuid"
)

type EventUserRegistered struct {
	EventID  uuid.UUID `json:"eventID"`
	UserID   UserID    `json:"userID"`
	Username string    `json:"username"`
	Role     Role      `json:"role"`
}

func (e EventUserRegistered) ID() uuid.UUID {
	return e.EventID
}

func (e EventUserRegistered) Type() string {
	return fmt.Sprintf("%s.registered", AggregateNameUser)
}

func (e EventUserRegistered) AggregateID() uuid.UUID {
	return e.UserID.UUID
}
