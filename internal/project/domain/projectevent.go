package domain

import (
	"fmt"

	"github.com/google/uuid"
)

type (
	EventProjectCreated struct {
		EventID     uuid.UUID `json:"eventID"`
		ProjectID   ProjectID `json:"projectID"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
		CreatedBy   string    `json:"createdBy"`
	}

	EventProjectUpdated struct {
		EventID     uuid.UUID `json:"eventID"`
		ProjectID   ProjectID `json:"projectID"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
	}

	EventProjectDeleted struct {
		EventID   uuid.UUID `json:"eventID"`
		ProjectID ProjectID `json:"projectID"`
	}
)

func (e EventProjectCreated) ID() uuid.UUID {
	return e.EventID
}

func (e EventProjectCreated) Type() string {
	return fmt.Sprintf("%s.created", AggregateNameProject)
}

func (e EventProjectCreated) AggregateID() uuid.UUID {
	return e.ProjectID.UUID
}

func (e EventProjectUpdated) ID() uuid.UUID {
	return e.EventID
}

func (e EventProjectUpdated) Type() string {
	return fmt.Sprintf("%s.updated", AggregateNameProject)
}

func (e EventProjectUpdated) AggregateID() uuid.UUID {
	return e.ProjectID.UUID
}

func (e EventProjectDeleted) ID() uuid.UUID {
	return e.EventID
}

func (e EventProjectDeleted) Type() string {
	return fmt.Sprintf("%s.deleted", AggregateNameProject)
}

func (e EventProjectDeleted) AggregateID() uuid.UUID {
	return e.ProjectID.UUID
}
