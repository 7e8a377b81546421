//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Dispatcher=Dispatcher"
package event

import (
	"context"

	"github.com/google/uuid"
)

type (
	Event interface {
		ID() uuid.UUID
		Type() string
		AggregateID() uuid.UUID
	}

	Dispatcher interface {
		Dispatch(ctx context.Context, events ...Event) error
	}
)
