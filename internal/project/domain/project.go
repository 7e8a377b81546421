//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "ProjectRepository=ProjectRepository"
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/klwxsrx/project-manager/pkg/event"
)

const (
	Name                 = "project"
	AggregateNameProject = "project"
)

var (
	ErrProjectNotFound          = errors.New("project not found")
	ErrProjectNameAlreadyExists = errors.New("project name already exists")
)

type (
	Project struct {
		ID          ProjectID
		Name        string
		Description string
		CreatedBy   string
		CreatedAt   time.Time

		Changes []event.Event
	}

	ProjectRepository interface {
		NextID() ProjectID
		Insert(context.Context, *Project) error
		Update(context.Context, *Project) error
		Delete(context.Context, ProjectID) error
		FindOne(context.Context, FindProjectSpecification) (*Project, error)
		// List returns projects ordered by creation time.
		List(ctx context.Context, offset, limit int) ([]Project, error)
		Count(context.Context) (int, error)
	}

	// FindProjectSpecification matches by every non-nil field.
	FindProjectSpecification struct {
		ID   *ProjectID
		Name *string
	}

	ProjectID struct{ uuid.UUID }
)

func NewProject(id ProjectID, name, description, createdBy string, createdAt time.Time) *Project {
	p := &Project{
		ID:          id,
		Name:        name,
		Description: description,
		CreatedBy:   createdBy,
		CreatedAt:   createdAt,
	}
	p.Changes = append(p.Changes, EventProjectCreated{
		EventID:     uuid.New(),
		ProjectID:   id,
		Name:        name,
		Description: description,
		CreatedBy:   createdBy,
	})

	return p
}

// Update records a change only when name or description actually differs.
func (p *Project) Update(name, description string) {
	if p.Name == name && p.Description == description {
		return
	}

	p.Name = name
	p.Description = description
	p.Changes = append(p.Changes, EventProjectUpdated{
		EventID:     uuid.New(),
		ProjectID:   p.ID,
		Name:        name,
		Description: description,
	})
}

func (p *Project) Delete() {
	p.Changes = append(p.Changes, EventProjectDeleted{
		EventID:   uuid.New(),
		ProjectID: p.ID,
	})
}
