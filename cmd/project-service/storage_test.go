package main

import (
	"context"
	"sync"

	"github.com/google/uuid"

	projectdomain "github.com/klwxsrx/project-manager/internal/project/domain"
	userdomain "github.com/klwxsrx/project-manager/internal/user/domain"
	"github.com/klwxsrx/project-manager/pkg/event"
)

type memoryUserRepo struct {
	mu    sync.Mutex
	users []userdomain.User
}

func (r *memoryUserRepo) NextID() userdomain.UserID {
	return userdomain.UserID{UUID: uuid.New()}
}

func (r *memoryUserRepo) Insert(_ context.Context, user *userdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username {
			return userdomain.ErrUsernameAlreadyExists
		}
	}

	stored := *user
	stored.Changes = nil
	r.users = append(r.users, stored)
	return nil
}

func (r *memoryUserRepo) FindOne(_ context.Context, spec userdomain.FindUserSpecification) (*userdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if spec.ID != nil && user.ID != *spec.ID {
			continue
		}
		if spec.Username != nil && user.Username != *spec.Username {
			continue
		}

		found := user
		return &found, nil
	}

	return nil, userdomain.ErrUserNotFound
}

type memoryProjectRepo struct {
	mu       sync.Mutex
	projects []projectdomain.Project
}

func (r *memoryProjectRepo) NextID() projectdomain.ProjectID {
	return projectdomain.ProjectID{UUID: uuid.New()}
}

func (r *memoryProjectRepo) Insert(_ context.Context, project *projectdomain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nameTaken(project) {
		return projectdomain.ErrProjectNameAlreadyExists
	}

	stored := *project
	stored.Changes = nil
	r.projects = append(r.projects, stored)
	return nil
}

func (r *memoryProjectRepo) Update(_ context.Context, project *projectdomain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nameTaken(project) {
		return projectdomain.ErrProjectNameAlreadyExists
	}
	for i := range r.projects {
		if r.projects[i].ID == project.ID {
			r.projects[i].Name = project.Name
			r.projects[i].Description = project.Description
			return nil
		}
	}

	return projectdomain.ErrProjectNotFound
}

func (r *memoryProjectRepo) Delete(_ context.Context, id projectdomain.ProjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.projects {
		if r.projects[i].ID == id {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return nil
		}
	}

	return projectdomain.ErrProjectNotFound
}

func (r *memoryProjectRepo) FindOne(_ context.Context, spec projectdomain.FindProjectSpecification) (*projectdomain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, project := range r.projects {
		if spec.ID != nil && project.ID != *spec.ID {
			continue
		}
		if spec.Name != nil && project.Name != *spec.Name {
			continue
		}

		found := project
		return &found, nil
	}

	return nil, projectdomain.ErrProjectNotFound
}

func (r *memoryProjectRepo) List(_ context.Context, offset, limit int) ([]projectdomain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if offset >= len(r.projects) {
		return nil, nil
	}

	end := min(offset+limit, len(r.projects))
	return append([]projectdomain.Project(nil), r.projects[offset:end]...), nil
}

func (r *memoryProjectRepo) Count(context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.projects), nil
}

func (r *memoryProjectRepo) nameTaken(project *projectdomain.Project) bool {
	for _, existing := range r.projects {
		if existing.Name == project.Name && existing.ID != project.ID {
			return true
		}
	}

	return false
}

type recordingDispatcher struct {
	mu    sync.Mutex
	types []string
}

func (d *recordingDispatcher) Dispatch(_ context.Context, events ...event.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, evt := range events {
		d.types = append(d.types, evt.Type())
	}

	return nil
}

func (d *recordingDispatcher) dispatched() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]string(nil), d.types...)
}
