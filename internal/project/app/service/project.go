//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Project=Project"
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/klwxsrx/project-manager/internal/pkg/auth"
	"github.com/klwxsrx/project-manager/internal/project/app/permission"
	"github.com/klwxsrx/project-manager/internal/project/domain"
	pkgauth "github.com/klwxsrx/project-manager/pkg/auth"
	"github.com/klwxsrx/project-manager/pkg/event"
	"github.com/klwxsrx/project-manager/pkg/log"
	pkgtime "github.com/klwxsrx/project-manager/pkg/time"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 2
	MaxPageSize     = 100
)

type (
	Project interface {
		Create(context.Context, ProjectInput) (domain.ProjectID, error)
		Update(context.Context, domain.ProjectID, ProjectInput) error
		Patch(context.Context, domain.ProjectID, ProjectPatch) error
		Delete(context.Context, domain.ProjectID) error
		List(context.Context, PageRequest) (*ProjectPage, error)
	}

	ProjectInput struct {
		Name        string
		Description string
	}

	// ProjectPatch fields left nil or empty keep their stored values.
	ProjectPatch struct {
		Name        *string
		Description *string
	}

	PageRequest struct {
		Page     int
		PageSize int
	}

	ProjectPage struct {
		Projects []ProjectData
		Total    int
		Page     int
		PageSize int
	}

	ProjectData struct {
		ID          domain.ProjectID
		Name        string
		Description string
		CreatedBy   string
		CreatedAt   time.Time
	}

	projectService struct {
		projectRepo     domain.ProjectRepository
		permissions     auth.PermissionService
		policy          permission.Policy
		eventDispatcher event.Dispatcher
		clock           pkgtime.Clock
		logger          log.Logger
	}
)

func NewProject(
	projectRepo domain.ProjectRepository,
	permissions auth.PermissionService,
	policy permission.Policy,
	eventDispatcher event.Dispatcher,
	clock pkgtime.Clock,
	logger log.Logger,
) Project {
	return &projectService{
		projectRepo:     projectRepo,
		permissions:     permissions,
		policy:          policy,
		eventDispatcher: eventDispatcher,
		clock:           clock,
		logger:          logger,
	}
}

func (s *projectService) Create(ctx context.Context, input ProjectInput) (domain.ProjectID, error) {
	if err := s.permissions.Check(ctx, s.policy.Permission(permission.OperationCreateProject)); err != nil {
		return domain.ProjectID{}, err
	}
	if isBlank(input.Name) || isBlank(input.Description) {
		return domain.ProjectID{}, ErrEmptyFields
	}

	err := s.assertNameAvailable(ctx, input.Name, nil)
	if err != nil {
		return domain.ProjectID{}, err
	}

	principal, err := currentPrincipal(ctx)
	if err != nil {
		return domain.ProjectID{}, err
	}

	project := domain.NewProject(s.projectRepo.NextID(), input.Name, input.Description, principal.Username, s.clock.Now(ctx).UTC())
	err = s.projectRepo.Insert(ctx, project)
	if errors.Is(err, domain.ErrProjectNameAlreadyExists) {
		return domain.ProjectID{}, ErrProjectAlreadyExists
	}
	if err != nil {
		return domain.ProjectID{}, fmt.Errorf("insert project: %w", err)
	}

	s.dispatchChanges(ctx, project)
	return project.ID, nil
}

func (s *projectService) Update(ctx context.Context, id domain.ProjectID, input ProjectInput) error {
	if err := s.permissions.Check(ctx, s.policy.Permission(permission.OperationUpdateProject)); err != nil {
		return err
	}
	if isBlank(input.Name) || isBlank(input.Description) {
		return ErrEmptyFields
	}

	project, err := s.findProject(ctx, id)
	if err != nil {
		return err
	}

	return s.save(ctx, project, input.Name, input.Description)
}

func (s *projectService) Patch(ctx context.Context, id domain.ProjectID, patch ProjectPatch) error {
	if err := s.permissions.Check(ctx, s.policy.Permission(permission.OperationPatchProject)); err != nil {
		return err
	}

	project, err := s.findProject(ctx, id)
	if err != nil {
		return err
	}

	name := project.Name
	if patch.Name != nil && !isBlank(*patch.Name) {
		name = *patch.Name
	}
	description := project.Description
	if patch.Description != nil && !isBlank(*patch.Description) {
		description = *patch.Description
	}

	return s.save(ctx, project, name, description)
}

func (s *projectService) Delete(ctx context.Context, id domain.ProjectID) error {
	if err := s.permissions.Check(ctx, s.policy.Permission(permission.OperationDeleteProject)); err != nil {
		return err
	}

	project, err := s.findProject(ctx, id)
	if err != nil {
		return err
	}

	err = s.projectRepo.Delete(ctx, project.ID)
	if errors.Is(err, domain.ErrProjectNotFound) {
		return ErrProjectNotFound
	}
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	project.Delete()
	s.dispatchChanges(ctx, project)
	return nil
}

// List returns one page of projects and fails when the page holds none.
func (s *projectService) List(ctx context.Context, page PageRequest) (*ProjectPage, error) {
	if err := s.permissions.Check(ctx, s.policy.Permission(permission.OperationListProjects)); err != nil {
		return nil, err
	}
	if page.Page < 1 || page.PageSize < 1 || page.PageSize > MaxPageSize {
		return nil, ErrInvalidPage
	}
	// offset past math.MaxInt cannot hold any project
	if page.Page-1 > math.MaxInt/page.PageSize {
		return nil, ErrNoProjects
	}

	projects, err := s.projectRepo.List(ctx, (page.Page-1)*page.PageSize, page.PageSize)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	if len(projects) == 0 {
		return nil, ErrNoProjects
	}

	total, err := s.projectRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count projects: %w", err)
	}

	return &ProjectPage{
		Projects: toProjectsData(projects),
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}, nil
}

func (s *projectService) save(ctx context.Context, project *domain.Project, name, description string) error {
	if name != project.Name {
		err := s.assertNameAvailable(ctx, name, &project.ID)
		if err != nil {
			return err
		}
	}

	project.Update(name, description)
	if len(project.Changes) == 0 {
		return nil
	}

	err := s.projectRepo.Update(ctx, project)
	switch {
	case errors.Is(err, domain.ErrProjectNameAlreadyExists):
		return ErrProjectAlreadyExists
	case errors.Is(err, domain.ErrProjectNotFound):
		return ErrProjectNotFound
	case err != nil:
		return fmt.Errorf("update project: %w", err)
	}

	s.dispatchChanges(ctx, project)
	return nil
}

func (s *projectService) findProject(ctx context.Context, id domain.ProjectID) (*domain.Project, error) {
	project, err := s.projectRepo.FindOne(ctx, domain.FindProjectSpecification{ID: &id})
	if errors.Is(err, domain.ErrProjectNotFound) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find project by id: %w", err)
	}

	return project, nil
}

func (s *projectService) assertNameAvailable(ctx context.Context, name string, except *domain.ProjectID) error {
	existing, err := s.projectRepo.FindOne(ctx, domain.FindProjectSpecification{Name: &name})
	if errors.Is(err, domain.ErrProjectNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("find project by name: %w", err)
	}
	if except != nil && existing.ID == *except {
		return nil
	}

	return ErrProjectAlreadyExists
}

func (s *projectService) dispatchChanges(ctx context.Context, project *domain.Project) {
	err := s.eventDispatcher.Dispatch(ctx, project.Changes...)
	if err != nil {
		s.logger.WithError(err).WithField("projectID", project.ID.String()).Warn(ctx, "failed to dispatch project events")
	}
}

func currentPrincipal(ctx context.Context) (auth.Principal, error) {
	authentication, ok := pkgauth.GetAuthentication[auth.Principal](ctx)
	if !ok || authentication.Principal() == nil {
		return auth.Principal{}, pkgauth.ErrUnauthenticated
	}

	return *authentication.Principal(), nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
