package project

import (
	"context"
	"errors"
	"strings"

	"github.com/klwxsrx/project-manager/internal/pkg/auth"
	"github.com/klwxsrx/project-manager/internal/pkg/cmd"
	"github.com/klwxsrx/project-manager/internal/project/app/message"
	"github.com/klwxsrx/project-manager/internal/project/app/permission"
	"github.com/klwxsrx/project-manager/internal/project/app/service"
	"github.com/klwxsrx/project-manager/internal/project/domain"
	"github.com/klwxsrx/project-manager/internal/project/infra"
	"github.com/klwxsrx/project-manager/internal/project/infra/http"
	"github.com/klwxsrx/project-manager/pkg/env"
	"github.com/klwxsrx/project-manager/pkg/event"
	pkghttp "github.com/klwxsrx/project-manager/pkg/http"
	"github.com/klwxsrx/project-manager/pkg/lazy"
	"github.com/klwxsrx/project-manager/pkg/log"
	pkgmessage "github.com/klwxsrx/project-manager/pkg/message"
	pkgtime "github.com/klwxsrx/project-manager/pkg/time"
)

type (
	DependencyContainer struct {
		policy lazy.Loader[permission.Policy]

		permissions          auth.PermissionService
		createProjectHandler lazy.Loader[http.CreateProjectHandler]
		updateProjectHandler lazy.Loader[http.UpdateProjectHandler]
		patchProjectHandler  lazy.Loader[http.PatchProjectHandler]
		deleteProjectHandler lazy.Loader[http.DeleteProjectHandler]
		listProjectsHandler  lazy.Loader[http.ListProjectsHandler]
	}

	Dependencies struct {
		ProjectRepo     lazy.Loader[domain.ProjectRepository]
		EventDispatcher lazy.Loader[event.Dispatcher]
		Policy          lazy.Loader[permission.Policy]
		Clock           lazy.Loader[pkgtime.Clock]
		Logger          lazy.Loader[log.Logger]
	}
)

func NewDependencyContainer(ctx context.Context, infraContainer *cmd.InfrastructureContainer) DependencyContainer {
	storageContainer := infra.NewStorageContainer(
		ctx,
		infraContainer.StorageDriver,
		infraContainer.MongoDB,
		infraContainer.DB,
		infraContainer.DBMigrations,
	)
	projectRepo := lazy.New(func() (domain.ProjectRepository, error) {
		return storageContainer.MustLoad().ProjectRepo.Load()
	})

	return NewDependencyContainerWith(Dependencies{
		ProjectRepo:     projectRepo,
		EventDispatcher: eventDispatcherProvider(infraContainer.EventDispatcher),
		Policy:          policyProvider(),
		Clock:           infraContainer.Clock,
		Logger:          infraContainer.Logger,
	})
}

// NewDependencyContainerWith builds the context on top of already prepared infrastructure.
func NewDependencyContainerWith(deps Dependencies) DependencyContainer {
	permissions := auth.NewPermissionService()
	projectService := lazy.New(func() (service.Project, error) {
		return service.NewProject(
			deps.ProjectRepo.MustLoad(),
			permissions,
			deps.Policy.MustLoad(),
			deps.EventDispatcher.MustLoad(),
			deps.Clock.MustLoad(),
			deps.Logger.MustLoad(),
		), nil
	})

	return DependencyContainer{
		policy:      deps.Policy,
		permissions: permissions,
		createProjectHandler: lazy.New(func() (http.CreateProjectHandler, error) {
			return http.NewCreateProjectHandler(projectService.MustLoad()), nil
		}),
		updateProjectHandler: lazy.New(func() (http.UpdateProjectHandler, error) {
			return http.NewUpdateProjectHandler(projectService.MustLoad()), nil
		}),
		patchProjectHandler: lazy.New(func() (http.PatchProjectHandler, error) {
			return http.NewPatchProjectHandler(projectService.MustLoad()), nil
		}),
		deleteProjectHandler: lazy.New(func() (http.DeleteProjectHandler, error) {
			return http.NewDeleteProjectHandler(projectService.MustLoad()), nil
		}),
		listProjectsHandler: lazy.New(func() (http.ListProjectsHandler, error) {
			return http.NewListProjectsHandler(projectService.MustLoad()), nil
		}),
	}
}

// MustRegisterHTTPHandlers guards every route with protectedOpts followed by the operation policy.
func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry, protectedOpts ...pkghttp.HandlerOption) {
	guarded := func(operation permission.Operation) []pkghttp.HandlerOption {
		opts := make([]pkghttp.HandlerOption, 0, len(protectedOpts)+1)
		opts = append(opts, protectedOpts...)
		return append(opts, pkghttp.WithPermission(c.permissions, c.policy.MustLoad().Permission(operation)))
	}

	registry.Register(c.createProjectHandler.MustLoad(), guarded(permission.OperationCreateProject)...)
	registry.Register(c.updateProjectHandler.MustLoad(), guarded(permission.OperationUpdateProject)...)
	registry.Register(c.patchProjectHandler.MustLoad(), guarded(permission.OperationPatchProject)...)
	registry.Register(c.deleteProjectHandler.MustLoad(), guarded(permission.OperationDeleteProject)...)
	registry.Register(c.listProjectsHandler.MustLoad(), guarded(permission.OperationListProjects)...)
}

func eventDispatcherProvider(messagingEventDispatcher lazy.Loader[pkgmessage.EventDispatcher]) lazy.Loader[event.Dispatcher] {
	return lazy.New(func() (event.Dispatcher, error) {
		eventDispatcher := messagingEventDispatcher.MustLoad()
		eventDispatcher.Register(
			message.TopicDomainEventProject,
			domain.EventProjectCreated{}.Type(),
			domain.EventProjectUpdated{}.Type(),
			domain.EventProjectDeleted{}.Type(),
		)
		return eventDispatcher, nil
	})
}

func policyProvider() lazy.Loader[permission.Policy] {
	return lazy.New(func() (permission.Policy, error) {
		roles, err := env.ParseList[string]("PROJECT_LIST_ROLES", ",")
		if errors.Is(err, env.ErrNotFound) {
			return permission.NewPolicy(nil), nil
		}
		if err != nil {
			return permission.Policy{}, err
		}

		return permission.NewPolicy(toRoles(roles)), nil
	})
}

func toRoles(values []string) []auth.Role {
	result := make([]auth.Role, 0, len(values))
	for _, value := range values {
		result = append(result, auth.Role(strings.ToLower(value)))
	}

	return result
}
