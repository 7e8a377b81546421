package main

import (
	"context"

	"github.com/klwxsrx/project-manager/internal/pkg/auth"
	"github.com/klwxsrx/project-manager/internal/pkg/cmd"
	internalhttp "github.com/klwxsrx/project-manager/internal/pkg/http"
	"github.com/klwxsrx/project-manager/internal/project"
	"github.com/klwxsrx/project-manager/internal/user"
	pkgcmd "github.com/klwxsrx/project-manager/pkg/cmd"
	pkghttp "github.com/klwxsrx/project-manager/pkg/http"
)

func main() {
	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer(ctx)
	defer infra.Close(ctx)

	userContainer := user.NewDependencyContainer(ctx, infra)
	projectContainer := project.NewDependencyContainer(ctx, infra)

	httpServer := infra.HTTPServer.MustLoad()
	registerHTTPHandlers(httpServer, &userContainer, &projectContainer)

	pkgcmd.MustRun(ctx, infra.Logger.MustLoad(),
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
	)
}

func registerHTTPHandlers(
	registry pkghttp.HandlerRegistry,
	userContainer *user.DependencyContainer,
	projectContainer *project.DependencyContainer,
) {
	protectedOpts := []pkghttp.HandlerOption{
		pkghttp.WithAuth[auth.Principal](
			auth.NewProvider(userContainer.IdentityResolver.MustLoad()),
			internalhttp.BearerTokenProvider,
		),
		pkghttp.WithAuthenticationRequirement(),
	}

	userContainer.MustRegisterHTTPHandlers(registry, protectedOpts...)
	projectContainer.MustRegisterHTTPHandlers(registry, protectedOpts...)
}
