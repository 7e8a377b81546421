package user

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/klwxsrx/project-manager/internal/pkg/auth"
	"github.com/klwxsrx/project-manager/internal/pkg/cmd"
	"github.com/klwxsrx/project-manager/internal/user/api"
	"github.com/klwxsrx/project-manager/internal/user/app/encoding"
	"github.com/klwxsrx/project-manager/internal/user/app/message"
	"github.com/klwxsrx/project-manager/internal/user/app/service"
	"github.com/klwxsrx/project-manager/internal/user/app/session"
	"github.com/klwxsrx/project-manager/internal/user/domain"
	"github.com/klwxsrx/project-manager/internal/user/infra"
	"github.com/klwxsrx/project-manager/internal/user/infra/http"
	"github.com/klwxsrx/project-manager/internal/user/infra/password"
	userinfrasession "github.com/klwxsrx/project-manager/internal/user/infra/session"
	"github.com/klwxsrx/project-manager/pkg/env"
	"github.com/klwxsrx/project-manager/pkg/event"
	pkghttp "github.com/klwxsrx/project-manager/pkg/http"
	"github.com/klwxsrx/project-manager/pkg/lazy"
	"github.com/klwxsrx/project-manager/pkg/log"
	pkgmessage "github.com/klwxsrx/project-manager/pkg/message"
	"github.com/klwxsrx/project-manager/pkg/metric"
	pkgtime "github.com/klwxsrx/project-manager/pkg/time"
)

type (
	DependencyContainer struct {
		AuthService      lazy.Loader[api.AuthenticationService]
		IdentityResolver lazy.Loader[auth.IdentityResolver]

		registerUserHandler   lazy.Loader[http.RegisterUserHandler]
		loginHandler          lazy.Loader[http.LoginHandler]
		getCurrentUserHandler lazy.Loader[http.GetCurrentUserHandler]
	}

	Dependencies struct {
		UserRepo        lazy.Loader[domain.UserRepository]
		EventDispatcher lazy.Loader[event.Dispatcher]
		SessionTokens   lazy.Loader[session.TokenCodec]
		PasswordEncoder lazy.Loader[encoding.PasswordEncoder]
		Clock           lazy.Loader[pkgtime.Clock]
		Metrics         lazy.Loader[metric.Metrics]
		Logger          lazy.Loader[log.Logger]
	}
)

func NewDependencyContainer(ctx context.Context, infraContainer *cmd.InfrastructureContainer) DependencyContainer {
	eventDispatcher := eventDispatcherProvider(infraContainer.EventDispatcher)
	storageContainer := infra.NewStorageContainer(
		ctx,
		infraContainer.StorageDriver,
		infraContainer.MongoDB,
		infraContainer.DB,
		infraContainer.DBMigrations,
	)
	userRepo := lazy.New(func() (domain.UserRepository, error) {
		return storageContainer.MustLoad().UserRepo.Load()
	})

	return NewDependencyContainerWith(Dependencies{
		UserRepo:        userRepo,
		EventDispatcher: eventDispatcher,
		SessionTokens:   sessionTokenCodecProvider(infraContainer.Clock),
		PasswordEncoder: passwordEncoderProvider(),
		Clock:           infraContainer.Clock,
		Metrics:         infraContainer.Metrics,
		Logger:          infraContainer.Logger,
	})
}

// NewDependencyContainerWith builds the context on top of already prepared infrastructure.
func NewDependencyContainerWith(deps Dependencies) DependencyContainer {
	authService := lazy.New(func() (service.Authentication, error) {
		return service.NewAuthentication(
			deps.UserRepo.MustLoad(),
			deps.SessionTokens.MustLoad(),
			deps.PasswordEncoder.MustLoad(),
			deps.Metrics.MustLoad(),
		), nil
	})
	userService := lazy.New(func() (service.User, error) {
		return service.NewUser(
			deps.UserRepo.MustLoad(),
			deps.PasswordEncoder.MustLoad(),
			auth.NewPermissionService(),
			deps.EventDispatcher.MustLoad(),
			deps.Clock.MustLoad(),
			deps.Logger.MustLoad(),
		), nil
	})

	return DependencyContainer{
		AuthService: lazy.New(func() (api.AuthenticationService, error) {
			return authService.Load()
		}),
		IdentityResolver: lazy.New(func() (auth.IdentityResolver, error) {
			return api.NewIdentityResolver(authService.MustLoad()), nil
		}),
		registerUserHandler: lazy.New(func() (http.RegisterUserHandler, error) {
			return http.NewRegisterUserHandler(userService.MustLoad()), nil
		}),
		loginHandler: lazy.New(func() (http.LoginHandler, error) {
			return http.NewLoginHandler(authService.MustLoad()), nil
		}),
		getCurrentUserHandler: lazy.New(func() (http.GetCurrentUserHandler, error) {
			return http.NewGetCurrentUserHandler(userService.MustLoad()), nil
		}),
	}
}

// MustRegisterHTTPHandlers registers public routes as is and guards the rest with protectedOpts.
func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry, protectedOpts ...pkghttp.HandlerOption) {
	registry.Register(c.registerUserHandler.MustLoad())
	registry.Register(c.loginHandler.MustLoad())
	registry.Register(c.getCurrentUserHandler.MustLoad(), protectedOpts...)
}

func eventDispatcherProvider(messagingEventDispatcher lazy.Loader[pkgmessage.EventDispatcher]) lazy.Loader[event.Dispatcher] {
	return lazy.New(func() (event.Dispatcher, error) {
		eventDispatcher := messagingEventDispatcher.MustLoad()
		eventDispatcher.Register(message.TopicDomainEventUser, domain.EventUserRegistered{}.Type())
		return eventDispatcher, nil
	})
}

func sessionTokenCodecProvider(clock lazy.Loader[pkgtime.Clock]) lazy.Loader[session.TokenCodec] {
	return lazy.New(func() (session.TokenCodec, error) {
		config := session.Config{
			Secret:    []byte(env.Must(env.Parse[string]("JWT_SECRET"))),
			Algorithm: env.Must(env.Parse[string]("JWT_ALGORITHM")),
		}

		codec, err := userinfrasession.NewTokenCodec(config, clock.MustLoad())
		if err != nil {
			panic(fmt.Errorf("create session token codec: %w", err))
		}

		return codec, nil
	})
}

func passwordEncoderProvider() lazy.Loader[encoding.PasswordEncoder] {
	return lazy.New(func() (encoding.PasswordEncoder, error) {
		cost := bcrypt.DefaultCost
		customCost := env.Must(env.ParseOptional[*int]("BCRYPT_COST"))
		if customCost != nil {
			cost = *customCost
		}

		return password.NewEncoder(cost)
	})
}
