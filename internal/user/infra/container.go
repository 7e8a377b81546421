package infra

import (
	"context"
	"fmt"

	"github.com/klwxsrx/project-manager/data/sql/user"
	"github.com/klwxsrx/project-manager/internal/pkg/cmd"
	"github.com/klwxsrx/project-manager/internal/user/domain"
	usermongo "github.com/klwxsrx/project-manager/internal/user/infra/mongo"
	usersql "github.com/klwxsrx/project-manager/internal/user/infra/sql"
	"github.com/klwxsrx/project-manager/pkg/lazy"
	pkgmongo "github.com/klwxsrx/project-manager/pkg/mongo"
	pkgsql "github.com/klwxsrx/project-manager/pkg/sql"
)

type StorageContainer struct {
	UserRepo lazy.Loader[domain.UserRepository]
}

func NewStorageContainer(
	ctx context.Context,
	driver cmd.StorageDriver,
	mongoDB lazy.Loader[pkgmongo.Database],
	db lazy.Loader[pkgsql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
) lazy.Loader[StorageContainer] {
	return lazy.New(func() (StorageContainer, error) {
		switch driver {
		case cmd.StorageDriverMongo:
			return StorageContainer{
				UserRepo: mongoUserRepoProvider(ctx, mongoDB),
			}, nil
		case cmd.StorageDriverPostgres:
			dbMigrations.MustLoad().MustRegister(user.Migrations)
			return StorageContainer{
				UserRepo: sqlUserRepoProvider(db),
			}, nil
		default:
			return StorageContainer{}, fmt.Errorf("unsupported storage driver %q", driver)
		}
	})
}

func mongoUserRepoProvider(
	ctx context.Context,
	mongoDB lazy.Loader[pkgmongo.Database],
) lazy.Loader[domain.UserRepository] {
	return lazy.New(func() (domain.UserRepository, error) {
		repo := usermongo.NewUserRepository(mongoDB.MustLoad().Collection(usermongo.UserCollection))
		err := repo.EnsureIndexes(ctx)
		if err != nil {
			return nil, fmt.Errorf("ensure %s indexes: %w", domain.Name, err)
		}

		return repo, nil
	})
}

func sqlUserRepoProvider(db lazy.Loader[pkgsql.Database]) lazy.Loader[domain.UserRepository] {
	return lazy.New(func() (domain.UserRepository, error) {
		return usersql.NewUserRepository(db.MustLoad()), nil
	})
}
