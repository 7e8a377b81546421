package infra

import (
	"context"
	"fmt"

	"github.com/klwxsrx/project-manager/data/sql/project"
	"github.com/klwxsrx/project-manager/internal/pkg/cmd"
	"github.com/klwxsrx/project-manager/internal/project/domain"
	projectmongo "github.com/klwxsrx/project-manager/internal/project/infra/mongo"
	projectsql "github.com/klwxsrx/project-manager/internal/project/infra/sql"
	"github.com/klwxsrx/project-manager/pkg/lazy"
	pkgmongo "github.com/klwxsrx/project-manager/pkg/mongo"
	pkgsql "github.com/klwxsrx/project-manager/pkg/sql"
)

type StorageContainer struct {
	ProjectRepo lazy.Loader[domain.ProjectRepository]
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
				ProjectRepo: lazy.New(func() (domain.ProjectRepository, error) {
					repo := projectmongo.NewProjectRepository(mongoDB.MustLoad().Collection(projectmongo.ProjectCollection))
					err := repo.EnsureIndexes(ctx)
					if err != nil {
						return nil, fmt.Errorf("ensure %s indexes: %w", domain.Name, err)
					}

					return repo, nil
				}),
			}, nil
		case cmd.StorageDriverPostgres:
			dbMigrations.MustLoad().MustRegister(project.Migrations)
			return StorageContainer{
				ProjectRepo: lazy.New(func() (domain.ProjectRepository, error) {
					return projectsql.NewProjectRepository(db.MustLoad()), nil
				}),
			}, nil
		default:
			return StorageContainer{}, fmt.Errorf("unsupported storage driver %q", driver)
		}
	})
}
