package user

import (
	"embed"

	"github.com/klwxsrx/project-manager/pkg/sql"
)

var Migrations = sql.FSMigrations("user", migrationFiles)

//go:embed *.sql
var migrationFiles embed.FS
