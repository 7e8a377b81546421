package project

import (
	"embed"

	"github.com/klwxsrx/project-manager/pkg/sql"
)

var Migrations = sql.FSMigrations("project", migrationFiles)

//go:embed *.sql
var migrationFiles embed.FS
