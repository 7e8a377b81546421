package sql

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/klwxsrx/project-manager/pkg/log"
)

const (
	migrationLockName = "perform_migration_lock"
	querySeparator    = ";\n"

	migrationTableDDL = `
		CREATE TABLE IF NOT EXISTS migration (
			id text PRIMARY KEY
		)
	`
)

type (
	// MigrationSource is a named set of ordered sql files.
	MigrationSource struct {
		Name  string
		Files fs.ReadDirFS
	}

	Migrator struct {
		db     TxClient
		logger log.Logger
	}
)

func FSMigrations(name string, files fs.ReadDirFS) MigrationSource {
	return MigrationSource{Name: name, Files: files}
}

func NewMigrator(db TxClient, logger log.Logger) *Migrator {
	return &Migrator{db: db, logger: logger}
}

// Execute applies all pending migrations in a single transaction guarded by an advisory lock.
func (m *Migrator) Execute(ctx context.Context, sources ...MigrationSource) (err error) {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("start transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", lockID(migrationLockName))
	if err != nil {
		return fmt.Errorf("get migration lock: %w", err)
	}

	_, err = tx.ExecContext(ctx, migrationTableDDL)
	if err != nil {
		return fmt.Errorf("create migration table: %w", err)
	}

	var performedIDs []string
	err = tx.SelectContext(ctx, &performedIDs, "SELECT id FROM migration")
	if err != nil {
		return fmt.Errorf("get performed migrations: %w", err)
	}
	performed := make(map[string]struct{}, len(performedIDs))
	for _, id := range performedIDs {
		performed[id] = struct{}{}
	}

	for _, source := range sources {
		err = m.executeSource(ctx, tx, source, performed)
		if err != nil {
			return err
		}
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("commit migrations: %w", err)
	}

	return nil
}

func (m *Migrator) executeSource(ctx context.Context, tx Client, source MigrationSource, performed map[string]struct{}) error {
	fileNames, err := getFileNames(source.Files)
	if err != nil {
		return fmt.Errorf("get migration files of %s: %w", source.Name, err)
	}

	for _, fileName := range fileNames {
		migrationID := fmt.Sprintf("%s/%s", source.Name, fileName)
		if _, ok := performed[migrationID]; ok {
			continue
		}

		content, err := fs.ReadFile(source.Files, fileName)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", migrationID, err)
		}

		err = performMigration(ctx, tx, migrationID, string(content))
		if err != nil {
			return fmt.Errorf("migration %s failed: %w", migrationID, err)
		}

		m.logger.WithField("migrationID", migrationID).Info(ctx, "migration executed successfully")
	}

	return nil
}

func performMigration(ctx context.Context, tx Client, migrationID, migrationSQL string) error {
	if strings.TrimSpace(migrationSQL) == "" {
		return errors.New("empty migration")
	}

	_, err := tx.ExecContext(ctx, "INSERT INTO migration VALUES ($1)", migrationID)
	if err != nil {
		return err
	}

	for _, query := range strings.Split(migrationSQL, querySeparator) {
		if strings.TrimSpace(query) == "" {
			continue
		}

		_, err = tx.ExecContext(ctx, query)
		if err != nil {
			return err
		}
	}

	return nil
}

func getFileNames(files fs.ReadDirFS) ([]string, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		result = append(result, entry.Name())
	}
	sort.Strings(result)

	return result, nil
}
