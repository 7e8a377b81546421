package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/klwxsrx/project-manager/internal/project/domain"
	pkgsql "github.com/klwxsrx/project-manager/pkg/sql"
)

const (
	projectTable                = "project"
	projectNameUniqueConstraint = "project_name_key"
)

var projectColumns = []string{"id", "name", "description", "created_by", "created_at"}

type projectRepository struct {
	db pkgsql.Client
}

func NewProjectRepository(db pkgsql.Client) domain.ProjectRepository {
	return projectRepository{db: db}
}

func (r projectRepository) NextID() domain.ProjectID {
	return domain.ProjectID{UUID: uuid.New()}
}

func (r projectRepository) Insert(ctx context.Context, project *domain.Project) error {
	query, args, err := pkgsql.Builder().
		Insert(projectTable).
		Columns(projectColumns...).
		Values(project.ID.UUID, project.Name, project.Description, project.CreatedBy, project.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if pkgsql.IsUniqueViolation(err, projectNameUniqueConstraint) {
		return domain.ErrProjectNameAlreadyExists
	}

	return err
}

func (r projectRepository) Update(ctx context.Context, project *domain.Project) error {
	query, args, err := pkgsql.Builder().
		Update(projectTable).
		Set("name", project.Name).
		Set("description", project.Description).
		Where(sq.Eq{"id": project.ID.UUID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if pkgsql.IsUniqueViolation(err, projectNameUniqueConstraint) {
		return domain.ErrProjectNameAlreadyExists
	}
	if err != nil {
		return err
	}

	return assertAffected(result)
}

func (r projectRepository) Delete(ctx context.Context, id domain.ProjectID) error {
	query, args, err := pkgsql.Builder().
		Delete(projectTable).
		Where(sq.Eq{"id": id.UUID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return assertAffected(result)
}

func (r projectRepository) FindOne(ctx context.Context, spec domain.FindProjectSpecification) (*domain.Project, error) {
	qb := pkgsql.Builder().
		Select(projectColumns...).
		From(projectTable)
	if spec.ID != nil {
		qb = qb.Where(sq.Eq{"id": spec.ID.UUID})
	}
	if spec.Name != nil {
		qb = qb.Where(sq.Eq{"name": *spec.Name})
	}

	query, args, err := qb.Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row sqlxProject
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}

	project := row.toDomain()
	return &project, nil
}

func (r projectRepository) List(ctx context.Context, offset, limit int) ([]domain.Project, error) {
	query, args, err := pkgsql.Builder().
		Select(projectColumns...).
		From(projectTable).
		OrderBy("created_at", "id").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []sqlxProject
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDomain())
	}

	return result, nil
}

func (r projectRepository) Count(ctx context.Context) (int, error) {
	query, args, err := pkgsql.Builder().
		Select("COUNT(*)").
		From(projectTable).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var count int
	err = r.db.GetContext(ctx, &count, query, args...)
	return count, err
}

func assertAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrProjectNotFound
	}

	return nil
}

type sqlxProject struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedBy   string    `db:"created_by"`
	CreatedAt   time.Time `db:"created_at"`
}

func (p sqlxProject) toDomain() domain.Project {
	return domain.Project{
		ID:          domain.ProjectID{UUID: p.ID},
		Name:        p.Name,
		Description: p.Description,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt,
	}
}
