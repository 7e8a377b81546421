package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/klwxsrx/project-manager/internal/user/domain"
	pkgsql "github.com/klwxsrx/project-manager/pkg/sql"
)

const (
	userTable                    = `"user"`
	userUsernameUniqueConstraint = "user_username_key"
)

type userRepository struct {
	db pkgsql.Client
}

func NewUserRepository(db pkgsql.Client) domain.UserRepository {
	return userRepository{db: db}
}

func (r userRepository) NextID() domain.UserID {
	return domain.UserID{UUID: uuid.New()}
}

func (r userRepository) Insert(ctx context.Context, user *domain.User) error {
	query, args, err := pkgsql.Builder().
		Insert(userTable).
		Columns("id", "username", "password_hash", "role", "created_at").
		Values(user.ID.UUID, user.Username, user.PasswordHash, string(user.Role), user.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if pkgsql.IsUniqueViolation(err, userUsernameUniqueConstraint) {
		return domain.ErrUsernameAlreadyExists
	}

	return err
}

func (r userRepository) FindOne(ctx context.Context, spec domain.FindUserSpecification) (*domain.User, error) {
	query, args, err := r.buildFindQuery(spec).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row sqlxUser
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return row.toDomain(), nil
}

func (r userRepository) buildFindQuery(spec domain.FindUserSpecification) sq.SelectBuilder {
	qb := pkgsql.Builder().
		Select("id", "username", "password_hash", "role", "created_at").
		From(userTable)
	if spec.ID != nil {
		qb = qb.Where(sq.Eq{"id": spec.ID.UUID})
	}
	if spec.Username != nil {
		qb = qb.Where(sq.Eq{"username": *spec.Username})
	}

	return qb
}

type sqlxUser struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

func (u sqlxUser) toDomain() *domain.User {
	return &domain.User{
		ID:           domain.UserID{UUID: u.ID},
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Role:         domain.Role(u.Role),
		CreatedAt:    u.CreatedAt,
	}
}
