package sql_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/project-manager/internal/user/domain"
	usersql "github.com/klwxsrx/project-manager/internal/user/infra/sql"
)

func newRepo(t *testing.T) (domain.UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return usersql.NewUserRepository(sqlx.NewDb(db, "postgres")), mock
}

func TestUserRepository_Insert(t *testing.T) {
	t.Parallel()

	insertQuery := regexp.QuoteMeta(`INSERT INTO "user" (id,username,password_hash,role,created_at) VALUES ($1,$2,$3,$4,$5)`)
	user := domain.NewUser(domain.UserID{}, "alice", "hash", domain.RoleAdmin, time.Now())

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		repo, mock := newRepo(t)
		user.ID = repo.NextID()
		mock.ExpectExec(insertQuery).
			WithArgs(sqlmock.AnyArg(), "alice", "hash", "admin", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Insert(context.Background(), user))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate_username", func(t *testing.T) {
		t.Parallel()
		repo, mock := newRepo(t)
		mock.ExpectExec(insertQuery).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "user_username_key"})

		err := repo.Insert(context.Background(), user)
		assert.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)
	})

	t.Run("other_error", func(t *testing.T) {
		t.Parallel()
		repo, mock := newRepo(t)
		mock.ExpectExec(insertQuery).WillReturnError(errors.New("connection reset"))

		err := repo.Insert(context.Background(), user)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrUsernameAlreadyExists)
	})
}

func TestUserRepository_FindOne(t *testing.T) {
	t.Parallel()

	columns := []string{"id", "username", "password_hash", "role", "created_at"}
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("found_by_username", func(t *testing.T) {
		t.Parallel()
		repo, mock := newRepo(t)
		userID := repo.NextID()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, password_hash, role, created_at FROM "user" WHERE username = $1 LIMIT 1`)).
			WithArgs("alice").
			WillReturnRows(sqlmock.NewRows(columns).AddRow(userID.String(), "alice", "hash", "user", createdAt))

		username := "alice"
		user, err := repo.FindOne(context.Background(), domain.FindUserSpecification{Username: &username})
		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, domain.RoleUser, user.Role)
		assert.Equal(t, createdAt, user.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not_found_by_id", func(t *testing.T) {
		t.Parallel()
		repo, mock := newRepo(t)
		userID := repo.NextID()
		mock.ExpectQuery(regexp.QuoteMeta(`FROM "user" WHERE id = $1 LIMIT 1`)).
			WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.FindOne(context.Background(), domain.FindUserSpecification{ID: &userID})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
