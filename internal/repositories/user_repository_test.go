package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/orbitlabs/orbit/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUserRepoMock(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewUserRepository(db, zap.NewNop()), mock
}

func TestUserRepository_Create(t *testing.T) {
	query := regexp.QuoteMeta(`
		INSERT INTO users (email, first_name, last_name, password_hash, bio, role, avatar)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)

	user := func() *models.User {
		return &models.User{
			Email:        "a@x.com",
			FirstName:    "A",
			LastName:     "B",
			PasswordHash: "$2a$10$hash",
			Role:         models.RoleAdmin,
		}
	}

	t.Run("success", func(t *testing.T) {
		repo, mock := newUserRepoMock(t)

		mock.ExpectExec(query).
			WithArgs("a@x.com", "A", "B", "$2a$10$hash", "", models.RoleAdmin, "").
			WillReturnResult(sqlmock.NewResult(7, 1))

		u := user()
		err := repo.Create(context.Background(), u)
		require.NoError(t, err)
		assert.Equal(t, 7, u.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo, mock := newUserRepoMock(t)

		mock.ExpectExec(query).
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

		err := repo.Create(context.Background(), user())
		assert.ErrorIs(t, err, ErrDuplicateEmail)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock := newUserRepoMock(t)

		mock.ExpectExec(query).
			WillReturnError(assert.AnError)

		err := repo.Create(context.Background(), user())
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrDuplicateEmail)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetByEmail(t *testing.T) {
	query := regexp.QuoteMeta(`
		SELECT id, email, first_name, last_name, password_hash, bio, role, avatar
		FROM users
		WHERE email = ?
		LIMIT 1
	`)
	columns := []string{"id", "email", "first_name", "last_name", "password_hash", "bio", "role", "avatar"}

	t.Run("success", func(t *testing.T) {
		repo, mock := newUserRepoMock(t)

		mock.ExpectQuery(query).
			WithArgs("a@x.com").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(1, "a@x.com", "A", "B", "$2a$10$hash", "hello", "admin", ""))

		user, err := repo.GetByEmail(context.Background(), "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.Equal(t, "a@x.com", user.Email)
		assert.Equal(t, models.RoleAdmin, user.Role)
		assert.Equal(t, "hello", user.Bio)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newUserRepoMock(t)

		mock.ExpectQuery(query).
			WithArgs("missing@x.com").
			WillReturnRows(sqlmock.NewRows(columns))

		user, err := repo.GetByEmail(context.Background(), "missing@x.com")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	query := regexp.QuoteMeta(`SELECT EXISTS(SELECT * FROM users WHERE email = ?)`)

	tests := []struct {
		name     string
		exists   bool
		expected bool
	}{
		{name: "exists", exists: true, expected: true},
		{name: "does not exist", exists: false, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newUserRepoMock(t)

			mock.ExpectQuery(query).
				WithArgs("a@x.com").
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(tt.exists))

			exists, err := repo.ExistsByEmail(context.Background(), "a@x.com")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, exists)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_UpdateRole(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET role = ? WHERE id = ?`)).
		WithArgs(models.RoleUser, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateRole(context.Background(), 3, models.RoleUser)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetBio(t *testing.T) {
	query := regexp.QuoteMeta(`SELECT bio FROM users WHERE id = ?`)

	t.Run("success", func(t *testing.T) {
		repo, mock := newUserRepoMock(t)

		mock.ExpectQuery(query).
			WithArgs(3).
			WillReturnRows(sqlmock.NewRows([]string{"bio"}).AddRow("hello"))

		bio, err := repo.GetBio(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, "hello", bio)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newUserRepoMock(t)

		mock.ExpectQuery(query).
			WithArgs(99).
			WillReturnRows(sqlmock.NewRows([]string{"bio"}))

		_, err := repo.GetBio(context.Background(), 99)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_UpdateBio(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET bio = ? WHERE id = ?`)).
		WithArgs("new bio", 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateBio(context.Background(), 3, "new bio")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ListProfiles(t *testing.T) {
	query := regexp.QuoteMeta(`SELECT id, first_name, last_name, avatar, bio FROM users`)
	columns := []string{"id", "first_name", "last_name", "avatar", "bio"}

	t.Run("success", func(t *testing.T) {
		repo, mock := newUserRepoMock(t)

		mock.ExpectQuery(query).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(1, "A", "B", "", "hello").
				AddRow(2, "C", "D", "c.png", ""))

		profiles, err := repo.ListProfiles(context.Background())
		require.NoError(t, err)
		require.Len(t, profiles, 2)
		assert.Equal(t, models.UserProfile{ID: 1, FirstName: "A", LastName: "B", Bio: "hello"}, profiles[0])
		assert.Equal(t, models.UserProfile{ID: 2, FirstName: "C", LastName: "D", Avatar: "c.png"}, profiles[1])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty table", func(t *testing.T) {
		repo, mock := newUserRepoMock(t)

		mock.ExpectQuery(query).
			WillReturnRows(sqlmock.NewRows(columns))

		profiles, err := repo.ListProfiles(context.Background())
		require.NoError(t, err)
		assert.Empty(t, profiles)
		assert.NotNil(t, profiles)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
