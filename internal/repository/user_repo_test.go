package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"nishlen_auth/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser() *model.User {
	city := "Moscow"
	return &model.User{
		ID:           "9f2c8a4e-0b7d-4f31-9a1c-2d3e4f5a6b7c",
		Phone:        "+79990000001",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		FullName:     "Anna Petrova",
		Role:         model.RoleMaster,
		City:         &city,
		CreatedAt:    time.Now(),
	}
}

func TestUserRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	user := newTestUser()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs(user.ID, user.Phone, user.PasswordHash, user.FullName, user.Role,
			user.PhotoURL, user.City, user.SalonName, user.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(user.CreatedAt))

	err = repo.Create(context.Background(), user)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicatePhone(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	user := newTestUser()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs(user.ID, user.Phone, user.PasswordHash, user.FullName, user.Role,
			user.PhotoURL, user.City, user.SalonName, user.CreatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_phone_key"})

	err = repo.Create(context.Background(), user)
	assert.ErrorIs(t, err, ErrDuplicatePhone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByPhone(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	user := newTestUser()

	rows := pgxmock.NewRows([]string{"id", "phone", "password_hash", "full_name", "role", "photo_url", "city", "salon_name", "created_at"}).
		AddRow(user.ID, user.Phone, user.PasswordHash, user.FullName, user.Role, user.PhotoURL, user.City, user.SalonName, user.CreatedAt)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, phone, password_hash, full_name, role, photo_url, city, salon_name, created_at`)).
		WithArgs(user.Phone).
		WillReturnRows(rows)

	found, err := repo.FindByPhone(context.Background(), user.Phone)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, user.Role, found.Role)
	assert.Equal(t, user.City, found.City)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByPhone_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT`)).
		WithArgs("+70000000000").
		WillReturnError(pgx.ErrNoRows)

	found, err := repo.FindByPhone(context.Background(), "+70000000000")
	assert.NoError(t, err)
	assert.Nil(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT`)).
		WithArgs("missing-id").
		WillReturnError(pgx.ErrNoRows)

	found, err := repo.FindByID(context.Background(), "missing-id")
	assert.NoError(t, err)
	assert.Nil(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByPhone_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT`)).
		WithArgs("+79990000001").
		WillReturnError(errors.New("connection reset"))

	found, err := repo.FindByPhone(context.Background(), "+79990000001")
	assert.Error(t, err)
	assert.Nil(t, found)
}
