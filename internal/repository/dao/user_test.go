package dao

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestUserDAO(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	f := seed(t, db)
	users := NewUserDAO(db)

	t.Run("FindByID preloads school", func(t *testing.T) {
		u, err := users.FindByID(ctx, f.member.ID)
		require.NoError(t, err)
		assert.Equal(t, f.member.Email, u.Email)
		assert.Equal(t, f.school.Name, u.School.Name)
	})

	t.Run("FindByID missing", func(t *testing.T) {
		_, err := users.FindByID(ctx, 9999)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("FindByEmail", func(t *testing.T) {
		u, err := users.FindByEmail(ctx, f.creator.Email)
		require.NoError(t, err)
		assert.Equal(t, f.creator.ID, u.ID)

		_, err = users.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("FindBySchool honours the limit", func(t *testing.T) {
		found, err := users.FindBySchool(ctx, f.school.ID, 1)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, f.creator.ID, found[0].ID)

		found, err = users.FindBySchool(ctx, 9999, 10)
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("FindRecent lists newest first", func(t *testing.T) {
		found, err := users.FindRecent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, f.member.ID, found[0].ID)
	})
}

func TestUserDAO_Insert_DuplicateEmail(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnError(&pgconn.PgError{
			Code:    pgerrcode.UniqueViolation,
			Message: `duplicate key value violates unique constraint "uni_users_email"`,
		})
	mock.ExpectRollback()

	_, err = NewUserDAO(db).Insert(context.Background(), User{Email: "taken@example.com", Password: "x", FirstName: "A"})

	assert.ErrorIs(t, err, ErrUserEmailExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
