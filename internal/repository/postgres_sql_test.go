package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/user-hobbies-api/internal/config"
	"github.com/yukikurage/user-hobbies-api/internal/database"
	"github.com/yukikurage/user-hobbies-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupPostgresMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), database.GormConfig("test_scheme", config.DriverPostgres, nil))
	require.NoError(t, err)
	return db, mock
}

func TestPostgres_ListUsersUsesSchema(t *testing.T) {
	db, mock := setupPostgresMock(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "address", "phone_number", "created_at"}).
		AddRow(1, "Ada", "Lovelace", nil, nil, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "test_scheme"."users" ORDER BY id`)).WillReturnRows(rows)

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "Ada", users[0].FirstName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_ListWithHobbiesJoin(t *testing.T) {
	db, mock := setupPostgresMock(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "address", "phone_number", "hobbies"}).
		AddRow(1, "Ada", "Lovelace", nil, nil, "Mathematics").
		AddRow(2, "Alan", "Turing", nil, nil, nil)
	mock.ExpectQuery(`SELECT u\.id, u\.first_name, u\.last_name, u\.address, u\.phone_number, h\.hobbies ` +
		`FROM test_scheme\.users AS u LEFT JOIN test_scheme\.hobbies AS h ON u\.id = h\.user_id ORDER BY u\.id, h\.hobbies`).
		WillReturnRows(rows)

	result, err := repo.ListWithHobbies(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 2)
	require.Equal(t, "Mathematics", *result[0].Hobbies)
	require.Nil(t, result[1].Hobbies)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_DeleteHobbyIsParameterized(t *testing.T) {
	db, mock := setupPostgresMock(t)
	repo := NewHobbyRepository(db)

	hobby := "Chess'; DROP TABLE users; --"
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "test_scheme"."hobbies" WHERE user_id = $1 AND hobbies = $2`)).
		WithArgs(3, hobby).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	deleted, err := repo.Delete(context.Background(), 3, hobby)
	require.NoError(t, err)
	require.True(t, deleted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_CreateUserTranslatesUniqueViolation(t *testing.T) {
	db, mock := setupPostgresMock(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "test_scheme"."users"`)).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &models.User{FirstName: "Ada", LastName: "Lovelace"})
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_CreateHobbyTranslatesForeignKeyViolation(t *testing.T) {
	db, mock := setupPostgresMock(t)
	repo := NewHobbyRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "test_scheme"."hobbies"`)).
		WillReturnError(&pgconn.PgError{Code: "23503"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &models.Hobby{UserID: 9, Hobbies: "Chess"})
	require.ErrorIs(t, err, gorm.ErrForeignKeyViolated)
	require.NoError(t, mock.ExpectationsWereMet())
}
