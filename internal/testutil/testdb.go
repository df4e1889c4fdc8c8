// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/user-hobbies-api/internal/config"
	"github.com/yukikurage/user-hobbies-api/internal/database"
	"github.com/yukikurage/user-hobbies-api/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewSQLiteDB returns a migrated in-memory database with foreign keys enforced.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), database.GormConfig("", config.DriverSQLite, nil))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, database.Migrate(db, "", zap.NewNop()))
	return db
}

// CreateUser inserts a user row directly.
func CreateUser(t testing.TB, db *gorm.DB, firstName, lastName string) *models.User {
	t.Helper()

	user := &models.User{FirstName: firstName, LastName: lastName}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateHobby inserts a hobby row directly.
func CreateHobby(t testing.TB, db *gorm.DB, userID uint64, hobby string) *models.Hobby {
	t.Helper()

	row := &models.Hobby{UserID: userID, Hobbies: hobby}
	require.NoError(t, db.Create(row).Error)
	return row
}
