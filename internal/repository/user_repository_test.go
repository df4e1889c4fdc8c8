package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/user-hobbies-api/internal/models"
	"github.com/yukikurage/user-hobbies-api/internal/testutil"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{FirstName: "Ada", LastName: "Lovelace", Address: strPtr("London")}
	require.NoError(t, repo.Create(ctx, user))
	require.NotZero(t, user.ID)
	require.False(t, user.CreatedAt.IsZero())

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "Ada", found.FirstName)
	require.Equal(t, "Lovelace", found.LastName)
	require.Equal(t, "London", *found.Address)
	require.Nil(t, found.PhoneNumber)

	_, err = repo.FindByID(ctx, user.ID+100)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_ListOrderedByID(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	empty, err := repo.List(ctx)
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)

	first := testutil.CreateUser(t, db, "Zed", "Last")
	second := testutil.CreateUser(t, db, "Amy", "First")

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, first.ID, users[0].ID)
	require.Equal(t, second.ID, users[1].ID)
}

func TestUserRepository_Exists(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewUserRepository(db)
	user := testutil.CreateUser(t, db, "Ada", "Lovelace")

	ok, err := repo.Exists(context.Background(), user.ID)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.Exists(context.Background(), user.ID+1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestUserRepository_DeleteCascadesHobbies(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	users := NewUserRepository(db)
	hobbies := NewHobbyRepository(db)
	ctx := context.Background()

	user := testutil.CreateUser(t, db, "Ada", "Lovelace")
	other := testutil.CreateUser(t, db, "Alan", "Turing")
	testutil.CreateHobby(t, db, user.ID, "Mathematics")
	testutil.CreateHobby(t, db, user.ID, "Poetry")
	testutil.CreateHobby(t, db, other.ID, "Running")

	deleted, err := users.Delete(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	remaining, err := hobbies.ListByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, remaining)

	untouched, err := hobbies.ListByUserID(ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, untouched, 1)

	deleted, err = users.Delete(ctx, user.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestUserRepository_ListWithHobbies(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewUserRepository(db)

	ada := testutil.CreateUser(t, db, "Ada", "Lovelace")
	alan := testutil.CreateUser(t, db, "Alan", "Turing")
	grace := testutil.CreateUser(t, db, "Grace", "Hopper")
	testutil.CreateHobby(t, db, ada.ID, "Poetry")
	testutil.CreateHobby(t, db, ada.ID, "Mathematics")
	testutil.CreateHobby(t, db, grace.ID, "Sailing")

	rows, err := repo.ListWithHobbies(context.Background())
	require.NoError(t, err)

	// sum(max(1, hobbies per user)) = 2 + 1 + 1
	require.Len(t, rows, 4)

	require.Equal(t, ada.ID, rows[0].ID)
	require.Equal(t, "Mathematics", *rows[0].Hobbies)
	require.Equal(t, ada.ID, rows[1].ID)
	require.Equal(t, "Poetry", *rows[1].Hobbies)

	require.Equal(t, alan.ID, rows[2].ID)
	require.Equal(t, "Alan", rows[2].FirstName)
	require.Nil(t, rows[2].Hobbies)

	require.Equal(t, grace.ID, rows[3].ID)
	require.Equal(t, "Sailing", *rows[3].Hobbies)
}
