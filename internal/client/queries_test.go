package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/user-hobbies-api/internal/dto"
)

func TestQueries_MutationsRefreshSubscribedListings(t *testing.T) {
	recorder := &Recorder{}
	q := NewQueries(newAPI(t), NewCache(), recorder)
	ctx := context.Background()

	rows, err := q.UsersWithHobbies(ctx)
	require.NoError(t, err)
	require.Empty(t, rows)

	var latest []dto.UserWithHobbiesDTO
	unsubscribe := q.OnUsersWithHobbies(func(rows []dto.UserWithHobbiesDTO, err error) {
		require.NoError(t, err)
		latest = rows
	})
	defer unsubscribe()

	user, err := q.CreateUser(ctx, dto.CreateUserInput{FirstName: "Ada", LastName: "Lovelace"})
	require.NoError(t, err)
	require.Len(t, latest, 1)
	require.Nil(t, latest[0].Hobbies)

	_, err = q.CreateHobby(ctx, dto.CreateHobbyInput{UserID: user.ID, Hobbies: "Mathematics"})
	require.NoError(t, err)
	require.Len(t, latest, 1)
	require.Equal(t, "Mathematics", *latest[0].Hobbies)

	cached, err := q.UsersWithHobbies(ctx)
	require.NoError(t, err)
	require.Equal(t, latest, cached)

	require.NoError(t, q.DeleteHobby(ctx, user.ID, "Mathematics"))
	require.Nil(t, latest[0].Hobbies)

	require.NoError(t, q.DeleteUser(ctx, user.ID))
	require.Empty(t, latest)

	require.Equal(t, []Notification{
		{Variant: VariantDefault, Title: "Success!", Description: "User has been created successfully."},
		{Variant: VariantDefault, Title: "Success!", Description: "Hobby has been added successfully."},
		{Variant: VariantDefault, Title: "Success!", Description: "Hobby has been deleted successfully."},
		{Variant: VariantDefault, Title: "Success!", Description: "User has been deleted successfully."},
	}, recorder.All())
}

func TestQueries_HobbyWritesKeepUserList(t *testing.T) {
	q := NewQueries(newAPI(t), NewCache(), nil)
	ctx := context.Background()

	user, err := q.CreateUser(ctx, dto.CreateUserInput{FirstName: "Ada", LastName: "Lovelace"})
	require.NoError(t, err)

	users, err := q.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)

	_, err = q.CreateHobby(ctx, dto.CreateHobbyInput{UserID: user.ID, Hobbies: "Chess"})
	require.NoError(t, err)
	_, ok := q.Cache().Get(KeyUsersList)
	require.True(t, ok)

	require.NoError(t, q.DeleteUser(ctx, user.ID))
	_, ok = q.Cache().Get(KeyUsersList)
	require.False(t, ok)
}

func TestQueries_FailuresNotify(t *testing.T) {
	recorder := &Recorder{}
	q := NewQueries(newAPI(t), NewCache(), recorder)
	ctx := context.Background()

	_, err := q.CreateHobby(ctx, dto.CreateHobbyInput{UserID: 404, Hobbies: "Chess"})
	require.Error(t, err)
	require.Error(t, q.DeleteUser(ctx, 404))
	require.Error(t, q.DeleteHobby(ctx, 404, "Chess"))
	_, err = q.CreateUser(ctx, dto.CreateUserInput{})
	require.Error(t, err)

	require.Equal(t, []Notification{
		{Variant: VariantDestructive, Title: "Error adding hobby", Description: "User not found"},
		{Variant: VariantDestructive, Title: "Error deleting user", Description: "User not found"},
		{Variant: VariantDestructive, Title: "Error deleting hobby", Description: "Hobby not found"},
		{Variant: VariantDestructive, Title: "Error creating user", Description: "Validation failed"},
	}, recorder.All())
}
