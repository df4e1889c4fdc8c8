package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/user-hobbies-api/internal/config"
	"github.com/yukikurage/user-hobbies-api/internal/dto"
	"github.com/yukikurage/user-hobbies-api/internal/ratelimit"
	"github.com/yukikurage/user-hobbies-api/internal/repository"
	"github.com/yukikurage/user-hobbies-api/internal/server"
	"github.com/yukikurage/user-hobbies-api/internal/services"
	"github.com/yukikurage/user-hobbies-api/internal/testutil"
	"go.uber.org/zap"
)

// newAPI starts the real API on an in-memory database and returns a client for it.
func newAPI(t *testing.T) *Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewSQLiteDB(t)
	log := zap.NewNop()
	userRepo := repository.NewUserRepository(db)
	hobbyRepo := repository.NewHobbyRepository(db)

	handler, err := server.NewHandler(server.Dependencies{
		Config:  &config.Config{},
		Log:     log,
		Users:   services.NewUserService(userRepo, log),
		Hobbies: services.NewHobbyService(hobbyRepo, userRepo, log),
		Limiter: ratelimit.NewMemoryStore(1000, time.Minute),
	})
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api/", WithHTTPClient(srv.Client()))
}

func TestClient_RoundTrip(t *testing.T) {
	c := newAPI(t)
	ctx := context.Background()

	require.NoError(t, c.Health(ctx))

	user, err := c.CreateUser(ctx, dto.CreateUserInput{FirstName: "Ada", LastName: "Lovelace", PhoneNumber: "555-0100"})
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.Nil(t, user.Address)

	got, err := c.GetUser(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "Lovelace", got.LastName)

	hobby, err := c.CreateHobby(ctx, dto.CreateHobbyInput{UserID: user.ID, Hobbies: "Knitting & 100% wool/alpaca"})
	require.NoError(t, err)
	require.Equal(t, user.ID, hobby.UserID)

	hobbies, err := c.ListHobbiesForUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, hobbies, 1)

	deleted, err := c.DeleteHobby(ctx, user.ID, "Knitting & 100% wool/alpaca")
	require.NoError(t, err)
	require.Equal(t, "Knitting & 100% wool/alpaca", deleted.Hobby)

	rows, err := c.ListUsersWithHobbies(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Nil(t, rows[0].Hobbies)

	_, err = c.DeleteUser(ctx, user.ID)
	require.NoError(t, err)

	users, err := c.ListUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, users)
	require.NotNil(t, users)
}

func TestClient_DeleteHobbyKeepsExactText(t *testing.T) {
	c := newAPI(t)
	ctx := context.Background()

	user, err := c.CreateUser(ctx, dto.CreateUserInput{FirstName: "Bjarne", LastName: "Stroustrup"})
	require.NoError(t, err)

	for _, text := range []string{"C++/Rust", "C++", "C++ club", "a+b%c", "1+1=2 / 50%"} {
		t.Run(text, func(t *testing.T) {
			_, err := c.CreateHobby(ctx, dto.CreateHobbyInput{UserID: user.ID, Hobbies: text})
			require.NoError(t, err)

			deleted, err := c.DeleteHobby(ctx, user.ID, text)
			require.NoError(t, err)
			require.Equal(t, text, deleted.Hobby)
		})
	}

	hobbies, err := c.ListHobbiesForUser(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, hobbies)
}

func TestClient_APIErrors(t *testing.T) {
	c := newAPI(t)
	ctx := context.Background()

	_, err := c.GetUser(ctx, 9999)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	require.Equal(t, "User not found", apiErr.Message)

	_, err = c.CreateUser(ctx, dto.CreateUserInput{LastName: "Lovelace"})
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, "Validation failed", apiErr.Message)
	require.Equal(t, "First name is required", apiErr.ValidationErrors.Messages()["first_name"])
}

func TestClient_NonEnvelopeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	_, err := New(srv.URL).ListUsers(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, "Request failed with status 502", apiErr.Message)
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url).ListUsers(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	require.False(t, errors.As(err, &apiErr))
}
