package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/user-hobbies-api/internal/dto"
)

const unexpectedError = "An unexpected error occurred"

// Queries reads through the cache and invalidates it after writes. Every
// failure, and every successful write, is reported to the notifier.
type Queries struct {
	client   *Client
	cache    *Cache
	notifier Notifier
}

// NewQueries binds a client and cache. A nil notifier discards notifications.
func NewQueries(client *Client, cache *Cache, notifier Notifier) *Queries {
	if notifier == nil {
		notifier = NotifierFunc(func(Notification) {})
	}
	return &Queries{client: client, cache: cache, notifier: notifier}
}

// Cache returns the cache the queries read through.
func (q *Queries) Cache() *Cache {
	return q.cache
}

func (q *Queries) loadUsers(ctx context.Context) (any, error) {
	users, err := q.client.ListUsers(ctx)
	if err != nil {
		q.failed("Error fetching users", err)
		return nil, err
	}
	return users, nil
}

func (q *Queries) loadUsersWithHobbies(ctx context.Context) (any, error) {
	rows, err := q.client.ListUsersWithHobbies(ctx)
	if err != nil {
		q.failed("Error fetching data", err)
		return nil, err
	}
	return rows, nil
}

// Users returns the cached user list, fetching it when absent.
func (q *Queries) Users(ctx context.Context) ([]dto.UserDTO, error) {
	return fetchAs[[]dto.UserDTO](ctx, q.cache, KeyUsersList, q.loadUsers)
}

// UsersWithHobbies returns the cached joined listing, fetching it when absent.
func (q *Queries) UsersWithHobbies(ctx context.Context) ([]dto.UserWithHobbiesDTO, error) {
	return fetchAs[[]dto.UserWithHobbiesDTO](ctx, q.cache, KeyUsersWithHobbies, q.loadUsersWithHobbies)
}

// OnUsers calls fn with the user list after every invalidation that refetches it.
func (q *Queries) OnUsers(fn func([]dto.UserDTO, error)) func() {
	return q.cache.Subscribe(KeyUsersList, q.loadUsers, func(v any, err error) {
		users, _ := v.([]dto.UserDTO)
		fn(users, err)
	})
}

// OnUsersWithHobbies calls fn with the joined listing after every invalidation that refetches it.
func (q *Queries) OnUsersWithHobbies(fn func([]dto.UserWithHobbiesDTO, error)) func() {
	return q.cache.Subscribe(KeyUsersWithHobbies, q.loadUsersWithHobbies, func(v any, err error) {
		rows, _ := v.([]dto.UserWithHobbiesDTO)
		fn(rows, err)
	})
}

// CreateUser creates a user and invalidates every user listing.
func (q *Queries) CreateUser(ctx context.Context, input dto.CreateUserInput) (dto.UserDTO, error) {
	user, err := q.client.CreateUser(ctx, input)
	if err != nil {
		q.failed("Error creating user", err)
		return dto.UserDTO{}, err
	}
	q.cache.Invalidate(ctx, KeyUsers)
	q.succeeded("User has been created successfully.")
	return user, nil
}

// DeleteUser deletes a user and invalidates every user listing.
func (q *Queries) DeleteUser(ctx context.Context, id uint64) error {
	if _, err := q.client.DeleteUser(ctx, id); err != nil {
		q.failed("Error deleting user", err)
		return err
	}
	q.cache.Invalidate(ctx, KeyUsers)
	q.succeeded("User has been deleted successfully.")
	return nil
}

// CreateHobby adds a hobby and invalidates the joined listing.
func (q *Queries) CreateHobby(ctx context.Context, input dto.CreateHobbyInput) (dto.HobbyDTO, error) {
	hobby, err := q.client.CreateHobby(ctx, input)
	if err != nil {
		q.failed("Error adding hobby", err)
		return dto.HobbyDTO{}, err
	}
	q.cache.Invalidate(ctx, KeyUsersWithHobbies)
	q.succeeded("Hobby has been added successfully.")
	return hobby, nil
}

// DeleteHobby deletes a hobby and invalidates the joined listing.
func (q *Queries) DeleteHobby(ctx context.Context, userID uint64, hobby string) error {
	if _, err := q.client.DeleteHobby(ctx, userID, hobby); err != nil {
		q.failed("Error deleting hobby", err)
		return err
	}
	q.cache.Invalidate(ctx, KeyUsersWithHobbies)
	q.succeeded("Hobby has been deleted successfully.")
	return nil
}

func (q *Queries) succeeded(description string) {
	q.notifier.Notify(Notification{Variant: VariantDefault, Title: "Success!", Description: description})
}

func (q *Queries) failed(title string, err error) {
	description := unexpectedError
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		description = apiErr.Message
	} else if err != nil && err.Error() != "" {
		description = err.Error()
	}
	q.notifier.Notify(Notification{Variant: VariantDestructive, Title: title, Description: description})
}

func fetchAs[T any](ctx context.Context, cache *Cache, key string, load Loader) (T, error) {
	var zero T
	v, err := cache.Fetch(ctx, key, load)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("cache entry %q holds %T", key, v)
	}
	return typed, nil
}
