// Package client talks to the users/hobbies API and keeps fetched listings
// cached for the presentation layer.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yukikurage/user-hobbies-api/internal/dto"
	"github.com/yukikurage/user-hobbies-api/internal/validation"
)

const defaultTimeout = 15 * time.Second

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode       int
	Message          string
	ValidationErrors validation.Errors
}

func (e *APIError) Error() string {
	return e.Message
}

// envelope mirrors the server's response body.
type envelope[T any] struct {
	Success    bool   `json:"success"`
	Data       T      `json:"data"`
	Error      string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Details    *struct {
		ValidationErrors validation.Errors `json:"validationErrors"`
	} `json:"details"`
}

// Client is a typed wrapper over the HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a Client for baseURL, which includes the /api prefix.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListUsers returns every user ordered by id.
func (c *Client) ListUsers(ctx context.Context) ([]dto.UserDTO, error) {
	return call[[]dto.UserDTO](ctx, c, http.MethodGet, "/users", nil)
}

// GetUser returns one user.
func (c *Client) GetUser(ctx context.Context, id uint64) (dto.UserDTO, error) {
	return call[dto.UserDTO](ctx, c, http.MethodGet, "/users/"+formatID(id), nil)
}

// CreateUser creates a user.
func (c *Client) CreateUser(ctx context.Context, input dto.CreateUserInput) (dto.UserDTO, error) {
	return call[dto.UserDTO](ctx, c, http.MethodPost, "/users", input)
}

// DeleteUser deletes a user and their hobbies.
func (c *Client) DeleteUser(ctx context.Context, id uint64) (dto.DeletedUserDTO, error) {
	return call[dto.DeletedUserDTO](ctx, c, http.MethodDelete, "/users/"+formatID(id), nil)
}

// ListUsersWithHobbies returns the joined listing.
func (c *Client) ListUsersWithHobbies(ctx context.Context) ([]dto.UserWithHobbiesDTO, error) {
	return call[[]dto.UserWithHobbiesDTO](ctx, c, http.MethodGet, "/users/with-hobbies/all", nil)
}

// CreateHobby adds a hobby to a user.
func (c *Client) CreateHobby(ctx context.Context, input dto.CreateHobbyInput) (dto.HobbyDTO, error) {
	return call[dto.HobbyDTO](ctx, c, http.MethodPost, "/hobbies", input)
}

// DeleteHobby removes the hobby with exactly this text.
func (c *Client) DeleteHobby(ctx context.Context, userID uint64, hobby string) (dto.DeletedHobbyDTO, error) {
	return call[dto.DeletedHobbyDTO](ctx, c, http.MethodDelete, "/hobbies/"+formatID(userID)+"/"+url.PathEscape(hobby), nil)
}

// ListHobbiesForUser returns a user's hobbies.
func (c *Client) ListHobbiesForUser(ctx context.Context, userID uint64) ([]dto.HobbyDTO, error) {
	return call[[]dto.HobbyDTO](ctx, c, http.MethodGet, "/hobbies/user/"+formatID(userID), nil)
}

// Health checks that the API answers.
func (c *Client) Health(ctx context.Context) error {
	_, err := call[json.RawMessage](ctx, c, http.MethodGet, "/health", nil)
	return err
}

func call[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var zero T

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return zero, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return zero, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return zero, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return zero, fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope[T]
	decodeErr := json.Unmarshal(raw, &env)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		apiErr := &APIError{
			StatusCode: res.StatusCode,
			Message:    fmt.Sprintf("Request failed with status %d", res.StatusCode),
		}
		if decodeErr == nil {
			if env.Error != "" {
				apiErr.Message = env.Error
			} else if env.Message != "" {
				apiErr.Message = env.Message
			}
			if env.Details != nil {
				apiErr.ValidationErrors = env.Details.ValidationErrors
			}
		}
		return zero, apiErr
	}

	if decodeErr != nil {
		return zero, fmt.Errorf("failed to decode response: %w", decodeErr)
	}
	return env.Data, nil
}

func formatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}
