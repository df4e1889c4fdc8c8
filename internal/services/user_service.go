package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/user-hobbies-api/internal/models"
	"github.com/yukikurage/user-hobbies-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrHobbyNotFound = errors.New("hobby not found")
)

// UserService provides business logic for user operations.
type UserService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, log *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		log:      log,
	}
}

// CreateUserInput represents parameters to create a new user.
// Blank optional fields are stored as NULL.
type CreateUserInput struct {
	FirstName   string
	LastName    string
	Address     string
	PhoneNumber string
}

// ListUsers returns every user ordered by id.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser returns a single user.
func (s *UserService) GetUser(ctx context.Context, id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// CreateUser inserts a user and returns the stored row.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*models.User, error) {
	user := &models.User{
		FirstName:   strings.TrimSpace(input.FirstName),
		LastName:    strings.TrimSpace(input.LastName),
		Address:     optional(input.Address),
		PhoneNumber: optional(input.PhoneNumber),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.Info("User created",
		zap.Uint64("user_id", user.ID),
		zap.String("first_name", user.FirstName),
		zap.String("last_name", user.LastName),
	)
	return user, nil
}

// DeleteUser removes a user together with their hobbies.
func (s *UserService) DeleteUser(ctx context.Context, id uint64) error {
	deleted, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if !deleted {
		return ErrUserNotFound
	}

	s.log.Info("User deleted", zap.Uint64("user_id", id))
	return nil
}

// ListUsersWithHobbies returns the joined users/hobbies listing.
func (s *UserService) ListUsersWithHobbies(ctx context.Context) ([]models.UserWithHobbies, error) {
	rows, err := s.userRepo.ListWithHobbies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users with hobbies: %w", err)
	}
	return rows, nil
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
