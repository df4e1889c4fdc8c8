package repository

import (
	"context"

	"github.com/yukikurage/user-hobbies-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// List returns all users ordered by id
	List(ctx context.Context) ([]models.User, error)

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// Exists reports whether a user with the given ID exists
	Exists(ctx context.Context, id uint64) (bool, error)

	// Create inserts a user and fills its generated fields
	Create(ctx context.Context, user *models.User) error

	// Delete removes a user; hobby rows go with it through the foreign key
	Delete(ctx context.Context, id uint64) (bool, error)

	// ListWithHobbies returns users left-joined with their hobbies
	ListWithHobbies(ctx context.Context) ([]models.UserWithHobbies, error)
}

// HobbyRepository defines the interface for hobby data access
type HobbyRepository interface {
	// Create inserts a hobby row
	Create(ctx context.Context, hobby *models.Hobby) error

	// Delete removes the rows matching both the user and the exact hobby text
	Delete(ctx context.Context, userID uint64, hobby string) (bool, error)

	// ListByUserID returns a user's hobbies in creation order
	ListByUserID(ctx context.Context, userID uint64) ([]models.Hobby, error)
}
