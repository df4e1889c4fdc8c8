package dto

import (
	"time"

	"github.com/yukikurage/user-hobbies-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID          uint64    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Address     *string   `json:"address"`
	PhoneNumber *string   `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
}

// HobbyDTO represents a hobby row in API responses
type HobbyDTO struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"user_id"`
	Hobbies   string    `json:"hobbies"`
	CreatedAt time.Time `json:"created_at"`
}

// UserWithHobbiesDTO represents one row of the joined users/hobbies listing
type UserWithHobbiesDTO struct {
	ID          uint64  `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Address     *string `json:"address"`
	PhoneNumber *string `json:"phone_number"`
	Hobbies     *string `json:"hobbies"`
}

// DeletedUserDTO is returned after a user has been removed
type DeletedUserDTO struct {
	ID uint64 `json:"id"`
}

// DeletedHobbyDTO is returned after a hobby has been removed
type DeletedHobbyDTO struct {
	UserID uint64 `json:"userId"`
	Hobby  string `json:"hobby"`
}

// CreateUserInput is the payload for creating a user
type CreateUserInput struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Address     string `json:"address,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// CreateHobbyInput is the payload for adding a hobby to a user
type CreateHobbyInput struct {
	UserID  uint64 `json:"user_id"`
	Hobbies string `json:"hobbies"`
}

// Conversion functions

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Address:     user.Address,
		PhoneNumber: user.PhoneNumber,
		CreatedAt:   user.CreatedAt,
	}
}

// ToUserDTOs converts a slice of users, never returning nil
func ToUserDTOs(users []models.User) []UserDTO {
	items := make([]UserDTO, len(users))
	for i, user := range users {
		items[i] = ToUserDTO(user)
	}
	return items
}

// ToHobbyDTO converts a Hobby model to HobbyDTO
func ToHobbyDTO(hobby models.Hobby) HobbyDTO {
	return HobbyDTO{
		ID:        hobby.ID,
		UserID:    hobby.UserID,
		Hobbies:   hobby.Hobbies,
		CreatedAt: hobby.CreatedAt,
	}
}

// ToHobbyDTOs converts a slice of hobbies, never returning nil
func ToHobbyDTOs(hobbies []models.Hobby) []HobbyDTO {
	items := make([]HobbyDTO, len(hobbies))
	for i, hobby := range hobbies {
		items[i] = ToHobbyDTO(hobby)
	}
	return items
}

// ToUserWithHobbiesDTOs converts joined rows, never returning nil
func ToUserWithHobbiesDTOs(rows []models.UserWithHobbies) []UserWithHobbiesDTO {
	items := make([]UserWithHobbiesDTO, len(rows))
	for i, row := range rows {
		items[i] = UserWithHobbiesDTO{
			ID:          row.ID,
			FirstName:   row.FirstName,
			LastName:    row.LastName,
			Address:     row.Address,
			PhoneNumber: row.PhoneNumber,
			Hobbies:     row.Hobbies,
		}
	}
	return items
}
