package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yukikurage/user-hobbies-api/internal/models"
	"github.com/yukikurage/user-hobbies-api/internal/repository"
	"go.uber.org/zap"
)

// HobbyService handles hobby business logic
type HobbyService struct {
	hobbyRepo repository.HobbyRepository
	userRepo  repository.UserRepository
	log       *zap.Logger
}

// NewHobbyService creates a new HobbyService
func NewHobbyService(hobbyRepo repository.HobbyRepository, userRepo repository.UserRepository, log *zap.Logger) *HobbyService {
	return &HobbyService{
		hobbyRepo: hobbyRepo,
		userRepo:  userRepo,
		log:       log,
	}
}

// CreateHobbyInput represents input for adding a hobby to a user
type CreateHobbyInput struct {
	UserID  uint64
	Hobbies string
}

// CreateHobby adds a hobby after checking that the user exists. The foreign
// key still guards against a user deleted between the check and the insert.
func (s *HobbyService) CreateHobby(ctx context.Context, input CreateHobbyInput) (*models.Hobby, error) {
	exists, err := s.userRepo.Exists(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("user with ID %d: %w", input.UserID, ErrUserNotFound)
	}

	hobby := &models.Hobby{
		UserID:  input.UserID,
		Hobbies: strings.TrimSpace(input.Hobbies),
	}
	if err := s.hobbyRepo.Create(ctx, hobby); err != nil {
		return nil, fmt.Errorf("failed to create hobby: %w", err)
	}

	s.log.Info("Hobby added",
		zap.Uint64("user_id", hobby.UserID),
		zap.String("hobby", hobby.Hobbies),
	)
	return hobby, nil
}

// DeleteHobby removes a user's hobby matching the exact text.
func (s *HobbyService) DeleteHobby(ctx context.Context, userID uint64, hobby string) error {
	deleted, err := s.hobbyRepo.Delete(ctx, userID, hobby)
	if err != nil {
		return fmt.Errorf("failed to delete hobby: %w", err)
	}
	if !deleted {
		return ErrHobbyNotFound
	}

	s.log.Info("Hobby deleted", zap.Uint64("user_id", userID), zap.String("hobby", hobby))
	return nil
}

// ListHobbiesForUser returns a user's hobbies in creation order.
func (s *HobbyService) ListHobbiesForUser(ctx context.Context, userID uint64) ([]models.Hobby, error) {
	hobbies, err := s.hobbyRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list hobbies: %w", err)
	}
	return hobbies, nil
}
