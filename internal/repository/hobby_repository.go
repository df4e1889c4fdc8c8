package repository

import (
	"context"

	"github.com/yukikurage/user-hobbies-api/internal/models"
	"gorm.io/gorm"
)

// GormHobbyRepository is a GORM implementation of HobbyRepository
type GormHobbyRepository struct {
	db *gorm.DB
}

// NewHobbyRepository creates a new HobbyRepository
func NewHobbyRepository(db *gorm.DB) HobbyRepository {
	return &GormHobbyRepository{db: db}
}

func (r *GormHobbyRepository) conn(ctx context.Context) *gorm.DB {
	return r.db.WithContext(context.WithoutCancel(ctx))
}

// Create inserts a hobby row
func (r *GormHobbyRepository) Create(ctx context.Context, hobby *models.Hobby) error {
	return r.conn(ctx).Omit("User").Create(hobby).Error
}

// Delete removes the rows matching both the user and the exact hobby text
func (r *GormHobbyRepository) Delete(ctx context.Context, userID uint64, hobby string) (bool, error) {
	result := r.conn(ctx).
		Where("user_id = ? AND hobbies = ?", userID, hobby).
		Delete(&models.Hobby{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListByUserID returns a user's hobbies in creation order
func (r *GormHobbyRepository) ListByUserID(ctx context.Context, userID uint64) ([]models.Hobby, error) {
	hobbies := make([]models.Hobby, 0)
	if err := r.conn(ctx).
		Where("user_id = ?", userID).
		Order("created_at, id").
		Find(&hobbies).Error; err != nil {
		return nil, err
	}
	return hobbies, nil
}
