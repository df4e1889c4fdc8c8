package repository

import (
	"context"
	"fmt"

	"github.com/yukikurage/user-hobbies-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db           *gorm.DB
	usersTable   string
	hobbiesTable string
}

// NewUserRepository creates a new UserRepository. Raw table references in the
// joined listing follow the naming strategy, so they carry the schema prefix.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{
		db:           db,
		usersTable:   db.NamingStrategy.TableName("User"),
		hobbiesTable: db.NamingStrategy.TableName("Hobby"),
	}
}

// conn detaches ctx from cancellation: a dispatched statement runs to completion.
func (r *GormUserRepository) conn(ctx context.Context) *gorm.DB {
	return r.db.WithContext(context.WithoutCancel(ctx))
}

// List returns all users ordered by id
func (r *GormUserRepository) List(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := r.conn(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uint64) (*models.User, error) {
	var user models.User
	if err := r.conn(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Exists reports whether a user with the given ID exists
func (r *GormUserRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	if err := r.conn(ctx).Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a user and fills its generated fields
func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	return r.conn(ctx).Create(user).Error
}

// Delete removes a user by ID
func (r *GormUserRepository) Delete(ctx context.Context, id uint64) (bool, error) {
	result := r.conn(ctx).Where("id = ?", id).Delete(&models.User{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListWithHobbies returns one row per (user, hobby) pair, or a single row with a
// NULL hobby for users without hobbies, ordered by user id then hobby text.
func (r *GormUserRepository) ListWithHobbies(ctx context.Context) ([]models.UserWithHobbies, error) {
	rows := make([]models.UserWithHobbies, 0)
	err := r.conn(ctx).
		Table(fmt.Sprintf("%s AS u", r.usersTable)).
		Select("u.id, u.first_name, u.last_name, u.address, u.phone_number, h.hobbies").
		Joins(fmt.Sprintf("LEFT JOIN %s AS h ON u.id = h.user_id", r.hobbiesTable)).
		Order("u.id, h.hobbies").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
