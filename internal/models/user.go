package models

import "time"

type User struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	FirstName   string    `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName    string    `gorm:"type:varchar(50);not null" json:"last_name"`
	Address     *string   `gorm:"type:varchar(200)" json:"address"`
	PhoneNumber *string   `gorm:"type:varchar(20)" json:"phone_number"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// UserWithHobbies is one row of the users LEFT JOIN hobbies listing.
// Hobbies is nil for a user that owns no hobby rows.
type UserWithHobbies struct {
	ID          uint64
	FirstName   string
	LastName    string
	Address     *string
	PhoneNumber *string
	Hobbies     *string
}
