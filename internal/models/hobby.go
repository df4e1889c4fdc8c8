package models

import "time"

// Hobby holds a single hobby label; the column keeps its historical plural name.
type Hobby struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"not null;index:idx_hobbies_user_hobby,priority:1" json:"user_id"`
	Hobbies   string    `gorm:"type:varchar(100);not null;index:idx_hobbies_user_hobby,priority:2" json:"hobbies"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relations
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
