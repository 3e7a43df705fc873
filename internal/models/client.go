package models

import "time"

// Booking profile of a login account, created on the first booking.
type Client struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	FullName string `gorm:"size:120;not null" json:"full_name"`
	Phone    string `gorm:"size:50;not null" json:"phone"`
	Email    string `gorm:"size:120" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
