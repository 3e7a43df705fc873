package models

import "time"

type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string `gorm:"size:120;not null" json:"name"`
	Specialty string `gorm:"size:120" json:"specialty"`
	IsActive  bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
