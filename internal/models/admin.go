package models

import "time"

// Admin password column holds the bcrypt hash and never serializes.
type Admin struct {
	AdminID   string    `gorm:"primaryKey;type:uuid" json:"admin_id"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email" example:"admin@example.com"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Admin) TableName() string {
	return "admins"
}
