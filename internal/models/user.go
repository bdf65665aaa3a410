package models

import "time"

type User struct {
	UserID    string    `gorm:"primaryKey;type:uuid" json:"user_id"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email" example:"moviegoer@example.com"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
