package models

import "time"

type Genre struct {
	GenreID   uint      `gorm:"primaryKey" json:"genre_id"`
	Name      string    `gorm:"size:255;not null;index" json:"name" example:"Crime"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Genre) TableName() string {
	return "genres"
}
