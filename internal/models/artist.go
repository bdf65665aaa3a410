package models

import "time"

type Artist struct {
	ArtistID  uint      `gorm:"primaryKey" json:"artist_id"`
	Name      string    `gorm:"size:255;not null" json:"name" example:"Robert De Niro"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Artist) TableName() string {
	return "artists"
}
