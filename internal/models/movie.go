package models

import (
	"time"
)

type Movie struct {
	MovieID     string    `gorm:"primaryKey;type:uuid" json:"movie_id" example:"a9f7c8d2-3b1e-4f6a-9c0d-8e7f6a5b4c3d"`
	Title       string    `gorm:"size:255;not null;index" json:"title" example:"Heat"`
	Description string    `gorm:"type:text;not null" json:"description" example:"A group of professional bank robbers..."`
	Duration    int       `gorm:"not null" json:"duration" example:"170"`
	WatchURL    string    `gorm:"size:255;not null" json:"watch_url" example:"https://cdn.example.com/heat.mp4"`
	Vote        int       `gorm:"->;-:migration" json:"vote" example:"12"`
	Genres      []Genre   `gorm:"many2many:movie_genres;foreignKey:MovieID;joinForeignKey:MovieID;references:GenreID;joinReferences:GenreID" json:"genres,omitempty"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Movie) TableName() string {
	return "movies"
}

type MovieGenre struct {
	MovieID string `gorm:"primaryKey;type:uuid" json:"movie_id"`
	GenreID uint   `gorm:"primaryKey" json:"genre_id"`
}

func (MovieGenre) TableName() string {
	return "movie_genres"
}

type MovieArtist struct {
	MovieID  string `gorm:"primaryKey;type:uuid" json:"movie_id"`
	ArtistID uint   `gorm:"primaryKey" json:"artist_id"`
}

func (MovieArtist) TableName() string {
	return "movie_artists"
}

// MovieVote existence is the "voted" state: at most one row per
// (movie, user) pair, created on vote and deleted on unvote.
type MovieVote struct {
	MovieID string `gorm:"primaryKey;type:uuid" json:"movie_id"`
	UserID  string `gorm:"primaryKey;type:uuid" json:"user_id"`
}

func (MovieVote) TableName() string {
	return "movie_votes"
}

// MovieVoteCount maps the movie_vote_count_view SQL view. Read-only;
// movies without votes have no row and default to zero on join.
type MovieVoteCount struct {
	MovieID   string `gorm:"primaryKey;type:uuid" json:"movie_id"`
	VoteCount int    `json:"vote_count"`
}

func (MovieVoteCount) TableName() string {
	return "movie_vote_count_view"
}
