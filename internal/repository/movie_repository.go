package repository

import (
	"context"
	"errors"
	"time"

	"github.com/salmanrf/movies-api/internal/database"
	"github.com/salmanrf/movies-api/internal/models"
	"github.com/salmanrf/movies-api/internal/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MovieQuery carries normalized listing parameters: filters are
// AND-combined, sort field/order must already be validated.
type MovieQuery struct {
	Title       string
	Description string
	Pagination  utils.Pagination
	SortField   string
	SortOrder   string
}

type MovieRepository interface {
	// Create persists the movie and its association rows in one
	// transaction; a failure on any row rolls everything back.
	Create(ctx context.Context, movie *models.Movie, artistIDs, genreIDs []uint) error
	// Update saves the movie fields and, for every non-nil ID slice,
	// replaces that association set wholesale (delete-then-insert),
	// all inside a single transaction. A nil slice leaves the
	// association untouched; an empty one clears it.
	Update(ctx context.Context, movie *models.Movie, artistIDs, genreIDs []uint) error
	FindByID(ctx context.Context, movieID string) (*models.Movie, error)
	FindAll(ctx context.Context, query MovieQuery) ([]models.Movie, int64, error)
	FindArtistIDs(ctx context.Context, movieID string) ([]uint, error)
}

type movieRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *movieRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *movieRepository) Create(ctx context.Context, movie *models.Movie, artistIDs, genreIDs []uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(movie).Error; err != nil {
			return err
		}
		if err := insertMovieArtists(tx, movie.MovieID, artistIDs); err != nil {
			return err
		}
		return insertMovieGenres(tx, movie.MovieID, genreIDs)
	})
}

func (r *movieRepository) Update(ctx context.Context, movie *models.Movie, artistIDs, genreIDs []uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(movie).Error; err != nil {
			return err
		}

		if artistIDs != nil {
			if err := tx.Where("movie_id = ?", movie.MovieID).Delete(&models.MovieArtist{}).Error; err != nil {
				return err
			}
			if err := insertMovieArtists(tx, movie.MovieID, artistIDs); err != nil {
				return err
			}
		}

		if genreIDs != nil {
			if err := tx.Where("movie_id = ?", movie.MovieID).Delete(&models.MovieGenre{}).Error; err != nil {
				return err
			}
			if err := insertMovieGenres(tx, movie.MovieID, genreIDs); err != nil {
				return err
			}
		}

		return nil
	})
}

func insertMovieArtists(tx *gorm.DB, movieID string, artistIDs []uint) error {
	if len(artistIDs) == 0 {
		return nil
	}

	rows := make([]models.MovieArtist, 0, len(artistIDs))
	for _, id := range artistIDs {
		rows = append(rows, models.MovieArtist{MovieID: movieID, ArtistID: id})
	}

	return tx.Create(&rows).Error
}

func insertMovieGenres(tx *gorm.DB, movieID string, genreIDs []uint) error {
	if len(genreIDs) == 0 {
		return nil
	}

	rows := make([]models.MovieGenre, 0, len(genreIDs))
	for _, id := range genreIDs {
		rows = append(rows, models.MovieGenre{MovieID: movieID, GenreID: id})
	}

	return tx.Create(&rows).Error
}

func (r *movieRepository) FindByID(ctx context.Context, movieID string) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).Model(&models.Movie{}).
		Select("movies.*, COALESCE(v.vote_count, 0) AS vote").
		Joins("LEFT JOIN movie_vote_count_view v ON v.movie_id = movies.movie_id").
		Preload("Genres").
		Where("movies.movie_id = ?", movieID).
		First(&movie).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context, q MovieQuery) ([]models.Movie, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Movie{})

	// AND-combined, case-insensitive, unanchored substring filters
	if q.Title != "" {
		query = query.Where("movies.title ILIKE ?", "%"+q.Title+"%")
	}
	if q.Description != "" {
		query = query.Where("movies.description ILIKE ?", "%"+q.Description+"%")
	}

	// Count the filtered set before pagination
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Select("movies.*, COALESCE(v.vote_count, 0) AS vote").
		Joins("LEFT JOIN movie_vote_count_view v ON v.movie_id = movies.movie_id").
		Preload("Genres").
		Order("movies." + q.SortField + " " + q.SortOrder).
		Offset(q.Pagination.Offset).
		Limit(q.Pagination.Limit).
		Find(&movies).Error
	if err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}

func (r *movieRepository) FindArtistIDs(ctx context.Context, movieID string) ([]uint, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.MovieArtist{}).
		Where("movie_id = ?", movieID).
		Pluck("artist_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
