package repository

import (
	"context"
	"time"

	"github.com/salmanrf/movies-api/internal/database"
	"github.com/salmanrf/movies-api/internal/models"
	"github.com/salmanrf/movies-api/internal/utils"
)

type GenreRepository interface {
	Create(ctx context.Context, genre *models.Genre) error
	FindAll(ctx context.Context, p utils.Pagination, sortField, sortOrder string) ([]models.Genre, int64, error)
}

type genreRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewGenreRepository(db *database.Database) GenreRepository {
	return &genreRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *genreRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *genreRepository) Create(ctx context.Context, genre *models.Genre) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(genre).Error
}

func (r *genreRepository) FindAll(ctx context.Context, p utils.Pagination, sortField, sortOrder string) ([]models.Genre, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var genres []models.Genre
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Genre{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order(sortField + " " + sortOrder).
		Offset(p.Offset).
		Limit(p.Limit).
		Find(&genres).Error
	if err != nil {
		return nil, 0, err
	}

	return genres, total, nil
}
