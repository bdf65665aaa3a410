package repository

import (
	"context"
	"time"

	"github.com/salmanrf/movies-api/internal/database"
	"github.com/salmanrf/movies-api/internal/models"
	"github.com/salmanrf/movies-api/internal/utils"
)

type ArtistRepository interface {
	Create(ctx context.Context, artist *models.Artist) error
	FindAll(ctx context.Context, p utils.Pagination, sortField, sortOrder string) ([]models.Artist, int64, error)
}

type artistRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewArtistRepository(db *database.Database) ArtistRepository {
	return &artistRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *artistRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *artistRepository) Create(ctx context.Context, artist *models.Artist) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(artist).Error
}

func (r *artistRepository) FindAll(ctx context.Context, p utils.Pagination, sortField, sortOrder string) ([]models.Artist, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var artists []models.Artist
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Artist{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order(sortField + " " + sortOrder).
		Offset(p.Offset).
		Limit(p.Limit).
		Find(&artists).Error
	if err != nil {
		return nil, 0, err
	}

	return artists, total, nil
}
