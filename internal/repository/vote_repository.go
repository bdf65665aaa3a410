package repository

import (
	"context"
	"errors"
	"time"

	"github.com/salmanrf/movies-api/internal/database"
	"github.com/salmanrf/movies-api/internal/models"

	"gorm.io/gorm"
)

type VoteRepository interface {
	FindByPair(ctx context.Context, movieID, userID string) (*models.MovieVote, error)
	Create(ctx context.Context, vote *models.MovieVote) error
	Delete(ctx context.Context, movieID, userID string) error
}

type voteRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewVoteRepository(db *database.Database) VoteRepository {
	return &voteRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *voteRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *voteRepository) FindByPair(ctx context.Context, movieID, userID string) (*models.MovieVote, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var vote models.MovieVote
	err := r.db.WithContext(ctx).
		Where("movie_id = ? AND user_id = ?", movieID, userID).
		First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vote, nil
}

func (r *voteRepository) Create(ctx context.Context, vote *models.MovieVote) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(vote).Error
}

func (r *voteRepository) Delete(ctx context.Context, movieID, userID string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).
		Where("movie_id = ? AND user_id = ?", movieID, userID).
		Delete(&models.MovieVote{}).Error
}
