package repository

import (
	"context"
	"errors"
	"time"

	"github.com/salmanrf/movies-api/internal/database"
	"github.com/salmanrf/movies-api/internal/models"

	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
}

type adminRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewAdminRepository(db *database.Database) AdminRepository {
	return &adminRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *adminRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *adminRepository) Create(ctx context.Context, admin *models.Admin) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var admin models.Admin
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}
