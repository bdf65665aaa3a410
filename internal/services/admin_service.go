package services

import (
	"context"
	"errors"
	"strings"

	"github.com/salmanrf/movies-api/internal/apperr"
	"github.com/salmanrf/movies-api/internal/auth"
	"github.com/salmanrf/movies-api/internal/config"
	"github.com/salmanrf/movies-api/internal/models"
	"github.com/salmanrf/movies-api/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type AdminService interface {
	Create(ctx context.Context, in RegisterInput) (*models.Admin, error)
	Login(ctx context.Context, in LoginInput) (string, error)
}

type adminService struct {
	repo   repository.AdminRepository
	config *config.Config
	logger *logrus.Logger
}

func NewAdminService(repo repository.AdminRepository, cfg *config.Config, logger *logrus.Logger) AdminService {
	return &adminService{
		repo:   repo,
		config: cfg,
		logger: logger,
	}
}

func (s *adminService) Create(ctx context.Context, in RegisterInput) (*models.Admin, error) {
	hash, err := auth.HashPassword(in.Password, s.config.Auth.BcryptCost)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		AdminID:  uuid.NewString(),
		Email:    in.Email,
		Name:     in.Name,
		Password: hash,
	}

	if err := s.repo.Create(ctx, admin); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("email already registered.")
		}
		return nil, err
	}

	return admin, nil
}

func (s *adminService) Login(ctx context.Context, in LoginInput) (string, error) {
	admin, err := s.repo.FindByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		return "", err
	}
	if admin == nil {
		return "", apperr.InvalidCredentials()
	}

	if !auth.ComparePassword(admin.Password, in.Password) {
		return "", apperr.InvalidCredentials()
	}

	token, err := auth.Sign(auth.Claims{
		Role:  auth.RoleAdmin,
		Email: admin.Email,
		Name:  admin.Name,
	}, s.config.Auth.AdminSecret, s.config.Auth.TokenTTL)
	if err != nil {
		s.logger.WithError(err).Error("Failed to sign admin token")
		return "", err
	}

	return token, nil
}
