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

type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*models.User, error)
	Login(ctx context.Context, in LoginInput) (string, error)
}

type userService struct {
	repo   repository.UserRepository
	config *config.Config
	logger *logrus.Logger
}

func NewUserService(repo repository.UserRepository, cfg *config.Config, logger *logrus.Logger) UserService {
	return &userService{
		repo:   repo,
		config: cfg,
		logger: logger,
	}
}

func (s *userService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	hash, err := auth.HashPassword(in.Password, s.config.Auth.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		UserID:   uuid.NewString(),
		Email:    in.Email,
		Name:     in.Name,
		Password: hash,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("email already registered.")
		}
		return nil, err
	}

	return user, nil
}

func (s *userService) Login(ctx context.Context, in LoginInput) (string, error) {
	user, err := s.repo.FindByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperr.InvalidCredentials()
	}

	if !auth.ComparePassword(user.Password, in.Password) {
		return "", apperr.InvalidCredentials()
	}

	token, err := auth.Sign(auth.Claims{
		Role:   auth.RoleUser,
		UserID: user.UserID,
		Email:  user.Email,
		Name:   user.Name,
	}, s.config.Auth.UserSecret, s.config.Auth.TokenTTL)
	if err != nil {
		s.logger.WithError(err).Error("Failed to sign user token")
		return "", err
	}

	return token, nil
}
