package services

import (
	"context"
	"testing"
	"time"

	"github.com/salmanrf/movies-api/internal/apperr"
	"github.com/salmanrf/movies-api/internal/auth"
	"github.com/salmanrf/movies-api/internal/config"
	"github.com/salmanrf/movies-api/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeAdminRepo struct {
	admins map[string]models.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[string]models.Admin{}}
}

func (f *fakeAdminRepo) Create(_ context.Context, admin *models.Admin) error {
	if _, ok := f.admins[admin.Email]; ok {
		return gorm.ErrDuplicatedKey
	}
	f.admins[admin.Email] = *admin
	return nil
}

func (f *fakeAdminRepo) FindByEmail(_ context.Context, email string) (*models.Admin, error) {
	admin, ok := f.admins[email]
	if !ok {
		return nil, nil
	}
	return &admin, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			AdminSecret: "admin-test-secret",
			UserSecret:  "user-test-secret",
			TokenTTL:    time.Hour,
			BcryptCost:  bcrypt.MinCost,
		},
	}
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestAdminCreateHashesPassword(t *testing.T) {
	repo := newFakeAdminRepo()
	service := NewAdminService(repo, testConfig(), quietLogger())

	admin, err := service.Create(context.Background(), RegisterInput{
		Email:    "admin@example.com",
		Name:     "Admin One",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, admin.AdminID)
	assert.NotEqual(t, "s3cret-pass", admin.Password)
	assert.True(t, auth.ComparePassword(admin.Password, "s3cret-pass"))
}

func TestAdminCreateDuplicateEmail(t *testing.T) {
	repo := newFakeAdminRepo()
	service := NewAdminService(repo, testConfig(), quietLogger())

	in := RegisterInput{Email: "admin@example.com", Name: "Admin One", Password: "s3cret-pass"}

	_, err := service.Create(context.Background(), in)
	require.NoError(t, err)

	_, err = service.Create(context.Background(), in)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Code)
}

func TestAdminLogin(t *testing.T) {
	repo := newFakeAdminRepo()
	cfg := testConfig()
	service := NewAdminService(repo, cfg, quietLogger())

	_, err := service.Create(context.Background(), RegisterInput{
		Email:    "admin@example.com",
		Name:     "Admin One",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	token, err := service.Login(context.Background(), LoginInput{
		Email:    "admin@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	claims, err := auth.Verify(token, cfg.Auth.AdminSecret)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, claims.Role)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestAdminLoginTrimsEmail(t *testing.T) {
	repo := newFakeAdminRepo()
	service := NewAdminService(repo, testConfig(), quietLogger())

	_, err := service.Create(context.Background(), RegisterInput{
		Email:    "admin@example.com",
		Name:     "Admin One",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), LoginInput{
		Email:    "  admin@example.com  ",
		Password: "s3cret-pass",
	})
	assert.NoError(t, err)
}

func TestAdminLoginInvalidCredentials(t *testing.T) {
	repo := newFakeAdminRepo()
	service := NewAdminService(repo, testConfig(), quietLogger())

	_, err := service.Create(context.Background(), RegisterInput{
		Email:    "admin@example.com",
		Name:     "Admin One",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	tests := []struct {
		name  string
		input LoginInput
	}{
		{"unknown email", LoginInput{Email: "ghost@example.com", Password: "s3cret-pass"}},
		{"wrong password", LoginInput{Email: "admin@example.com", Password: "wrong"}},
	}

	// Both failure modes produce the same message so callers cannot
	// probe which emails are registered.
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(context.Background(), tt.input)

			var appErr *apperr.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 400, appErr.Code)
			assert.Equal(t, "Invalid email/password.", appErr.Message)
		})
	}
}
