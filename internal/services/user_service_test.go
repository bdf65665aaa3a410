package services

import (
	"context"
	"testing"

	"github.com/salmanrf/movies-api/internal/apperr"
	"github.com/salmanrf/movies-api/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRegisterHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo, testConfig(), quietLogger())

	user, err := service.Register(context.Background(), RegisterInput{
		Email:    "user@example.com",
		Name:     "User One",
		Password: "hunter22",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.UserID)
	assert.NotEqual(t, "hunter22", user.Password)
	assert.True(t, auth.ComparePassword(user.Password, "hunter22"))
}

func TestUserRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo, testConfig(), quietLogger())

	in := RegisterInput{Email: "user@example.com", Name: "User One", Password: "hunter22"}

	_, err := service.Register(context.Background(), in)
	require.NoError(t, err)

	_, err = service.Register(context.Background(), in)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Code)
	assert.Equal(t, "email already registered.", appErr.Message)
}

func TestUserLoginCarriesUserID(t *testing.T) {
	repo := newFakeUserRepo()
	cfg := testConfig()
	service := NewUserService(repo, cfg, quietLogger())

	user, err := service.Register(context.Background(), RegisterInput{
		Email:    "user@example.com",
		Name:     "User One",
		Password: "hunter22",
	})
	require.NoError(t, err)

	token, err := service.Login(context.Background(), LoginInput{
		Email:    "user@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	claims, err := auth.Verify(token, cfg.Auth.UserSecret)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleUser, claims.Role)
	assert.Equal(t, user.UserID, claims.UserID)
}

func TestUserTokenRejectedByAdminSecret(t *testing.T) {
	repo := newFakeUserRepo()
	cfg := testConfig()
	service := NewUserService(repo, cfg, quietLogger())

	_, err := service.Register(context.Background(), RegisterInput{
		Email:    "user@example.com",
		Name:     "User One",
		Password: "hunter22",
	})
	require.NoError(t, err)

	token, err := service.Login(context.Background(), LoginInput{
		Email:    "user@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = auth.Verify(token, cfg.Auth.AdminSecret)
	assert.Error(t, err)
}

func TestUserLoginInvalidCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo, testConfig(), quietLogger())

	_, err := service.Register(context.Background(), RegisterInput{
		Email:    "user@example.com",
		Name:     "User One",
		Password: "hunter22",
	})
	require.NoError(t, err)

	tests := []struct {
		name  string
		input LoginInput
	}{
		{"unknown email", LoginInput{Email: "ghost@example.com", Password: "hunter22"}},
		{"wrong password", LoginInput{Email: "user@example.com", Password: "wrong"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(context.Background(), tt.input)

			var appErr *apperr.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "Invalid email/password.", appErr.Message)
		})
	}
}
