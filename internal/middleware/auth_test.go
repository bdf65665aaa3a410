package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/salmanrf/movies-api/internal/apperr"
	"github.com/salmanrf/movies-api/internal/auth"
	"github.com/salmanrf/movies-api/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	adminSecret = "admin-test-secret"
	userSecret  = "user-test-secret"
)

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if appErr := apperr.From(err); appErr != nil {
				return utils.ErrorResponse(c, appErr.Code, appErr.Message)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
		},
	})

	app.Get("/admin-only", RequireAdmin(adminSecret), func(c *fiber.Ctx) error {
		claims := ClaimsFromCtx(c)
		return utils.SuccessResponse(c, fiber.StatusOK, claims)
	})
	app.Get("/user-only", RequireUser(userSecret), func(c *fiber.Ctx) error {
		claims := ClaimsFromCtx(c)
		return c.SendString(claims.UserID)
	})

	return app
}

func signToken(t *testing.T, role, secret string) string {
	t.Helper()

	token, err := auth.Sign(auth.Claims{
		Role:   role,
		UserID: "u1",
		Email:  "someone@example.com",
		Name:   "Someone",
	}, secret, time.Hour)
	require.NoError(t, err)
	return token
}

func TestRequireAdminMissingHeader(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdminGarbageToken(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer not-a-jwt")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdminValidToken(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signToken(t, auth.RoleAdmin, adminSecret))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAdminRejectsUserToken(t *testing.T) {
	app := newTestApp()

	// A user token signed with the admin secret carries the wrong role
	// and must be refused outright.
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signToken(t, auth.RoleUser, adminSecret))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireUserRejectsCrossSecret(t *testing.T) {
	app := newTestApp()

	// Correct role but signed with the other role's secret: the
	// signature check fails before the role is ever consulted.
	req := httptest.NewRequest(http.MethodGet, "/user-only", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signToken(t, auth.RoleUser, adminSecret))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireUserExposesClaims(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/user-only", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signToken(t, auth.RoleUser, userSecret))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := make([]byte, 16)
	n, _ := resp.Body.Read(body)
	assert.Equal(t, "u1", string(body[:n]))
}
