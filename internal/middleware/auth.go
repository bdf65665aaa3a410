package middleware

import (
	"github.com/salmanrf/movies-api/internal/apperr"
	"github.com/salmanrf/movies-api/internal/auth"

	"github.com/gofiber/fiber/v2"
)

// ClaimsKey is where verified token claims land in fiber locals.
const ClaimsKey = "claims"

// RequireAdmin rejects requests without a valid admin-signed bearer
// token.
func RequireAdmin(secret string) fiber.Handler {
	return requireRole(auth.RoleAdmin, secret)
}

// RequireUser rejects requests without a valid user-signed bearer
// token.
func RequireUser(secret string) fiber.Handler {
	return requireRole(auth.RoleUser, secret)
}

func requireRole(role, secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return apperr.Unauthorized("Unauthorized")
		}

		token := auth.ExtractToken(header)

		claims, err := auth.Verify(token, secret)
		if err != nil {
			return apperr.Unauthorized("Unauthorized")
		}

		if claims.Role != role {
			return apperr.Forbidden("Forbidden")
		}

		c.Locals(ClaimsKey, claims)

		return c.Next()
	}
}

// ClaimsFromCtx returns the claims stored by requireRole, or nil when
// the route carries no auth middleware.
func ClaimsFromCtx(c *fiber.Ctx) *auth.Claims {
	claims, _ := c.Locals(ClaimsKey).(*auth.Claims)
	return claims
}
