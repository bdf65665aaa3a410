package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Claims embeds role, identity, and display name into the session
// token. UserID is only set for user-role tokens.
type Claims struct {
	Role   string `json:"role"`
	UserID string `json:"user_id,omitempty"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// Sign issues an HS256 token for the given claims with the given
// validity window.
func Sign(claims Claims, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}

// Verify parses and validates a token, returning its claims.
func Verify(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	return claims, nil
}

// ExtractToken pulls the token out of an Authorization header value.
// Only the last whitespace-delimited segment is used, so both
// "Bearer <token>" and a bare token are accepted.
func ExtractToken(authorization string) string {
	fields := strings.Fields(authorization)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
