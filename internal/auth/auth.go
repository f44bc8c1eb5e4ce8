// Package auth gates the admin surface. There is no registration flow: the
// account set is seeded at startup and read-only after that.
package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/walkinit/storefront/internal/hash"
	"github.com/walkinit/storefront/internal/models"
)

const (
	AccessCookie = "accessToken"
	AccessTTL    = 15 * time.Minute
)

// SeedAccounts builds the fixed account set: the ordinary session user plus
// the shop administrator.
func SeedAccounts(userPassword, adminPassword string) ([]models.User, error) {
	userHash, err := hash.HashPassword(userPassword)
	if err != nil {
		return nil, fmt.Errorf("auth: hash user password: %w", err)
	}
	adminHash, err := hash.HashPassword(adminPassword)
	if err != nil {
		return nil, fmt.Errorf("auth: hash admin password: %w", err)
	}
	return []models.User{
		{ID: "u1", Name: "Alex Walker", Email: "alex@walkin.it", Role: models.RoleUser, PasswordHash: userHash},
		{ID: "u2", Name: "Sam Laces", Email: "admin@walkin.it", Role: models.RoleAdmin, PasswordHash: adminHash},
	}, nil
}

func SignAccessToken(user models.User, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(AccessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func CreateCookie(name, value, path string, exp time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Expires:  exp,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}

func parseClaims(c echo.Context, secret []byte) (jwt.MapClaims, error) {
	cookie, err := c.Cookie(AccessCookie)
	if err != nil || cookie.Value == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing auth cookie")
	}

	token, err := jwt.Parse(cookie.Value, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
	}
	return claims, nil
}

// RequireAdmin admits only tokens carrying the admin role and stores the
// identity on the echo context.
func RequireAdmin(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := parseClaims(c, secret)
			if err != nil {
				return err
			}
			role, _ := claims["role"].(string)
			if role != models.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin only")
			}
			sub, _ := claims["sub"].(string)
			c.Set("userID", sub)
			c.Set("role", role)
			return next(c)
		}
	}
}
