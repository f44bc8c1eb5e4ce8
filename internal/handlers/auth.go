package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/walkinit/storefront/internal/auth"
	"github.com/walkinit/storefront/internal/hash"
	"github.com/walkinit/storefront/internal/logging"
	"github.com/walkinit/storefront/internal/models"
)

type AuthHandler struct {
	Users     []models.User
	JWTSecret []byte
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	var user *models.User
	for i := range h.Users {
		if h.Users[i].Email == req.Email {
			user = &h.Users[i]
			break
		}
	}
	if user == nil || !hash.CheckPassword(user.PasswordHash, req.Password) {
		l.Warn("login_failed", "status", 401, "email", req.Email)
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	token, err := auth.SignAccessToken(*user, h.JWTSecret)
	if err != nil {
		l.Error("login_failed", "status", 500, "reason", "cannot sign token", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot sign token")
	}

	c.SetCookie(auth.CreateCookie(auth.AccessCookie, token, "/", time.Now().Add(auth.AccessTTL)))
	l.Info("login_success", "user_id", user.ID, "role", user.Role)
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(auth.CreateCookie(auth.AccessCookie, "", "/", time.Unix(0, 0)))
	return c.NoContent(http.StatusNoContent)
}
