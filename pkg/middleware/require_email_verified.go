package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dealpage/dealpage/ent"
)

// RequireEmailVerified gates an endpoint on a verified email address.
// Must run after the JWT middleware, which puts user_id in the context.
func RequireEmailVerified(db *ent.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := c.Get("user_id").(int)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "unauthorized",
					"message": "Authentication required",
				})
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()

			u, err := db.User.Get(ctx, userID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "unauthorized",
					"message": "User not found",
				})
			}

			if !u.EmailVerified {
				return c.JSON(http.StatusForbidden, map[string]string{
					"error":   "email_not_verified",
					"message": "Please verify your email address to use this feature",
				})
			}

			return next(c)
		}
	}
}
