package middleware

import (
	"github.com/labstack/echo/v4"
)

// CurrentAPIVersion is the version announced on every v1 response
const CurrentAPIVersion = "1.0"

// APIVersionMiddleware stamps the X-API-Version header on responses
func APIVersionMiddleware(version string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set("X-API-Version", version)
			return next(c)
		}
	}
}

// VersionInfo describes the running API version
func VersionInfo(version string) map[string]string {
	return map[string]string{
		"version": version,
		"status":  "stable",
	}
}
