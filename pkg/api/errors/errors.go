// Package errors provides consistent JSON error responses for the HTTP API.
// Internal error details are logged server-side and never leak to clients.
package errors

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dealpage/dealpage/pkg/models"
)

// ValidationError responds with 400 and a generic validation message.
// The underlying error is logged, not returned.
func ValidationError(c echo.Context, err error) error {
	log.Printf("[VALIDATION ERROR] %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "validation_error",
		Message: "The request contains invalid or missing fields",
	})
}

// DatabaseError responds with 500 for storage failures.
func DatabaseError(c echo.Context, err error) error {
	log.Printf("[DATABASE ERROR] %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "database_error",
		Message: "A storage error occurred, please try again",
	})
}

// InternalError responds with 500 for everything else unexpected.
func InternalError(c echo.Context, err error) error {
	log.Printf("[INTERNAL ERROR] %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal_error",
		Message: "An unexpected error occurred",
	})
}

// UnauthorizedError responds with 401. The reason is logged only; clients
// get a constant message so token internals never leak.
func UnauthorizedError(c echo.Context, reason string) error {
	log.Printf("[UNAUTHORIZED] %s %s: %s", c.Request().Method, c.Request().URL.Path, reason)
	return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Error:   "unauthorized",
		Message: "Authentication required",
	})
}

// ForbiddenError responds with 403 with the reason logged server-side.
func ForbiddenError(c echo.Context, reason string) error {
	log.Printf("[FORBIDDEN] %s %s: %s", c.Request().Method, c.Request().URL.Path, reason)
	return c.JSON(http.StatusForbidden, models.ErrorResponse{
		Error:   "forbidden",
		Message: "You do not have access to this resource",
	})
}

// NotFoundError responds with 404. The resource name is logged; the client
// message stays generic.
func NotFoundError(c echo.Context, resource string) error {
	log.Printf("[NOT FOUND] %s %s: %s", c.Request().Method, c.Request().URL.Path, resource)
	return c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "not_found",
		Message: "The requested resource was not found",
	})
}

// ConflictError responds with 409. Unlike the others the message is
// user-facing (e.g. "User already exists").
func ConflictError(c echo.Context, message string) error {
	return c.JSON(http.StatusConflict, models.ErrorResponse{
		Error:   "conflict",
		Message: message,
	})
}
