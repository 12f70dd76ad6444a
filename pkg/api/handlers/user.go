package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/dealpage/dealpage/ent"
	"github.com/dealpage/dealpage/ent/user"
	"github.com/dealpage/dealpage/pkg/api/errors"
	"github.com/dealpage/dealpage/pkg/auth"
	"github.com/dealpage/dealpage/pkg/models"
)

// UserHandler handles profile endpoints
type UserHandler struct {
	db        *ent.Client
	validator *validator.Validate
}

// NewUserHandler creates a new user handler
func NewUserHandler(db *ent.Client) *UserHandler {
	return &UserHandler{
		db:        db,
		validator: validator.New(),
	}
}

// GetProfile godoc
// @Summary Get current user profile
// @Tags Users
// @Produce json
// @Success 200 {object} models.UserResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /users/me [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID := c.Get("user_id").(int)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.Get(ctx, userID)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, toUserResponse(u))
}

// UpdateProfile godoc
// @Summary Update current user profile
// @Tags Users
// @Accept json
// @Produce json
// @Param request body models.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} models.UserResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 409 {object} models.ErrorResponse "Email already in use"
// @Security BearerAuth
// @Router /users/me [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID := c.Get("user_id").(int)

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	update := h.db.User.UpdateOneID(userID)
	if req.Name != nil {
		update.SetName(*req.Name)
	}
	if req.Email != nil {
		taken, err := h.db.User.Query().
			Where(user.EmailEQ(*req.Email), user.IDNEQ(userID)).
			Exist(ctx)
		if err != nil {
			return errors.DatabaseError(c, err)
		}
		if taken {
			return c.JSON(http.StatusConflict, models.ErrorResponse{
				Error:   "email_taken",
				Message: "Email is already in use",
			})
		}
		// Changing the address invalidates the previous verification
		update.SetEmail(*req.Email).SetEmailVerified(false)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, toUserResponse(updated))
}

// ChangePassword godoc
// @Summary Change the account password
// @Tags Users
// @Accept json
// @Produce json
// @Param request body models.ChangePasswordRequest true "Password change"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Wrong current password"
// @Security BearerAuth
// @Router /users/me/password [put]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	userID := c.Get("user_id").(int)

	var req models.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.Get(ctx, userID)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	if !auth.CheckPassword(u.PasswordHash, req.CurrentPassword) {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "invalid_password",
			Message: "Current password is incorrect",
		})
	}

	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return errors.InternalError(c, err)
	}

	if err := u.Update().SetPasswordHash(hashed).Exec(ctx); err != nil {
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Password updated successfully",
	})
}

func toUserResponse(u *ent.User) models.UserResponse {
	return models.UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt.Format(time.RFC3339),
	}
}
