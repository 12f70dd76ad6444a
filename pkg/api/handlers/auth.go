package handlers

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dealpage/dealpage/config"
	"github.com/dealpage/dealpage/ent"
	"github.com/dealpage/dealpage/ent/user"
	"github.com/dealpage/dealpage/pkg/api/errors"
	"github.com/dealpage/dealpage/pkg/auth"
	"github.com/dealpage/dealpage/pkg/cache"
	"github.com/dealpage/dealpage/pkg/email"
	"github.com/dealpage/dealpage/pkg/models"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const (
	verificationTokenTTL = 24 * time.Hour
	resetTokenTTL        = time.Hour
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	db           *ent.Client
	config       *config.Config
	blacklist    *auth.TokenBlacklist
	cache        *cache.Client
	emailService *email.Service
	validator    *validator.Validate
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *ent.Client, cfg *config.Config, blacklist *auth.TokenBlacklist, cacheClient *cache.Client, emailService *email.Service) *AuthHandler {
	return &AuthHandler{
		db:           db,
		config:       cfg,
		blacklist:    blacklist,
		cache:        cacheClient,
		emailService: emailService,
		validator:    validator.New(),
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create a new user account with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration data"
// @Success 201 {object} models.AuthResponse "User registered successfully"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 409 {object} models.ErrorResponse "User already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	// Validate request
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	// Check if user already exists
	exists, err := h.db.User.Query().Where(user.EmailEQ(req.Email)).Exist(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}
	if exists {
		return c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "user_exists",
			Message: "User with this email already exists",
		})
	}

	// Hash password
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return errors.InternalError(c, err)
	}

	// Create user
	newUser, err := h.db.User.Create().
		SetEmail(req.Email).
		SetPasswordHash(hashedPassword).
		SetName(req.Name).
		Save(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	// Send verification email (async); the token lives in redis until used
	if token, err := generateToken(); err == nil {
		key := "auth:verify:" + token
		if err := h.cache.Set(ctx, key, strconv.Itoa(newUser.ID), verificationTokenTTL); err == nil {
			go h.emailService.SendVerificationEmail(newUser.Email, newUser.Name, token)
		}
	}

	// Generate JWT
	token, err := auth.GenerateJWT(newUser.ID, newUser.Email, h.config.JWTSecret, h.config.JWTExpirationHours)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusCreated, models.AuthResponse{
		Token: token,
		User: &models.UserInfo{
			ID:            newUser.ID,
			Email:         newUser.Email,
			Name:          newUser.Name,
			EmailVerified: newUser.EmailVerified,
		},
	})
}

// Login godoc
// @Summary Login user
// @Description Authenticate user with email and password, returns JWT token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	// Validate request
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	// Find user by email
	u, err := h.db.User.Query().Where(user.EmailEQ(req.Email)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "invalid_credentials",
				Message: "Invalid email or password",
			})
		}
		return errors.DatabaseError(c, err)
	}

	// Check password
	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "invalid_credentials",
			Message: "Invalid email or password",
		})
	}

	// Generate JWT
	token, err := auth.GenerateJWT(u.ID, u.Email, h.config.JWTSecret, h.config.JWTExpirationHours)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.AuthResponse{
		Token: token,
		User: &models.UserInfo{
			ID:            u.ID,
			Email:         u.Email,
			Name:          u.Name,
			EmailVerified: u.EmailVerified,
		},
	})
}

// Me returns the current user's information
func (h *AuthHandler) Me(c echo.Context) error {
	// Get user ID from context (set by JWT middleware)
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "no user in context")
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return errors.NotFoundError(c, "user")
		}
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, models.UserInfo{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		EmailVerified: u.EmailVerified,
	})
}

// Logout revokes the current JWT token
func (h *AuthHandler) Logout(c echo.Context) error {
	// Get token from context (set by JWT middleware)
	token, ok := c.Get("token").(string)
	if !ok || token == "" {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "missing_token",
			Message: "No token found in request",
		})
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	// Add token to blacklist with TTL matching JWT expiration
	expiration := time.Duration(h.config.JWTExpirationHours) * time.Hour
	if err := h.blacklist.Add(ctx, token, expiration); err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "logout_error",
			Message: "Failed to revoke token",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Successfully logged out",
	})
}

// VerifyEmail verifies the user's email with a token from the email link
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	token := c.Param("token")
	if token == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "missing_token",
			Message: "Verification token is required",
		})
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	key := "auth:verify:" + token
	userIDStr, err := h.cache.Get(ctx, key)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_token",
			Message: "Invalid or expired verification token",
		})
	}
	userID, err := strconv.Atoi(userIDStr)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_token",
			Message: "Invalid or expired verification token",
		})
	}

	if err := h.db.User.UpdateOneID(userID).SetEmailVerified(true).Exec(ctx); err != nil {
		return errors.DatabaseError(c, err)
	}
	_ = h.cache.Delete(ctx, key)

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Email verified successfully",
	})
}

// ForgotPassword emails a password reset link. The response is identical
// whether or not the account exists.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req struct {
		Email string `json:"email" validate:"required,email"`
	}
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

	// Same response regardless of outcome so account existence never leaks
	if u, err := h.db.User.Query().Where(user.EmailEQ(req.Email)).Only(ctx); err == nil {
		if token, err := generateToken(); err == nil {
			key := "auth:reset:" + auth.HashResetToken(token)
			if err := h.cache.Set(ctx, key, strconv.Itoa(u.ID), resetTokenTTL); err == nil {
				go h.emailService.SendPasswordResetEmail(u.Email, u.Name, token)
			}
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "If the account exists, a reset email has been sent",
	})
}

// ResetPassword sets a new password using a valid reset token
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}
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

	key := "auth:reset:" + auth.HashResetToken(req.Token)
	userIDStr, err := h.cache.Get(ctx, key)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_token",
			Message: "Invalid or expired reset token",
		})
	}
	userID, err := strconv.Atoi(userIDStr)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_token",
			Message: "Invalid or expired reset token",
		})
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return errors.InternalError(c, err)
	}
	if err := h.db.User.UpdateOneID(userID).SetPasswordHash(hashedPassword).Exec(ctx); err != nil {
		return errors.DatabaseError(c, err)
	}
	_ = h.cache.Delete(ctx, key)

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Password reset successfully",
	})
}

// generateToken creates a random URL-safe token for email flows
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
