package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealpage/dealpage/ent"
	"github.com/dealpage/dealpage/pkg/auth"
	"github.com/dealpage/dealpage/pkg/models"
)

func createHandlerTestUser(t *testing.T, client *ent.Client, email, password string) *ent.User {
	t.Helper()
	hashed, err := auth.HashPassword(password)
	require.NoError(t, err)
	u, err := client.User.Create().
		SetEmail(email).
		SetPasswordHash(hashed).
		SetName("Handler Tester").
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func TestGetProfile(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	e := echo.New()
	handler := NewUserHandler(client)
	u := createHandlerTestUser(t, client, "profile@example.com", "password-123")

	req, rec := jsonRequest(http.MethodGet, "/api/v1/users/me", "")
	c := e.NewContext(req, rec)
	c.Set("user_id", u.ID)

	err := handler.GetProfile(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, u.ID, resp.ID)
	assert.Equal(t, "profile@example.com", resp.Email)
	assert.NotEmpty(t, resp.CreatedAt)
}

func TestUpdateProfile(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	e := echo.New()
	handler := NewUserHandler(client)

	t.Run("Success - Updates name only", func(t *testing.T) {
		u := createHandlerTestUser(t, client, "rename@example.com", "password-123")

		req, rec := jsonRequest(http.MethodPut, "/api/v1/users/me", `{"name":"Renamed"}`)
		c := e.NewContext(req, rec)
		c.Set("user_id", u.ID)

		err := handler.UpdateProfile(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		reloaded, err := client.User.Get(context.Background(), u.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", reloaded.Name)
		assert.Equal(t, "rename@example.com", reloaded.Email)
	})

	t.Run("Success - Email change drops verification", func(t *testing.T) {
		u := createHandlerTestUser(t, client, "verified@example.com", "password-123")
		require.NoError(t, u.Update().SetEmailVerified(true).Exec(context.Background()))

		req, rec := jsonRequest(http.MethodPut, "/api/v1/users/me", `{"email":"moved@example.com"}`)
		c := e.NewContext(req, rec)
		c.Set("user_id", u.ID)

		err := handler.UpdateProfile(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		reloaded, err := client.User.Get(context.Background(), u.ID)
		require.NoError(t, err)
		assert.Equal(t, "moved@example.com", reloaded.Email)
		assert.False(t, reloaded.EmailVerified, "new address must be re-verified")
	})

	t.Run("Error - Email already taken", func(t *testing.T) {
		createHandlerTestUser(t, client, "taken@example.com", "password-123")
		u := createHandlerTestUser(t, client, "claimer@example.com", "password-123")

		req, rec := jsonRequest(http.MethodPut, "/api/v1/users/me", `{"email":"taken@example.com"}`)
		c := e.NewContext(req, rec)
		c.Set("user_id", u.ID)

		err := handler.UpdateProfile(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "email_taken")
	})

	t.Run("Error - Invalid email fails validation", func(t *testing.T) {
		u := createHandlerTestUser(t, client, "badmail@example.com", "password-123")

		req, rec := jsonRequest(http.MethodPut, "/api/v1/users/me", `{"email":"not-an-email"}`)
		c := e.NewContext(req, rec)
		c.Set("user_id", u.ID)

		err := handler.UpdateProfile(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestChangePassword(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	e := echo.New()
	handler := NewUserHandler(client)

	t.Run("Success - Changes password", func(t *testing.T) {
		u := createHandlerTestUser(t, client, "changepw@example.com", "old-password")

		req, rec := jsonRequest(http.MethodPut, "/api/v1/users/me/password",
			`{"current_password":"old-password","new_password":"new-password-1"}`)
		c := e.NewContext(req, rec)
		c.Set("user_id", u.ID)

		err := handler.ChangePassword(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		reloaded, err := client.User.Get(context.Background(), u.ID)
		require.NoError(t, err)
		assert.True(t, auth.CheckPassword(reloaded.PasswordHash, "new-password-1"))
	})

	t.Run("Error - Wrong current password", func(t *testing.T) {
		u := createHandlerTestUser(t, client, "wrongpw@example.com", "old-password")

		req, rec := jsonRequest(http.MethodPut, "/api/v1/users/me/password",
			`{"current_password":"not-the-password","new_password":"new-password-1"}`)
		c := e.NewContext(req, rec)
		c.Set("user_id", u.ID)

		err := handler.ChangePassword(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		reloaded, err := client.User.Get(context.Background(), u.ID)
		require.NoError(t, err)
		assert.True(t, auth.CheckPassword(reloaded.PasswordHash, "old-password"))
	})

	t.Run("Error - Short new password fails validation", func(t *testing.T) {
		u := createHandlerTestUser(t, client, "shortpw@example.com", "old-password")

		req, rec := jsonRequest(http.MethodPut, "/api/v1/users/me/password",
			`{"current_password":"old-password","new_password":"short"}`)
		c := e.NewContext(req, rec)
		c.Set("user_id", u.ID)

		err := handler.ChangePassword(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
