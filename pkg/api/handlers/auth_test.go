package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealpage/dealpage/config"
	"github.com/dealpage/dealpage/ent"
	"github.com/dealpage/dealpage/ent/enttest"
	"github.com/dealpage/dealpage/pkg/auth"
	"github.com/dealpage/dealpage/pkg/cache"
	"github.com/dealpage/dealpage/pkg/email"
	"github.com/dealpage/dealpage/pkg/models"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func setupTestCache(t *testing.T) *cache.Client {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	return &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 24,
		FrontendURL:        "http://localhost:3000",
	}
}

func newAuthFixture(t *testing.T, client *ent.Client) (*AuthHandler, *cache.Client) {
	t.Helper()
	cacheClient := setupTestCache(t)
	blacklist := auth.NewTokenBlacklist(cacheClient)
	emailService := email.NewService("noreply@dealpage.com", "DealPage", "http://localhost:3000", "")
	return NewAuthHandler(client, testConfig(), blacklist, cacheClient, emailService), cacheClient
}

func jsonRequest(method, target, body string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req, httptest.NewRecorder()
}

func TestRegister(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	e := echo.New()
	handler, _ := newAuthFixture(t, client)

	t.Run("Success - Creates user and returns token", func(t *testing.T) {
		req, rec := jsonRequest(http.MethodPost, "/api/v1/auth/register",
			`{"email":"new@example.com","password":"supersecret","name":"New User"}`)

		err := handler.Register(e.NewContext(req, rec))

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp models.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		require.NotNil(t, resp.User)
		assert.Equal(t, "new@example.com", resp.User.Email)
		assert.False(t, resp.User.EmailVerified)

		// Password is stored hashed, never verbatim.
		u, err := client.User.Get(context.Background(), resp.User.ID)
		require.NoError(t, err)
		assert.NotEqual(t, "supersecret", u.PasswordHash)
		assert.True(t, auth.CheckPassword(u.PasswordHash, "supersecret"))
	})

	t.Run("Error - Duplicate email", func(t *testing.T) {
		req, rec := jsonRequest(http.MethodPost, "/api/v1/auth/register",
			`{"email":"new@example.com","password":"supersecret","name":"Other User"}`)

		err := handler.Register(e.NewContext(req, rec))

		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Error - Short password fails validation", func(t *testing.T) {
		req, rec := jsonRequest(http.MethodPost, "/api/v1/auth/register",
			`{"email":"short@example.com","password":"short","name":"Shorty"}`)

		err := handler.Register(e.NewContext(req, rec))

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	e := echo.New()
	handler, _ := newAuthFixture(t, client)

	hashed, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)
	_, err = client.User.Create().
		SetEmail("login@example.com").
		SetPasswordHash(hashed).
		SetName("Login User").
		Save(context.Background())
	require.NoError(t, err)

	t.Run("Success - Valid credentials", func(t *testing.T) {
		req, rec := jsonRequest(http.MethodPost, "/api/v1/auth/login",
			`{"email":"login@example.com","password":"correct-horse"}`)

		err := handler.Login(e.NewContext(req, rec))

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)

		claims, err := auth.ValidateJWT(resp.Token, "test-secret")
		require.NoError(t, err)
		assert.Equal(t, "login@example.com", claims.Email)
	})

	t.Run("Error - Wrong password", func(t *testing.T) {
		req, rec := jsonRequest(http.MethodPost, "/api/v1/auth/login",
			`{"email":"login@example.com","password":"wrong-horse"}`)

		err := handler.Login(e.NewContext(req, rec))

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Error - Unknown email gets the same response", func(t *testing.T) {
		req, rec := jsonRequest(http.MethodPost, "/api/v1/auth/login",
			`{"email":"stranger@example.com","password":"whatever1"}`)

		err := handler.Login(e.NewContext(req, rec))

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid_credentials")
	})
}

func TestLogout(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	e := echo.New()
	handler, cacheClient := newAuthFixture(t, client)

	t.Run("Success - Token lands on the blacklist", func(t *testing.T) {
		token, err := auth.GenerateJWT(1, "logout@example.com", "test-secret", 24)
		require.NoError(t, err)

		req, rec := jsonRequest(http.MethodPost, "/api/v1/auth/logout", "")
		c := e.NewContext(req, rec)
		c.Set("token", token)

		err = handler.Logout(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		blacklist := auth.NewTokenBlacklist(cacheClient)
		revoked, err := blacklist.IsRevoked(context.Background(), token)
		require.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("Error - Missing token", func(t *testing.T) {
		req, rec := jsonRequest(http.MethodPost, "/api/v1/auth/logout", "")

		err := handler.Logout(e.NewContext(req, rec))

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestVerifyEmail(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	e := echo.New()
	handler, cacheClient := newAuthFixture(t, client)

	u, err := client.User.Create().
		SetEmail("verify@example.com").
		SetPasswordHash("$2a$10$abcdefghijklmnopqrstuv").
		SetName("Verify User").
		Save(context.Background())
	require.NoError(t, err)

	t.Run("Success - Valid token verifies and is single use", func(t *testing.T) {
		ctx := context.Background()
		require.NoError(t, cacheClient.Set(ctx, "auth:verify:tok-1", strconv.Itoa(u.ID), time.Hour))

		req, rec := jsonRequest(http.MethodGet, "/api/v1/auth/verify-email/tok-1", "")
		c := e.NewContext(req, rec)
		c.SetParamNames("token")
		c.SetParamValues("tok-1")

		err := handler.VerifyEmail(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		reloaded, err := client.User.Get(ctx, u.ID)
		require.NoError(t, err)
		assert.True(t, reloaded.EmailVerified)

		// Second use fails: the token was consumed.
		req, rec = jsonRequest(http.MethodGet, "/api/v1/auth/verify-email/tok-1", "")
		c = e.NewContext(req, rec)
		c.SetParamNames("token")
		c.SetParamValues("tok-1")
		require.NoError(t, handler.VerifyEmail(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Error - Unknown token", func(t *testing.T) {
		req, rec := jsonRequest(http.MethodGet, "/api/v1/auth/verify-email/bogus", "")
		c := e.NewContext(req, rec)
		c.SetParamNames("token")
		c.SetParamValues("bogus")

		err := handler.VerifyEmail(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPasswordReset(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	e := echo.New()
	handler, cacheClient := newAuthFixture(t, client)

	hashed, err := auth.HashPassword("old-password")
	require.NoError(t, err)
	u, err := client.User.Create().
		SetEmail("reset@example.com").
		SetPasswordHash(hashed).
		SetName("Reset User").
		Save(context.Background())
	require.NoError(t, err)

	t.Run("Success - Forgot password never leaks account existence", func(t *testing.T) {
		for _, addr := range []string{"reset@example.com", "nobody@example.com"} {
			req, rec := jsonRequest(http.MethodPost, "/api/v1/auth/forgot-password",
				`{"email":"`+addr+`"}`)

			err := handler.ForgotPassword(e.NewContext(req, rec))

			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("Success - Reset with valid token", func(t *testing.T) {
		ctx := context.Background()
		key := "auth:reset:" + auth.HashResetToken("reset-tok")
		require.NoError(t, cacheClient.Set(ctx, key, strconv.Itoa(u.ID), time.Hour))

		req, rec := jsonRequest(http.MethodPost, "/api/v1/auth/reset-password",
			`{"token":"reset-tok","password":"brand-new-password"}`)

		err := handler.ResetPassword(e.NewContext(req, rec))

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		reloaded, err := client.User.Get(ctx, u.ID)
		require.NoError(t, err)
		assert.True(t, auth.CheckPassword(reloaded.PasswordHash, "brand-new-password"))
		assert.False(t, auth.CheckPassword(reloaded.PasswordHash, "old-password"))
	})

	t.Run("Error - Invalid reset token", func(t *testing.T) {
		req, rec := jsonRequest(http.MethodPost, "/api/v1/auth/reset-password",
			`{"token":"bogus","password":"brand-new-password"}`)

		err := handler.ResetPassword(e.NewContext(req, rec))

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
