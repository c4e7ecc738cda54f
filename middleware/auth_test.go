package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coursehub/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthApp(t *testing.T, auth *Auth) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Get("/protected", auth.Authenticate, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"username": c.Locals("username"),
			"role":     c.Locals("role"),
		})
	})
	app.Get("/admin-only", auth.Authenticate, AdminOnly, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "ok"})
	})
	return app
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestAuthenticateValidToken(t *testing.T) {
	auth := NewAuth(&config.Config{JWTKey: "test-secret", TokenTTL: time.Hour})
	app := newAuthApp(t, auth)

	token, err := auth.GenerateToken("alice", RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, RoleAdmin, body["role"])
}

func TestAuthenticateMissingToken(t *testing.T) {
	auth := NewAuth(&config.Config{JWTKey: "test-secret", TokenTTL: time.Hour})
	app := newAuthApp(t, auth)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "token_missing", body["code"])
}

func TestAuthenticateMalformedToken(t *testing.T) {
	auth := NewAuth(&config.Config{JWTKey: "test-secret", TokenTTL: time.Hour})
	app := newAuthApp(t, auth)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "not-a-jwt")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "token_malformed", body["code"])
}

func TestAuthenticateWrongSignature(t *testing.T) {
	auth := NewAuth(&config.Config{JWTKey: "test-secret", TokenTTL: time.Hour})
	other := NewAuth(&config.Config{JWTKey: "other-secret", TokenTTL: time.Hour})
	app := newAuthApp(t, auth)

	token, err := other.GenerateToken("alice", RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "token_malformed", body["code"])
}

func TestAuthenticateExpiredToken(t *testing.T) {
	auth := NewAuth(&config.Config{JWTKey: "test-secret", TokenTTL: time.Hour})
	expired := NewAuth(&config.Config{JWTKey: "test-secret", TokenTTL: -time.Hour})
	app := newAuthApp(t, auth)

	token, err := expired.GenerateToken("alice", RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "token_expired", body["code"])
}

func TestAdminOnly(t *testing.T) {
	auth := NewAuth(&config.Config{JWTKey: "test-secret", TokenTTL: time.Hour})
	app := newAuthApp(t, auth)

	adminToken, err := auth.GenerateToken("alice", RoleAdmin)
	require.NoError(t, err)
	userToken, err := auth.GenerateToken("carol", RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", adminToken)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", userToken)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Access restricted", body["message"])
}
