package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rumanislam/plex-backend/internal/auth"
	"github.com/rumanislam/plex-backend/internal/middleware"
	"github.com/rumanislam/plex-backend/internal/models"
	"github.com/rumanislam/plex-backend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *auth.TokenService, *store.MemoryAccountStore) {
	t.Helper()

	tokens := auth.NewTokenService("test-secret", time.Hour)
	accounts := store.NewMemoryAccountStore()

	ok := func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) }

	app := fiber.New()
	app.Get("/admin-op", middleware.Protected(tokens), middleware.AdminRequired(accounts), ok)
	app.Get("/users/:email", middleware.Protected(tokens), middleware.RequireSelf("email"), ok)
	app.Get("/my-orders", middleware.Protected(tokens), middleware.RequireSelf("email"), ok)

	return app, tokens, accounts
}

func request(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestProtected_MissingToken(t *testing.T) {
	app, _, _ := newTestApp(t)
	resp := request(t, app, "/admin-op", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtected_GarbageToken(t *testing.T) {
	app, _, _ := newTestApp(t)
	resp := request(t, app, "/admin-op", "not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtected_ExpiredToken(t *testing.T) {
	app, _, _ := newTestApp(t)
	expired := auth.NewTokenService("test-secret", -1*time.Minute)
	tok, err := expired.Issue("a@x.com")
	require.NoError(t, err)

	resp := request(t, app, "/admin-op", tok)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRequired_UserRole(t *testing.T) {
	app, tokens, accounts := newTestApp(t)
	require.NoError(t, accounts.Upsert(&models.Account{Email: "a@x.com", Role: models.RoleUser}))
	tok, err := tokens.Issue("a@x.com")
	require.NoError(t, err)

	resp := request(t, app, "/admin-op", tok)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminRequired_UnknownAccount(t *testing.T) {
	app, tokens, _ := newTestApp(t)
	tok, err := tokens.Issue("ghost@x.com")
	require.NoError(t, err)

	resp := request(t, app, "/admin-op", tok)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminRequired_AdminPasses(t *testing.T) {
	app, tokens, accounts := newTestApp(t)
	require.NoError(t, accounts.Upsert(&models.Account{Email: "b@x.com", Role: models.RoleAdmin}))
	tok, err := tokens.Issue("b@x.com")
	require.NoError(t, err)

	resp := request(t, app, "/admin-op", tok)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// A role change is visible on the next request because the role is
// read from the store every time, never from the token.
func TestAdminRequired_DemotionTakesEffectImmediately(t *testing.T) {
	app, tokens, accounts := newTestApp(t)
	require.NoError(t, accounts.Upsert(&models.Account{Email: "b@x.com", Role: models.RoleAdmin}))
	tok, err := tokens.Issue("b@x.com")
	require.NoError(t, err)

	resp := request(t, app, "/admin-op", tok)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, accounts.UpdateRole("b@x.com", models.RoleUser))

	resp = request(t, app, "/admin-op", tok)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireSelf_PathParamMatch(t *testing.T) {
	app, tokens, _ := newTestApp(t)
	tok, err := tokens.Issue("a@x.com")
	require.NoError(t, err)

	resp := request(t, app, "/users/a@x.com", tok)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = request(t, app, "/users/b@x.com", tok)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireSelf_PercentEncodedPathParam(t *testing.T) {
	app, tokens, _ := newTestApp(t)
	tok, err := tokens.Issue("a@x.com")
	require.NoError(t, err)

	// The router hands the param over still percent-encoded; the
	// comparison must see the decoded address.
	resp := request(t, app, "/users/a%40x.com", tok)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = request(t, app, "/users/b%40x.com", tok)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireSelf_QueryParam(t *testing.T) {
	app, tokens, _ := newTestApp(t)
	tok, err := tokens.Issue("a@x.com")
	require.NoError(t, err)

	resp := request(t, app, "/my-orders?email=a@x.com", tok)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = request(t, app, "/my-orders?email=b@x.com", tok)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = request(t, app, "/my-orders", tok)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
