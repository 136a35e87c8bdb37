package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"undangan.link/configs"
	"undangan.link/configs/configslog"
	"undangan.link/configs/configssession"
	"undangan.link/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	configslog.Log = zap.NewNop()
	configslog.SLog = configslog.Log.Sugar()
}

func pinTestConfig() *configs.Config {
	return &configs.Config{
		AdminPIN:       "hanipupud2026",
		AdminPINScheme: "plain",
		InvitationPath: "/undangan/hani-pupud",
	}
}

// newPINTestApp app minimal dengan gerbang PIN: endpoint verifikasi plus
// satu rute dashboard terlindung.
func newPINTestApp(cfg *configs.Config) *fiber.App {
	app := fiber.New()
	store := configssession.SetupSession()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("session_store", store)
		return c.Next()
	})

	handler := NewPublicHandler(cfg, nil, nil, nil)
	app.Post("/api/pin/verify", handler.VerifyPIN)
	app.Post("/api/pin/logout", handler.Logout)

	group := app.Group("/dashboard")
	group.Use(middlewares.PINAuth(cfg))
	group.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func postPIN(t *testing.T, app *fiber.App, pin string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/pin/verify",
		strings.NewReader(`{"pin":"`+pin+`"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestVerifyPINRejectsWrongPIN(t *testing.T) {
	app := newPINTestApp(pinTestConfig())

	resp := postPIN(t, app, "hanipupud2025")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestVerifyPINOpensDashboard(t *testing.T) {
	app := newPINTestApp(pinTestConfig())

	resp := postPIN(t, app, "hanipupud2026")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, resp.Cookies(), "session admin harus di-set")

	req := httptest.NewRequest(http.MethodGet, "/dashboard/", nil)
	req.Header.Set("Accept", "application/json")
	for _, c := range resp.Cookies() {
		req.AddCookie(c)
	}
	dashResp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, dashResp.StatusCode)
}

func TestPINAuthBlocksWithoutSession(t *testing.T) {
	app := newPINTestApp(pinTestConfig())

	// Klien JSON mendapat 401.
	req := httptest.NewRequest(http.MethodGet, "/dashboard/", nil)
	req.Header.Set("Accept", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Navigasi browser diarahkan ke prompt PIN di halaman undangan.
	req = httptest.NewRequest(http.MethodGet, "/dashboard/", nil)
	req.Header.Set("Accept", "text/html")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/undangan/hani-pupud?admin=true", resp.Header.Get("Location"))
}

func TestLogoutRevokesAdminSession(t *testing.T) {
	app := newPINTestApp(pinTestConfig())

	resp := postPIN(t, app, "hanipupud2026")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cookies := resp.Cookies()

	req := httptest.NewRequest(http.MethodPost, "/api/pin/logout", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	logoutResp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, logoutResp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/dashboard/", nil)
	req.Header.Set("Accept", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	dashResp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, dashResp.StatusCode)
}
