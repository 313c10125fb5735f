package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/tu-usuario/tienda-admin/internal/interfaces/http"
	"github.com/tu-usuario/tienda-admin/pkg/session"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret     = "test-secret-key-for-unit-tests"
	testUserID     = "00000000-0000-0000-0000-000000000001"
	testUsername   = "adminuser01"
	testIssuer     = "tienda-admin-test"
	testCookieName = "tienda_session"
)

// buildTestApp construye una aplicación Fiber mínima con el middleware de
// sesión y un handler dummy que devuelve los locals cargados.
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.SessionMiddleware(testSecret, testCookieName),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"user_id":  apphttp.GetUserID(c),
				"username": apphttp.GetUsername(c),
			})
		},
	)
	return app
}

// sessionToken genera un token de sesión válido para los tests.
func sessionToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	tok, err := session.Issue(testSecret, testUserID, testUsername, testIssuer, ttl)
	require.NoError(t, err, "debe generarse un token de sesión válido")
	return tok
}

// doRequest lanza una petición GET /protected con la cookie dada.
func doRequest(t *testing.T, app *fiber.App, cookieValue string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookieValue != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: cookieValue})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SessionMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: cookie con token válido → pasa y carga los locals.
func TestSessionMiddleware_CookieValida_CargaLocals(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, sessionToken(t, time.Hour))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"una sesión válida debe pasar el middleware")

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testUsername, body["username"])
}

// Caso 2: sin cookie → HTTP 401 MISSING_SESSION.
func TestSessionMiddleware_SinCookie_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_SESSION",
		"la respuesta debe indicar el código MISSING_SESSION")
}

// Caso 3: token expirado → HTTP 401 INVALID_SESSION.
func TestSessionMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, sessionToken(t, -time.Minute))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_SESSION")
}

// Caso 4: token malformado → HTTP 401.
func TestSessionMiddleware_TokenMalformado_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: token firmado con otro secret → HTTP 401.
func TestSessionMiddleware_SecretIncorrecto_Retorna401(t *testing.T) {
	tok, err := session.Issue("otro-secret-completamente-distinto", testUserID, testUsername, testIssuer, time.Hour)
	require.NoError(t, err)

	app := buildTestApp()
	resp := doRequest(t, app, tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
