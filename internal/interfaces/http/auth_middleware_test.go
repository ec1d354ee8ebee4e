package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/carrito-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/carrito-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testSubject   = "catalog-admin"
	testIssuer    = "carrito-api-test"
	testExpMin    = 60
)

// buildAuthTestApp construye una aplicación Fiber mínima con el AuthMiddleware
// y un handler dummy que devuelve 200 si el token pasa.
func buildAuthTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":      true,
				"subject": apphttp.GetSubject(c),
			})
		},
	)
	return app
}

// validToken genera un JWT firmado con el secret de test.
func validToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testSubject, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doAuthRequest lanza una petición GET /protected y devuelve la respuesta.
func doAuthRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: token válido → pasa y el subject queda en el contexto.
func TestAuthMiddleware_TokenValido(t *testing.T) {
	app := buildAuthTestApp()
	resp := doAuthRequest(t, app, validToken(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, testSubject, body["subject"], "el subject debe venir del token")
}

// Caso 2: sin header Authorization → 401.
func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildAuthTestApp()
	resp := doAuthRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 3: formato incorrecto (sin esquema Bearer) → 401.
func TestAuthMiddleware_FormatoIncorrecto(t *testing.T) {
	app := buildAuthTestApp()
	resp := doAuthRequest(t, app, "Token abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 4: token firmado con otro secret → 401.
func TestAuthMiddleware_FirmaInvalida(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secret", testSubject, testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildAuthTestApp()
	resp := doAuthRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: token expirado → 401.
func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testSubject, testIssuer, -5)
	require.NoError(t, err)

	app := buildAuthTestApp()
	resp := doAuthRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
