package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/application/store"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	apphttp "github.com/jhoicas/inventario-local/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/inventario-local/pkg/jwt"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "inventario-local-test"
	testExpMin    = 60
)

// repoNulo descarta las escrituras: los tests HTTP no persisten nada.
type repoNulo struct{}

func (repoNulo) Save(entity.State) error      { return nil }
func (repoNulo) Load() (*entity.State, error) { return nil, nil }

// storeConSesion construye un store con una sesión abierta para el rol dado.
func storeConSesion(role string) *store.Store {
	st := store.New(repoNulo{}, logger.Nop())
	st.Dispatch(store.Login{User: entity.User{
		ID:   testUserID,
		Name: "Usuaria de prueba",
		Role: role,
	}})
	return st
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para validar el JWT contra la sesión del store
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(st *store.Store, allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, st),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenFor genera un JWT para el usuario de prueba con el rol indicado.
func tokenFor(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
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
// Tests AuthMiddleware — token cruzado contra la sesión del store
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SesionActivaPasa(t *testing.T) {
	st := storeConSesion(entity.RoleAdmin)
	app := buildTestApp(st, entity.RoleAdmin)

	resp := doRequest(t, app, tokenFor(t, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, entity.RoleAdmin, body["role"], "el rol debe salir del estado, no del token")
}

// Un token válido deja de servir cuando la sesión se cierra en el store.
func TestAuthMiddleware_TokenValidoConSesionCerrada_Retorna401(t *testing.T) {
	st := storeConSesion(entity.RoleTeam)
	app := buildTestApp(st, entity.RoleTeam)
	token := tokenFor(t, entity.RoleTeam)

	st.Dispatch(store.Logout{})

	resp := doRequest(t, app, token)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un token de una sesión cerrada debe rechazarse")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "SESSION_CLOSED")
}

// Un login posterior de otro usuario invalida el token anterior.
func TestAuthMiddleware_TokenDeSesionPisada_Retorna401(t *testing.T) {
	st := storeConSesion(entity.RoleTeam)
	app := buildTestApp(st, entity.RoleTeam)
	token := tokenFor(t, entity.RoleTeam)

	st.Dispatch(store.Login{User: entity.User{
		ID:   "otro-usuario",
		Name: "Otra persona",
		Role: entity.RoleTeam,
	}})

	resp := doRequest(t, app, token)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	st := storeConSesion(entity.RoleAdmin)
	app := buildTestApp(st, entity.RoleAdmin)

	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	st := storeConSesion(entity.RoleAdmin)
	app := buildTestApp(st, entity.RoleAdmin)

	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_GuestBloqueadoEnRutaDeEscritura(t *testing.T) {
	st := storeConSesion(entity.RoleGuest)
	app := buildTestApp(st, entity.RoleTeam, entity.RoleAdmin)

	resp := doRequest(t, app, tokenFor(t, entity.RoleGuest))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"guest no debe poder escribir")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireRole_TeamAccedeRutaTeamOAdmin(t *testing.T) {
	st := storeConSesion(entity.RoleTeam)
	app := buildTestApp(st, entity.RoleTeam, entity.RoleAdmin)

	resp := doRequest(t, app, tokenFor(t, entity.RoleTeam))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_TeamBloqueadoEnRutaAdmin(t *testing.T) {
	st := storeConSesion(entity.RoleTeam)
	app := buildTestApp(st, entity.RoleAdmin)

	resp := doRequest(t, app, tokenFor(t, entity.RoleTeam))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_ConRole(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, entity.RoleTeam, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, entity.RoleTeam, role)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, entity.RoleAdmin, testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, entity.RoleAdmin, testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
