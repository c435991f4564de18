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

	"github.com/tu-usuario/billing-pro/internal/domain/access"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	apphttp "github.com/tu-usuario/billing-pro/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/billing-pro/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret  = "test-secret-key-for-unit-tests"
	testUserID     = "00000000-0000-0000-0000-000000000001"
	testBusinessID = "00000000-0000-0000-0000-000000000002"
	testIssuer     = "billing-pro-test"
	testExpMin     = 60
)

// fakeUserSource devuelve siempre el mismo usuario con sus membresías.
type fakeUserSource struct {
	user *entity.User
}

func (f *fakeUserSource) GetByID(string) (*entity.User, error) {
	return f.user, nil
}

// userWithRole arma un usuario con una membresía en testBusinessID.
// role vacío = usuario sin membresías.
func userWithRole(role string) *entity.User {
	u := &entity.User{ID: testUserID, Email: "test@ejemplo.com", Status: "active"}
	if role != "" {
		u.Memberships = []entity.Membership{
			{ID: "m1", UserID: testUserID, BusinessID: testBusinessID, Role: role},
		}
	}
	return u
}

// buildTestApp construye una app Fiber mínima con la cadena completa:
// AuthMiddleware → WithCapabilities → RequireBusiness → RequireCapability.
func buildTestApp(user *entity.User, selector func(access.Capabilities) bool) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, nil),
		apphttp.WithCapabilities(&fakeUserSource{user: user}),
		apphttp.RequireBusiness(),
		apphttp.RequireCapability(selector),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":          true,
				"business_id": apphttp.GetBusinessID(c),
			})
		},
	)
	return app
}

// bearerToken genera un JWT de sesión válido para testUserID.
func bearerToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza GET /protected con el header de auth y de negocio indicados.
func doRequest(t *testing.T, app *fiber.App, authHeader, businessID string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	if businessID != "" {
		req.Header.Set(apphttp.HeaderBusinessID, businessID)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireCapability
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: admin tiene canManageSettings → HTTP 200.
func TestRequireCapability_AdminAccedeConfiguracion(t *testing.T) {
	app := buildTestApp(userWithRole(entity.RoleAdmin), apphttp.CanManageSettings)
	resp := doRequest(t, app, bearerToken(t), testBusinessID)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a rutas de configuración")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, testBusinessID, body["business_id"])
}

// Caso 2: manager NO tiene canManageSettings → HTTP 403 FORBIDDEN.
func TestRequireCapability_ManagerBloqueadoEnConfiguracion(t *testing.T) {
	app := buildTestApp(userWithRole(entity.RoleManager), apphttp.CanManageSettings)
	resp := doRequest(t, app, bearerToken(t), testBusinessID)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"manager no debe poder acceder a rutas de configuración")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Caso 2b: manager sí tiene canManage → HTTP 200.
func TestRequireCapability_ManagerAccedeGestion(t *testing.T) {
	app := buildTestApp(userWithRole(entity.RoleManager), apphttp.CanManage)
	resp := doRequest(t, app, bearerToken(t), testBusinessID)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 3: viewer bloqueado en escritura, deliver bloqueado en finanzas.
func TestRequireCapability_RolesLimitados(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		selector func(access.Capabilities) bool
		want     int
	}{
		{"viewer puede leer finanzas", entity.RoleViewer, apphttp.CanViewFinancials, http.StatusOK},
		{"viewer no puede gestionar", entity.RoleViewer, apphttp.CanManage, http.StatusForbidden},
		{"deliver puede logística", entity.RoleDeliver, apphttp.CanManageLogistics, http.StatusOK},
		{"deliver no puede ver finanzas", entity.RoleDeliver, apphttp.CanViewFinancials, http.StatusForbidden},
		{"viewer no puede eliminar", entity.RoleViewer, apphttp.CanDelete, http.StatusForbidden},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := buildTestApp(userWithRole(tc.role), tc.selector)
			resp := doRequest(t, app, bearerToken(t), testBusinessID)
			defer resp.Body.Close()
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

// Caso 4: membresía en otro negocio → 403 aunque el rol sea admin allí.
func TestRequireBusiness_MembresiaDeOtroNegocio(t *testing.T) {
	user := &entity.User{
		ID: testUserID,
		Memberships: []entity.Membership{
			{ID: "m1", UserID: testUserID, BusinessID: "otro-negocio", Role: entity.RoleAdmin},
		},
	}
	app := buildTestApp(user, apphttp.CanViewFinancials)
	resp := doRequest(t, app, bearerToken(t), testBusinessID)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"ser admin de otro negocio no da acceso al negocio activo")
}

// Caso 5: sin header X-Business-ID → HTTP 400 MISSING_BUSINESS.
func TestRequireBusiness_SinHeader(t *testing.T) {
	app := buildTestApp(userWithRole(entity.RoleAdmin), apphttp.CanViewFinancials)
	resp := doRequest(t, app, bearerToken(t), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_BUSINESS")
}

// Caso 6: sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestAuthMiddleware_SinAuthHeader(t *testing.T) {
	app := buildTestApp(userWithRole(entity.RoleAdmin), apphttp.CanViewFinancials)
	resp := doRequest(t, app, "", testBusinessID)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 7: token malformado → HTTP 401.
func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := buildTestApp(userWithRole(entity.RoleAdmin), apphttp.CanViewFinancials)
	resp := doRequest(t, app, "Bearer token.invalido.aqui", testBusinessID)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.UserID)
	assert.NotEmpty(t, claims.ID, "el token debe llevar jti para la blacklist")
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
