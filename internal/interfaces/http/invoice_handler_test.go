package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/registro-api/internal/application/auth"
	"github.com/jhoicas/registro-api/internal/application/dto"
	"github.com/jhoicas/registro-api/internal/application/mutation"
	"github.com/jhoicas/registro-api/internal/application/query"
	"github.com/jhoicas/registro-api/internal/domain/entity"
	apphttp "github.com/jhoicas/registro-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/registro-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testEmail     = "user@example.com"
	testIssuer    = "registro-test"
	testExpMin    = 60
)

// testEnv aplicación Fiber completa cableada sobre fakes en memoria.
type testEnv struct {
	app       *fiber.App
	invoices  *memInvoiceRepo
	customers *memCustomerRepo
	users     *memUserRepo
	cache     *recordViewCache
}

// buildTestEnv construye la aplicación con el router real y dependencias en
// memoria, igual que el main pero sin DB ni Redis.
func buildTestEnv(t *testing.T) *testEnv {
	t.Helper()

	invoices := &memInvoiceRepo{}
	customers := &memCustomerRepo{}
	users := &memUserRepo{}
	cache := &recordViewCache{}

	authUC := auth.NewAuthUseCase(users, auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
	})
	listUC := query.NewListUseCase(invoices, customers, cache, stubPDF{}, time.Minute)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      authUC,
		AuthMut:     mutation.NewAuthMutations(authUC),
		InvoiceMut:  mutation.NewInvoiceMutations(invoices, cache),
		CustomerMut: mutation.NewCustomerMutations(customers, nopImageStore{}, cache),
		ListUC:      listUC,
		JWTSecret:   testJWTSecret,
	})
	return &testEnv{app: app, invoices: invoices, customers: customers, users: users, cache: cache}
}

func bearerToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

// postForm lanza un POST urlencoded autenticado.
func postForm(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", bearerToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Form válido de principio a fin: 303 hacia la vista de facturas, la factura
// queda persistida con el monto en centavos y la vista invalidada.
func TestCreateInvoice_FormValido(t *testing.T) {
	env := buildTestEnv(t)

	resp := postForm(t, env.app, "/api/invoices", "customerId=c1&amount=42.00&status=pending")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/dashboard/invoices", resp.Header.Get("Location"))

	require.Len(t, env.invoices.invoices, 1)
	inv := env.invoices.invoices[0]
	assert.Equal(t, "c1", inv.CustomerID)
	assert.Equal(t, int64(4200), inv.Amount, "42.00 debe persistirse como 4200 centavos")
	assert.Equal(t, entity.InvoiceStatusPending, inv.Status)
	assert.Equal(t, time.Now().Format("2006-01-02"), inv.Date)

	assert.Contains(t, env.cache.views(), "/dashboard/invoices")
}

// Form inválido: 422 con el mapa de errores por campo y el mensaje terminal.
func TestCreateInvoice_FormInvalido(t *testing.T) {
	env := buildTestEnv(t)

	resp := postForm(t, env.app, "/api/invoices", "amount=abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var result dto.MutationResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "Missing Fields. Failed to Create Invoice.", result.Message)
	assert.Equal(t, []string{"Please select a customer"}, result.Errors["customerId"])
	assert.Equal(t, []string{"Please enter an amount greater than $0."}, result.Errors["amount"])
	assert.Equal(t, []string{"Please select an invoice status."}, result.Errors["status"])

	assert.Empty(t, env.invoices.invoices, "un form inválido no debe persistir")
}

// Sin token ni cookie la ruta está protegida.
func TestCreateInvoice_SinAutenticacion(t *testing.T) {
	env := buildTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/invoices", strings.NewReader("customerId=c1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Fallo de DB en el create: 500 con el mensaje de sistema.
func TestCreateInvoice_FalloDB(t *testing.T) {
	env := buildTestEnv(t)
	env.invoices.failAll = true

	resp := postForm(t, env.app, "/api/invoices", "customerId=c1&amount=10.00&status=paid")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var result dto.MutationResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "Database Error: Failed to Create Invoice", result.Message)
	assert.Empty(t, result.Errors)
}

// Update por POST /api/invoices/:id con el mismo form.
func TestUpdateInvoice(t *testing.T) {
	env := buildTestEnv(t)
	env.invoices.invoices = []*entity.Invoice{
		{ID: "inv-1", CustomerID: "c1", Amount: 1000, Status: entity.InvoiceStatusPending, Date: "2026-01-01"},
	}

	resp := postForm(t, env.app, "/api/invoices/inv-1", "customerId=c2&amount=10.50&status=paid")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	inv := env.invoices.invoices[0]
	assert.Equal(t, "c2", inv.CustomerID)
	assert.Equal(t, int64(1050), inv.Amount)
	assert.Equal(t, entity.InvoiceStatusPaid, inv.Status)
	assert.Equal(t, "2026-01-01", inv.Date, "update no debe recalcular la fecha")
}

// Delete responde 200 con "Deleted Invoice" y 500 en fallo de DB.
func TestDeleteInvoice(t *testing.T) {
	env := buildTestEnv(t)
	env.invoices.invoices = []*entity.Invoice{{ID: "inv-1"}}

	req := httptest.NewRequest(http.MethodDelete, "/api/invoices/inv-1", nil)
	req.Header.Set("Authorization", bearerToken(t))
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var result dto.MutationResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "Deleted Invoice", result.Message)
	assert.Empty(t, env.invoices.invoices)

	env.invoices.failAll = true
	req = httptest.NewRequest(http.MethodDelete, "/api/invoices/inv-1", nil)
	req.Header.Set("Authorization", bearerToken(t))
	resp, err = env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

// List devuelve las facturas persistidas como JSON.
func TestListInvoices(t *testing.T) {
	env := buildTestEnv(t)
	env.invoices.invoices = []*entity.Invoice{
		{ID: "inv-1", CustomerID: "c1", Amount: 4200, Status: "pending", Date: "2026-01-15"},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/invoices", nil)
	req.Header.Set("Authorization", bearerToken(t))
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var list []dto.InvoiceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, int64(4200), list[0].Amount)
}

// El comprobante PDF se sirve con su Content-Type.
func TestInvoiceReceipt(t *testing.T) {
	env := buildTestEnv(t)
	env.invoices.invoices = []*entity.Invoice{{ID: "inv-1", CustomerID: "c1", Amount: 4200, Status: "paid", Date: "2026-01-15"}}
	env.customers.customers = []*entity.Customer{{ID: "c1", Name: "Jane", Email: "jane@example.com"}}

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/inv-1/receipt", nil)
	req.Header.Set("Authorization", bearerToken(t))
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

// Login correcto setea el cookie de sesión y redirige al dashboard; con ese
// cookie las rutas protegidas son accesibles sin header Authorization.
func TestLogin_CookieDeSesion(t *testing.T) {
	env := buildTestEnv(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, env.users.Create(&entity.User{ID: "u1", Email: testEmail, PasswordHash: string(hash)}))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("email=user%40example.com&password=secret123"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))

	var session *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "session" {
			session = c
		}
	}
	require.NotNil(t, session, "el login debe setear el cookie de sesión")
	assert.NotEmpty(t, session.Value)

	// Ruta protegida accesible solo con el cookie.
	listReq := httptest.NewRequest(http.MethodGet, "/api/invoices", nil)
	listReq.AddCookie(session)
	listResp, err := env.app.Test(listReq, -1)
	require.NoError(t, err)
	defer listResp.Body.Close()
	assert.Equal(t, http.StatusOK, listResp.StatusCode)
}

// Credenciales incorrectas: 401 con el mensaje verbatim.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	env := buildTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("email=user%40example.com&password=wrong"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var result dto.MutationResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "Invalid credentials.", result.Message)
}
