package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/morefix-stock/internal/application/analytics"
	"github.com/jhoicas/morefix-stock/internal/application/auth"
	"github.com/jhoicas/morefix-stock/internal/application/chatbot"
	"github.com/jhoicas/morefix-stock/internal/application/dto"
	"github.com/jhoicas/morefix-stock/internal/application/report"
	"github.com/jhoicas/morefix-stock/internal/application/store"
	"github.com/jhoicas/morefix-stock/internal/application/usecase"
	apphttp "github.com/jhoicas/morefix-stock/internal/interfaces/http"
)

const testPassword = "s3cret-pass"

type pdfStub struct{}

func (pdfStub) Render(context.Context, report.Report) ([]byte, error) { return []byte("%PDF-1.3"), nil }

// newAPI arma la API completa sobre un store en memoria con los datos semilla.
func newAPI(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()
	s := store.New(context.Background(), nil, zerolog.Nop())
	lock := &sync.Mutex{}
	authUC, err := auth.NewAuthUseCase(auth.Admin{Email: testEmail, Password: testPassword},
		auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer})
	require.NoError(t, err)

	app := apphttp.NewApp(apphttp.AppConfig{Name: "morefix-test"}, apphttp.RouterDeps{
		CategoryUC:  usecase.NewCategoryUseCase(s, 5),
		SupplierUC:  usecase.NewSupplierUseCase(s),
		ProductUC:   usecase.NewProductUseCase(s, 5),
		DashboardUC: analytics.NewDashboardUseCase(s, 5),
		ReportUC:    report.NewUseCase(s, pdfStub{}, nil, 5),
		Interpreter: chatbot.NewInterpreter(s, chatbot.WithLock(lock)),
		ChatLog:     s,
		AuthUC:      authUC,
		JWTSecret:   testJWTSecret,
		WriteLock:   lock,
	}, zerolog.Nop())
	return app, s
}

func call(t *testing.T, app *fiber.App, method, path string, body any, token string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHealth(t *testing.T) {
	app, _ := newAPI(t)

	resp := call(t, app, http.MethodGet, "/health", nil, "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogin_DevuelveTokenUsable(t *testing.T) {
	app, _ := newAPI(t)

	resp := call(t, app, http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: testEmail, Password: testPassword}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.LoginResponse](t, resp)

	resp = call(t, app, http.MethodGet, "/api/categories", nil, "Bearer "+out.Token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]dto.CategoryResponse](t, resp), 7)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	app, _ := newAPI(t)

	resp := call(t, app, http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: testEmail, Password: "nope"}, "")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_Validacion(t *testing.T) {
	app, _ := newAPI(t)

	resp := call(t, app, http.MethodPost, "/api/auth/login", map[string]string{"email": "no-es-email"}, "")

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", out.Code)
	assert.Equal(t, "email", out.Fields["email"])
	assert.Equal(t, "required", out.Fields["password"])
}

func TestRutasProtegidas_SinToken(t *testing.T) {
	app, _ := newAPI(t)

	resp := call(t, app, http.MethodGet, "/api/products", nil, "")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProducts_ListarYAlertas(t *testing.T) {
	app, _ := newAPI(t)
	tok := tokenForRole(t, "admin")

	resp := call(t, app, http.MethodGet, "/api/products", nil, tok)
	assert.Equal(t, 12, decode[dto.ProductListResponse](t, resp).Total)

	resp = call(t, app, http.MethodGet, "/api/products?category_id=cat-4", nil, tok)
	assert.Equal(t, 2, decode[dto.ProductListResponse](t, resp).Total)

	resp = call(t, app, http.MethodGet, "/api/products/low-stock", nil, tok)
	assert.Equal(t, 3, decode[dto.ProductListResponse](t, resp).Total)

	resp = call(t, app, http.MethodGet, "/api/products/low-stock?threshold=2", nil, tok)
	assert.Equal(t, 1, decode[dto.ProductListResponse](t, resp).Total)

	resp = call(t, app, http.MethodGet, "/api/products/out-of-stock", nil, tok)
	assert.Equal(t, 2, decode[dto.ProductListResponse](t, resp).Total)
}

func TestProducts_CrearValidaYResuelveReferencias(t *testing.T) {
	app, _ := newAPI(t)
	tok := tokenForRole(t, "admin")

	resp := call(t, app, http.MethodPost, "/api/products", map[string]any{"name": "Écran"}, tok)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)

	body := map[string]any{
		"name": "Écran Dell 27", "category_id": "cat-x", "supplier_id": "sup-1",
		"price": "289.90", "quantity": 4, "sku": "DEL-27",
	}
	resp = call(t, app, http.MethodPost, "/api/products", body, tok)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body["category_id"] = "cat-7"
	resp = call(t, app, http.MethodPost, "/api/products", body, tok)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.ProductResponse](t, resp)
	assert.True(t, created.LowStock)
	assert.Equal(t, "289.9", created.Price.String())

	resp = call(t, app, http.MethodPost, "/api/products", body, tok)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestProducts_ActualizarYBorrar(t *testing.T) {
	app, s := newAPI(t)
	tok := tokenForRole(t, "admin")

	resp := call(t, app, http.MethodPut, "/api/products/prod-8", map[string]any{"quantity": 9}, tok)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	p, _ := s.GetProductByID("prod-8")
	assert.Equal(t, 9, p.Quantity)

	resp = call(t, app, http.MethodDelete, "/api/products/prod-8", nil, tok)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/products/prod-8", nil, tok)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

func TestCategories_DuplicadoYProductos(t *testing.T) {
	app, _ := newAPI(t)
	tok := tokenForRole(t, "admin")

	resp := call(t, app, http.MethodPost, "/api/categories", dto.CreateCategoryRequest{Name: "gpu"}, tok)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/categories/cat-1/products", nil, tok)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, decode[dto.ProductListResponse](t, resp).Total)

	resp = call(t, app, http.MethodDelete, "/api/categories/cat-x", nil, tok)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSuppliers_Crear(t *testing.T) {
	app, _ := newAPI(t)
	tok := tokenForRole(t, "admin")

	resp := call(t, app, http.MethodPost, "/api/suppliers", dto.CreateSupplierRequest{Name: "LDLC", Email: "mal"}, tok)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "email", decode[dto.ErrorResponse](t, resp).Fields["email"])

	resp = call(t, app, http.MethodPost, "/api/suppliers", dto.CreateSupplierRequest{Name: "LDLC", Email: "pro@ldlc.com"}, tok)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/suppliers", nil, tok)
	assert.Len(t, decode[[]dto.SupplierResponse](t, resp), 4)
}

func TestChatCommand_AjouteStockYRegistraHistorial(t *testing.T) {
	app, s := newAPI(t)
	tok := tokenForRole(t, "admin")

	resp := call(t, app, http.MethodPost, "/api/chat/command", dto.ChatRequest{Message: "Ajoute 10 claviers Logitech"}, tok)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.ChatCommandResponse](t, resp)
	assert.True(t, out.Success)
	assert.Equal(t, "add_stock", out.Action)

	p, _ := s.GetProductByID("prod-1")
	assert.Equal(t, 25, p.Quantity)

	resp = call(t, app, http.MethodGet, "/api/chat/messages", nil, tok)
	msgs := decode[[]dto.ChatMessageResponse](t, resp)
	require.Len(t, msgs, 2)
	assert.Equal(t, "user", msgs[0].Role)
	assert.Equal(t, "assistant", msgs[1].Role)
}

func TestChatCommand_NoReconocido(t *testing.T) {
	app, _ := newAPI(t)

	resp := call(t, app, http.MethodPost, "/api/chat/command", dto.ChatRequest{Message: "bonjour"}, tokenForRole(t, "admin"))

	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.ChatCommandResponse](t, resp)
	assert.False(t, out.Success)
	assert.Equal(t, "unknown", out.Intent)
}

func TestChatAssistant_SinProveedor(t *testing.T) {
	app, _ := newAPI(t)

	resp := call(t, app, http.MethodPost, "/api/chat/assistant", dto.ChatRequest{Message: "Salut"}, tokenForRole(t, "admin"))

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "AI_UNAVAILABLE", decode[dto.ErrorResponse](t, resp).Code)
}

func TestDashboardSummary(t *testing.T) {
	app, _ := newAPI(t)

	resp := call(t, app, http.MethodGet, "/api/dashboard/summary", nil, tokenForRole(t, "admin"))

	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.DashboardSummaryDTO](t, resp)
	assert.Equal(t, 147, out.TotalUnits)
	assert.Equal(t, "19018.53", out.StockValue.StringFixed(2))
}

func TestReports(t *testing.T) {
	app, _ := newAPI(t)
	tok := tokenForRole(t, "admin")

	resp := call(t, app, http.MethodGet, "/api/reports/inventory.pdf", nil, tok)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".pdf")

	// Sin renderer XLSX configurado.
	resp = call(t, app, http.MethodGet, "/api/reports/inventory.xlsx", nil, tok)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
