package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tallermunicipal/inventario-api/internal/application/auth"
	"github.com/tallermunicipal/inventario-api/internal/application/inventory"
	"github.com/tallermunicipal/inventario-api/internal/application/reports"
	"github.com/tallermunicipal/inventario-api/internal/application/usecase"
	"github.com/tallermunicipal/inventario-api/internal/infrastructure/memory"
	"github.com/tallermunicipal/inventario-api/internal/infrastructure/pdf"
	"github.com/tallermunicipal/inventario-api/internal/infrastructure/xlsx"
	apphttp "github.com/tallermunicipal/inventario-api/internal/interfaces/http"
)

func newTestServer(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.NewStore(time.Second)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	deps := apphttp.RouterDeps{
		ProductTypeUC:  usecase.NewProductTypeUseCase(store.ProductTypes()),
		ProductBrandUC: usecase.NewProductBrandUseCase(store.ProductBrands()),
		WarehouseUC:    usecase.NewWarehouseUseCase(store.Warehouses()),
		VehicleUC:      usecase.NewVehicleUseCase(store.Vehicles(), store.ProductBrands()),
		ProductUC:      usecase.NewProductUseCase(store.Products(), store.ProductTypes(), store.ProductBrands(), store.Warehouses()),
		UserUC:         usecase.NewUserUseCase(store.Users()),
		LedgerUC: inventory.NewLedgerUseCase(
			memory.NewTxRunner(store),
			store.Inflows(), store.Outflows(),
			store.Products(), store.Warehouses(), store.Vehicles(),
			inventory.WithClock(func() time.Time { return now }),
			inventory.WithLocation(time.UTC),
		),
		ReportsUC: reports.NewReportsUseCase(
			store.Products(), store.ProductTypes(), store.Warehouses(), store.Vehicles(),
			store.Inflows(), store.Outflows(),
		),
		Exporter: reports.NewExporter(xlsx.NewExcelizeRenderer(), pdf.NewMarotoReportRenderer("test")),
		AuthUC: auth.NewAuthUseCase(store.Users(), auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		JWTSecret: testJWTSecret,
	}
	return apphttp.NewServer(apphttp.ServerOptions{Name: "test"}, deps)
}

type apiResponse struct {
	status int
	header http.Header
	body   []byte
}

func (r apiResponse) json(t *testing.T) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(r.body, &m), string(r.body))
	return m
}

func call(t *testing.T, app *fiber.App, method, path, token string, body interface{}) apiResponse {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return apiResponse{status: resp.StatusCode, header: resp.Header, body: raw}
}

func TestHealth(t *testing.T) {
	app := newTestServer(t)
	res := call(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, "ok", res.json(t)["status"])
	assert.NotEmpty(t, res.header.Get("X-Request-ID"))
}

func TestAPI_RequiereToken(t *testing.T) {
	app := newTestServer(t)
	res := call(t, app, http.MethodGet, "/api/depositos", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.status)
}

func TestAPI_CicloDeStock(t *testing.T) {
	app := newTestServer(t)
	user := tokenWithRoles(t, "USER")
	admin := tokenWithRoles(t, "ADMIN", "USER")

	res := call(t, app, http.MethodPost, "/api/depositos", user, map[string]interface{}{"name": "Central", "location": "Av. Mitre 100"})
	require.Equal(t, http.StatusCreated, res.status, string(res.body))
	warehouseID := res.json(t)["id"].(string)

	res = call(t, app, http.MethodPost, "/api/depositos", user, map[string]interface{}{"name": " central ", "location": "Otra"})
	assert.Equal(t, http.StatusConflict, res.status)
	assert.Equal(t, "DUPLICATE", res.json(t)["code"])

	res = call(t, app, http.MethodPost, "/api/productos", user, map[string]interface{}{"name": "Filtro de aceite", "warehouse_id": warehouseID})
	require.Equal(t, http.StatusCreated, res.status, string(res.body))
	productID := res.json(t)["id"].(string)

	res = call(t, app, http.MethodPost, "/api/stock/ingresos", user, map[string]interface{}{
		"product_id": productID, "warehouse_id": warehouseID, "quantity": 10, "date": "2024-03-01",
	})
	require.Equal(t, http.StatusCreated, res.status, string(res.body))
	assert.Equal(t, "2024-03-01", res.json(t)["date"])

	res = call(t, app, http.MethodPost, "/api/stock/egresos", user, map[string]interface{}{
		"product_id": productID, "warehouse_id": warehouseID, "quantity": 15, "date": "2024-03-02", "destination_kind": "OFFICE",
	})
	assert.Equal(t, http.StatusBadRequest, res.status)
	assert.Equal(t, "INVALID_INPUT", res.json(t)["code"])

	res = call(t, app, http.MethodPost, "/api/stock/egresos", user, map[string]interface{}{
		"product_id": productID, "warehouse_id": warehouseID, "quantity": 4, "date": "2024-03-02", "destination_kind": "OFFICE",
	})
	require.Equal(t, http.StatusCreated, res.status, string(res.body))
	outflowID := res.json(t)["id"].(string)

	res = call(t, app, http.MethodGet, "/api/stock/disponible?producto_id="+productID+"&deposito_id="+warehouseID, user, nil)
	require.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, float64(6), res.json(t)["available"])

	res = call(t, app, http.MethodGet, "/api/reportes/stock/deposito", user, nil)
	require.Equal(t, http.StatusOK, res.status)
	assert.JSONEq(t, `[{"warehouse":"Central","stock":6}]`, string(res.body))

	res = call(t, app, http.MethodGet, "/api/stock/egresos?producto_id="+productID, user, nil)
	require.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, float64(1), res.json(t)["total"])

	res = call(t, app, http.MethodDelete, "/api/stock/egresos/"+outflowID, user, nil)
	assert.Equal(t, http.StatusForbidden, res.status)

	res = call(t, app, http.MethodDelete, "/api/stock/egresos/"+outflowID, admin, nil)
	assert.Equal(t, http.StatusNoContent, res.status)

	res = call(t, app, http.MethodGet, "/api/reportes/stock/deposito", user, nil)
	assert.JSONEq(t, `[{"warehouse":"Central","stock":10}]`, string(res.body))
}

func TestAPI_ExportaReportes(t *testing.T) {
	app := newTestServer(t)
	user := tokenWithRoles(t, "USER")

	res := call(t, app, http.MethodPost, "/api/productos-tipos", user, map[string]interface{}{"name": "Filtros"})
	require.Equal(t, http.StatusCreated, res.status, string(res.body))

	res = call(t, app, http.MethodGet, "/api/reportes/stock/tipo?formato=xlsx", user, nil)
	require.Equal(t, http.StatusOK, res.status, string(res.body))
	assert.Contains(t, res.header.Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, res.header.Get("Content-Disposition"), "stock-por-tipo.xlsx")
	f, err := excelize.OpenReader(bytes.NewReader(res.body))
	require.NoError(t, err)
	defer f.Close()

	res = call(t, app, http.MethodGet, "/api/reportes/stock/tipo?formato=pdf", user, nil)
	require.Equal(t, http.StatusOK, res.status)
	assert.True(t, bytes.HasPrefix(res.body, []byte("%PDF")))

	res = call(t, app, http.MethodGet, "/api/reportes/stock/tipo?formato=csv", user, nil)
	assert.Equal(t, http.StatusBadRequest, res.status)
}

func TestAPI_ErroresDeValidacionYNoEncontrado(t *testing.T) {
	app := newTestServer(t)
	user := tokenWithRoles(t, "USER")

	res := call(t, app, http.MethodPost, "/api/depositos", user, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, res.status)
	body := res.json(t)
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Contains(t, body["message"], "name es requerido")

	res = call(t, app, http.MethodGet, "/api/stock/ingresos/no-existe", user, nil)
	assert.Equal(t, http.StatusNotFound, res.status)
	assert.Equal(t, "NOT_FOUND", res.json(t)["code"])

	res = call(t, app, http.MethodGet, "/api/stock/egresos?status=BORRADO", user, nil)
	assert.Equal(t, http.StatusBadRequest, res.status)
}

func TestAPI_RegistroLoginYMe(t *testing.T) {
	app := newTestServer(t)

	res := call(t, app, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"username": "pañolero", "password": "clave-segura", "full_name": "Juana Pérez",
	})
	require.Equal(t, http.StatusCreated, res.status, string(res.body))

	res = call(t, app, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"username": "pañolero", "password": "otra-clave-larga",
	})
	assert.Equal(t, http.StatusConflict, res.status)

	res = call(t, app, http.MethodPost, "/api/auth/login", "", map[string]interface{}{"username": "pañolero", "password": "incorrecta"})
	assert.Equal(t, http.StatusUnauthorized, res.status)

	res = call(t, app, http.MethodPost, "/api/auth/login", "", map[string]interface{}{"username": "pañolero", "password": "clave-segura"})
	require.Equal(t, http.StatusOK, res.status, string(res.body))
	token := res.json(t)["access_token"].(string)
	require.NotEmpty(t, token)

	res = call(t, app, http.MethodGet, "/api/auth/me", "Bearer "+token, nil)
	require.Equal(t, http.StatusOK, res.status, string(res.body))
	assert.Equal(t, "pañolero", res.json(t)["username"])

	res = call(t, app, http.MethodGet, "/api/productos", "Bearer "+token, nil)
	assert.Equal(t, http.StatusOK, res.status)
	assert.JSONEq(t, `{"items":[],"total":0}`, string(res.body))
}
