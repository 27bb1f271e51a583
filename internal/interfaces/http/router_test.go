package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcrate "github.com/wastenot/surplus-api/internal/application/crate"
	"github.com/wastenot/surplus-api/internal/application/inventory"
	"github.com/wastenot/surplus-api/internal/application/usecase"
	"github.com/wastenot/surplus-api/internal/domain/entity"
	"github.com/wastenot/surplus-api/internal/domain/freshness"
	"github.com/wastenot/surplus-api/internal/infrastructure/memory"
	apphttp "github.com/wastenot/surplus-api/internal/interfaces/http"
)

const testStoreID = "store-001"

// pdfStub evita generar PDFs reales en los tests de rutas.
type pdfStub struct{}

func (pdfStub) GeneratePickupTicket(_ context.Context, _ *entity.SurplusCrate, _ *entity.LocalBusiness) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

// buildTestApp monta la API completa sobre el almacén en memoria.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	inventoryUC := inventory.NewUseCase(store.Batches(), store.Products(), freshness.DefaultWindows())
	inventoryUC.Now = func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) }
	crateUC := appcrate.NewLifecycleUseCase(
		memory.NewTxRunner(store),
		store.Products(),
		store.Crates(),
		store.Offers(),
		store.Businesses(),
		pdfStub{},
	)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:   usecase.NewProductUseCase(store.Products()),
		BusinessUC:  usecase.NewBusinessUseCase(store.Businesses()),
		InventoryUC: inventoryUC,
		CrateUC:     crateUC,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func doJSONList(t *testing.T, app *fiber.App, path string) (*http.Response, []map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp, decoded
}

// TestAPI_FlujoCompletoDeVenta recorre el flujo feliz completo por HTTP:
// catálogo → lote → canasta → oferta → aceptación, verificando códigos de
// estado, estados de canasta y el descuento de inventario final.
func TestAPI_FlujoCompletoDeVenta(t *testing.T) {
	app := buildTestApp(t)

	// Producto de catálogo
	resp, product := doJSON(t, app, http.MethodPost, "/api/products", map[string]any{
		"name":                    "Leche entera 1L",
		"category":                "dairy",
		"typical_shelf_life_days": 7,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	productID := product["product_id"].(string)

	// Lote recibido hoy: 10 unidades
	resp, batch := doJSON(t, app, http.MethodPost, "/api/inventory_items", map[string]any{
		"product_id":    productID,
		"store_id":      testStoreID,
		"quantity":      10,
		"purchase_date": "2025-03-08",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "2025-03-15", batch["expiry_date"])
	assert.Equal(t, "nearingExpiry", batch["status"])
	assert.Equal(t, "Próximo a vencer", batch["status_label"])
	assert.Equal(t, "yellow", batch["status_color"])

	// El lote aparece como candidato a canasta
	resp, atRisk := doJSONList(t, app, "/api/inventory_items/store/"+testStoreID+"/at-risk")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, atRisk, 1)

	// Canasta con todo el lote
	resp, crate := doJSON(t, app, http.MethodPost, "/api/surplus_crates", map[string]any{
		"store_id":      testStoreID,
		"items":         []map[string]any{{"product_id": productID, "quantity": 10}},
		"listing_price": 15,
		"pickup_window": "2025-03-11T17:00/19:00",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	crateID := crate["crate_id"].(string)
	assert.Equal(t, "listed", crate["status"])

	resp, available := doJSONList(t, app, "/api/surplus_crates/available")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, available, 1)

	// Negocio comprador
	resp, business := doJSON(t, app, http.MethodPost, "/api/local_businesses", map[string]any{
		"name": "Café La Esquina",
		"type": "cafe",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	businessID := business["business_id"].(string)

	// Oferta
	resp, offer := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/surplus_crates/%s/offers", crateID), map[string]any{
		"business_id": businessID,
		"offer_price": 12,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	offerID := offer["offer_id"].(string)

	resp, crate = doJSON(t, app, http.MethodGet, "/api/surplus_crates/"+crateID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "offerReceived", crate["status"])

	// Aceptación: vende y descuenta el inventario FIFO
	resp, accepted := doJSON(t, app, http.MethodPut,
		fmt.Sprintf("/api/surplus_crates/%s/offers/%s/respond", crateID, offerID),
		map[string]any{"decision": "accept"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "accepted", accepted["status"])

	resp, crate = doJSON(t, app, http.MethodGet, "/api/surplus_crates/"+crateID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "sold", crate["status"])
	assert.Equal(t, businessID, crate["sold_to_business_id"])

	resp, items := doJSONList(t, app, "/api/inventory_items/?store_id="+testStoreID)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, items, 1)
	assert.Equal(t, float64(0), items[0]["quantity"], "la venta consumió las 10 unidades")
}

func TestAPI_ErroresMapeadosAHTTP(t *testing.T) {
	app := buildTestApp(t)

	t.Run("canasta inexistente devuelve 404", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/surplus_crates/no-such-crate", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", body["code"])
	})

	t.Run("lotes sin store_id devuelve 400", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/inventory_items/", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION", body["code"])
	})

	t.Run("canasta infactible devuelve 422", func(t *testing.T) {
		_, product := doJSON(t, app, http.MethodPost, "/api/products", map[string]any{
			"name":                    "Pan campesino",
			"category":                "bakery",
			"typical_shelf_life_days": 3,
		})
		productID := product["product_id"].(string)

		resp, body := doJSON(t, app, http.MethodPost, "/api/surplus_crates", map[string]any{
			"store_id":      testStoreID,
			"items":         []map[string]any{{"product_id": productID, "quantity": 5}},
			"listing_price": 10,
			"pickup_window": "mañana",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])
	})

	t.Run("decisión inválida devuelve 400", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPut,
			"/api/surplus_crates/x/offers/y/respond",
			map[string]any{"decision": "maybe"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION", body["code"])
	})
}
