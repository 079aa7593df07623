package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-alerts-api/internal/application/usecase"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/repository"
	apphttp "github.com/jhoicas/inventory-alerts-api/internal/interfaces/http"
)

type stubAlertRepo struct {
	rows     []repository.LowStockRow
	outflows map[int64]decimal.Decimal
}

func (r *stubAlertRepo) ListLowStock(_ context.Context, _ int64, _ time.Time) ([]repository.LowStockRow, error) {
	return r.rows, nil
}

func (r *stubAlertRepo) OutflowSince(_ context.Context, inventoryID int64, _ time.Time) (decimal.Decimal, error) {
	return r.outflows[inventoryID], nil
}

func buildAlertApp(repo *stubAlertRepo) *fiber.App {
	app := fiber.New()
	app.Use(apphttp.RequestID())
	h := apphttp.NewAlertHandler(usecase.NewLowStockAlertsUseCase(repo, 0))
	app.Get("/api/companies/:id/alerts/low-stock", h.LowStock)
	return app
}

func getAlerts(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Empresa sin alertas (o inexistente): 200 con lista vacía, nunca 404 ni null.
func TestAlertHandler_LowStock_EmpresaVacia(t *testing.T) {
	app := buildAlertApp(&stubAlertRepo{outflows: map[int64]decimal.Decimal{}})

	resp := getAlerts(t, app, "/api/companies/999/alerts/low-stock")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"alerts":[]`)
	assert.Contains(t, string(body), `"total_alerts":0`)
}

// Respuesta completa: proyección de días y proveedor principal incluidos.
func TestAlertHandler_LowStock_RespuestaCompleta(t *testing.T) {
	supplierID := int64(33)
	supplierName := "ACME Ltda"
	email := "ventas@acme.example"

	repo := &stubAlertRepo{
		rows: []repository.LowStockRow{{
			ProductID:        10,
			ProductName:      "Tornillo 3mm",
			SKU:              "TRN-3MM",
			WarehouseID:      4,
			WarehouseName:    "Bodega Norte",
			InventoryID:      1,
			Quantity:         50,
			ReorderThreshold: 60,
			SupplierID:       &supplierID,
			SupplierName:     &supplierName,
			SupplierEmail:    &email,
		}},
		outflows: map[int64]decimal.Decimal{1: decimal.NewFromInt(60)},
	}
	app := buildAlertApp(repo)

	resp := getAlerts(t, app, "/api/companies/1/alerts/low-stock")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Alerts []struct {
			ProductID         int64   `json:"product_id"`
			ProductName       string  `json:"product_name"`
			SKU               string  `json:"sku"`
			WarehouseName     string  `json:"warehouse_name"`
			CurrentStock      int64   `json:"current_stock"`
			Threshold         int     `json:"threshold"`
			DaysUntilStockout *int64  `json:"days_until_stockout"`
			Supplier          *struct {
				ID           int64   `json:"id"`
				Name         string  `json:"name"`
				ContactEmail *string `json:"contact_email"`
			} `json:"supplier"`
		} `json:"alerts"`
		TotalAlerts int `json:"total_alerts"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	assert.Equal(t, 1, out.TotalAlerts)
	require.Len(t, out.Alerts, 1)

	alert := out.Alerts[0]
	assert.Equal(t, int64(10), alert.ProductID)
	assert.Equal(t, "TRN-3MM", alert.SKU)
	assert.Equal(t, "Bodega Norte", alert.WarehouseName)
	assert.Equal(t, int64(50), alert.CurrentStock)
	assert.Equal(t, 60, alert.Threshold)
	require.NotNil(t, alert.DaysUntilStockout)
	assert.Equal(t, int64(25), *alert.DaysUntilStockout)
	require.NotNil(t, alert.Supplier)
	assert.Equal(t, "ACME Ltda", alert.Supplier.Name)
	require.NotNil(t, alert.Supplier.ContactEmail)
	assert.Equal(t, "ventas@acme.example", *alert.Supplier.ContactEmail)
}

// Sin consumo promedio el campo viaja como null explícito.
func TestAlertHandler_LowStock_DiasNullSinConsumo(t *testing.T) {
	repo := &stubAlertRepo{
		rows: []repository.LowStockRow{{
			ProductID: 10, ProductName: "P", SKU: "S-1",
			WarehouseID: 4, WarehouseName: "B", InventoryID: 1,
			Quantity: 5, ReorderThreshold: 10,
		}},
		outflows: map[int64]decimal.Decimal{},
	}
	app := buildAlertApp(repo)

	resp := getAlerts(t, app, "/api/companies/1/alerts/low-stock")
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"days_until_stockout":null`)
	assert.Contains(t, string(body), `"supplier":null`)
}

func TestAlertHandler_LowStock_IDInvalido400(t *testing.T) {
	app := buildAlertApp(&stubAlertRepo{outflows: map[int64]decimal.Decimal{}})

	resp := getAlerts(t, app, "/api/companies/abc/alerts/low-stock")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_ID", decodeError(t, resp).Code)
}
