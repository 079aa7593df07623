package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-alerts-api/internal/application/dto"
	"github.com/jhoicas/inventory-alerts-api/internal/application/usecase"
	"github.com/jhoicas/inventory-alerts-api/internal/domain"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/entity"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/repository"
	apphttp "github.com/jhoicas/inventory-alerts-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos de los puertos, suficientes para ejercitar los handlers
// de punta a punta con app.Test (sin base de datos).
// ──────────────────────────────────────────────────────────────────────────────

type stubProductRepo struct {
	nextID int64
	bySKU  map[string]*entity.Product
}

func (r *stubProductRepo) Create(_ context.Context, p *entity.Product) error {
	if _, ok := r.bySKU[p.SKU]; ok {
		return domain.ErrDuplicateSKU
	}
	r.nextID++
	p.ID = r.nextID
	cp := *p
	r.bySKU[p.SKU] = &cp
	return nil
}

func (r *stubProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	for _, p := range r.bySKU {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *stubProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	if p, ok := r.bySKU[sku]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *stubProductRepo) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	return nil, nil
}

type stubWarehouseRepo struct {
	byID map[int64]*entity.Warehouse
}

func (r *stubWarehouseRepo) Create(_ context.Context, _ *entity.Warehouse) error { return nil }

func (r *stubWarehouseRepo) GetByID(_ context.Context, id int64) (*entity.Warehouse, error) {
	if w, ok := r.byID[id]; ok {
		return w, nil
	}
	return nil, nil
}

func (r *stubWarehouseRepo) ListByCompany(_ context.Context, _ int64) ([]*entity.Warehouse, error) {
	return nil, nil
}

type stubInventoryRepo struct {
	nextID  int64
	byID    map[int64]*entity.Inventory
	history []entity.InventoryHistory
}

func (r *stubInventoryRepo) Create(_ context.Context, inv *entity.Inventory) error {
	r.nextID++
	inv.ID = r.nextID
	cp := *inv
	r.byID[inv.ID] = &cp
	return nil
}

func (r *stubInventoryRepo) GetByID(_ context.Context, id int64) (*entity.Inventory, error) {
	if inv, ok := r.byID[id]; ok {
		cp := *inv
		return &cp, nil
	}
	return nil, nil
}

func (r *stubInventoryRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Inventory, error) {
	return r.GetByID(ctx, id)
}

func (r *stubInventoryRepo) UpdateQuantity(_ context.Context, id, quantity int64) error {
	if inv, ok := r.byID[id]; ok {
		inv.Quantity = quantity
	}
	return nil
}

func (r *stubInventoryRepo) AddHistory(_ context.Context, h *entity.InventoryHistory) error {
	r.history = append(r.history, *h)
	return nil
}

type stubTxRunner struct {
	products    *stubProductRepo
	inventories *stubInventoryRepo
}

func (tx *stubTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
) error) error {
	return fn(tx.products, tx.inventories)
}

// buildProductApp construye una app Fiber con la ruta de creación de productos
// cableada a fakes en memoria.
func buildProductApp(warehouseIDs ...int64) (*fiber.App, *stubProductRepo) {
	products := &stubProductRepo{bySKU: make(map[string]*entity.Product)}
	warehouses := &stubWarehouseRepo{byID: make(map[int64]*entity.Warehouse)}
	for _, id := range warehouseIDs {
		warehouses.byID[id] = &entity.Warehouse{ID: id, CompanyID: 1, Name: "Bodega"}
	}
	inventories := &stubInventoryRepo{byID: make(map[int64]*entity.Inventory)}

	uc := usecase.NewProductUseCase(products, warehouses, &stubTxRunner{
		products:    products,
		inventories: inventories,
	})

	app := fiber.New()
	app.Use(apphttp.RequestID())
	h := apphttp.NewProductHandler(uc)
	app.Post("/api/products", h.Create)
	app.Get("/api/products/:id", h.GetByID)
	return app, products
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests POST /api/products
// ──────────────────────────────────────────────────────────────────────────────

func TestProductHandler_Create_Creado201(t *testing.T) {
	app, _ := buildProductApp(7)

	resp := postJSON(t, app, "/api/products",
		`{"name":"Tornillo 3mm","sku":"trn-3mm","price":19.99,"warehouse_id":7,"initial_quantity":5}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID),
		"toda respuesta debe llevar X-Request-ID")

	var out dto.CreateProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Product created", out.Message)
	assert.Equal(t, int64(1), out.ProductID)
}

func TestProductHandler_Create_CuerpoInvalido400(t *testing.T) {
	app, _ := buildProductApp()

	resp := postJSON(t, app, "/api/products", `esto no es json`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Code)
}

func TestProductHandler_Create_FaltanCampos400(t *testing.T) {
	app, _ := buildProductApp()

	resp := postJSON(t, app, "/api/products", `{"name":"Tornillo"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeError(t, resp).Code)
}

// Un price mal tipado no es cuerpo malformado: el JSON es válido, el campo no.
func TestProductHandler_Create_PrecioInvalido400(t *testing.T) {
	app, _ := buildProductApp()

	resp := postJSON(t, app, "/api/products", `{"name":"T","sku":"S-1","price":true}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_PRICE", decodeError(t, resp).Code)
}

func TestProductHandler_Create_CantidadInvalida400(t *testing.T) {
	app, _ := buildProductApp(1)

	resp := postJSON(t, app, "/api/products",
		`{"name":"T","sku":"S-1","price":1,"warehouse_id":1,"initial_quantity":2.5}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_QUANTITY", decodeError(t, resp).Code)
}

func TestProductHandler_Create_BodegaDesconocida400(t *testing.T) {
	app, _ := buildProductApp()

	resp := postJSON(t, app, "/api/products",
		`{"name":"T","sku":"S-1","price":1,"warehouse_id":99}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "UNKNOWN_WAREHOUSE", decodeError(t, resp).Code)
}

func TestProductHandler_Create_SKUDuplicado409(t *testing.T) {
	app, _ := buildProductApp()

	resp := postJSON(t, app, "/api/products", `{"name":"T","sku":"WIDGET-9","price":1}`)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Mismo SKU con distinto case y espacios → conflicto.
	resp = postJSON(t, app, "/api/products", `{"name":"Otro","sku":"  widget-9 ","price":3}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE_SKU", decodeError(t, resp).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GET /api/products/:id
// ──────────────────────────────────────────────────────────────────────────────

func TestProductHandler_GetByID_NoEncontrado404(t *testing.T) {
	app, _ := buildProductApp()

	req := httptest.NewRequest(http.MethodGet, "/api/products/42", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Code)
}

func TestProductHandler_GetByID_Encontrado200(t *testing.T) {
	app, _ := buildProductApp()

	resp := postJSON(t, app, "/api/products", `{"name":"Tuerca","sku":"TRC-1","price":"2.5"}`)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/products/1", nil)
	getResp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer getResp.Body.Close()

	assert.Equal(t, http.StatusOK, getResp.StatusCode)

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(getResp.Body).Decode(&out))
	assert.Equal(t, "TRC-1", out["sku"])
	assert.Equal(t, "2.50", out["price"], "el precio debe serializar con 2 decimales")
	assert.Equal(t, float64(10), out["reorder_threshold"])
}
