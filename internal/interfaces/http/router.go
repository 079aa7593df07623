package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/inventory-alerts-api/internal/application/usecase"
)

const requestIDKey = "request_id"

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC        *usecase.CompanyUseCase
	WarehouseUC      *usecase.WarehouseUseCase
	ProductUC        *usecase.ProductUseCase
	SupplierUC       *usecase.SupplierUseCase
	RegisterMovement *usecase.RegisterMovementUseCase
	AlertsUC         *usecase.LowStockAlertsUseCase
}

// RequestID asigna un identificador único a cada petición (header X-Request-ID),
// usado para correlacionar los logs de errores internos.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(fiber.HeaderXRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(requestIDKey, rid)
		c.Set(fiber.HeaderXRequestID, rid)
		return c.Next()
	}
}

// GetRequestID devuelve el request id asignado por el middleware (vacío si no hay).
func GetRequestID(c *fiber.Ctx) string {
	if rid, ok := c.Locals(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestID())

	api := app.Group("/api")

	// Companies
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Warehouses (anidadas bajo la empresa para listar)
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	api.Post("/warehouses", warehouseHandler.Create)
	companies.Get("/:id/warehouses", warehouseHandler.ListByCompany)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	// Suppliers y asociación con productos
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	api.Post("/suppliers", supplierHandler.Create)
	products.Post("/:id/suppliers", supplierHandler.LinkProduct)

	// Inventory movements (alimentan el ledger que leen las alertas)
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement)
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)

	// Low stock alerts
	alertHandler := NewAlertHandler(deps.AlertsUC)
	companies.Get("/:id/alerts/low-stock", alertHandler.LowStock)
}
