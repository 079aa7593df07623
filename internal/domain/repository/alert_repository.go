package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// LowStockRow resultado crudo de la consulta de bajo stock para una fila
// (producto, bodega). Los campos Supplier* son nil cuando el producto no tiene
// proveedor principal (no es un error).
type LowStockRow struct {
	ProductID        int64
	ProductName      string
	SKU              string
	WarehouseID      int64
	WarehouseName    string
	InventoryID      int64
	Quantity         int64
	ReorderThreshold int
	SupplierID       *int64
	SupplierName     *string
	SupplierEmail    *string
}

// AlertRepository define el puerto de solo lectura para las alertas de bajo stock (DIP).
type AlertRepository interface {
	// ListLowStock devuelve las filas de inventario de la empresa que están bajo
	// su umbral de reorden (desigualdad estricta) y que tuvieron al menos una
	// salida en el ledger desde `since`. Una empresa desconocida produce lista vacía.
	ListLowStock(ctx context.Context, companyID int64, since time.Time) ([]LowStockRow, error)

	// OutflowSince suma el valor absoluto de los cambios negativos del ledger
	// de un inventario desde `since`. Cero si no hay filas.
	OutflowSince(ctx context.Context, inventoryID int64, since time.Time) (decimal.Decimal, error)
}
