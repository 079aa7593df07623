package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-alerts-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo consultas de solo lectura para las alertas de bajo stock.
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador de alertas. Pasar pool o tx (Querier).
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// ListLowStock devuelve las combinaciones (producto, bodega) de la empresa que:
//   - están bajo su umbral de reorden (desigualdad estricta: igual al umbral no alerta),
//   - tuvieron al menos una salida (change_amount < 0) en el ledger desde `since`.
//
// Se enriquece con el proveedor principal vía LATERAL con LIMIT 1: si el dato está
// corrupto y hay más de un is_primary por producto, se elige uno arbitrario en vez
// de fallar. Sin proveedor principal, los campos quedan NULL.
// El stock bajo pero sin movimiento reciente queda fuera: no es urgente.
func (r *AlertRepo) ListLowStock(ctx context.Context, companyID int64, since time.Time) ([]repository.LowStockRow, error) {
	const query = `
	SELECT
	    p.id                  AS product_id,
	    p.name                AS product_name,
	    p.sku,
	    w.id                  AS warehouse_id,
	    w.name                AS warehouse_name,
	    i.id                  AS inventory_id,
	    i.quantity            AS current_stock,
	    p.reorder_threshold,
	    sup.id                AS supplier_id,
	    sup.name              AS supplier_name,
	    sup.contact_email     AS supplier_email
	FROM inventory i
	JOIN product   p ON p.id = i.product_id
	JOIN warehouse w ON w.id = i.warehouse_id
	JOIN (
	    SELECT DISTINCT inventory_id
	    FROM inventory_history
	    WHERE created_at >= $2 AND change_amount < 0
	) recent ON recent.inventory_id = i.id
	LEFT JOIN LATERAL (
	    SELECT s.id, s.name, s.contact_email
	    FROM product_supplier ps
	    JOIN supplier s ON s.id = ps.supplier_id
	    WHERE ps.product_id = p.id AND ps.is_primary
	    LIMIT 1
	) sup ON TRUE
	WHERE w.company_id = $1
	  AND i.quantity < p.reorder_threshold`

	rows, err := r.q.Query(ctx, query, companyID, since)
	if err != nil {
		return nil, fmt.Errorf("alerts.ListLowStock: %w", err)
	}
	defer rows.Close()

	var results []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(
			&row.ProductID,
			&row.ProductName,
			&row.SKU,
			&row.WarehouseID,
			&row.WarehouseName,
			&row.InventoryID,
			&row.Quantity,
			&row.ReorderThreshold,
			&row.SupplierID,
			&row.SupplierName,
			&row.SupplierEmail,
		); err != nil {
			return nil, fmt.Errorf("alerts.ListLowStock scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// OutflowSince suma el valor absoluto de las salidas del ledger de un inventario
// desde `since`. COALESCE devuelve cero si no hay filas que califiquen.
func (r *AlertRepo) OutflowSince(ctx context.Context, inventoryID int64, since time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(-change_amount), 0)
	FROM inventory_history
	WHERE inventory_id = $1
	  AND created_at  >= $2
	  AND change_amount < 0`

	var total decimal.Decimal
	err := r.q.QueryRow(ctx, query, inventoryID, since).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("alerts.OutflowSince: %w", err)
	}
	return total, nil
}
