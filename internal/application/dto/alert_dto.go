package dto

// SupplierInfoDTO proveedor principal de un producto en una alerta.
type SupplierInfoDTO struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	ContactEmail *string `json:"contact_email"`
}

// LowStockAlertDTO una combinación (producto, bodega) bajo umbral con actividad reciente.
// DaysUntilStockout es nil cuando el consumo promedio calculado es cero.
// Supplier es nil cuando el producto no tiene proveedor principal.
type LowStockAlertDTO struct {
	ProductID         int64            `json:"product_id"`
	ProductName       string           `json:"product_name"`
	SKU               string           `json:"sku"`
	WarehouseID       int64            `json:"warehouse_id"`
	WarehouseName     string           `json:"warehouse_name"`
	CurrentStock      int64            `json:"current_stock"`
	Threshold         int              `json:"threshold"`
	DaysUntilStockout *int64           `json:"days_until_stockout"`
	Supplier          *SupplierInfoDTO `json:"supplier"`
}

// LowStockAlertsResponse respuesta del endpoint de alertas.
type LowStockAlertsResponse struct {
	Alerts      []LowStockAlertDTO `json:"alerts"`
	TotalAlerts int                `json:"total_alerts"`
}
