package dto

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	CompanyID int64  `json:"company_id"`
	Name      string `json:"name"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID        int64  `json:"id"`
	CompanyID int64  `json:"company_id"`
	Name      string `json:"name"`
}
