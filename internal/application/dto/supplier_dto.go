package dto

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name         string  `json:"name"`
	ContactEmail *string `json:"contact_email"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	ContactEmail *string `json:"contact_email"`
}

// LinkSupplierRequest body para asociar un proveedor a un producto.
type LinkSupplierRequest struct {
	SupplierID int64 `json:"supplier_id"`
	IsPrimary  bool  `json:"is_primary"`
}
