package entity

// Supplier representa un proveedor. ContactEmail es opcional (nil = sin correo).
type Supplier struct {
	ID           int64
	Name         string
	ContactEmail *string
}

// ProductSupplier asocia un producto con un proveedor. Identidad compuesta
// (product_id, supplier_id). La capa de consulta asume a lo sumo un proveedor
// principal por producto; el storage no lo fuerza.
type ProductSupplier struct {
	ProductID  int64
	SupplierID int64
	IsPrimary  bool
}
