package entity

// Warehouse representa una bodega donde se almacena inventario. Pertenece a exactamente una empresa.
type Warehouse struct {
	ID        int64
	CompanyID int64
	Name      string
}
