package entity

import "time"

// ReasonInitialStock razón registrada en el ledger para el stock inicial de un producto.
const ReasonInitialStock = "Initial stock"

// Inventory representa el nivel de stock de un producto en una bodega.
// Un par (product, warehouse) debería tener a lo sumo una fila.
type Inventory struct {
	ID          int64
	ProductID   int64
	WarehouseID int64
	Quantity    int64
}

// InventoryHistory es una entrada del ledger de stock (append-only: nunca se
// actualiza ni se borra). ChangeAmount negativo = consumo/salida, positivo = entrada.
type InventoryHistory struct {
	ID           int64
	InventoryID  int64
	ChangeAmount int64
	Reason       string
	CreatedAt    time.Time
}
