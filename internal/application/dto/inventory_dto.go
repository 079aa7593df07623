package dto

// RegisterMovementRequest body para POST /api/inventory/movements.
// ChangeAmount negativo = consumo/salida, positivo = entrada.
type RegisterMovementRequest struct {
	InventoryID  int64  `json:"inventory_id"`
	ChangeAmount int64  `json:"change_amount"`
	Reason       string `json:"reason"`
}
