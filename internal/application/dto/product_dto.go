package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Price e InitialQuantity se reciben como JSON crudo: el contrato acepta número
// o string numérico, y un valor mal tipado debe reportarse como precio/cantidad
// inválidos, no como cuerpo malformado.
type CreateProductRequest struct {
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	Price           json.RawMessage `json:"price"`
	WarehouseID     *int64          `json:"warehouse_id"`
	InitialQuantity json.RawMessage `json:"initial_quantity"`
}

// CreateProductResponse salida de la creación de un producto.
type CreateProductResponse struct {
	Message   string `json:"message"`
	ProductID int64  `json:"product_id"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	SKU              string          `json:"sku"`
	Price            decimal.Decimal `json:"price"`
	ReorderThreshold int             `json:"reorder_threshold"`
}
