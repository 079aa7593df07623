package entity

import "github.com/shopspring/decimal"

// DefaultReorderThreshold umbral de reorden cuando la petición no lo especifica.
const DefaultReorderThreshold = 10

// Product representa un producto o SKU del catálogo. Es independiente de la bodega:
// el stock por bodega vive en Inventory. El SKU se almacena ya normalizado
// (trim + mayúsculas) y es único en todo el sistema.
type Product struct {
	ID               int64
	Name             string
	SKU              string
	Price            decimal.Decimal // precio de venta, siempre con 2 decimales
	ReorderThreshold int
}
