package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrMissingField      = errors.New("faltan campos requeridos")
	ErrInvalidPrice      = errors.New("precio inválido")
	ErrInvalidQuantity   = errors.New("cantidad inválida")
	ErrDuplicateSKU      = errors.New("el SKU ya existe")
	ErrWarehouseNotFound = errors.New("la bodega no existe")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
