package repository

import (
	"context"

	"github.com/jhoicas/inventory-alerts-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier y su
// asociación con productos (DIP).
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id int64) (*entity.Supplier, error)

	// LinkProduct crea o actualiza la asociación producto-proveedor.
	// No fuerza "a lo sumo un principal": la capa de consulta elige uno arbitrario.
	LinkProduct(ctx context.Context, link *entity.ProductSupplier) error
}
