package repository

import (
	"context"

	"github.com/jhoicas/inventory-alerts-api/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia para Inventory y su ledger (DIP).
type InventoryRepository interface {
	Create(ctx context.Context, inv *entity.Inventory) error
	GetByID(ctx context.Context, id int64) (*entity.Inventory, error)

	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) dentro de una transacción.
	GetForUpdate(ctx context.Context, id int64) (*entity.Inventory, error)
	UpdateQuantity(ctx context.Context, id, quantity int64) error

	// AddHistory agrega una entrada al ledger. El ledger es append-only.
	AddHistory(ctx context.Context, h *entity.InventoryHistory) error
}
