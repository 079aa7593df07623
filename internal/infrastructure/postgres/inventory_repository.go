package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventory-alerts-api/internal/domain/entity"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de persistencia para inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste una nueva fila de inventario y asigna el ID generado.
func (r *InventoryRepo) Create(ctx context.Context, inv *entity.Inventory) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO inventory (product_id, warehouse_id, quantity)
		 VALUES ($1, $2, $3) RETURNING id`,
		inv.ProductID, inv.WarehouseID, inv.Quantity,
	).Scan(&inv.ID)
	if err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByID obtiene una fila de inventario por ID. Devuelve nil si no existe.
func (r *InventoryRepo) GetByID(ctx context.Context, id int64) (*entity.Inventory, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate bloquea la fila de inventario (SELECT FOR UPDATE) para evitar
// condiciones de carrera al aplicar movimientos. Usar dentro de una transacción.
func (r *InventoryRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Inventory, error) {
	return r.get(ctx, id, true)
}

func (r *InventoryRepo) get(ctx context.Context, id int64, forUpdate bool) (*entity.Inventory, error) {
	query := `SELECT id, product_id, warehouse_id, quantity FROM inventory WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var inv entity.Inventory
	err := r.q.QueryRow(ctx, query, id).Scan(&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}

// UpdateQuantity fija la cantidad de una fila de inventario.
func (r *InventoryRepo) UpdateQuantity(ctx context.Context, id, quantity int64) error {
	_, err := r.q.Exec(ctx,
		`UPDATE inventory SET quantity = $2 WHERE id = $1`, id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update inventory quantity: %w", err)
	}
	return nil
}

// AddHistory agrega una entrada al ledger de inventario.
func (r *InventoryRepo) AddHistory(ctx context.Context, h *entity.InventoryHistory) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO inventory_history (inventory_id, change_amount, reason)
		 VALUES ($1, $2, $3) RETURNING id, created_at`,
		h.InventoryID, h.ChangeAmount, h.Reason,
	).Scan(&h.ID, &h.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert inventory history: %w", err)
	}
	return nil
}
