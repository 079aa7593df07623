package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventory-alerts-api/internal/domain/entity"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un nuevo proveedor y asigna el ID generado.
func (r *SupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO supplier (name, contact_email) VALUES ($1, $2) RETURNING id`,
		supplier.Name, supplier.ContactEmail,
	).Scan(&supplier.ID)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID. Devuelve nil si no existe.
func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.q.QueryRow(ctx,
		`SELECT id, name, contact_email FROM supplier WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.ContactEmail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// LinkProduct crea o actualiza la asociación producto-proveedor (identidad compuesta).
func (r *SupplierRepo) LinkProduct(ctx context.Context, link *entity.ProductSupplier) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO product_supplier (product_id, supplier_id, is_primary)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (product_id, supplier_id)
		 DO UPDATE SET is_primary = EXCLUDED.is_primary`,
		link.ProductID, link.SupplierID, link.IsPrimary,
	)
	if err != nil {
		return fmt.Errorf("link product supplier: %w", err)
	}
	return nil
}
