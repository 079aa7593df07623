package repository

import (
	"context"

	"github.com/jhoicas/inventory-alerts-api/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	GetByID(ctx context.Context, id int64) (*entity.Warehouse, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*entity.Warehouse, error)
}
