package usecase

import (
	"context"

	"github.com/jhoicas/inventory-alerts-api/internal/application/dto"
	"github.com/jhoicas/inventory-alerts-api/internal/domain"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/entity"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/repository"
)

// RegisterMovementUseCase aplica un delta de stock a una fila de inventario y
// agrega la entrada correspondiente al ledger, todo en una transacción con
// bloqueo de fila (SELECT FOR UPDATE). El ledger nunca se edita: solo se agrega.
type RegisterMovementUseCase struct {
	txRunner      TxRunner
	inventoryRepo repository.InventoryRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, inventoryRepo repository.InventoryRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, inventoryRepo: inventoryRepo}
}

// Register valida y aplica el movimiento. Un delta que dejaría la cantidad en
// negativo se rechaza con ErrInsufficientStock y no persiste nada.
func (uc *RegisterMovementUseCase) Register(ctx context.Context, in dto.RegisterMovementRequest) error {
	if in.InventoryID == 0 || in.ChangeAmount == 0 {
		return domain.ErrInvalidInput
	}

	inv, err := uc.inventoryRepo.GetByID(ctx, in.InventoryID)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}

	return uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
	) error {
		// Releer con lock dentro de la tx: la cantidad pudo cambiar desde el pre-chequeo.
		locked, err := inventoryRepo.GetForUpdate(ctx, in.InventoryID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}

		newQty := locked.Quantity + in.ChangeAmount
		if newQty < 0 {
			return domain.ErrInsufficientStock
		}

		if err := inventoryRepo.UpdateQuantity(ctx, locked.ID, newQty); err != nil {
			return err
		}
		return inventoryRepo.AddHistory(ctx, &entity.InventoryHistory{
			InventoryID:  locked.ID,
			ChangeAmount: in.ChangeAmount,
			Reason:       in.Reason,
		})
	})
}
