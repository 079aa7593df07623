package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-alerts-api/internal/application/dto"
	"github.com/jhoicas/inventory-alerts-api/internal/domain"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/entity"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/repository"
)

// ProductUseCase crea y consulta productos. La creación es transaccional: producto,
// inventario inicial y entrada del ledger se confirman juntos o no queda nada.
type ProductUseCase struct {
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	txRunner      TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	txRunner TxRunner,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		txRunner:      txRunner,
	}
}

// Create valida la petición en orden (campos requeridos, precio, cantidad, SKU
// duplicado, bodega) y persiste de forma atómica:
//   - el producto (nombre recortado, SKU normalizado, precio a 2 decimales),
//   - si viene warehouse_id, la fila de inventario con la cantidad inicial,
//   - si además la cantidad es > 0, la entrada "Initial stock" del ledger.
//
// El pre-chequeo de SKU es una optimización: la garantía real es el constraint
// único, y una carrera detectada al commit se reporta igual como ErrDuplicateSKU.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || strings.TrimSpace(in.SKU) == "" || rawIsNull(in.Price) {
		return nil, domain.ErrMissingField
	}

	price, err := parsePrice(in.Price)
	if err != nil {
		return nil, err
	}
	qty, err := parseInitialQuantity(in.InitialQuantity)
	if err != nil {
		return nil, err
	}

	// Normalizar el SKU antes de cualquier comparación o almacenamiento.
	sku := strings.ToUpper(strings.TrimSpace(in.SKU))

	existing, err := uc.productRepo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateSKU
	}

	if in.WarehouseID != nil {
		wh, err := uc.warehouseRepo.GetByID(ctx, *in.WarehouseID)
		if err != nil {
			return nil, err
		}
		if wh == nil {
			return nil, domain.ErrWarehouseNotFound
		}
	}

	product := &entity.Product{
		Name:             name,
		SKU:              sku,
		Price:            price,
		ReorderThreshold: entity.DefaultReorderThreshold,
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
	) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		if in.WarehouseID == nil {
			return nil
		}
		inv := &entity.Inventory{
			ProductID:   product.ID,
			WarehouseID: *in.WarehouseID,
			Quantity:    qty,
		}
		if err := inventoryRepo.Create(ctx, inv); err != nil {
			return err
		}
		if qty > 0 {
			return inventoryRepo.AddHistory(ctx, &entity.InventoryHistory{
				InventoryID:  inv.ID,
				ChangeAmount: qty,
				Reason:       entity.ReasonInitialStock,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateProductResponse{Message: "Product created", ProductID: product.ID}, nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) ([]dto.ProductResponse, error) {
	list, err := uc.productRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		SKU:              p.SKU,
		Price:            p.Price,
		ReorderThreshold: p.ReorderThreshold,
	}
}

// rawIsNull reporta si un campo JSON crudo está ausente o es null.
func rawIsNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// parsePrice acepta número o string numérico, exige valor no negativo y
// redondea a exactamente 2 decimales (half-even, como quantize del original).
func parsePrice(raw json.RawMessage) (decimal.Decimal, error) {
	var d decimal.Decimal
	if err := json.Unmarshal(raw, &d); err != nil {
		return decimal.Zero, domain.ErrInvalidPrice
	}
	if d.IsNegative() {
		return decimal.Zero, domain.ErrInvalidPrice
	}
	return d.RoundBank(2), nil
}

// parseInitialQuantity acepta entero o string de entero, >= 0. Ausente o null = 0.
func parseInitialQuantity(raw json.RawMessage) (int64, error) {
	if rawIsNull(raw) {
		return 0, nil
	}
	var q int64
	if err := json.Unmarshal(raw, &q); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, domain.ErrInvalidQuantity
		}
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return 0, domain.ErrInvalidQuantity
		}
		q = n
	}
	if q < 0 {
		return 0, domain.ErrInvalidQuantity
	}
	return q, nil
}
