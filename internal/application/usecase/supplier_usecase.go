package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/inventory-alerts-api/internal/application/dto"
	"github.com/jhoicas/inventory-alerts-api/internal/domain"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/entity"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/repository"
)

// SupplierUseCase casos de uso para proveedores y su asociación con productos.
type SupplierUseCase struct {
	repo        repository.SupplierRepository
	productRepo repository.ProductRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, productRepo repository.ProductRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, productRepo: productRepo}
}

// Create crea un proveedor. ContactEmail es opcional.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrMissingField
	}
	supplier := &entity.Supplier{Name: name, ContactEmail: in.ContactEmail}
	if err := uc.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return &dto.SupplierResponse{ID: supplier.ID, Name: supplier.Name, ContactEmail: supplier.ContactEmail}, nil
}

// LinkProduct asocia un proveedor a un producto (upsert del flag is_primary).
// No fuerza "a lo sumo un principal por producto": la consulta de alertas elige
// uno arbitrario si el invariante se viola.
func (uc *SupplierUseCase) LinkProduct(ctx context.Context, productID int64, in dto.LinkSupplierRequest) error {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	supplier, err := uc.repo.GetByID(ctx, in.SupplierID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	return uc.repo.LinkProduct(ctx, &entity.ProductSupplier{
		ProductID:  productID,
		SupplierID: in.SupplierID,
		IsPrimary:  in.IsPrimary,
	})
}
