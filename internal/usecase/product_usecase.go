package usecase

import (
	"context"
	"time"

	"gflow-server/internal/domain/entities"
	"gflow-server/internal/domain/repositories"
)

// homeProductLimit caps the storefront listing to the newest products.
const homeProductLimit = 6

type ProductUseCase struct {
	productRepo repositories.ProductRepository
}

func NewProductUseCase(productRepo repositories.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, product *entities.Product) (*entities.Product, error) {
	product.CreatedAt = time.Now()

	id, err := uc.productRepo.Insert(ctx, product)
	if err != nil {
		return nil, err
	}
	product.ID = id

	return product, nil
}

func (uc *ProductUseCase) HomeProducts(ctx context.Context) ([]entities.Product, error) {
	return uc.productRepo.Latest(ctx, homeProductLimit)
}

func (uc *ProductUseCase) AllProducts(ctx context.Context) ([]entities.Product, error) {
	return uc.productRepo.All(ctx)
}

func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*entities.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

// RefreshProduct bumps createdAt so the product resurfaces at the top of
// the newest-first listings.
func (uc *ProductUseCase) RefreshProduct(ctx context.Context, id string) error {
	return uc.productRepo.TouchCreatedAt(ctx, id)
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id string) error {
	return uc.productRepo.Delete(ctx, id)
}

func (uc *ProductUseCase) SupplierProducts(ctx context.Context, supplierEmail string) ([]entities.Product, error) {
	if supplierEmail == "" {
		return nil, ErrMissingEmail
	}
	return uc.productRepo.ListBySupplier(ctx, supplierEmail)
}
