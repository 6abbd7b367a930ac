package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gflow-server/internal/domain/entities"
	"gflow-server/internal/domain/repositories"
	"gflow-server/internal/infrastructure/memory"
)

func TestProductUseCase_CreateProduct(t *testing.T) {
	repo := memory.NewProductRepositoryMemory()
	useCase := NewProductUseCase(repo)
	ctx := context.Background()

	product, err := useCase.CreateProduct(ctx, &entities.Product{
		Title:         "Denim Jacket",
		Price:         49.99,
		Quantity:      20,
		SupplierEmail: "supplier@example.com",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.False(t, product.CreatedAt.IsZero())

	fetched, err := useCase.GetProduct(ctx, product.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Denim Jacket", fetched.Title)
}

func TestProductUseCase_HomeProducts_LimitAndOrder(t *testing.T) {
	repo := memory.NewProductRepositoryMemory()
	useCase := NewProductUseCase(repo)
	ctx := context.Background()

	base := time.Now()
	for i := 0; i < 8; i++ {
		_, err := repo.Insert(ctx, &entities.Product{
			Title:         "Shirt",
			SupplierEmail: "supplier@example.com",
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		})
		assert.NoError(t, err)
	}

	products, err := useCase.HomeProducts(ctx)
	assert.NoError(t, err)
	assert.Len(t, products, homeProductLimit)

	for i := 1; i < len(products); i++ {
		assert.True(t, products[i-1].CreatedAt.After(products[i].CreatedAt),
			"products must be sorted newest first")
	}
}

func TestProductUseCase_SupplierProducts_Scoping(t *testing.T) {
	repo := memory.NewProductRepositoryMemory()
	useCase := NewProductUseCase(repo)
	ctx := context.Background()

	for _, supplier := range []string{"a@example.com", "b@example.com", "a@example.com"} {
		_, err := repo.Insert(ctx, &entities.Product{Title: "Coat", SupplierEmail: supplier})
		assert.NoError(t, err)
	}

	products, err := useCase.SupplierProducts(ctx, "a@example.com")
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, "a@example.com", p.SupplierEmail)
	}

	_, err = useCase.SupplierProducts(ctx, "")
	assert.ErrorIs(t, err, ErrMissingEmail)
}

func TestProductUseCase_RefreshProduct(t *testing.T) {
	repo := memory.NewProductRepositoryMemory()
	useCase := NewProductUseCase(repo)
	ctx := context.Background()

	product, err := useCase.CreateProduct(ctx, &entities.Product{
		Title:         "Hoodie",
		SupplierEmail: "supplier@example.com",
	})
	assert.NoError(t, err)

	before := product.CreatedAt
	time.Sleep(5 * time.Millisecond)

	assert.NoError(t, useCase.RefreshProduct(ctx, product.ID))

	refreshed, err := useCase.GetProduct(ctx, product.ID)
	assert.NoError(t, err)
	assert.True(t, refreshed.CreatedAt.After(before))

	err = useCase.RefreshProduct(ctx, "665f1f77bcf86cd799439099")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestProductUseCase_DeleteProduct_NotFound(t *testing.T) {
	repo := memory.NewProductRepositoryMemory()
	useCase := NewProductUseCase(repo)

	err := useCase.DeleteProduct(context.Background(), "665f1f77bcf86cd799439099")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
