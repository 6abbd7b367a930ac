package repositories

import (
	"context"

	"gflow-server/internal/domain/entities"
)

type ProductRepository interface {
	Insert(ctx context.Context, product *entities.Product) (string, error)
	Latest(ctx context.Context, limit int64) ([]entities.Product, error)
	All(ctx context.Context) ([]entities.Product, error)
	GetByID(ctx context.Context, id string) (*entities.Product, error)
	TouchCreatedAt(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	ListBySupplier(ctx context.Context, supplierEmail string) ([]entities.Product, error)
}
