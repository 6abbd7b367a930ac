package repositories

import (
	"context"

	"gflow-server/internal/domain/entities"
)

type OrderRepository interface {
	Insert(ctx context.Context, order *entities.Order) (string, error)
	TrackingIDExists(ctx context.Context, trackingID string) (bool, error)
	All(ctx context.Context) ([]entities.Order, error)
	ListBySupplier(ctx context.Context, supplierEmail string) ([]entities.Order, error)
	ListByBuyer(ctx context.Context, buyerEmail string) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}
