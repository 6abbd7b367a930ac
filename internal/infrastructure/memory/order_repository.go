package memory

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gflow-server/internal/domain/entities"
	"gflow-server/internal/domain/repositories"
)

type OrderRepositoryMemory struct {
	mu     sync.RWMutex
	orders map[string]*entities.Order
}

func NewOrderRepositoryMemory() *OrderRepositoryMemory {
	return &OrderRepositoryMemory{
		orders: make(map[string]*entities.Order),
	}
}

func (r *OrderRepositoryMemory) Insert(ctx context.Context, order *entities.Order) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.orders {
		if existing.TrackingID == order.TrackingID {
			return "", repositories.ErrDuplicateTracking
		}
	}

	id := primitive.NewObjectID().Hex()
	orderCopy := *order
	orderCopy.ID = id
	r.orders[id] = &orderCopy

	return id, nil
}

func (r *OrderRepositoryMemory) TrackingIDExists(ctx context.Context, trackingID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, order := range r.orders {
		if order.TrackingID == trackingID {
			return true, nil
		}
	}

	return false, nil
}

func (r *OrderRepositoryMemory) All(ctx context.Context) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sorted(func(*entities.Order) bool { return true }), nil
}

func (r *OrderRepositoryMemory) ListBySupplier(ctx context.Context, supplierEmail string) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sorted(func(o *entities.Order) bool { return o.SupplierEmail == supplierEmail }), nil
}

func (r *OrderRepositoryMemory) ListByBuyer(ctx context.Context, buyerEmail string) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sorted(func(o *entities.Order) bool { return o.BuyerEmail == buyerEmail }), nil
}

func (r *OrderRepositoryMemory) UpdateStatus(ctx context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, exists := r.orders[id]
	if !exists {
		return repositories.ErrNotFound
	}

	order.Status = status
	return nil
}

func (r *OrderRepositoryMemory) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[id]; !exists {
		return repositories.ErrNotFound
	}

	delete(r.orders, id)
	return nil
}

func (r *OrderRepositoryMemory) sorted(match func(*entities.Order) bool) []entities.Order {
	orders := []entities.Order{}
	for _, o := range r.orders {
		if match(o) {
			orders = append(orders, *o)
		}
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	return orders
}
