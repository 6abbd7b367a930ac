package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gflow-server/internal/domain/entities"
	"gflow-server/internal/domain/repositories"
)

type ProductRepositoryMemory struct {
	mu       sync.RWMutex
	products map[string]*entities.Product
}

func NewProductRepositoryMemory() *ProductRepositoryMemory {
	return &ProductRepositoryMemory{
		products: make(map[string]*entities.Product),
	}
}

func (r *ProductRepositoryMemory) Insert(ctx context.Context, product *entities.Product) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := primitive.NewObjectID().Hex()
	productCopy := *product
	productCopy.ID = id
	r.products[id] = &productCopy

	return id, nil
}

func (r *ProductRepositoryMemory) Latest(ctx context.Context, limit int64) ([]entities.Product, error) {
	products, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	if int64(len(products)) > limit {
		products = products[:limit]
	}
	return products, nil
}

func (r *ProductRepositoryMemory) All(ctx context.Context) ([]entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sorted(func(*entities.Product) bool { return true }), nil
}

func (r *ProductRepositoryMemory) GetByID(ctx context.Context, id string) (*entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, exists := r.products[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}

	productCopy := *product
	return &productCopy, nil
}

func (r *ProductRepositoryMemory) TouchCreatedAt(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, exists := r.products[id]
	if !exists {
		return repositories.ErrNotFound
	}

	product.CreatedAt = time.Now()
	return nil
}

func (r *ProductRepositoryMemory) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[id]; !exists {
		return repositories.ErrNotFound
	}

	delete(r.products, id)
	return nil
}

func (r *ProductRepositoryMemory) ListBySupplier(ctx context.Context, supplierEmail string) ([]entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sorted(func(p *entities.Product) bool { return p.SupplierEmail == supplierEmail }), nil
}

// sorted copies matching products out newest-first, mirroring the
// createdAt sort the document store applies.
func (r *ProductRepositoryMemory) sorted(match func(*entities.Product) bool) []entities.Product {
	products := []entities.Product{}
	for _, p := range r.products {
		if match(p) {
			products = append(products, *p)
		}
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})

	return products
}
