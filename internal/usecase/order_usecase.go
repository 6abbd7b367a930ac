package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"gflow-server/internal/domain/entities"
	"gflow-server/internal/domain/repositories"
)

type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, order *entities.Order) error
	PublishOrderStatusChanged(ctx context.Context, orderID, status string) error
	Close()
}

const (
	trackingPrefix   = "GFW-"
	trackingAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// Code length doubles after maxCodeAttempts collisions so allocation
	// cannot spin forever on a crowded identifier space.
	trackingCodeLen     = 8
	trackingCodeLenLong = 12
	maxCodeAttempts     = 5

	// Losing the unique-index race at insert time triggers one full
	// re-allocation pass before giving up.
	maxInsertAttempts = 2
)

type OrderUseCase struct {
	orderRepo repositories.OrderRepository
	publisher EventPublisher
	draw      func(n int) string
}

func NewOrderUseCase(orderRepo repositories.OrderRepository, publisher EventPublisher) *OrderUseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
		publisher: publisher,
		draw:      randomCode,
	}
}

func randomCode(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = trackingAlphabet[rand.Intn(len(trackingAlphabet))]
	}
	return string(b)
}

// AllocateTrackingID draws GFW-prefixed codes until one is unused in the
// orders collection. The check is not atomic with the caller's insert;
// the unique index on trackingId backstops the race.
func (uc *OrderUseCase) AllocateTrackingID(ctx context.Context) (string, error) {
	for _, length := range []int{trackingCodeLen, trackingCodeLenLong} {
		for attempt := 0; attempt < maxCodeAttempts; attempt++ {
			code := trackingPrefix + uc.draw(length)

			exists, err := uc.orderRepo.TrackingIDExists(ctx, code)
			if err != nil {
				return "", fmt.Errorf("failed to check tracking id: %w", err)
			}
			if !exists {
				return code, nil
			}
		}
	}
	return "", ErrTrackingExhausted
}

func (uc *OrderUseCase) PlaceOrder(ctx context.Context, order *entities.Order) (*entities.Order, error) {
	if order.BuyerEmail == "" {
		return nil, ErrInvalidBuyerEmail
	}
	if order.SupplierEmail == "" {
		return nil, ErrInvalidSupplierEmail
	}

	for attempt := 0; attempt < maxInsertAttempts; attempt++ {
		trackingID, err := uc.AllocateTrackingID(ctx)
		if err != nil {
			return nil, err
		}

		order.TrackingID = trackingID
		order.Status = entities.OrderStatusPending
		order.CreatedAt = time.Now()

		id, err := uc.orderRepo.Insert(ctx, order)
		if err != nil {
			if errors.Is(err, repositories.ErrDuplicateTracking) {
				continue
			}
			return nil, fmt.Errorf("failed to create order: %w", err)
		}
		order.ID = id

		uc.publishAsync(func(pubCtx context.Context) error {
			return uc.publisher.PublishOrderCreated(pubCtx, order)
		})

		return order, nil
	}

	return nil, ErrTrackingExhausted
}

func (uc *OrderUseCase) AllOrders(ctx context.Context) ([]entities.Order, error) {
	return uc.orderRepo.All(ctx)
}

func (uc *OrderUseCase) SupplierOrders(ctx context.Context, supplierEmail string) ([]entities.Order, error) {
	if supplierEmail == "" {
		return nil, ErrInvalidSupplierEmail
	}
	return uc.orderRepo.ListBySupplier(ctx, supplierEmail)
}

func (uc *OrderUseCase) BuyerOrders(ctx context.Context, buyerEmail string) ([]entities.Order, error) {
	if buyerEmail == "" {
		return nil, ErrInvalidBuyerEmail
	}
	return uc.orderRepo.ListByBuyer(ctx, buyerEmail)
}

func (uc *OrderUseCase) ApproveOrder(ctx context.Context, id string) error {
	return uc.transition(ctx, id, entities.OrderStatusApproved)
}

func (uc *OrderUseCase) RejectOrder(ctx context.Context, id string) error {
	return uc.transition(ctx, id, entities.OrderStatusRejected)
}

func (uc *OrderUseCase) CancelOrder(ctx context.Context, id string) error {
	return uc.transition(ctx, id, entities.OrderStatusCancelled)
}

// transition writes the target status literal. Orders already in a
// terminal state are not guarded against re-entry; approving a rejected
// order succeeds, matching how the lifecycle has always behaved.
func (uc *OrderUseCase) transition(ctx context.Context, id, status string) error {
	if id == "" {
		return ErrInvalidOrderID
	}
	if !entities.ValidOrderStatus(status) {
		return ErrInvalidStatus
	}

	if err := uc.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	uc.publishAsync(func(pubCtx context.Context) error {
		return uc.publisher.PublishOrderStatusChanged(pubCtx, id, status)
	})

	return nil
}

func (uc *OrderUseCase) DeleteOrder(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidOrderID
	}
	return uc.orderRepo.Delete(ctx, id)
}

// publishAsync fires an event without holding up the request; a failed
// publish is logged by the publisher and never fails the caller.
func (uc *OrderUseCase) publishAsync(publish func(ctx context.Context) error) {
	if uc.publisher == nil {
		return
	}

	go func() {
		pubCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := publish(pubCtx); err != nil {
			fmt.Printf("Warning: failed to publish order event: %v\n", err)
		}
	}()
}

var (
	ErrInvalidOrderID       = errors.New("invalid order ID")
	ErrInvalidBuyerEmail    = errors.New("buyer email is required")
	ErrInvalidSupplierEmail = errors.New("supplier email is required")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrTrackingExhausted    = errors.New("tracking id space exhausted")
)
