package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gflow-server/internal/domain/entities"
	"gflow-server/internal/domain/repositories"
	"gflow-server/internal/infrastructure/memory"
)

var trackingPattern = regexp.MustCompile(`^GFW-[A-Za-z0-9]{8}$`)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Insert(ctx context.Context, order *entities.Order) (string, error) {
	args := m.Called(ctx, order)
	return args.String(0), args.Error(1)
}

func (m *MockOrderRepository) TrackingIDExists(ctx context.Context, trackingID string) (bool, error) {
	args := m.Called(ctx, trackingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) All(ctx context.Context) ([]entities.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Order), args.Error(1)
}

func (m *MockOrderRepository) ListBySupplier(ctx context.Context, supplierEmail string) ([]entities.Order, error) {
	args := m.Called(ctx, supplierEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByBuyer(ctx context.Context, buyerEmail string) ([]entities.Order, error) {
	args := m.Called(ctx, buyerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishOrderCreated(ctx context.Context, order *entities.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishOrderStatusChanged(ctx context.Context, orderID, status string) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() {
	m.Called()
}

func TestOrderUseCase_PlaceOrder(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockPub := new(MockEventPublisher)

	useCase := NewOrderUseCase(mockRepo, mockPub)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)

	mockRepo.On("TrackingIDExists", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)
	mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("*entities.Order")).
		Return("665f1f77bcf86cd799439011", nil).
		Run(func(args mock.Arguments) {
			order := args.Get(1).(*entities.Order)
			assert.Equal(t, entities.OrderStatusPending, order.Status)
			assert.Regexp(t, trackingPattern, order.TrackingID)
			assert.False(t, order.CreatedAt.IsZero())
		})

	mockPub.On("PublishOrderCreated", mock.Anything, mock.AnythingOfType("*entities.Order")).
		Return(nil).
		Run(func(args mock.Arguments) {
			wg.Done()
		})

	order, err := useCase.PlaceOrder(ctx, &entities.Order{
		BuyerEmail:    "buyer@example.com",
		SupplierEmail: "supplier@example.com",
	})

	assert.NoError(t, err)
	assert.NotNil(t, order)
	assert.Equal(t, "665f1f77bcf86cd799439011", order.ID)
	assert.Equal(t, entities.OrderStatusPending, order.Status)
	assert.Regexp(t, trackingPattern, order.TrackingID)

	wg.Wait()

	mockRepo.AssertExpectations(t)
	mockPub.AssertExpectations(t)
}

func TestOrderUseCase_PlaceOrder_PublishErrorNotFatal(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockPub := new(MockEventPublisher)

	useCase := NewOrderUseCase(mockRepo, mockPub)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)

	mockRepo.On("TrackingIDExists", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)
	mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("*entities.Order")).
		Return("665f1f77bcf86cd799439012", nil)

	mockPub.On("PublishOrderCreated", mock.Anything, mock.AnythingOfType("*entities.Order")).
		Return(errors.New("nats connection failed")).
		Run(func(args mock.Arguments) {
			wg.Done()
		})

	order, err := useCase.PlaceOrder(ctx, &entities.Order{
		BuyerEmail:    "buyer@example.com",
		SupplierEmail: "supplier@example.com",
	})

	assert.NoError(t, err)
	assert.NotNil(t, order)

	wg.Wait()

	mockRepo.AssertExpectations(t)
	mockPub.AssertExpectations(t)
}

func TestOrderUseCase_PlaceOrder_InvalidInput(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockPub := new(MockEventPublisher)

	useCase := NewOrderUseCase(mockRepo, mockPub)
	ctx := context.Background()

	tests := []struct {
		name    string
		order   *entities.Order
		wantErr error
	}{
		{
			name:    "missing buyer email",
			order:   &entities.Order{SupplierEmail: "supplier@example.com"},
			wantErr: ErrInvalidBuyerEmail,
		},
		{
			name:    "missing supplier email",
			order:   &entities.Order{BuyerEmail: "buyer@example.com"},
			wantErr: ErrInvalidSupplierEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := useCase.PlaceOrder(ctx, tt.order)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, order)

			mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
			mockPub.AssertNotCalled(t, "PublishOrderCreated", mock.Anything, mock.Anything)
		})
	}
}

func TestAllocateTrackingID_RetriesOnCollision(t *testing.T) {
	mockRepo := new(MockOrderRepository)

	useCase := NewOrderUseCase(mockRepo, nil)

	draws := []string{"AAAAAAAA", "BBBBBBBB"}
	useCase.draw = func(n int) string {
		code := draws[0]
		draws = draws[1:]
		return code
	}

	mockRepo.On("TrackingIDExists", mock.Anything, "GFW-AAAAAAAA").Return(true, nil).Once()
	mockRepo.On("TrackingIDExists", mock.Anything, "GFW-BBBBBBBB").Return(false, nil).Once()

	code, err := useCase.AllocateTrackingID(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "GFW-BBBBBBBB", code)
	mockRepo.AssertExpectations(t)
}

func TestAllocateTrackingID_FallsBackToLongerCode(t *testing.T) {
	mockRepo := new(MockOrderRepository)

	useCase := NewOrderUseCase(mockRepo, nil)
	useCase.draw = func(n int) string {
		return strings.Repeat("Z", n)
	}

	shortCode := "GFW-" + strings.Repeat("Z", trackingCodeLen)
	longCode := "GFW-" + strings.Repeat("Z", trackingCodeLenLong)

	mockRepo.On("TrackingIDExists", mock.Anything, shortCode).Return(true, nil).Times(maxCodeAttempts)
	mockRepo.On("TrackingIDExists", mock.Anything, longCode).Return(false, nil).Once()

	code, err := useCase.AllocateTrackingID(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, longCode, code)
	mockRepo.AssertExpectations(t)
}

func TestAllocateTrackingID_Exhausted(t *testing.T) {
	mockRepo := new(MockOrderRepository)

	useCase := NewOrderUseCase(mockRepo, nil)

	mockRepo.On("TrackingIDExists", mock.Anything, mock.AnythingOfType("string")).Return(true, nil)

	code, err := useCase.AllocateTrackingID(context.Background())

	assert.ErrorIs(t, err, ErrTrackingExhausted)
	assert.Empty(t, code)
	mockRepo.AssertNumberOfCalls(t, "TrackingIDExists", 2*maxCodeAttempts)
	mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestOrderUseCase_PlaceOrder_RetriesOnDuplicateInsert(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockPub := new(MockEventPublisher)

	useCase := NewOrderUseCase(mockRepo, mockPub)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)

	mockRepo.On("TrackingIDExists", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)
	mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("*entities.Order")).
		Return("", repositories.ErrDuplicateTracking).Once()
	mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("*entities.Order")).
		Return("665f1f77bcf86cd799439013", nil).Once()

	mockPub.On("PublishOrderCreated", mock.Anything, mock.AnythingOfType("*entities.Order")).
		Return(nil).
		Run(func(args mock.Arguments) {
			wg.Done()
		})

	order, err := useCase.PlaceOrder(ctx, &entities.Order{
		BuyerEmail:    "buyer@example.com",
		SupplierEmail: "supplier@example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, "665f1f77bcf86cd799439013", order.ID)

	wg.Wait()

	mockRepo.AssertExpectations(t)
	mockPub.AssertExpectations(t)
}

func TestOrderUseCase_Transitions(t *testing.T) {
	tests := []struct {
		name       string
		transition func(uc *OrderUseCase, ctx context.Context, id string) error
		wantStatus string
	}{
		{
			name:       "approve",
			transition: (*OrderUseCase).ApproveOrder,
			wantStatus: entities.OrderStatusApproved,
		},
		{
			name:       "reject",
			transition: (*OrderUseCase).RejectOrder,
			wantStatus: entities.OrderStatusRejected,
		},
		{
			name:       "cancel",
			transition: (*OrderUseCase).CancelOrder,
			wantStatus: entities.OrderStatusCancelled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockOrderRepository)
			mockPub := new(MockEventPublisher)

			useCase := NewOrderUseCase(mockRepo, mockPub)

			var wg sync.WaitGroup
			wg.Add(1)

			mockRepo.On("UpdateStatus", mock.Anything, "order-1", tt.wantStatus).Return(nil)
			mockPub.On("PublishOrderStatusChanged", mock.Anything, "order-1", tt.wantStatus).
				Return(nil).
				Run(func(args mock.Arguments) {
					wg.Done()
				})

			err := tt.transition(useCase, context.Background(), "order-1")

			assert.NoError(t, err)
			wg.Wait()

			mockRepo.AssertExpectations(t)
			mockPub.AssertExpectations(t)
		})
	}
}

func TestOrderUseCase_Transition_NotFound(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockPub := new(MockEventPublisher)

	useCase := NewOrderUseCase(mockRepo, mockPub)

	mockRepo.On("UpdateStatus", mock.Anything, "missing", entities.OrderStatusApproved).
		Return(repositories.ErrNotFound)

	err := useCase.ApproveOrder(context.Background(), "missing")

	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockPub.AssertNotCalled(t, "PublishOrderStatusChanged", mock.Anything, mock.Anything, mock.Anything)
}

// A terminal order is not guarded against further transitions: rejecting
// an approved order succeeds. This pins the current behavior so a future
// guard shows up as a deliberate change.
func TestOrderLifecycle_DoubleTransitionAllowed(t *testing.T) {
	repo := memory.NewOrderRepositoryMemory()
	useCase := NewOrderUseCase(repo, nil)
	ctx := context.Background()

	order, err := useCase.PlaceOrder(ctx, &entities.Order{
		BuyerEmail:    "buyer@example.com",
		SupplierEmail: "supplier@example.com",
	})
	assert.NoError(t, err)
	assert.Equal(t, entities.OrderStatusPending, order.Status)

	assert.NoError(t, useCase.ApproveOrder(ctx, order.ID))
	assert.NoError(t, useCase.RejectOrder(ctx, order.ID))

	orders, err := useCase.BuyerOrders(ctx, "buyer@example.com")
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, entities.OrderStatusRejected, orders[0].Status)
}

func TestOrderUseCase_TrackingIDsUnique(t *testing.T) {
	repo := memory.NewOrderRepositoryMemory()
	useCase := NewOrderUseCase(repo, nil)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		order, err := useCase.PlaceOrder(ctx, &entities.Order{
			BuyerEmail:    "buyer@example.com",
			SupplierEmail: "supplier@example.com",
		})
		assert.NoError(t, err)
		assert.Regexp(t, trackingPattern, order.TrackingID)
		assert.False(t, seen[order.TrackingID], "duplicate tracking id %s", order.TrackingID)
		seen[order.TrackingID] = true
	}
}

func TestOrderUseCase_SupplierOrders_Scoping(t *testing.T) {
	repo := memory.NewOrderRepositoryMemory()
	useCase := NewOrderUseCase(repo, nil)
	ctx := context.Background()

	for i, supplier := range []string{"a@example.com", "b@example.com", "a@example.com"} {
		_, err := repo.Insert(ctx, &entities.Order{
			TrackingID:    "GFW-SCOPE000" + string(rune('0'+i)),
			BuyerEmail:    "buyer@example.com",
			SupplierEmail: supplier,
			Status:        entities.OrderStatusPending,
		})
		assert.NoError(t, err)
	}

	orders, err := useCase.SupplierOrders(ctx, "a@example.com")
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	for _, o := range orders {
		assert.Equal(t, "a@example.com", o.SupplierEmail)
	}

	_, err = useCase.SupplierOrders(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidSupplierEmail)
}

func TestOrderUseCase_DeleteOrder_NotFound(t *testing.T) {
	repo := memory.NewOrderRepositoryMemory()
	useCase := NewOrderUseCase(repo, nil)

	err := useCase.DeleteOrder(context.Background(), "665f1f77bcf86cd799439099")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
