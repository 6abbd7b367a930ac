package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"gflow-server/internal/domain/entities"
	"gflow-server/internal/infrastructure/logger"
)

const (
	subjectOrderCreated       = "order.created"
	subjectOrderStatusChanged = "order.status_changed"
)

type NatsPublisher struct {
	nc     *nats.Conn
	logger *logger.Logger
}

type OrderCreatedEvent struct {
	EventID       string `json:"event_id"`
	TrackingID    string `json:"tracking_id"`
	BuyerEmail    string `json:"buyer_email"`
	SupplierEmail string `json:"supplier_email"`
	CreatedAt     string `json:"created_at"`
}

type OrderStatusChangedEvent struct {
	EventID    string `json:"event_id"`
	OrderID    string `json:"order_id"`
	Status     string `json:"status"`
	OccurredAt string `json:"occurred_at"`
}

func NewNatsPublisher(url string, logger *logger.Logger) (*NatsPublisher, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var nc *nats.Conn
	var err error

	for i := 0; i < 3; i++ {
		nc, err = nats.Connect(url,
			nats.Name("GFlow Server"),
			nats.MaxReconnects(5),
			nats.ReconnectWait(2*time.Second),
			nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
				logger.Warn("NATS disconnected", "error", err)
			}),
			nats.ReconnectHandler(func(nc *nats.Conn) {
				logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
			}),
		)

		if err == nil {
			logger.Info("Connected to NATS", "url", url)
			return &NatsPublisher{nc: nc, logger: logger}, nil
		}

		logger.Warn("Failed to connect to NATS", "attempt", i+1, "error", err)

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("failed to connect to NATS: %w", err)
		case <-time.After(2 * time.Second):
			continue
		}
	}

	return nil, fmt.Errorf("failed to connect to NATS after retries: %w", err)
}

func (p *NatsPublisher) PublishOrderCreated(ctx context.Context, order *entities.Order) error {
	event := OrderCreatedEvent{
		EventID:       uuid.New().String(),
		TrackingID:    order.TrackingID,
		BuyerEmail:    order.BuyerEmail,
		SupplierEmail: order.SupplierEmail,
		CreatedAt:     order.CreatedAt.Format(time.RFC3339),
	}

	return p.publish(ctx, subjectOrderCreated, event)
}

func (p *NatsPublisher) PublishOrderStatusChanged(ctx context.Context, orderID, status string) error {
	event := OrderStatusChangedEvent{
		EventID:    uuid.New().String(),
		OrderID:    orderID,
		Status:     status,
		OccurredAt: time.Now().Format(time.RFC3339),
	}

	return p.publish(ctx, subjectOrderStatusChanged, event)
}

func (p *NatsPublisher) publish(ctx context.Context, subject string, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	for i := 0; i < 3; i++ {
		select {
		case <-ctx.Done():
			p.logger.Warn("Context cancelled while publishing to NATS", "subject", subject)
			return ctx.Err()
		default:
			err := p.nc.Publish(subject, data)
			if err != nil {
				p.logger.Warn("Failed to publish to NATS", "subject", subject, "attempt", i+1, "error", err)
				time.Sleep(1 * time.Second)
				continue
			}

			if err := p.nc.FlushTimeout(2 * time.Second); err != nil {
				p.logger.Warn("Failed to flush NATS connection", "error", err)
				continue
			}

			p.logger.Info("Published event", "subject", subject)
			return nil
		}
	}

	p.logger.Error("Failed to publish event to NATS after retries", "subject", subject)
	return fmt.Errorf("failed to publish event after retries")
}

func (p *NatsPublisher) Close() {
	if p.nc != nil && p.nc.IsConnected() {
		p.nc.Close()
		p.logger.Info("NATS connection closed")
	}
}
