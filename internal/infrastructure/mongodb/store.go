package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gflow-server/internal/infrastructure/logger"
)

const (
	productCollection = "products"
	userCollection    = "users"
	orderCollection   = "orders"
)

// Store owns the single long-lived client shared by every repository.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	logger *logger.Logger
}

func NewStore(uri, dbName string, logger *logger.Logger) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	store := &Store{
		client: client,
		db:     client.Database(dbName),
		logger: logger,
	}

	if err := store.ensureIndexes(ctx); err != nil {
		return nil, err
	}

	return store, nil
}

// ensureIndexes makes the store, not application-level check-then-insert,
// the authority on email and tracking-id uniqueness.
func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(userCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create user email index: %w", err)
	}

	_, err = s.db.Collection(orderCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "trackingId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create order tracking index: %w", err)
	}

	return nil
}

func (s *Store) Health(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (s *Store) Products() *ProductRepositoryMongo {
	return &ProductRepositoryMongo{collection: s.db.Collection(productCollection), logger: s.logger}
}

func (s *Store) Users() *UserRepositoryMongo {
	return &UserRepositoryMongo{collection: s.db.Collection(userCollection), logger: s.logger}
}

func (s *Store) Orders() *OrderRepositoryMongo {
	return &OrderRepositoryMongo{collection: s.db.Collection(orderCollection), logger: s.logger}
}
