package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gflow-server/internal/domain/entities"
	"gflow-server/internal/domain/repositories"
	"gflow-server/internal/infrastructure/logger"
)

type OrderRepositoryMongo struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func (r *OrderRepositoryMongo) Insert(ctx context.Context, order *entities.Order) (string, error) {
	result, err := r.collection.InsertOne(ctx, toOrderDocument(order))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", repositories.ErrDuplicateTracking
		}
		return "", fmt.Errorf("failed to insert order: %w", err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *OrderRepositoryMongo) TrackingIDExists(ctx context.Context, trackingID string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"trackingId": trackingID}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check tracking id: %w", err)
	}
	return count > 0, nil
}

func (r *OrderRepositoryMongo) All(ctx context.Context) ([]entities.Order, error) {
	return r.find(ctx, bson.M{})
}

func (r *OrderRepositoryMongo) ListBySupplier(ctx context.Context, supplierEmail string) ([]entities.Order, error) {
	return r.find(ctx, bson.M{"supplierEmail": supplierEmail})
}

func (r *OrderRepositoryMongo) ListByBuyer(ctx context.Context, buyerEmail string) ([]entities.Order, error) {
	return r.find(ctx, bson.M{"buyerEmail": buyerEmail})
}

func (r *OrderRepositoryMongo) UpdateStatus(ctx context.Context, id, status string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"orderStatus": status}},
	)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if result.MatchedCount == 0 {
		return repositories.ErrNotFound
	}

	if result.ModifiedCount == 0 {
		r.logger.Info("Order status already set to requested value",
			"order_id", id,
			"status", status)
	} else {
		r.logger.Info("Order status updated successfully",
			"order_id", id,
			"new_status", status)
	}

	return nil
}

func (r *OrderRepositoryMongo) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if result.DeletedCount == 0 {
		return repositories.ErrNotFound
	}

	return nil
}

func (r *OrderRepositoryMongo) find(ctx context.Context, filter bson.M) ([]entities.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := []entities.Order{}
	for cursor.Next(ctx) {
		var doc OrderDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode order: %w", err)
		}
		orders = append(orders, *toOrderEntity(&doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}

	return orders, nil
}
