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

type ProductRepositoryMongo struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func (r *ProductRepositoryMongo) Insert(ctx context.Context, product *entities.Product) (string, error) {
	result, err := r.collection.InsertOne(ctx, toProductDocument(product))
	if err != nil {
		return "", fmt.Errorf("failed to insert product: %w", err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ProductRepositoryMongo) Latest(ctx context.Context, limit int64) ([]entities.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	return r.find(ctx, bson.M{}, opts)
}

func (r *ProductRepositoryMongo) All(ctx context.Context) ([]entities.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.find(ctx, bson.M{}, opts)
}

func (r *ProductRepositoryMongo) GetByID(ctx context.Context, id string) (*entities.Product, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc ProductDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return toProductEntity(&doc), nil
}

func (r *ProductRepositoryMongo) TouchCreatedAt(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$currentDate": bson.M{"createdAt": true}},
	)
	if err != nil {
		return fmt.Errorf("failed to refresh product: %w", err)
	}
	if result.MatchedCount == 0 {
		return repositories.ErrNotFound
	}

	r.logger.Info("Product timestamp refreshed", "product_id", id)
	return nil
}

func (r *ProductRepositoryMongo) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if result.DeletedCount == 0 {
		return repositories.ErrNotFound
	}

	return nil
}

func (r *ProductRepositoryMongo) ListBySupplier(ctx context.Context, supplierEmail string) ([]entities.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.find(ctx, bson.M{"supplierEmail": supplierEmail}, opts)
}

func (r *ProductRepositoryMongo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]entities.Product, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []entities.Product{}
	for cursor.Next(ctx) {
		var doc ProductDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode product: %w", err)
		}
		products = append(products, *toProductEntity(&doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}
