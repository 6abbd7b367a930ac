package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"gflow-server/internal/domain/entities"
	"gflow-server/internal/domain/repositories"
	"gflow-server/internal/infrastructure/logger"
)

type UserRepositoryMongo struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func (r *UserRepositoryMongo) Insert(ctx context.Context, user *entities.User) (string, error) {
	result, err := r.collection.InsertOne(ctx, toUserDocument(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", repositories.ErrDuplicateUser
		}
		return "", fmt.Errorf("failed to insert user: %w", err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *UserRepositoryMongo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var doc UserDocument
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return toUserEntity(&doc), nil
}

func (r *UserRepositoryMongo) All(ctx context.Context) ([]entities.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []entities.User{}
	for cursor.Next(ctx) {
		var doc UserDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}
		users = append(users, *toUserEntity(&doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

func (r *UserRepositoryMongo) Approve(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": entities.UserStatusApproved}},
	)
	if err != nil {
		return fmt.Errorf("failed to approve user: %w", err)
	}
	if result.MatchedCount == 0 {
		return repositories.ErrNotFound
	}

	if result.ModifiedCount == 0 {
		r.logger.Info("User already approved", "user_id", id)
	}

	return nil
}

func (r *UserRepositoryMongo) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if result.DeletedCount == 0 {
		return repositories.ErrNotFound
	}

	return nil
}
