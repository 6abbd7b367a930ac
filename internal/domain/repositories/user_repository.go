package repositories

import (
	"context"

	"gflow-server/internal/domain/entities"
)

type UserRepository interface {
	Insert(ctx context.Context, user *entities.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	All(ctx context.Context) ([]entities.User, error)
	Approve(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
