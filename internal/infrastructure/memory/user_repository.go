package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gflow-server/internal/domain/entities"
	"gflow-server/internal/domain/repositories"
)

type UserRepositoryMemory struct {
	mu    sync.RWMutex
	users map[string]*entities.User
}

func NewUserRepositoryMemory() *UserRepositoryMemory {
	return &UserRepositoryMemory{
		users: make(map[string]*entities.User),
	}
}

func (r *UserRepositoryMemory) Insert(ctx context.Context, user *entities.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return "", repositories.ErrDuplicateUser
		}
	}

	id := primitive.NewObjectID().Hex()
	userCopy := *user
	userCopy.ID = id
	r.users[id] = &userCopy

	return id, nil
}

func (r *UserRepositoryMemory) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			userCopy := *user
			return &userCopy, nil
		}
	}

	return nil, repositories.ErrNotFound
}

func (r *UserRepositoryMemory) All(ctx context.Context) ([]entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := []entities.User{}
	for _, user := range r.users {
		users = append(users, *user)
	}

	return users, nil
}

func (r *UserRepositoryMemory) Approve(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[id]
	if !exists {
		return repositories.ErrNotFound
	}

	user.Status = entities.UserStatusApproved
	return nil
}

func (r *UserRepositoryMemory) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[id]; !exists {
		return repositories.ErrNotFound
	}

	delete(r.users, id)
	return nil
}
