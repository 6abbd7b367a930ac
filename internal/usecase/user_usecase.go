package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gflow-server/internal/domain/entities"
	"gflow-server/internal/domain/repositories"
)

type UserUseCase struct {
	userRepo repositories.UserRepository
}

func NewUserUseCase(userRepo repositories.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// RegisterUser saves a new account in pending status. The email lookup
// gives a friendly conflict response; the unique index on email is what
// actually closes the check-then-insert race.
func (uc *UserUseCase) RegisterUser(ctx context.Context, user *entities.User) (*entities.User, error) {
	if user.Email == "" || user.Name == "" || user.Role == "" {
		return nil, ErrMissingFields
	}

	existing, err := uc.userRepo.FindByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		return nil, repositories.ErrDuplicateUser
	}

	user.Status = entities.UserStatusPending
	user.CreatedAt = time.Now()

	id, err := uc.userRepo.Insert(ctx, user)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateUser) {
			return nil, repositories.ErrDuplicateUser
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	user.ID = id

	return user, nil
}

func (uc *UserUseCase) AllUsers(ctx context.Context) ([]entities.User, error) {
	return uc.userRepo.All(ctx)
}

// ApproveUser flips status to approved. Repeated calls succeed with the
// status unchanged.
func (uc *UserUseCase) ApproveUser(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidUserID
	}
	return uc.userRepo.Approve(ctx, id)
}

func (uc *UserUseCase) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidUserID
	}
	return uc.userRepo.Delete(ctx, id)
}

func (uc *UserUseCase) Profile(ctx context.Context, email string) (*entities.User, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}
	return uc.userRepo.FindByEmail(ctx, email)
}

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrMissingEmail  = errors.New("email is required")
	ErrInvalidUserID = errors.New("invalid user ID")
)
