package repository

import (
	"context"
	"errors"

	"cropadvisor/entities"
)

var (
	ErrNotFound       = errors.New("account not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

type AccountRepository interface {
	Create(ctx context.Context, a *entities.Account) error
	EmailExists(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*entities.Account, error)
	FindByID(ctx context.Context, id uint) (*entities.Account, error)
}
