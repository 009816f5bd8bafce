package service

import (
	"context"
	"errors"

	"cropadvisor/entities"
)

var (
	ErrDuplicateEmail     = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("login required")
	ErrPasswordTooLong    = errors.New("password too long")
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*entities.Account, error)
	Authenticate(ctx context.Context, email, password string) (string, *entities.Account, error)
	RequireSession(ctx context.Context, token string) (*entities.Account, error)
	EndSession(ctx context.Context, token string) error
}
