package auth

import (
	"context"

	"staybook/internal/domain"
)

// UserRepository covers only what the auth service needs.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
