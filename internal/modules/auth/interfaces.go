package auth

import (
	"context"

	"lankatrails/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type ProviderWriter interface {
	Create(ctx context.Context, p *domain.Provider) error
}

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}
