package admin

import (
	"context"

	"lankatrails/internal/domain"
)

type ProviderRepository interface {
	Create(ctx context.Context, p *domain.Provider) error
	GetByID(ctx context.Context, id int64) (*domain.Provider, error)
	ListPending(ctx context.Context) ([]domain.Provider, error)
	ListAll(ctx context.Context) ([]domain.Provider, error)
	SetApproved(ctx context.Context, id int64, approved bool) error
	Delete(ctx context.Context, id int64) error
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
	Delete(ctx context.Context, id int64) error
}
