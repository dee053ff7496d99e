package review

import (
	"context"

	"lankatrails/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	ListApproved(ctx context.Context) ([]domain.Review, error)
	ListPending(ctx context.Context) ([]domain.Review, error)
	SetApproved(ctx context.Context, id int64, approved bool) error
	Delete(ctx context.Context, id int64) error
}

// BookingGate answers whether a reviewer holds a confirmed booking matching
// the review target.
type BookingGate interface {
	HasConfirmedForProvider(ctx context.Context, touristID, providerID int64) (bool, error)
	HasConfirmedForProduct(ctx context.Context, touristID int64, productType string) (bool, error)
	HasConfirmedFromTourist(ctx context.Context, ownerUserID, touristID int64) (bool, error)
}

type ProviderReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Provider, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
