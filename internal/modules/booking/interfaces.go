package booking

import (
	"context"

	"lankatrails/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByTourist(ctx context.Context, touristID int64) ([]domain.Booking, error)
	ListByProvider(ctx context.Context, providerID int64) ([]domain.Booking, error)
	ListAll(ctx context.Context) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Delete(ctx context.Context, id int64) error
}

type ProviderReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Provider, error)
	GetByOwner(ctx context.Context, ownerID int64) (*domain.Provider, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type ContactWriter interface {
	Create(ctx context.Context, cs *domain.ContactSubmission) error
}
