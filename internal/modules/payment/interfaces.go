package payment

import (
	"context"

	"lankatrails/internal/domain"
)

// BookingConfirmer is the one capability both gateway adapters converge on.
// Implementations must treat confirming an already-confirmed booking as a
// success no-op so callback retries stay safe.
type BookingConfirmer interface {
	Confirm(ctx context.Context, bookingID int64) error
}

type BookingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.GatewayPayment) error
	GetLatestByOrderRef(ctx context.Context, gateway domain.PaymentGateway, orderRef string) (*domain.GatewayPayment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.PaymentRecordStatus, rawCallback string) error
	MarkSucceededIdempotent(ctx context.Context, id int64, rawCallback string) (bool, error)
}
