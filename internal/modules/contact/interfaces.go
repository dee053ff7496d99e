package contact

import (
	"context"

	"lankatrails/internal/domain"
)

type ContactRepository interface {
	Create(ctx context.Context, cs *domain.ContactSubmission) error
	ListAll(ctx context.Context) ([]domain.ContactSubmission, error)
	Delete(ctx context.Context, id int64) error
}
