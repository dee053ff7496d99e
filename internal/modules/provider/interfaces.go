package provider

import (
	"context"
	"mime/multipart"

	"lankatrails/internal/domain"
)

type ProviderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Provider, error)
	GetByOwner(ctx context.Context, ownerID int64) (*domain.Provider, error)
	ListApproved(ctx context.Context, category string) ([]domain.Provider, error)
	SetProfileImage(ctx context.Context, id int64, url string) error
	AppendGalleryImage(ctx context.Context, id int64, url string) error
}

type ImageUploader interface {
	Upload(ctx context.Context, fh *multipart.FileHeader, folder string) (string, error)
}
