package provider

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"lankatrails/internal/catalog"
	"lankatrails/internal/domain"
)

const maxUploadBytes = 8 << 20

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type Service struct {
	providers ProviderRepository
	uploader  ImageUploader
	log       *logrus.Logger
}

func NewService(providers ProviderRepository, uploader ImageUploader, log *logrus.Logger) *Service {
	return &Service{providers: providers, uploader: uploader, log: log}
}

// ListApproved returns the public directory, optionally filtered by category.
// An unknown category yields a validation error rather than an empty list so
// typos are visible to the caller.
func (s *Service) ListApproved(ctx context.Context, category string) ([]domain.Provider, error) {
	if category != "" && !domain.ProviderCategory(category).Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, category)
	}
	return s.providers.ListApproved(ctx, category)
}

// GetPublic returns a single approved provider. Unapproved listings are
// indistinguishable from missing ones for anonymous callers.
func (s *Service) GetPublic(ctx context.Context, id int64) (*domain.Provider, error) {
	p, err := s.providers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !p.Approved {
		return nil, ErrNotFound
	}
	return p, nil
}

// GetMine returns the listing owned by the authenticated provider account.
func (s *Service) GetMine(ctx context.Context, ownerID int64) (*domain.Provider, error) {
	p, err := s.providers.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// UploadImage stores an image for the caller's own listing. kind selects the
// slot: "profile" replaces the profile image, "gallery" appends.
func (s *Service) UploadImage(ctx context.Context, ownerID int64, kind string, fh *multipart.FileHeader) (string, error) {
	if kind != "profile" && kind != "gallery" {
		return "", fmt.Errorf("%w: kind must be profile or gallery", ErrValidation)
	}
	if err := checkImage(fh); err != nil {
		return "", err
	}

	p, err := s.providers.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}

	url, err := s.uploader.Upload(ctx, fh, "providers")
	if err != nil {
		s.log.WithError(err).WithField("provider_id", p.ID).Error("image upload failed")
		return "", err
	}

	if kind == "profile" {
		err = s.providers.SetProfileImage(ctx, p.ID, url)
	} else {
		err = s.providers.AppendGalleryImage(ctx, p.ID, url)
	}
	if err != nil {
		return "", err
	}

	s.log.WithFields(logrus.Fields{
		"provider_id": p.ID,
		"kind":        kind,
	}).Info("provider image stored")
	return url, nil
}

// Products returns the curated product catalog.
func (s *Service) Products() []catalog.Product {
	return catalog.Products()
}

func (s *Service) Product(productType string) (catalog.Product, error) {
	p, ok := catalog.Find(productType)
	if !ok {
		return catalog.Product{}, ErrNotFound
	}
	return p, nil
}

func checkImage(fh *multipart.FileHeader) error {
	if fh == nil {
		return fmt.Errorf("%w: missing file", ErrBadUpload)
	}
	if fh.Size > maxUploadBytes {
		return fmt.Errorf("%w: file exceeds 8MB", ErrBadUpload)
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedImageExts[ext] {
		return fmt.Errorf("%w: unsupported file type %q", ErrBadUpload, ext)
	}
	return nil
}
