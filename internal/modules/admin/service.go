package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"lankatrails/internal/domain"
)

// Service covers the moderation surface: provider approval and the user
// directory. Booking, review and contact administration live with their own
// modules.
type Service struct {
	providers ProviderRepository
	users     UserRepository
	log       *logrus.Logger
}

func NewService(providers ProviderRepository, users UserRepository, log *logrus.Logger) *Service {
	return &Service{providers: providers, users: users, log: log}
}

func (s *Service) ListPendingProviders(ctx context.Context) ([]domain.Provider, error) {
	return s.providers.ListPending(ctx)
}

func (s *Service) ListAllProviders(ctx context.Context) ([]domain.Provider, error) {
	return s.providers.ListAll(ctx)
}

// ApproveProvider publishes a listing. Approving twice is a no-op.
func (s *Service) ApproveProvider(ctx context.Context, id int64) (*domain.Provider, error) {
	p, err := s.providers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if p.Approved {
		return p, nil
	}
	if err := s.providers.SetApproved(ctx, id, true); err != nil {
		return nil, err
	}
	p.Approved = true
	s.log.WithField("provider_id", id).Info("provider approved")
	return p, nil
}

// CreateProvider registers a listing on behalf of an operator. Admin-created
// listings skip the moderation queue. OwnerID may be zero for listings
// managed by staff without a provider account.
func (s *Service) CreateProvider(ctx context.Context, req CreateProviderRequest) (*domain.Provider, error) {
	category := domain.ProviderCategory(req.Category)
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, req.Category)
	}
	if req.OwnerID > 0 {
		owner, err := s.users.GetByID(ctx, req.OwnerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: owner %d", ErrNotFound, req.OwnerID)
			}
			return nil, err
		}
		if owner.Role != domain.RoleProvider {
			return nil, fmt.Errorf("%w: owner must hold the provider role", ErrValidation)
		}
	}

	p := &domain.Provider{
		OwnerID:     req.OwnerID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Category:    category,
		Location:    req.Location,
		BasePrice:   req.BasePrice,
		Description: req.Description,
		Approved:    true,
	}
	if err := s.providers.Create(ctx, p); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{
		"provider_id": p.ID,
		"category":    p.Category,
	}).Info("provider created by admin")
	return p, nil
}

func (s *Service) DeleteProvider(ctx context.Context, id int64) error {
	if err := s.providers.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.log.WithField("provider_id", id).Info("provider deleted")
	return nil
}

func (s *Service) ListTourists(ctx context.Context) ([]domain.User, error) {
	return s.users.ListByRole(ctx, domain.RoleTourist)
}

// DeleteTourist removes a tourist account. Admins and providers cannot be
// deleted through this endpoint.
func (s *Service) DeleteTourist(ctx context.Context, id int64) error {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if u.Role != domain.RoleTourist {
		return ErrNotFound
	}
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.log.WithField("user_id", id).Info("tourist deleted")
	return nil
}
