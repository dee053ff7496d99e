package review

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"lankatrails/internal/catalog"
	"lankatrails/internal/domain"
)

// Service is the moderation gate: a review is only accepted from a party
// with a confirmed booking against the target. service and product reviews
// auto-approve; tourist reviews wait for an admin.
type Service struct {
	reviews   ReviewRepository
	bookings  BookingGate
	providers ProviderReader
	users     UserReader
}

func NewService(reviews ReviewRepository, bookings BookingGate, providers ProviderReader, users UserReader) *Service {
	return &Service{reviews: reviews, bookings: bookings, providers: providers, users: users}
}

func (s *Service) Create(ctx context.Context, reviewerID int64, reviewerRole domain.UserRole, req CreateReviewRequest) (*domain.Review, error) {
	kind := domain.ReviewKind(req.Kind)
	if !kind.Valid() || req.Rating < 1 || req.Rating > 5 || strings.TrimSpace(req.Comment) == "" {
		return nil, ErrValidation
	}

	rv := &domain.Review{
		Kind:       kind,
		ReviewerID: reviewerID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	switch kind {
	case domain.ReviewService:
		if req.TargetID <= 0 {
			return nil, ErrValidation
		}
		provider, err := s.providers.GetByID(ctx, req.TargetID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		ok, err := s.bookings.HasConfirmedForProvider(ctx, reviewerID, provider.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrNotAllowed
		}
		rv.TargetProviderID = &provider.ID
		rv.Approved = true

	case domain.ReviewProduct:
		product, found := catalog.Find(req.ProductType)
		if !found {
			return nil, ErrNotFound
		}
		ok, err := s.bookings.HasConfirmedForProduct(ctx, reviewerID, product.Type)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrNotAllowed
		}
		rv.TargetProductType = product.Type
		rv.Approved = true

	case domain.ReviewTourist:
		// providers review tourists who completed a booking with them
		if reviewerRole != domain.RoleProvider {
			return nil, ErrForbidden
		}
		if req.TargetID <= 0 {
			return nil, ErrValidation
		}
		tourist, err := s.users.GetByID(ctx, req.TargetID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		if tourist.Role != domain.RoleTourist {
			return nil, ErrNotFound
		}
		ok, err := s.bookings.HasConfirmedFromTourist(ctx, reviewerID, tourist.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrNotAllowed
		}
		rv.TargetTouristID = &tourist.ID
		rv.Approved = false
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

// ListPublic returns approved reviews, silently dropping records whose
// reviewer or target no longer resolves. A public listing does not surface
// referential decay as an error.
func (s *Service) ListPublic(ctx context.Context) ([]domain.Review, error) {
	rows, err := s.reviews.ListApproved(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Review, 0, len(rows))
	for _, rv := range rows {
		if s.resolves(ctx, rv) {
			out = append(out, rv)
		}
	}
	return out, nil
}

// ListPending returns reviews waiting for moderation.
func (s *Service) ListPending(ctx context.Context) ([]domain.Review, error) {
	return s.reviews.ListPending(ctx)
}

// Approve publishes a held review. Approving an already-approved review is a
// no-op.
func (s *Service) Approve(ctx context.Context, id int64) (*domain.Review, error) {
	rv, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if rv.Approved {
		return rv, nil
	}
	if err := s.reviews.SetApproved(ctx, id, true); err != nil {
		return nil, err
	}
	rv.Approved = true
	return rv, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.reviews.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) resolves(ctx context.Context, rv domain.Review) bool {
	if _, err := s.users.GetByID(ctx, rv.ReviewerID); err != nil {
		return false
	}

	switch rv.Kind {
	case domain.ReviewService:
		if rv.TargetProviderID == nil {
			return false
		}
		_, err := s.providers.GetByID(ctx, *rv.TargetProviderID)
		return err == nil
	case domain.ReviewProduct:
		_, found := catalog.Find(rv.TargetProductType)
		return found
	case domain.ReviewTourist:
		if rv.TargetTouristID == nil {
			return false
		}
		_, err := s.users.GetByID(ctx, *rv.TargetTouristID)
		return err == nil
	}
	return false
}
