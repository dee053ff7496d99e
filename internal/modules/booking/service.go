package booking

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"lankatrails/internal/catalog"
	"lankatrails/internal/domain"
)

const dateLayout = "2006-01-02"

// Service is the booking lifecycle manager. Bookings are created pending and
// reach confirmed only through admin approval or a verified payment signal;
// tourists never transition status themselves.
type Service struct {
	bookings   BookingRepository
	providers  ProviderReader
	users      UserReader
	contacts   ContactWriter
	multiplier float64
	log        *logrus.Logger
}

func NewService(
	bookings BookingRepository,
	providers ProviderReader,
	users UserReader,
	contacts ContactWriter,
	multiplier float64,
	log *logrus.Logger,
) *Service {
	return &Service{
		bookings:   bookings,
		providers:  providers,
		users:      users,
		contacts:   contacts,
		multiplier: multiplier,
		log:        log,
	}
}

func (s *Service) CreateProviderBooking(ctx context.Context, actorID int64, actorRole domain.UserRole, req CreateProviderBookingRequest) (*domain.Booking, error) {
	if actorRole != domain.RoleTourist {
		return nil, ErrForbidden
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrValidation
	}

	provider, err := s.providers.GetByID(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	// unapproved providers are unbookable and invisible to tourists
	if !provider.Approved {
		return nil, ErrNotFound
	}

	price, err := ComputeProviderPrice(provider.BasePrice, req.Adults, req.Children, s.multiplier)
	if err != nil {
		return nil, err
	}

	contactID, err := s.saveContact(ctx, req.Contact)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		Target:       domain.ProviderTarget(provider.ID),
		TouristID:    actorID,
		Date:         date,
		TimeSlot:     req.TimeSlot,
		Adults:       req.Adults,
		Children:     req.Children,
		TotalPrice:   price,
		SpecialNotes: req.SpecialNotes,
		ContactID:    &contactID,
		Status:       domain.BookingPending,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) CreateProductBooking(ctx context.Context, actorID int64, actorRole domain.UserRole, req CreateProductBookingRequest) (*domain.Booking, error) {
	if actorRole != domain.RoleTourist {
		return nil, ErrForbidden
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrValidation
	}

	product, ok := catalog.Find(req.ProductType)
	if !ok {
		return nil, ErrNotFound
	}

	var price float64
	if product.HasTiers() {
		price, err = ComputeProductPrice(product, req.Adults, req.Children)
		if err != nil {
			return nil, err
		}
	} else {
		// no published rate server-side; the caller supplies the agreed total
		if err := validateHeadcount(req.Adults, req.Children); err != nil {
			return nil, err
		}
		if req.TotalPrice <= 0 {
			return nil, ErrValidation
		}
		price = req.TotalPrice
	}

	contactID, err := s.saveContact(ctx, req.Contact)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		Target:       domain.ProductTarget(product.Type),
		TouristID:    actorID,
		Date:         date,
		TimeSlot:     req.TimeSlot,
		Adults:       req.Adults,
		Children:     req.Children,
		TotalPrice:   price,
		SpecialNotes: req.SpecialNotes,
		ContactID:    &contactID,
		Status:       domain.BookingPending,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// AdminCreate validates referenced entities but skips the tourist-role and
// provider-approval gates.
func (s *Service) AdminCreate(ctx context.Context, req AdminCreateBookingRequest) (*domain.Booking, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrValidation
	}

	tourist, err := s.users.GetByID(ctx, req.TouristID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var target domain.BookingTarget
	var price float64

	switch req.Kind {
	case string(domain.TargetProvider):
		if req.ProviderID <= 0 {
			return nil, ErrValidation
		}
		provider, err := s.providers.GetByID(ctx, req.ProviderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		target = domain.ProviderTarget(provider.ID)
		if req.TotalPrice > 0 {
			price = req.TotalPrice
		} else {
			price, err = ComputeProviderPrice(provider.BasePrice, req.Adults, req.Children, s.multiplier)
			if err != nil {
				return nil, err
			}
		}
	case string(domain.TargetProduct):
		product, ok := catalog.Find(req.ProductType)
		if !ok {
			return nil, ErrNotFound
		}
		target = domain.ProductTarget(product.Type)
		if req.TotalPrice > 0 {
			price = req.TotalPrice
		} else if product.HasTiers() {
			price, err = ComputeProductPrice(product, req.Adults, req.Children)
			if err != nil {
				return nil, err
			}
		} else {
			return nil, ErrNoPricing
		}
	default:
		return nil, ErrValidation
	}

	var contactID *int64
	if req.Contact != nil {
		id, err := s.saveContact(ctx, *req.Contact)
		if err != nil {
			return nil, err
		}
		contactID = &id
	}

	b := &domain.Booking{
		Target:       target,
		TouristID:    tourist.ID,
		Date:         date,
		TimeSlot:     req.TimeSlot,
		Adults:       req.Adults,
		Children:     req.Children,
		TotalPrice:   price,
		SpecialNotes: req.SpecialNotes,
		ContactID:    contactID,
		Status:       domain.BookingPending,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Approve sets status to confirmed regardless of the current status; the end
// state is always confirmed, so re-approving is harmless.
func (s *Service) Approve(ctx context.Context, id int64) (*domain.Booking, error) {
	if _, err := s.bookings.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.bookings.UpdateStatus(ctx, id, domain.BookingConfirmed); err != nil {
		return nil, err
	}
	return s.bookings.GetByID(ctx, id)
}

// Cancel is admin-only; pending and confirmed bookings both cancel.
func (s *Service) Cancel(ctx context.Context, id int64) (*domain.Booking, error) {
	if _, err := s.bookings.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.bookings.UpdateStatus(ctx, id, domain.BookingCancelled); err != nil {
		return nil, err
	}
	return s.bookings.GetByID(ctx, id)
}

// Confirm is the single transition both payment adapters converge on. It is
// idempotent: confirming an already-confirmed booking is a success no-op, so
// gateway callback retries never error or double-fire.
func (s *Service) Confirm(ctx context.Context, bookingID int64) error {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if b.Status == domain.BookingConfirmed {
		return nil
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingConfirmed); err != nil {
		return err
	}
	s.log.WithField("booking_id", bookingID).Info("booking confirmed by payment")
	return nil
}

// Delete hard-deletes the booking; the linked contact submission stays.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// ListMine scopes by role: tourists see their own bookings, providers the
// bookings targeting their provider record, admins everything.
func (s *Service) ListMine(ctx context.Context, userID int64, role domain.UserRole) ([]domain.Booking, error) {
	switch role {
	case domain.RoleTourist:
		return s.bookings.ListByTourist(ctx, userID)
	case domain.RoleProvider:
		provider, err := s.providers.GetByOwner(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return []domain.Booking{}, nil
			}
			return nil, err
		}
		return s.bookings.ListByProvider(ctx, provider.ID)
	case domain.RoleAdmin:
		return s.bookings.ListAll(ctx)
	}
	return nil, ErrForbidden
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.ListAll(ctx)
}

func (s *Service) saveContact(ctx context.Context, payload ContactPayload) (int64, error) {
	cs := &domain.ContactSubmission{
		Name:    payload.Name,
		Email:   payload.Email,
		Phone:   payload.Phone,
		Message: payload.Message,
	}
	if err := s.contacts.Create(ctx, cs); err != nil {
		return 0, err
	}
	return cs.ID, nil
}
