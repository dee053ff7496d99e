package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
	"github.com/stripe/stripe-go/v79/webhook"
	"gorm.io/gorm"

	"lankatrails/internal/config"
	"lankatrails/internal/domain"
)

// StripeService implements the card-intent flow: the client completes a
// server-created PaymentIntent and the webhook's signed success event
// confirms the booking named in the intent metadata.
type StripeService struct {
	cfg       config.StripeConfig
	currency  string
	payments  PaymentRepository
	bookings  BookingReader
	confirmer BookingConfirmer
	log       *logrus.Logger
}

func NewStripeService(
	cfg config.StripeConfig,
	currency string,
	payments PaymentRepository,
	bookings BookingReader,
	confirmer BookingConfirmer,
	log *logrus.Logger,
) *StripeService {
	stripe.Key = cfg.SecretKey
	return &StripeService{
		cfg:       cfg,
		currency:  currency,
		payments:  payments,
		bookings:  bookings,
		confirmer: confirmer,
		log:       log,
	}
}

// CreateIntent sizes the intent from the booking's stored total, converted to
// the smallest currency unit, and tags it with the identifiers the webhook
// needs to map the success event back.
func (s *StripeService) CreateIntent(ctx context.Context, touristID, bookingID int64) (*StripeIntentResponse, error) {
	if s.cfg.SecretKey == "" {
		return nil, ErrNotConfigured
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.TouristID != touristID {
		return nil, ErrForbidden
	}
	if b.Status != domain.BookingPending {
		return nil, ErrNotPending
	}

	amount := SmallestUnit(b.TotalPrice)

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(strings.ToLower(s.currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("booking_id", strconv.FormatInt(b.ID, 10))
	params.AddMetadata("tourist_id", strconv.FormatInt(b.TouristID, 10))
	params.AddMetadata("target", itemsLabel(b.Target))

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	p := &domain.GatewayPayment{
		BookingID: b.ID,
		Gateway:   domain.GatewayStripe,
		OrderRef:  pi.ID,
		Reference: uuid.NewString(),
		Amount:    b.TotalPrice,
		Currency:  s.currency,
		Status:    domain.PaymentCreated,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("save payment record: %w", err)
	}

	return &StripeIntentResponse{
		IntentID:     pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       amount,
		Currency:     s.currency,
	}, nil
}

// HandleWebhook verifies the Stripe-Signature header against the shared
// webhook secret, then confirms on payment_intent.succeeded. A signature
// mismatch rejects the event with no state change.
func (s *StripeService) HandleWebhook(ctx context.Context, payload []byte, sigHeader string) error {
	event, err := webhook.ConstructEvent(payload, sigHeader, s.cfg.WebhookSecret)
	if err != nil {
		s.log.WithError(err).Warn("stripe webhook signature verification failed")
		return ErrInvalidSignature
	}

	if event.Type != stripe.EventTypePaymentIntentSucceeded {
		return nil
	}

	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		s.log.WithError(err).Warn("stripe webhook: malformed payment intent payload")
		return nil
	}

	bookingID, err := strconv.ParseInt(pi.Metadata["booking_id"], 10, 64)
	if err != nil || bookingID <= 0 {
		s.log.WithField("intent_id", pi.ID).Warn("stripe webhook: intent without booking_id metadata")
		return nil
	}

	if err := s.confirmer.Confirm(ctx, bookingID); err != nil {
		// deliberate: the event is verified, acknowledge and keep the evidence
		s.log.WithError(err).WithField("booking_id", bookingID).
			Warn("stripe event verified but confirmation failed")
		return nil
	}

	record, err := s.payments.GetLatestByOrderRef(ctx, domain.GatewayStripe, pi.ID)
	if err == nil {
		changed, err := s.payments.MarkSucceededIdempotent(ctx, record.ID, string(event.Data.Raw))
		if err != nil {
			s.log.WithError(err).WithField("intent_id", pi.ID).Warn("failed to mark payment succeeded")
		} else if !changed {
			s.log.WithField("intent_id", pi.ID).Info("duplicate stripe event, already succeeded")
		}
	}
	return nil
}

// SmallestUnit converts a total to the gateway's integer minor unit.
func SmallestUnit(total float64) int64 {
	return int64(math.Round(total * 100))
}
