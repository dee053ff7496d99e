package payment

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"lankatrails/internal/config"
	"lankatrails/internal/domain"
)

// payHereSuccessCode is the status_code value the gateway sends for a
// completed payment.
const payHereSuccessCode = "2"

// PayHereService implements the hosted-page flow: it derives the checkout
// hash the external page requires and verifies the md5sig on the
// server-to-server notification before confirming the booking.
type PayHereService struct {
	cfg       config.PayHereConfig
	currency  string
	payments  PaymentRepository
	bookings  BookingReader
	confirmer BookingConfirmer
	log       *logrus.Logger
}

func NewPayHereService(
	cfg config.PayHereConfig,
	currency string,
	payments PaymentRepository,
	bookings BookingReader,
	confirmer BookingConfirmer,
	log *logrus.Logger,
) *PayHereService {
	return &PayHereService{
		cfg:       cfg,
		currency:  currency,
		payments:  payments,
		bookings:  bookings,
		confirmer: confirmer,
		log:       log,
	}
}

// Checkout prepares the signed payload for a pending booking owned by the
// caller. The order id is the booking id; the notify callback uses it to find
// the booking again.
func (s *PayHereService) Checkout(ctx context.Context, touristID, bookingID int64) (*PayHereCheckoutResponse, error) {
	if s.cfg.MerchantID == "" || s.cfg.MerchantSecret == "" {
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

	orderID := strconv.FormatInt(b.ID, 10)
	amount := fmt.Sprintf("%.2f", b.TotalPrice)
	hash := s.checkoutHash(orderID, amount)

	p := &domain.GatewayPayment{
		BookingID: b.ID,
		Gateway:   domain.GatewayPayHere,
		OrderRef:  orderID,
		Reference: uuid.NewString(),
		Amount:    b.TotalPrice,
		Currency:  s.currency,
		Status:    domain.PaymentCreated,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("save payment record: %w", err)
	}

	return &PayHereCheckoutResponse{
		MerchantID:  s.cfg.MerchantID,
		OrderID:     orderID,
		Items:       itemsLabel(b.Target),
		Amount:      amount,
		Currency:    s.currency,
		Hash:        hash,
		CheckoutURL: s.cfg.CheckoutURL,
		ReturnURL:   s.cfg.ReturnURL,
		CancelURL:   s.cfg.CancelURL,
		NotifyURL:   s.cfg.NotifyURL,
		TotalPrice:  b.TotalPrice,
	}, nil
}

// HandleNotify verifies the callback signature, then confirms the booking on
// a success status code. Confirmation-step failures after a valid signature
// are logged and swallowed; the handler acknowledges regardless so the
// gateway does not retry-storm us.
func (s *PayHereService) HandleNotify(ctx context.Context, n PayHereNotification) error {
	expected := s.notifyHash(n.MerchantID, n.OrderID, n.Amount, n.Currency, n.StatusCode)
	valid := strings.EqualFold(n.MD5Sig, expected)
	s.log.WithFields(logrus.Fields{
		"order_id":        n.OrderID,
		"status_code":     n.StatusCode,
		"signature_valid": valid,
	}).Info("payhere notify signature validation")

	if !valid {
		s.recordFailure(ctx, n)
		return ErrInvalidSignature
	}

	bookingID, err := strconv.ParseInt(n.OrderID, 10, 64)
	if err != nil || bookingID <= 0 {
		return ErrValidation
	}

	record, recErr := s.payments.GetLatestByOrderRef(ctx, domain.GatewayPayHere, n.OrderID)
	if recErr == nil && !amountEqual(n.Amount, record.Amount) {
		_ = s.payments.UpdateStatus(ctx, record.ID, domain.PaymentFailed, n.RawBody)
		return ErrAmountMismatch
	}

	if n.StatusCode != payHereSuccessCode {
		s.recordFailure(ctx, n)
		return nil
	}

	if err := s.confirmer.Confirm(ctx, bookingID); err != nil {
		// deliberate: acknowledge to stop gateway retries, keep the evidence
		s.log.WithError(err).WithField("booking_id", bookingID).
			Warn("payhere notify verified but confirmation failed")
		return nil
	}

	if recErr == nil {
		changed, err := s.payments.MarkSucceededIdempotent(ctx, record.ID, n.RawBody)
		if err != nil {
			s.log.WithError(err).WithField("order_id", n.OrderID).Warn("failed to mark payment succeeded")
		} else if !changed {
			s.log.WithField("order_id", n.OrderID).Info("duplicate payhere notify, already succeeded")
		}
	}
	return nil
}

// checkoutHash = UPPER(MD5(merchantID + orderID + amount + currency +
// UPPER(MD5(secret)))).
func (s *PayHereService) checkoutHash(orderID, amount string) string {
	inner := md5Upper(s.cfg.MerchantSecret)
	return md5Upper(s.cfg.MerchantID + orderID + amount + s.currency + inner)
}

// notifyHash uses the callback's own fields with the status code spliced in
// before the hashed secret.
func (s *PayHereService) notifyHash(merchantID, orderID, amount, currency, statusCode string) string {
	inner := md5Upper(s.cfg.MerchantSecret)
	return md5Upper(merchantID + orderID + amount + currency + statusCode + inner)
}

func (s *PayHereService) recordFailure(ctx context.Context, n PayHereNotification) {
	record, err := s.payments.GetLatestByOrderRef(ctx, domain.GatewayPayHere, n.OrderID)
	if err != nil {
		return
	}
	_ = s.payments.UpdateStatus(ctx, record.ID, domain.PaymentFailed, n.RawBody)
}

func md5Upper(v string) string {
	sum := md5.Sum([]byte(v))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

func amountEqual(callback string, expected float64) bool {
	v, err := strconv.ParseFloat(strings.TrimSpace(callback), 64)
	if err != nil {
		return false
	}
	return math.Abs(v-expected) < 0.005
}

func itemsLabel(t domain.BookingTarget) string {
	if t.Kind == domain.TargetProduct {
		return t.ProductType
	}
	return fmt.Sprintf("provider-booking-%d", derefInt64(t.ProviderID))
}

func derefInt64(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
