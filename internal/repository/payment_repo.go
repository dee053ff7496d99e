package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"lankatrails/internal/domain"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

type gatewayPaymentModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	BookingID   int64     `gorm:"column:booking_id;index"`
	Gateway     string    `gorm:"column:gateway;index"`
	OrderRef    string    `gorm:"column:order_ref;index"`
	Reference   string    `gorm:"column:reference;uniqueIndex"`
	Amount      float64   `gorm:"column:amount"`
	Currency    string    `gorm:"column:currency"`
	Status      string    `gorm:"column:status"`
	RawCallback string    `gorm:"column:raw_callback;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (gatewayPaymentModel) TableName() string { return "gateway_payments" }

func toDomainPayment(m gatewayPaymentModel) *domain.GatewayPayment {
	return &domain.GatewayPayment{
		ID:          m.ID,
		BookingID:   m.BookingID,
		Gateway:     domain.PaymentGateway(m.Gateway),
		OrderRef:    m.OrderRef,
		Reference:   m.Reference,
		Amount:      m.Amount,
		Currency:    m.Currency,
		Status:      domain.PaymentRecordStatus(m.Status),
		RawCallback: m.RawCallback,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.GatewayPayment) error {
	m := gatewayPaymentModel{
		BookingID: p.BookingID,
		Gateway:   string(p.Gateway),
		OrderRef:  p.OrderRef,
		Reference: p.Reference,
		Amount:    p.Amount,
		Currency:  p.Currency,
		Status:    string(p.Status),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	p.ID = m.ID
	p.CreatedAt = m.CreatedAt
	p.UpdatedAt = m.UpdatedAt
	return nil
}

// GetLatestByOrderRef returns the most recent audit row for a gateway order.
// Retried checkouts create one row each; callbacks reconcile the newest.
func (r *PaymentRepository) GetLatestByOrderRef(ctx context.Context, gateway domain.PaymentGateway, orderRef string) (*domain.GatewayPayment, error) {
	var m gatewayPaymentModel
	err := r.db.WithContext(ctx).
		Where("gateway = ? AND order_ref = ?", string(gateway), orderRef).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return toDomainPayment(m), nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, id int64, status domain.PaymentRecordStatus, rawCallback string) error {
	return r.db.WithContext(ctx).Model(&gatewayPaymentModel{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       string(status),
			"raw_callback": rawCallback,
			"updated_at":   time.Now().UTC(),
		}).Error
}

// MarkSucceededIdempotent flips the row to succeeded only if it is not
// already there; reports whether this call changed it. Safe under callback
// retries from the gateway.
func (r *PaymentRepository) MarkSucceededIdempotent(ctx context.Context, id int64, rawCallback string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&gatewayPaymentModel{}).
		Where("id = ? AND status <> ?", id, string(domain.PaymentSucceeded)).
		Updates(map[string]interface{}{
			"status":       string(domain.PaymentSucceeded),
			"raw_callback": rawCallback,
			"updated_at":   time.Now().UTC(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *PaymentRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.GatewayPayment, error) {
	var ms []gatewayPaymentModel
	if err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]domain.GatewayPayment, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainPayment(m))
	}
	return out, nil
}
