package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"lankatrails/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	TargetKind   string    `gorm:"column:target_kind;index"`
	ProviderID   *int64    `gorm:"column:provider_id;index"`
	ProductType  string    `gorm:"column:product_type;index"`
	TouristID    int64     `gorm:"column:tourist_id;index"`
	Date         time.Time `gorm:"column:date"`
	TimeSlot     string    `gorm:"column:time_slot"`
	Adults       int       `gorm:"column:adults"`
	Children     int       `gorm:"column:children"`
	TotalPrice   float64   `gorm:"column:total_price"`
	SpecialNotes string    `gorm:"column:special_notes;type:text"`
	ContactID    *int64    `gorm:"column:contact_id"`
	Status       string    `gorm:"column:status;index"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID: m.ID,
		Target: domain.BookingTarget{
			Kind:        domain.BookingTargetKind(m.TargetKind),
			ProviderID:  m.ProviderID,
			ProductType: m.ProductType,
		},
		TouristID:    m.TouristID,
		Date:         m.Date,
		TimeSlot:     m.TimeSlot,
		Adults:       m.Adults,
		Children:     m.Children,
		TotalPrice:   m.TotalPrice,
		SpecialNotes: m.SpecialNotes,
		ContactID:    m.ContactID,
		Status:       domain.BookingStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:           b.ID,
		TargetKind:   string(b.Target.Kind),
		ProviderID:   b.Target.ProviderID,
		ProductType:  b.Target.ProductType,
		TouristID:    b.TouristID,
		Date:         b.Date,
		TimeSlot:     b.TimeSlot,
		Adults:       b.Adults,
		Children:     b.Children,
		TotalPrice:   b.TotalPrice,
		SpecialNotes: b.SpecialNotes,
		ContactID:    b.ContactID,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	b.ID = m.ID
	b.CreatedAt = m.CreatedAt
	b.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) ListByTourist(ctx context.Context, touristID int64) ([]domain.Booking, error) {
	var ms []bookingModel
	if err := r.db.WithContext(ctx).Where("tourist_id = ?", touristID).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return toDomainBookings(ms), nil
}

func (r *BookingRepository) ListByProvider(ctx context.Context, providerID int64) ([]domain.Booking, error) {
	var ms []bookingModel
	if err := r.db.WithContext(ctx).Where("provider_id = ?", providerID).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return toDomainBookings(ms), nil
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	var ms []bookingModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return toDomainBookings(ms), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	res := r.db.WithContext(ctx).Model(&bookingModel{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": string(status), "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete is a hard delete; the linked contact submission is kept.
func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&bookingModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingRepository) HasConfirmedForProvider(ctx context.Context, touristID, providerID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("tourist_id = ? AND provider_id = ? AND status = ?", touristID, providerID, string(domain.BookingConfirmed)).
		Count(&count).Error
	return count > 0, err
}

func (r *BookingRepository) HasConfirmedForProduct(ctx context.Context, touristID int64, productType string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("tourist_id = ? AND product_type = ? AND status = ?", touristID, productType, string(domain.BookingConfirmed)).
		Count(&count).Error
	return count > 0, err
}

// HasConfirmedFromTourist reports whether the tourist holds a confirmed
// booking against a provider owned by ownerUserID. Gates tourist-kind reviews.
func (r *BookingRepository) HasConfirmedFromTourist(ctx context.Context, ownerUserID, touristID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&bookingModel{}).
		Joins("JOIN providers p ON p.id = bookings.provider_id").
		Where("p.owner_id = ? AND bookings.tourist_id = ? AND bookings.status = ?", ownerUserID, touristID, string(domain.BookingConfirmed)).
		Count(&count).Error
	return count > 0, err
}

func toDomainBookings(ms []bookingModel) []domain.Booking {
	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out
}
