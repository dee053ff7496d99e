package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

type BookingTargetKind string

const (
	TargetProvider BookingTargetKind = "provider"
	TargetProduct  BookingTargetKind = "product"
)

// BookingTarget is a tagged reference: exactly one of ProviderID or
// ProductType is set, selected by Kind.
type BookingTarget struct {
	Kind        BookingTargetKind `json:"kind"`
	ProviderID  *int64            `json:"provider_id,omitempty"`
	ProductType string            `json:"product_type,omitempty"`
}

func ProviderTarget(providerID int64) BookingTarget {
	return BookingTarget{Kind: TargetProvider, ProviderID: &providerID}
}

func ProductTarget(productType string) BookingTarget {
	return BookingTarget{Kind: TargetProduct, ProductType: productType}
}

// Booking is one reservation. TotalPrice is fixed at creation time and is
// never recomputed on read; status changes only through the booking service
// or a verified payment confirmation.
type Booking struct {
	ID           int64         `json:"id"`
	Target       BookingTarget `json:"target"`
	TouristID    int64         `json:"tourist_id"`
	Date         time.Time     `json:"date"`
	TimeSlot     string        `json:"time_slot,omitempty"`
	Adults       int           `json:"adults" validate:"gte=1"`
	Children     int           `json:"children" validate:"gte=0"`
	TotalPrice   float64       `json:"total_price"`
	SpecialNotes string        `json:"special_notes,omitempty"`
	ContactID    *int64        `json:"contact_id,omitempty"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
