package domain

import "time"

type ProviderCategory string

const (
	CategorySafari      ProviderCategory = "safari"
	CategoryVillageTour ProviderCategory = "village-tour"
	CategoryBoatRide    ProviderCategory = "boat-ride"
	CategoryAyurveda    ProviderCategory = "ayurveda"
	CategoryCultural    ProviderCategory = "cultural"
	CategoryAdventure   ProviderCategory = "adventure"
)

func (c ProviderCategory) Valid() bool {
	switch c {
	case CategorySafari, CategoryVillageTour, CategoryBoatRide,
		CategoryAyurveda, CategoryCultural, CategoryAdventure:
		return true
	}
	return false
}

// Provider is a bookable activity operator. BasePrice is the per-adult rate;
// children are charged at half rate by the pricing calculator.
type Provider struct {
	ID              int64            `json:"id"`
	OwnerID         int64            `json:"owner_id"`
	Name            string           `json:"name" validate:"required"`
	Email           string           `json:"email" validate:"required,email"`
	Phone           string           `json:"phone,omitempty"`
	Category        ProviderCategory `json:"category"`
	Location        string           `json:"location,omitempty"`
	BasePrice       float64          `json:"base_price" validate:"gte=0"`
	Description     string           `json:"description,omitempty"`
	Approved        bool             `json:"approved"`
	ProfileImageURL string           `json:"profile_image_url,omitempty"`
	GalleryImages   []string         `json:"gallery_images,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
