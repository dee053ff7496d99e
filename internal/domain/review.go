package domain

import "time"

type ReviewKind string

const (
	ReviewService ReviewKind = "service"
	ReviewProduct ReviewKind = "product"
	ReviewTourist ReviewKind = "tourist"
)

func (k ReviewKind) Valid() bool {
	switch k {
	case ReviewService, ReviewProduct, ReviewTourist:
		return true
	}
	return false
}

// Review targets a provider (service), a curated product label (product) or a
// tourist (tourist); the target field populated follows Kind. service and
// product reviews auto-approve, tourist reviews wait for an admin.
type Review struct {
	ID                int64      `json:"id"`
	Kind              ReviewKind `json:"kind"`
	TargetProviderID  *int64     `json:"target_provider_id,omitempty"`
	TargetProductType string     `json:"target_product_type,omitempty"`
	TargetTouristID   *int64     `json:"target_tourist_id,omitempty"`
	ReviewerID        int64      `json:"reviewer_id"`
	Rating            int        `json:"rating" validate:"required,gte=1,lte=5"`
	Comment           string     `json:"comment"`
	Approved          bool       `json:"approved"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
