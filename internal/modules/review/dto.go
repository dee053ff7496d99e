package review

// CreateReviewRequest targets a provider id for service kind, a tourist id
// for tourist kind, or a curated product label for product kind.
type CreateReviewRequest struct {
	Kind        string `json:"kind" validate:"required,oneof=service product tourist"`
	TargetID    int64  `json:"target_id"`
	ProductType string `json:"product_type"`
	Rating      int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment     string `json:"comment" validate:"required"`
}
