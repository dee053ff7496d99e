package admin

type CreateProviderRequest struct {
	OwnerID     int64   `json:"owner_id" validate:"omitempty,gt=0"`
	Name        string  `json:"name" validate:"required,min=2,max=120"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       string  `json:"phone" validate:"omitempty,max=30"`
	Category    string  `json:"category" validate:"required"`
	Location    string  `json:"location" validate:"omitempty,max=200"`
	BasePrice   float64 `json:"base_price" validate:"gte=0"`
	Description string  `json:"description" validate:"omitempty,max=4000"`
}
