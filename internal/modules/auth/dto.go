package auth

type SignupRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Country  string `json:"country"`
}

// ProviderSignupRequest creates the owner account and its unapproved
// provider listing in one step.
type ProviderSignupRequest struct {
	FullName      string  `json:"full_name" validate:"required"`
	Email         string  `json:"email" validate:"required,email"`
	Password      string  `json:"password" validate:"required,min=8"`
	Country       string  `json:"country"`
	ProviderName  string  `json:"provider_name" validate:"required"`
	ProviderEmail string  `json:"provider_email" validate:"required,email"`
	Phone         string  `json:"phone"`
	Category      string  `json:"category" validate:"required"`
	Location      string  `json:"location"`
	BasePrice     float64 `json:"base_price" validate:"gte=0"`
	Description   string  `json:"description"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
