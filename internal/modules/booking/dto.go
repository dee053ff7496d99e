package booking

// ContactPayload is persisted as a contact submission before its booking.
type ContactPayload struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type CreateProviderBookingRequest struct {
	ProviderID   int64          `json:"provider_id" validate:"required,gt=0"`
	Date         string         `json:"date" validate:"required"`
	TimeSlot     string         `json:"time_slot"`
	Adults       int            `json:"adults" validate:"required,gte=1"`
	Children     int            `json:"children" validate:"gte=0"`
	SpecialNotes string         `json:"special_notes"`
	Contact      ContactPayload `json:"contact" validate:"required"`
}

// CreateProductBookingRequest books a curated product. TotalPrice is only
// consulted for products without a published tier table, where the server has
// no authoritative rate.
type CreateProductBookingRequest struct {
	ProductType  string         `json:"product_type" validate:"required"`
	Date         string         `json:"date" validate:"required"`
	TimeSlot     string         `json:"time_slot"`
	Adults       int            `json:"adults" validate:"required,gte=1"`
	Children     int            `json:"children" validate:"gte=0"`
	TotalPrice   float64        `json:"total_price" validate:"gte=0"`
	SpecialNotes string         `json:"special_notes"`
	Contact      ContactPayload `json:"contact" validate:"required"`
}

// AdminCreateBookingRequest bypasses the tourist-role check but still
// validates referenced entities. Price is computed when omitted.
type AdminCreateBookingRequest struct {
	Kind         string          `json:"kind" validate:"required,oneof=provider product"`
	ProviderID   int64           `json:"provider_id"`
	ProductType  string          `json:"product_type"`
	TouristID    int64           `json:"tourist_id" validate:"required,gt=0"`
	Date         string          `json:"date" validate:"required"`
	TimeSlot     string          `json:"time_slot"`
	Adults       int             `json:"adults" validate:"required,gte=1"`
	Children     int             `json:"children" validate:"gte=0"`
	TotalPrice   float64         `json:"total_price" validate:"gte=0"`
	SpecialNotes string          `json:"special_notes"`
	Contact      *ContactPayload `json:"contact,omitempty"`
}
