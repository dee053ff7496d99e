package domain

import "time"

type PaymentGateway string

const (
	GatewayStripe  PaymentGateway = "stripe"
	GatewayPayHere PaymentGateway = "payhere"
)

type PaymentRecordStatus string

const (
	PaymentCreated   PaymentRecordStatus = "created"
	PaymentSucceeded PaymentRecordStatus = "succeeded"
	PaymentFailed    PaymentRecordStatus = "failed"
)

// GatewayPayment is the audit row for one initiated payment. OrderRef is the
// identifier the gateway echoes back: the booking id for PayHere, the intent
// id for Stripe. RawCallback keeps the last callback body for reconciliation.
type GatewayPayment struct {
	ID          int64               `json:"id"`
	BookingID   int64               `json:"booking_id"`
	Gateway     PaymentGateway      `json:"gateway"`
	OrderRef    string              `json:"order_ref"`
	Reference   string              `json:"reference"`
	Amount      float64             `json:"amount"`
	Currency    string              `json:"currency"`
	Status      PaymentRecordStatus `json:"status"`
	RawCallback string              `json:"-"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}
