package payment

type InitRequest struct {
	BookingID int64 `json:"booking_id" validate:"required,gt=0"`
}

// PayHereCheckoutResponse carries everything the client forwards to the
// hosted payment page.
type PayHereCheckoutResponse struct {
	MerchantID  string  `json:"merchant_id"`
	OrderID     string  `json:"order_id"`
	Items       string  `json:"items"`
	Amount      string  `json:"amount"`
	Currency    string  `json:"currency"`
	Hash        string  `json:"hash"`
	CheckoutURL string  `json:"checkout_url"`
	ReturnURL   string  `json:"return_url,omitempty"`
	CancelURL   string  `json:"cancel_url,omitempty"`
	NotifyURL   string  `json:"notify_url,omitempty"`
	TotalPrice  float64 `json:"total_price"`
}

// PayHereNotification is the server-to-server callback form payload.
type PayHereNotification struct {
	MerchantID string
	OrderID    string
	Amount     string
	Currency   string
	StatusCode string
	MD5Sig     string
	RawBody    string
}

type StripeIntentResponse struct {
	IntentID     string `json:"intent_id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}
