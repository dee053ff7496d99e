package payment

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"lankatrails/internal/pkg/response"
	"lankatrails/internal/pkg/validator"
)

type Handler struct {
	stripe  *StripeService
	payhere *PayHereService
}

func NewHandler(stripe *StripeService, payhere *PayHereService) *Handler {
	return &Handler{stripe: stripe, payhere: payhere}
}

// Webhook endpoints are unauthenticated; the signatures are the auth.
func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	payments := v1.Group("/payments")
	{
		payments.POST("/stripe/webhook", h.StripeWebhook)
		payments.POST("/payhere/notify", h.PayHereNotify)
	}
}

func (h *Handler) RegisterRoutes(authed *gin.RouterGroup) {
	payments := authed.Group("/payments")
	{
		payments.POST("/stripe/intent", h.CreateStripeIntent)
		payments.POST("/payhere/checkout", h.PayHereCheckout)
	}
}

func (h *Handler) CreateStripeIntent(c *gin.Context) {
	var req InitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment request", fields)
		return
	}

	res, err := h.stripe.CreateIntent(c.Request.Context(), c.GetInt64("user_id"), req.BookingID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res)
}

func (h *Handler) PayHereCheckout(c *gin.Context) {
	var req InitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment request", fields)
		return
	}

	res, err := h.payhere.Checkout(c.Request.Context(), c.GetInt64("user_id"), req.BookingID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res)
}

// StripeWebhook rejects bad signatures with 400 so Stripe retries transient
// failures but flags a broken secret.
func (h *Handler) StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Cannot read body")
		return
	}

	if err := h.stripe.HandleWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature")); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_SIGNATURE", "Webhook verification failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

// PayHereNotify always acknowledges with 200: the gateway retries anything
// else, and a bad callback must not cause a retry storm. Rejections are
// visible in the logs and the payment audit rows.
func (h *Handler) PayHereNotify(c *gin.Context) {
	n := PayHereNotification{
		MerchantID: c.PostForm("merchant_id"),
		OrderID:    c.PostForm("order_id"),
		Amount:     c.PostForm("payhere_amount"),
		Currency:   c.PostForm("payhere_currency"),
		StatusCode: c.PostForm("status_code"),
		MD5Sig:     c.PostForm("md5sig"),
	}
	n.RawBody = c.Request.PostForm.Encode()

	_ = h.payhere.HandleNotify(c.Request.Context(), n)

	c.JSON(http.StatusOK, gin.H{"received": true})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment request")
	case errors.Is(err, ErrNotPending):
		response.Error(c, http.StatusBadRequest, "NOT_PENDING", "Booking is not awaiting payment")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your booking")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrNotConfigured):
		response.Error(c, http.StatusInternalServerError, "GATEWAY_UNAVAILABLE", "Payment gateway is not configured")
	default:
		response.Error(c, http.StatusInternalServerError, "PAYMENT_FAILED", "Payment operation failed")
	}
}
