package payment

import "errors"

var (
	ErrNotConfigured    = errors.New("payment gateway is not configured")
	ErrNotFound         = errors.New("booking not found")
	ErrForbidden        = errors.New("forbidden")
	ErrNotPending       = errors.New("booking is not pending payment")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrAmountMismatch   = errors.New("amount mismatch")
	ErrValidation       = errors.New("validation error")
)
