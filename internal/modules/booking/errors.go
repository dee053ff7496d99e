package booking

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("booking target not found")
	ErrForbidden  = errors.New("forbidden")
	ErrNoPricing  = errors.New("no pricing available for this headcount")
)
