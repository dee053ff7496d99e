package provider

import "errors"

var (
	ErrNotFound   = errors.New("provider not found")
	ErrForbidden  = errors.New("operation not allowed")
	ErrValidation = errors.New("validation failed")
	ErrBadUpload  = errors.New("invalid upload")
)
