package contact

import "errors"

var (
	ErrNotFound   = errors.New("contact submission not found")
	ErrValidation = errors.New("validation failed")
)
