package review

import "errors"

var (
	ErrValidation = errors.New("invalid review request")
	ErrNotFound   = errors.New("review target not found")
	ErrNotAllowed = errors.New("review not allowed without a confirmed booking")
	ErrForbidden  = errors.New("forbidden")
)
