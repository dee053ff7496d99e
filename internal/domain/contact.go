package domain

import "time"

// ContactSubmission is saved before its booking (if any) and is immutable
// afterwards except for admin deletion. Deleting a booking does not cascade
// to its contact submission.
type ContactSubmission struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
