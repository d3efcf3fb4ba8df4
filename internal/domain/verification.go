package domain

import "time"

// VerificationCode is a single-use 6-digit credential bound to an email
// address. At most one active code exists per email; issuing a new one
// replaces (and invalidates) the previous entry.
type VerificationCode struct {
	Email    string    `json:"email"`
	Code     string    `json:"code"`
	IssuedAt time.Time `json:"issued_at"`
}
