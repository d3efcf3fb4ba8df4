package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")

	// ErrInvalidCode is returned for every failed redemption. It deliberately
	// does not distinguish "never issued" from "wrong code" from "already used".
	ErrInvalidCode = errors.New("invalid code")

	// ErrDelivery means the verification email could not be sent. The code
	// stays stored and redeemable regardless.
	ErrDelivery = errors.New("delivery failed")
)
