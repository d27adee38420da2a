package checkout

import "errors"

// Kind classifies a checkout failure so the caller knows what to do with
// it: validation and payment failures are retryable with the cart intact,
// an expired session requires clearing the session and re-authenticating,
// and a user cancellation surfaces as a neutral status.
type Kind string

const (
	KindValidation     Kind = "validation"
	KindInitiation     Kind = "payment_initiation"
	KindGateway        Kind = "payment_gateway"
	KindVerification   Kind = "payment_verification"
	KindSessionExpired Kind = "session_expired"
	KindCancelled      Kind = "user_cancelled"
)

// Error is a classified checkout failure carrying the normalized,
// user-facing message from whichever layer produced it.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrInFlight   = errors.New("a checkout is already in progress")
	ErrNoCheckout = errors.New("no checkout awaiting a gateway result")
)
