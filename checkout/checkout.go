package checkout

import (
	"context"
	"errors"
	"log"
	"sync"

	"camerahive/cart"
	"camerahive/client"
	"camerahive/models"
)

// PaymentsAPI is the slice of the catalog API the orchestrator needs. The
// caller's token travels inside the implementation, never through here.
type PaymentsAPI interface {
	InitiatePayment(ctx context.Context, lines []models.CheckoutLine) (models.PaymentSession, error)
	VerifyPayment(ctx context.Context, req models.VerifyRequest) (models.Order, error)
}

// Orchestrator drives one session's checkout attempts through the
// initiate → gateway → verify protocol. A sale is only final after the
// verify step confirms the signature the gateway attached to its result;
// until then the cart is left untouched so the user can retry.
type Orchestrator struct {
	store    *cart.Store
	payments PaymentsAPI

	// mu serializes attempts; a Start racing an in-flight attempt waits
	// for the state transition and is then rejected, never queued.
	mu      sync.Mutex
	state   State
	session models.PaymentSession
	lastErr *Error
}

func NewOrchestrator(store *cart.Store, payments PaymentsAPI) *Orchestrator {
	return &Orchestrator{store: store, payments: payments, state: StateIdle}
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// LastError returns the classified failure of the most recent attempt, or
// nil if it completed.
func (o *Orchestrator) LastError() *Error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastErr
}

// Start validates the cart, initiates payment with the catalog API and, on
// success, parks in AwaitingGatewayResult with the session to hand to the
// hosted gateway. An invalid cart fails without any network call. Rejected
// while another attempt is in flight.
func (o *Orchestrator) Start(ctx context.Context) (models.PaymentSession, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !canTransition(o.state, StateInitiating) {
		return models.PaymentSession{}, ErrInFlight
	}
	o.state = StateInitiating
	o.lastErr = nil

	if err := o.store.ValidateForCheckout(); err != nil {
		return models.PaymentSession{}, o.fail(KindValidation, err.Error())
	}

	session, err := o.payments.InitiatePayment(ctx, o.store.CheckoutLines())
	if err != nil {
		if errors.Is(err, client.ErrSessionExpired) {
			return models.PaymentSession{}, o.fail(KindSessionExpired, err.Error())
		}
		return models.PaymentSession{}, o.fail(KindInitiation, err.Error())
	}
	if session.GatewayOrderID == "" || session.LocalOrderID == "" || session.Amount <= 0 || session.Currency == "" {
		return models.PaymentSession{}, o.fail(KindInitiation, "incomplete response from payment gateway")
	}

	o.state = StateAwaitingGateway
	o.session = session
	return session, nil
}

// HandleGatewayResult consumes what the hosted gateway reported back. A
// reported success still has to pass server-side verification before the
// cart is cleared; every failure path preserves the cart.
func (o *Orchestrator) HandleGatewayResult(ctx context.Context, result models.GatewayResult) (models.Order, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state != StateAwaitingGateway {
		return models.Order{}, ErrNoCheckout
	}

	switch result.Status {
	case models.GatewayCancelled:
		return models.Order{}, o.fail(KindCancelled, "payment cancelled")
	case models.GatewaySuccess:
		// fall through to verification
	default:
		msg := result.Description
		if msg == "" {
			msg = "payment failed"
		}
		return models.Order{}, o.fail(KindGateway, msg)
	}

	o.state = StateVerifying
	order, err := o.payments.VerifyPayment(ctx, models.VerifyRequest{
		GatewayOrderID:   result.GatewayOrderID,
		GatewayPaymentID: result.GatewayPaymentID,
		GatewaySignature: result.GatewaySignature,
		LocalOrderID:     o.session.LocalOrderID,
	})
	if err != nil {
		if errors.Is(err, client.ErrSessionExpired) {
			return models.Order{}, o.fail(KindSessionExpired, err.Error())
		}
		return models.Order{}, o.fail(KindVerification, err.Error())
	}
	if order.ID == "" {
		return models.Order{}, o.fail(KindVerification, "payment verification failed")
	}

	o.state = StateCompleted
	o.session = models.PaymentSession{}
	o.store.Clear()
	log.Printf("checkout completed, order %s for %.2f %s", order.ID, order.Total, order.Currency)
	return order, nil
}

func (o *Orchestrator) fail(kind Kind, message string) *Error {
	o.state = StateFailed
	o.session = models.PaymentSession{}
	o.lastErr = &Error{Kind: kind, Message: message}
	return o.lastErr
}
