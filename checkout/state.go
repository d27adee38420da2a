package checkout

// State is the position of a checkout attempt in the two-phase payment
// protocol: initiate with the catalog API, hand off to the hosted gateway,
// then verify the gateway's signature server-side.
type State string

const (
	StateIdle            State = "IDLE"
	StateInitiating      State = "INITIATING"
	StateAwaitingGateway State = "AWAITING_GATEWAY_RESULT"
	StateVerifying       State = "VERIFYING"
	StateCompleted       State = "COMPLETED"
	StateFailed          State = "FAILED"
)

func (s State) IsTerminal() bool {
	return s == StateCompleted || s == StateFailed
}

// String representation (for logging)
func (s State) String() string {
	return string(s)
}

// canTransition encodes the legal moves of the checkout state machine.
// Failed is reachable from every non-terminal state; a new attempt may only
// begin once no attempt is in flight.
func canTransition(from, to State) bool {
	switch to {
	case StateInitiating:
		return from == StateIdle || from.IsTerminal()
	case StateAwaitingGateway:
		return from == StateInitiating
	case StateVerifying:
		return from == StateAwaitingGateway
	case StateCompleted:
		return from == StateVerifying
	case StateFailed:
		return !from.IsTerminal()
	default:
		return false
	}
}
