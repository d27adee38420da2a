package models

import "time"

// Order is a confirmed order record as returned by the catalog API after a
// verified payment.
type Order struct {
	ID            string      `json:"_id"`
	UserID        string      `json:"userId"`
	Items         []OrderItem `json:"items"`
	Total         float64     `json:"total"`
	Currency      string      `json:"currency"`
	Status        string      `json:"status"`
	PaymentStatus string      `json:"paymentStatus"`
	CreatedAt     time.Time   `json:"createdAt"`
}

type OrderItem struct {
	CameraID   string  `json:"cameraId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	RentalDays *int    `json:"rentalDays"`
	Type       string  `json:"type"`
	Total      float64 `json:"total"`
}

// PaymentSession is the gateway-owned order pair handed back by payment
// initiation. It lives only for the duration of one checkout attempt.
type PaymentSession struct {
	GatewayOrderID string  `json:"orderId"`
	LocalOrderID   string  `json:"dbOrderId"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
}

// VerifyRequest is the payload for server-side payment verification: the
// ids and signature the gateway handed to the client, plus the local order
// the payment belongs to.
type VerifyRequest struct {
	GatewayOrderID   string `json:"razorpayOrderId"`
	GatewayPaymentID string `json:"razorpayPaymentId"`
	GatewaySignature string `json:"razorpaySignature"`
	LocalOrderID     string `json:"dbOrderId"`
}

// GatewayResult is what the hosted gateway reports back once the user has
// completed, failed or dismissed the payment flow.
type GatewayResult struct {
	Status           string `json:"status"`
	GatewayOrderID   string `json:"razorpayOrderId"`
	GatewayPaymentID string `json:"razorpayPaymentId"`
	GatewaySignature string `json:"razorpaySignature"`
	Description      string `json:"description"`
}

// Gateway result statuses.
const (
	GatewaySuccess   = "success"
	GatewayFailed    = "failed"
	GatewayCancelled = "cancelled"
)
