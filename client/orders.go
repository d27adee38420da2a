package client

import (
	"context"

	"camerahive/models"
)

// InitiatePayment opens a payment session with the gateway for the given
// checkout lines. The response must carry both order ids, the amount and
// the currency; anything less is treated as a failed initiation.
func (s *Session) InitiatePayment(ctx context.Context, lines []models.CheckoutLine) (models.PaymentSession, error) {
	var session models.PaymentSession
	resp, err := s.request().SetContext(ctx).
		SetBody(map[string]any{"items": lines}).
		SetResult(&session).
		Post("/orders/initiate-payment")
	if err := normalize(resp, err); err != nil {
		return models.PaymentSession{}, err
	}
	return session, nil
}

// VerifyPayment asks the catalog API to check the gateway's signature and
// confirm the order.
func (s *Session) VerifyPayment(ctx context.Context, req models.VerifyRequest) (models.Order, error) {
	var out struct {
		Order models.Order `json:"order"`
	}
	resp, err := s.request().SetContext(ctx).SetBody(req).SetResult(&out).Post("/orders/verify-payment")
	if err := normalize(resp, err); err != nil {
		return models.Order{}, err
	}
	return out.Order, nil
}

// UserOrders returns the calling user's order history.
func (s *Session) UserOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	resp, err := s.request().SetContext(ctx).SetResult(&orders).Get("/orders/user")
	if err := normalize(resp, err); err != nil {
		return nil, err
	}
	return orders, nil
}

// AllOrders returns every order; the API restricts this to admins.
func (s *Session) AllOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	resp, err := s.request().SetContext(ctx).SetResult(&orders).Get("/orders")
	if err := normalize(resp, err); err != nil {
		return nil, err
	}
	return orders, nil
}
