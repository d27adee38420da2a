package session

import (
	"context"
	"testing"
	"time"

	"camerahive/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopPayments struct{}

func (noopPayments) InitiatePayment(context.Context, []models.CheckoutLine) (models.PaymentSession, error) {
	return models.PaymentSession{}, nil
}

func (noopPayments) VerifyPayment(context.Context, models.VerifyRequest) (models.Order, error) {
	return models.Order{}, nil
}

func newTestManager(t *testing.T, ttl time.Duration) *Manager {
	t.Helper()
	m := NewManager("test-secret", ttl)
	t.Cleanup(m.Close)
	return m
}

func TestCreateAndGet(t *testing.T) {
	m := newTestManager(t, time.Hour)

	s, token, err := m.Create(Identity{Username: "asha", Email: "asha@example.com", Role: "user"}, noopPayments{})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotNil(t, s.Cart)
	require.NotNil(t, s.Checkout)

	got, err := m.Get(token)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, "asha", got.Identity.Username)
	assert.False(t, got.Identity.IsAdmin())
}

func TestGet_RejectsGarbageToken(t *testing.T) {
	m := newTestManager(t, time.Hour)

	_, err := m.Get("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGet_RejectsForeignSignature(t *testing.T) {
	m := newTestManager(t, time.Hour)
	other := newTestManager(t, time.Hour)

	_, token, err := other.Create(Identity{Username: "eve"}, noopPayments{})
	require.NoError(t, err)

	// other was built with the same secret, so sign with a different one
	stranger := NewManager("different-secret", time.Hour)
	t.Cleanup(stranger.Close)
	_, foreign, err := stranger.Create(Identity{Username: "eve"}, noopPayments{})
	require.NoError(t, err)

	_, err = m.Get(foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// valid signature but unknown session id on this manager
	_, err = m.Get(token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDestroy(t *testing.T) {
	m := newTestManager(t, time.Hour)

	s, token, err := m.Create(Identity{Username: "asha"}, noopPayments{})
	require.NoError(t, err)

	m.Destroy(s.ID)

	_, err = m.Get(token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEvictIdle(t *testing.T) {
	m := newTestManager(t, time.Hour)

	s, token, err := m.Create(Identity{Username: "asha"}, noopPayments{})
	require.NoError(t, err)

	m.mu.Lock()
	s.lastSeen = time.Now().Add(-2 * time.Hour)
	m.mu.Unlock()
	m.evictIdle()

	_, err = m.Get(token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionsAreIsolated(t *testing.T) {
	m := newTestManager(t, time.Hour)

	a, tokenA, err := m.Create(Identity{Username: "a"}, noopPayments{})
	require.NoError(t, err)
	b, _, err := m.Create(Identity{Username: "b"}, noopPayments{})
	require.NoError(t, err)

	a.Cart.AddToCart(models.Camera{ID: "cam-1", Name: "X", Price: 10}, models.TypeBuy)

	assert.Equal(t, 1, a.Cart.Len())
	assert.Equal(t, 0, b.Cart.Len())

	got, err := m.Get(tokenA)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Cart.Len())
}
