package session

import (
	"errors"
	"sync"
	"time"

	"camerahive/cart"
	"camerahive/checkout"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrNotFound     = errors.New("session not found")
)

// CleanupInterval is how often idle sessions are swept.
const CleanupInterval = time.Minute

// Identity is the authenticated user's cached display state plus the
// catalog API bearer token. It exists from login success until logout or
// token rejection, never longer.
type Identity struct {
	Token    string `json:"-"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == "admin"
}

// Session is one user's tab-equivalent: identity plus the ephemeral cart
// and checkout state that dies with it.
type Session struct {
	ID       string
	Identity Identity
	Cart     *cart.Store
	Checkout *checkout.Orchestrator

	lastSeen time.Time
}

// Manager owns every live session. Everything is in memory: restarting the
// service clears all carts and identities, which matches the storefront's
// session-only persistence model.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	secret   []byte
	ttl      time.Duration

	stopCleanup chan struct{}
	wg          sync.WaitGroup
}

func NewManager(secret string, ttl time.Duration) *Manager {
	m := &Manager{
		sessions:    make(map[string]*Session),
		secret:      []byte(secret),
		ttl:         ttl,
		stopCleanup: make(chan struct{}),
	}

	m.wg.Add(1)
	go m.cleanupLoop()

	return m
}

func (m *Manager) cleanupLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.evictIdle()
		case <-m.stopCleanup:
			return
		}
	}
}

func (m *Manager) evictIdle() {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := time.Now().Add(-m.ttl)
	for id, s := range m.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
		}
	}
}

func (m *Manager) Close() {
	close(m.stopCleanup)
	m.wg.Wait()
}

// Create registers a fresh session for a logged-in identity with an empty
// cart, and returns it with the signed session token the browser holds for
// the rest of the tab's life.
func (m *Manager) Create(identity Identity, payments checkout.PaymentsAPI) (*Session, string, error) {
	store := cart.NewStore()
	s := &Session{
		ID:       uuid.NewString(),
		Identity: identity,
		Cart:     store,
		Checkout: checkout.NewOrchestrator(store, payments),
		lastSeen: time.Now(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid":      s.ID,
		"username": identity.Username,
		"role":     identity.Role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(m.ttl).Unix(),
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return nil, "", err
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s, signed, nil
}

// Get resolves a session token back to its live session and refreshes its
// idle timer.
func (m *Manager) Get(tokenString string) (*Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return nil, ErrInvalidToken
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sid]
	if !ok {
		return nil, ErrNotFound
	}
	s.lastSeen = time.Now()
	return s, nil
}

// Destroy drops the session. Used on logout and whenever the catalog API
// rejects the session's bearer token.
func (m *Manager) Destroy(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
