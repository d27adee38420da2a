package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrSessionExpired is returned whenever the catalog API rejects the bearer
// token. Callers are expected to destroy the session and send the user back
// to login.
var ErrSessionExpired = errors.New("session expired, please log in again")

const requestTimeout = 30 * time.Second

// Client talks to the remote catalog API. All durable state (accounts,
// cameras, orders, reviews) lives behind that API; this service only calls
// it and never inspects transport detail beyond the normalized message.
type Client struct {
	http *resty.Client
}

func New(baseURL string) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	return &Client{http: http}
}

// WithToken binds a bearer token to every request made through the returned
// Session. An empty token sends unauthenticated requests, which the API
// accepts for public catalog reads.
func (c *Client) WithToken(token string) *Session {
	return &Session{http: c.http, token: token}
}

// Session is a token-bound view of the client.
type Session struct {
	http  *resty.Client
	token string
}

func (s *Session) request() *resty.Request {
	req := s.http.R()
	if s.token != "" {
		req.SetHeader("Authorization", "Bearer "+s.token)
	}
	return req
}

// normalize collapses any failure into a single human-readable message,
// mapping token rejections onto ErrSessionExpired.
func normalize(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if resp.IsSuccess() {
		return nil
	}

	var body struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(resp.Body(), &body)

	if resp.StatusCode() == 401 || body.Message == "No token provided" || body.Message == "Invalid token" {
		return ErrSessionExpired
	}
	if body.Message != "" {
		return errors.New(body.Message)
	}
	return fmt.Errorf("request failed with status %d", resp.StatusCode())
}
