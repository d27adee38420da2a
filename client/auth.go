package client

import (
	"context"

	"camerahive/models"
)

type authResponse struct {
	Token string          `json:"token"`
	User  models.AuthUser `json:"user"`
}

// Login exchanges credentials for the catalog API's bearer token and user
// record.
func (s *Session) Login(ctx context.Context, data models.LoginData) (string, models.AuthUser, error) {
	var out authResponse
	resp, err := s.request().SetContext(ctx).SetBody(data).SetResult(&out).Post("/auth/login")
	if err := normalize(resp, err); err != nil {
		return "", models.AuthUser{}, err
	}
	return out.Token, out.User, nil
}

// Register creates an account and logs it in, in one call.
func (s *Session) Register(ctx context.Context, data models.RegisterData) (string, models.AuthUser, error) {
	var out authResponse
	resp, err := s.request().SetContext(ctx).SetBody(data).SetResult(&out).Post("/auth/register")
	if err := normalize(resp, err); err != nil {
		return "", models.AuthUser{}, err
	}
	return out.Token, out.User, nil
}
