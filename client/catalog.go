package client

import (
	"context"

	"camerahive/models"
)

// ListCameras fetches the catalog, optionally filtered by category.
func (s *Session) ListCameras(ctx context.Context, category string) ([]models.Camera, error) {
	var cameras []models.Camera
	req := s.request().SetContext(ctx).SetResult(&cameras)
	if category != "" {
		req.SetQueryParam("category", category)
	}
	resp, err := req.Get("/cameras")
	if err := normalize(resp, err); err != nil {
		return nil, err
	}
	return cameras, nil
}

// SampleCameras fetches the short featured list shown on the home page.
func (s *Session) SampleCameras(ctx context.Context) ([]models.Camera, error) {
	var cameras []models.Camera
	resp, err := s.request().SetContext(ctx).SetResult(&cameras).Get("/cameras/sample")
	if err := normalize(resp, err); err != nil {
		return nil, err
	}
	return cameras, nil
}

func (s *Session) GetCamera(ctx context.Context, id string) (models.Camera, error) {
	var camera models.Camera
	resp, err := s.request().SetContext(ctx).SetResult(&camera).Get("/cameras/" + id)
	if err := normalize(resp, err); err != nil {
		return models.Camera{}, err
	}
	return camera, nil
}

func (s *Session) CreateCamera(ctx context.Context, camera models.Camera) (models.Camera, error) {
	var out models.Camera
	resp, err := s.request().SetContext(ctx).SetBody(camera).SetResult(&out).Post("/cameras")
	if err := normalize(resp, err); err != nil {
		return models.Camera{}, err
	}
	return out, nil
}

func (s *Session) UpdateCamera(ctx context.Context, id string, camera models.Camera) (models.Camera, error) {
	var out models.Camera
	resp, err := s.request().SetContext(ctx).SetBody(camera).SetResult(&out).Put("/cameras/" + id)
	if err := normalize(resp, err); err != nil {
		return models.Camera{}, err
	}
	return out, nil
}

func (s *Session) DeleteCamera(ctx context.Context, id string) error {
	resp, err := s.request().SetContext(ctx).Delete("/cameras/" + id)
	return normalize(resp, err)
}
