// Package service contains the business logic for the TeslaMate Chat API.
// Services validate inputs, apply defaults and unit conversions, and
// orchestrate repo calls. No SQL lives here; services depend on repo
// interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"teslamate-chat/internal/domain"
	"teslamate-chat/internal/repo"
)

// CarService implements business logic for car listings.
type CarService struct {
	repo repo.CarRepo
}

// NewCarService constructs a CarService backed by the provided CarRepo.
func NewCarService(r repo.CarRepo) *CarService {
	return &CarService{repo: r}
}

// List returns all tracked cars.
// Always returns a non-nil slice so callers can safely range over it.
func (s *CarService) List(ctx context.Context) ([]domain.Car, error) {
	cars, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CarService.List: %w", err)
	}
	if cars == nil {
		return []domain.Car{}, nil
	}
	return cars, nil
}
