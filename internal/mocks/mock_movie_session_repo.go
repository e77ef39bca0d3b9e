package mocks

import (
	"context"

	"github.com/metinatakli/cinema-booking/internal/domain"
)

type MockMovieSessionRepo struct {
	domain.MovieSessionRepository
	GetByIdFunc         func(ctx context.Context, id int) (*domain.MovieSession, error)
	GetPriceFactorsFunc func(ctx context.Context, movieSessionID int) ([]domain.PriceFactor, error)
}

func (m *MockMovieSessionRepo) GetById(ctx context.Context, id int) (*domain.MovieSession, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockMovieSessionRepo) GetPriceFactors(ctx context.Context, movieSessionID int) ([]domain.PriceFactor, error) {
	return m.GetPriceFactorsFunc(ctx, movieSessionID)
}
