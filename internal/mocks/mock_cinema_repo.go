package mocks

import (
	"context"

	"github.com/metinatakli/cinema-booking/internal/domain"
)

type MockCinemaRepo struct {
	GetByHallIdFunc func(ctx context.Context, hallID int) (*domain.Cinema, error)
}

func (m *MockCinemaRepo) GetByHallId(ctx context.Context, hallID int) (*domain.Cinema, error) {
	return m.GetByHallIdFunc(ctx, hallID)
}
