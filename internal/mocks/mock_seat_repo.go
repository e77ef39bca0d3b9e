package mocks

import (
	"context"

	"github.com/metinatakli/cinema-booking/internal/domain"
)

type MockSeatRepo struct {
	GetHallSeatingSchemaFunc func(ctx context.Context, hallID int) ([]domain.PhysicalSeat, error)
	GetSeatsByPositionsFunc  func(ctx context.Context, hallID int, positions []domain.SeatPosition) ([]domain.Seat, error)
}

func (m *MockSeatRepo) GetHallSeatingSchema(ctx context.Context, hallID int) ([]domain.PhysicalSeat, error) {
	return m.GetHallSeatingSchemaFunc(ctx, hallID)
}

func (m *MockSeatRepo) GetSeatsByPositions(
	ctx context.Context,
	hallID int,
	positions []domain.SeatPosition) ([]domain.Seat, error) {

	return m.GetSeatsByPositionsFunc(ctx, hallID, positions)
}
