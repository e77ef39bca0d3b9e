package domain

import (
	"context"
)

type SeatType string

const (
	SeatTypeStandard SeatType = "standard"
	SeatTypeVIP      SeatType = "vip"
	SeatTypeCouple   SeatType = "couple"
	// SeatTypeGap marks an aisle or an empty cell of the hall grid.
	SeatTypeGap SeatType = "gap"
)

// IsSeat reports whether the layout cell is a real, bookable seat.
func (t SeatType) IsSeat() bool {
	switch t {
	case SeatTypeStandard, SeatTypeVIP, SeatTypeCouple:
		return true
	default:
		return false
	}
}

type SeatPosition struct {
	Row int
	Col int
}

// PhysicalSeat is a single cell of a cinema hall grid. Row and Col are grid
// coordinates as stored, gaps included.
type PhysicalSeat struct {
	ID     int
	HallID int
	Row    int
	Col    int
	Type   SeatType
}

// Seat is a persisted seat addressed by its booking coordinates.
type Seat struct {
	ID       int
	HallID   int
	Position SeatPosition
	Type     SeatType
}

type SeatWithType struct {
	Position SeatPosition
	Type     SeatType
}

type SeatRepository interface {
	GetHallSeatingSchema(ctx context.Context, hallID int) ([]PhysicalSeat, error)
	GetSeatsByPositions(ctx context.Context, hallID int, positions []SeatPosition) ([]Seat, error)
}
