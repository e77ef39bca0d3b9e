package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Booking struct {
	ID             int
	UserID         int
	MovieSessionID int
	TotalPrice     decimal.Decimal
	Currency       string
	Seats          []SeatOnBooking
	CreatedAt      time.Time
}

type SeatOnBooking struct {
	BookingID      int
	MovieSessionID int
	SeatID         int
}

type BookingSummary struct {
	BookingID      int
	MovieSessionID int
	CinemaHallID   int
	StartTime      time.Time
	TotalPrice     decimal.Decimal
	Currency       string
	CreatedAt      time.Time
}

type BookingRepository interface {
	// Create stores the booking and its seats atomically and fills in the
	// generated ID and CreatedAt.
	Create(ctx context.Context, booking *Booking) error
	GetById(ctx context.Context, id int) (*Booking, error)
	GetBookedPositionsByMovieSession(ctx context.Context, movieSessionID int) ([]SeatPosition, error)
	GetSeatPositionsByBookingId(ctx context.Context, bookingID int) ([]SeatPosition, error)
	GetSummariesByUserId(ctx context.Context, userID int, pagination Pagination) ([]BookingSummary, *Metadata, error)
	Delete(ctx context.Context, id int) (*Booking, error)
	DeleteByUserAndMovieSession(ctx context.Context, userID, movieSessionID int) ([]Booking, error)
}
