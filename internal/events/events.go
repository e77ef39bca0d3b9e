package events

import (
	"time"

	"github.com/metinatakli/cinema-booking/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	DefaultExchange = "cinema.bookings"

	RoutingKeyBookingCreated   = "booking.created"
	RoutingKeyBookingCancelled = "booking.cancelled"
)

// BookingEvent is the message body published for booking lifecycle changes.
type BookingEvent struct {
	Type           string          `json:"type"`
	BookingID      int             `json:"bookingId"`
	UserID         int             `json:"userId"`
	MovieSessionID int             `json:"movieSessionId"`
	SeatIDs        []int           `json:"seatIds"`
	TotalPrice     decimal.Decimal `json:"totalPrice"`
	Currency       string          `json:"currency"`
	OccurredAt     time.Time       `json:"occurredAt"`
}

func newBookingEvent(eventType string, booking domain.Booking, now time.Time) BookingEvent {
	seatIDs := make([]int, len(booking.Seats))
	for i, seat := range booking.Seats {
		seatIDs[i] = seat.SeatID
	}

	return BookingEvent{
		Type:           eventType,
		BookingID:      booking.ID,
		UserID:         booking.UserID,
		MovieSessionID: booking.MovieSessionID,
		SeatIDs:        seatIDs,
		TotalPrice:     booking.TotalPrice,
		Currency:       booking.Currency,
		OccurredAt:     now.UTC(),
	}
}
