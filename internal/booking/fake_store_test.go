package booking

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/metinatakli/cinema-booking/internal/domain"
)

// fakeStore is an in-memory stand-in for the Postgres repositories. Create
// enforces one booking per (movie session, seat) like the unique constraint
// on seat_on_booking.
type fakeStore struct {
	mu sync.Mutex

	layouts  map[int][]domain.PhysicalSeat
	sessions map[int]domain.MovieSession
	factors  map[int][]domain.PriceFactor
	cinemas  map[int]domain.Cinema
	bookings map[int]domain.Booking
	nextID   int

	createErr   error
	readBarrier *sync.WaitGroup

	// bookedPositions overrides the positions derived from seat ids.
	bookedPositions map[int][]domain.SeatPosition
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		layouts:  make(map[int][]domain.PhysicalSeat),
		sessions: make(map[int]domain.MovieSession),
		factors:  make(map[int][]domain.PriceFactor),
		cinemas:  make(map[int]domain.Cinema),
		bookings: make(map[int]domain.Booking),
		nextID:   1,
	}
}

func (f *fakeStore) GetHallSeatingSchema(_ context.Context, hallID int) ([]domain.PhysicalSeat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	layout, ok := f.layouts[hallID]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return slices.Clone(layout), nil
}

func (f *fakeStore) GetSeatsByPositions(
	_ context.Context,
	hallID int,
	positions []domain.SeatPosition) ([]domain.Seat, error) {

	f.mu.Lock()
	defer f.mu.Unlock()

	layout := f.layouts[hallID]
	source := domain.GenerateSourceBookingSchema(layout)

	seats := make([]domain.Seat, 0, len(positions))

	for _, pos := range positions {
		for _, entry := range source {
			if entry.BookingPosition() != pos {
				continue
			}

			for _, cell := range layout {
				if cell.Row == entry.Row && cell.Col == entry.Col {
					seats = append(seats, domain.Seat{ID: cell.ID, HallID: hallID, Position: pos, Type: cell.Type})
					break
				}
			}
		}
	}

	return seats, nil
}

func (f *fakeStore) GetById(_ context.Context, id int) (*domain.MovieSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	session, ok := f.sessions[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return &session, nil
}

func (f *fakeStore) GetPriceFactors(_ context.Context, movieSessionID int) ([]domain.PriceFactor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return slices.Clone(f.factors[movieSessionID]), nil
}

func (f *fakeStore) GetByHallId(_ context.Context, hallID int) (*domain.Cinema, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, cinema := range f.cinemas {
		for _, hall := range cinema.Halls {
			if hall.ID == hallID {
				return &cinema, nil
			}
		}
	}

	return nil, domain.ErrRecordNotFound
}

type fakeBookingRepo struct {
	*fakeStore
}

func (f fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return f.createErr
	}

	for _, existing := range f.bookings {
		if existing.MovieSessionID != booking.MovieSessionID {
			continue
		}

		for _, taken := range existing.Seats {
			for _, seat := range booking.Seats {
				if taken.SeatID == seat.SeatID {
					return domain.ErrBookingConflict
				}
			}
		}
	}

	booking.ID = f.nextID
	booking.CreatedAt = time.Now()
	f.nextID++

	for i := range booking.Seats {
		booking.Seats[i].BookingID = booking.ID
	}

	stored := *booking
	stored.Seats = slices.Clone(booking.Seats)
	f.bookings[booking.ID] = stored

	return nil
}

func (f fakeBookingRepo) GetById(_ context.Context, id int) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	booking, ok := f.bookings[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return &booking, nil
}

func (f fakeBookingRepo) GetBookedPositionsByMovieSession(_ context.Context, movieSessionID int) ([]domain.SeatPosition, error) {
	if f.readBarrier != nil {
		f.readBarrier.Done()
		f.readBarrier.Wait()
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	positions := make([]domain.SeatPosition, 0)

	for _, booking := range f.bookings {
		if booking.MovieSessionID != movieSessionID {
			continue
		}

		positions = append(positions, f.positionsOf(booking)...)
	}

	return positions, nil
}

func (f fakeBookingRepo) GetSeatPositionsByBookingId(_ context.Context, bookingID int) ([]domain.SeatPosition, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if positions, ok := f.bookedPositions[bookingID]; ok {
		return positions, nil
	}

	return f.positionsOf(f.bookings[bookingID]), nil
}

// positionsOf maps the seat ids of a booking back to booking coordinates.
// Callers hold the lock.
func (f fakeBookingRepo) positionsOf(booking domain.Booking) []domain.SeatPosition {
	session := f.sessions[booking.MovieSessionID]
	layout := f.layouts[session.CinemaHallID]
	source := domain.GenerateSourceBookingSchema(layout)

	var positions []domain.SeatPosition

	for _, seat := range booking.Seats {
		for _, cell := range layout {
			if cell.ID != seat.SeatID {
				continue
			}

			for _, entry := range source {
				if entry.Row == cell.Row && entry.Col == cell.Col {
					positions = append(positions, entry.BookingPosition())
				}
			}
		}
	}

	return positions
}

func (f fakeBookingRepo) GetSummariesByUserId(
	_ context.Context,
	userID int,
	pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error) {

	f.mu.Lock()
	defer f.mu.Unlock()

	summaries := make([]domain.BookingSummary, 0)

	for _, booking := range f.bookings {
		if booking.UserID != userID {
			continue
		}

		session := f.sessions[booking.MovieSessionID]
		summaries = append(summaries, domain.BookingSummary{
			BookingID:      booking.ID,
			MovieSessionID: booking.MovieSessionID,
			CinemaHallID:   session.CinemaHallID,
			StartTime:      session.StartTime,
			TotalPrice:     booking.TotalPrice,
			Currency:       booking.Currency,
			CreatedAt:      booking.CreatedAt,
		})
	}

	return summaries, domain.NewMetadata(len(summaries), pagination), nil
}

func (f fakeBookingRepo) Delete(_ context.Context, id int) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	booking, ok := f.bookings[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	delete(f.bookings, id)

	return &booking, nil
}

func (f fakeBookingRepo) DeleteByUserAndMovieSession(_ context.Context, userID, movieSessionID int) ([]domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	removed := make([]domain.Booking, 0)

	for id, booking := range f.bookings {
		if booking.UserID == userID && booking.MovieSessionID == movieSessionID {
			removed = append(removed, booking)
			delete(f.bookings, id)
		}
	}

	return removed, nil
}

func (f *fakeStore) bookingCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.bookings)
}
