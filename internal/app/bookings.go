package app

import (
	"fmt"
	"net/http"

	"github.com/metinatakli/cinema-booking/api"
	"github.com/metinatakli/cinema-booking/internal/booking"
	"github.com/metinatakli/cinema-booking/internal/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

func (app *Application) CreateBooking(w http.ResponseWriter, r *http.Request, movieSessionID int) {
	logger := app.contextGetLogger(r)

	if movieSessionID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("movie session ID must be greater than zero"))
		return
	}

	var input api.CreateBookingJSONRequestBody

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	userId := app.contextGetUserId(r)

	created, err := app.bookings.CreateBooking(r.Context(), booking.CreateBookingInput{
		UserID:         userId,
		MovieSessionID: movieSessionID,
		Seats:          toDomainPositions(input.Seats),
	})
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	logger.Info("booking created", "booking_id", created.ID, "movie_session_id", movieSessionID, "seats", len(created.Seats))

	seats, err := app.bookings.FindSeatsByBookingID(r.Context(), created)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toBookingResponse(created, seats), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CancelMovieSessionBookings(w http.ResponseWriter, r *http.Request, movieSessionID int) {
	if movieSessionID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("movie session ID must be greater than zero"))
		return
	}

	userId := app.contextGetUserId(r)

	result, err := app.bookings.CancelAllBookingsForSessionAndUser(r.Context(), userId, movieSessionID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.CancelBookingsResponse{Count: result.Count}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBookingsOfUser(
	w http.ResponseWriter,
	r *http.Request,
	params api.GetBookingsOfUserParams) {

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	userId := app.contextGetUserId(r)
	pagination := toPagination(params)

	summaries, metadata, err := app.bookings.FindBookingsByUser(r.Context(), userId, pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.UserBookingsResponse{
		Bookings: toBookingSummaries(summaries),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetUserBookingById(w http.ResponseWriter, r *http.Request, bookingID int) {
	b, ok := app.findOwnBooking(w, r, bookingID)
	if !ok {
		return
	}

	seats, err := app.bookings.FindSeatsByBookingID(r.Context(), b)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toBookingResponse(b, seats), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CancelUserBooking(w http.ResponseWriter, r *http.Request, bookingID int) {
	logger := app.contextGetLogger(r)

	_, ok := app.findOwnBooking(w, r, bookingID)
	if !ok {
		return
	}

	cancelled, err := app.bookings.CancelBooking(r.Context(), bookingID)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	logger.Info("booking cancelled", "booking_id", cancelled.ID)

	seatIds := make([]int, len(cancelled.Seats))
	for i, seat := range cancelled.Seats {
		seatIds[i] = seat.SeatID
	}

	resp := api.CancelledBookingResponse{
		Id:             cancelled.ID,
		MovieSessionId: cancelled.MovieSessionID,
		SeatIds:        seatIds,
		TotalPrice:     cancelled.TotalPrice,
		Currency:       cancelled.Currency,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// findOwnBooking loads a booking of the current user and writes the error
// response itself. Bookings of other users are reported as not found.
func (app *Application) findOwnBooking(w http.ResponseWriter, r *http.Request, bookingID int) (*domain.Booking, bool) {
	if bookingID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("booking ID must be greater than zero"))
		return nil, false
	}

	userId := app.contextGetUserId(r)

	b, err := app.bookings.FindBookingByID(r.Context(), bookingID)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return nil, false
	}

	if b.UserID != userId {
		app.contextGetLogger(r).Warn("access to booking of another user denied", "booking_id", bookingID)
		app.notFoundResponse(w, r)
		return nil, false
	}

	return b, true
}

func toBookingResponse(b *domain.Booking, seats []domain.SeatWithType) api.BookingResponse {
	bookedSeats := make([]api.BookedSeat, len(seats))
	for i, s := range seats {
		bookedSeats[i] = api.BookedSeat{
			Row:  s.Position.Row,
			Col:  s.Position.Col,
			Type: api.SeatType(s.Type),
		}
	}

	return api.BookingResponse{
		Id:             b.ID,
		MovieSessionId: b.MovieSessionID,
		TotalPrice:     b.TotalPrice,
		Currency:       b.Currency,
		Seats:          bookedSeats,
		CreatedAt:      b.CreatedAt,
	}
}

func toBookingSummaries(summaries []domain.BookingSummary) []api.BookingSummary {
	bookingSummaries := make([]api.BookingSummary, len(summaries))

	for i, v := range summaries {
		summary := &bookingSummaries[i]

		summary.Id = v.BookingID
		summary.MovieSessionId = v.MovieSessionID
		summary.CinemaHallId = v.CinemaHallID
		summary.StartTime = v.StartTime
		summary.TotalPrice = v.TotalPrice
		summary.Currency = v.Currency
		summary.CreatedAt = v.CreatedAt
	}

	return bookingSummaries
}

func toPagination(params api.GetBookingsOfUserParams) domain.Pagination {
	pagination := domain.Pagination{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}

	if params.Page != nil {
		pagination.Page = *params.Page
	}
	if params.PageSize != nil {
		pagination.PageSize = *params.PageSize
	}

	return pagination
}

func toApiMetadata(metadata *domain.Metadata) api.Metadata {
	return api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
