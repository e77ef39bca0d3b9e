package app

import (
	"fmt"
	"net/http"

	"github.com/metinatakli/cinema-booking/api"
	"github.com/metinatakli/cinema-booking/internal/domain"
)

func (app *Application) GetSeatingSchema(w http.ResponseWriter, r *http.Request, movieSessionID int) {
	if movieSessionID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("movie session ID must be greater than zero"))
		return
	}

	schema, err := app.bookings.FindSeatingSchema(r.Context(), movieSessionID)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	resp := api.SeatingSchemaResponse{
		MovieSessionId: schema.MovieSessionID,
		CinemaHallId:   schema.CinemaHallID,
		Seats:          toSeatingSchemaEntries(schema.Seats),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CheckSeatAvailability(w http.ResponseWriter, r *http.Request, movieSessionID int) {
	if movieSessionID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("movie session ID must be greater than zero"))
		return
	}

	var input api.CheckSeatAvailabilityJSONRequestBody

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

	availability, err := app.bookings.CheckSeatsAvailability(r.Context(), movieSessionID, toDomainPositions(input.Seats))
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	resp := api.SeatAvailabilityResponse{
		AllSeatsAreAvailable: availability.AllSeatsAreAvailable,
		BookedSeats:          toApiPositions(availability.BookedSeats),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toSeatingSchemaEntries(schema domain.MergedBookingSeatingSchema) []api.SeatingSchemaEntry {
	entries := make([]api.SeatingSchemaEntry, len(schema))

	for i, v := range schema {
		entry := &entries[i]

		entry.SeatId = v.SeatID
		entry.GridRow = v.Row
		entry.GridCol = v.Col
		entry.Type = api.SeatType(v.Type)
		entry.Bookable = v.Bookable
		entry.IsBooked = v.IsBooked

		// gaps have no booking coordinates
		if v.Bookable {
			entry.BookingRow = ptr(v.BookingRow)
			entry.BookingCol = ptr(v.BookingCol)
		}
	}

	return entries
}

func toDomainPositions(seats []api.SeatPosition) []domain.SeatPosition {
	positions := make([]domain.SeatPosition, len(seats))
	for i, s := range seats {
		positions[i] = domain.SeatPosition{Row: s.Row, Col: s.Col}
	}
	return positions
}

func toApiPositions(positions []domain.SeatPosition) []api.SeatPosition {
	seats := make([]api.SeatPosition, len(positions))
	for i, p := range positions {
		seats[i] = api.SeatPosition{Row: p.Row, Col: p.Col}
	}
	return seats
}

func ptr[T any](v T) *T {
	return &v
}
