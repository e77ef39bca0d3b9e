package app

import (
	"fmt"
	"net/http"

	"github.com/metinatakli/cinema-booking/api"
)

func (app *Application) GetCinemaByHallId(w http.ResponseWriter, r *http.Request, hallID int) {
	if hallID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("hall ID must be greater than zero"))
		return
	}

	cinema, err := app.bookings.FindCinemaByHallID(r.Context(), hallID)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	halls := make([]api.CinemaHall, len(cinema.Halls))
	for i, h := range cinema.Halls {
		halls[i] = api.CinemaHall{Id: h.ID, Name: h.Name}
	}

	resp := api.CinemaResponse{
		Id:      cinema.ID,
		Name:    cinema.Name,
		Address: cinema.Address,
		City:    cinema.City,
		Halls:   halls,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
