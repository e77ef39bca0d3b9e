package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-booking/api"
	"github.com/metinatakli/cinema-booking/internal/domain"
	appvalidator "github.com/metinatakli/cinema-booking/internal/validator"
)

const (
	ErrInternalServer   = "The server encountered a problem and could not process your request"
	ErrNotFound         = "The requested resource not found"
	ErrMethodNotAllowed = "The method is not supported for this resource"
	ErrUnauthorized     = "You must be authenticated to access this resource"
	ErrFailedValidation = "One or more fields have invalid values"
	ErrSeatsReserved    = "some of the selected seats are already reserved"
	ErrSeatsTaken       = "some of the selected seats were booked by another request, please try again"
)

func (app *Application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.contextGetLogger(r).Error(err.Error(), "method", method, "uri", uri)
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.ErrorResponse{
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, ErrNotFound)
}

func (app *Application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusMethodNotAllowed, ErrMethodNotAllowed)
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *Application) unauthorizedAccessResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusUnauthorized, ErrUnauthorized)
}

func (app *Application) editConflictResponseWithErr(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusConflict, err.Error())
}

// invalidParamResponse reports path and query parameters that could not be
// bound to their declared types.
func (app *Application) invalidParamResponse(w http.ResponseWriter, r *http.Request, err error) {
	var formatErr *api.InvalidParamFormatError
	if errors.As(err, &formatErr) {
		app.badRequestResponse(w, r, fmt.Errorf("invalid %s parameter", formatErr.ParamName))
		return
	}

	app.badRequestResponse(w, r, err)
}

func (app *Application) validationErrorResponse(w http.ResponseWriter, r *http.Request, errs []api.ValidationError) {
	resp := api.ValidationErrorResponse{
		Message:          ErrFailedValidation,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
		ValidationErrors: errs,
	}

	err := app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		app.badRequestResponse(w, r, err)
		return
	}

	errs := make([]api.ValidationError, len(validationErrs))

	for i, fieldErr := range validationErrs {
		errs[i] = api.ValidationError{
			Field: fieldErr.Field(),
			Issue: appvalidator.ValidationMessage(fieldErr),
		}
	}

	app.validationErrorResponse(w, r, errs)
}

// bookingErrorResponse maps the errors of the booking service to responses.
// Anything unknown is an internal error.
func (app *Application) bookingErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logger := app.contextGetLogger(r)

	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		app.notFoundResponse(w, r)
	case errors.Is(err, domain.ErrSeatAlreadyReserved):
		logger.Warn("booking rejected: seats already reserved", "error", err)
		app.editConflictResponseWithErr(w, r, errors.New(ErrSeatsReserved))
	case errors.Is(err, domain.ErrBookingConflict):
		logger.Warn("booking rejected: seats taken by a concurrent booking", "error", err)
		app.editConflictResponseWithErr(w, r, errors.New(ErrSeatsTaken))
	case errors.Is(err, domain.ErrNoSeatsSelected),
		errors.Is(err, domain.ErrDuplicateSeat),
		errors.Is(err, domain.ErrSeatNotInSchema),
		errors.Is(err, domain.ErrMissingPriceFactor):
		app.validationErrorResponse(w, r, []api.ValidationError{
			{Field: "Seats", Issue: err.Error()},
		})
	default:
		app.serverErrorResponse(w, r, err)
	}
}
