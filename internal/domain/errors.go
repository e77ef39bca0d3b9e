package domain

import "errors"

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrSeatAlreadyReserved = errors.New("seat(s) are already reserved")
	ErrBookingConflict     = errors.New("seat(s) were booked by a concurrent request")
	ErrSeatNotInSchema     = errors.New("a selected seat does not exist in the hall seating schema")
	ErrDuplicateSeat       = errors.New("the same seat was selected more than once")
	ErrNoSeatsSelected     = errors.New("at least one seat must be selected")
	ErrMissingPriceFactor  = errors.New("no price factor defined for seat type")
)
