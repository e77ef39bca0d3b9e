package integration_test

const (
	// User related constants
	TestUserId      = 1
	TestOtherUserId = 2

	// Seating related constants
	TestCinemaId       = 1
	TestHallId         = 1
	TestMovieSessionId = 1
	TestCurrency       = "EUR"
)
