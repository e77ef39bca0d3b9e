package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/metinatakli/cinema-booking/api"
	"github.com/metinatakli/cinema-booking/internal/booking"
	"github.com/metinatakli/cinema-booking/internal/domain"
	"github.com/metinatakli/cinema-booking/internal/mocks"
	"github.com/metinatakli/cinema-booking/internal/validator"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

const (
	testHallID         = 7
	testMovieSessionID = 42
	testUserID         = 1
)

var testStartTime = time.Date(2025, 3, 14, 20, 0, 0, 0, time.UTC)

// testRepos holds the mocked persistence layer behind the booking service.
// The hall has a standard seat, an aisle and a vip seat in one row, so the
// vip seat is booked as row 1, col 2.
type testRepos struct {
	seatRepo    *mocks.MockSeatRepo
	sessionRepo *mocks.MockMovieSessionRepo
	bookingRepo *mocks.MockBookingRepo
	cinemaRepo  *mocks.MockCinemaRepo
}

func newTestRepos() *testRepos {
	layout := []domain.PhysicalSeat{
		{ID: 1, HallID: testHallID, Row: 0, Col: 0, Type: domain.SeatTypeStandard},
		{ID: 2, HallID: testHallID, Row: 0, Col: 1, Type: domain.SeatTypeGap},
		{ID: 3, HallID: testHallID, Row: 0, Col: 2, Type: domain.SeatTypeVIP},
	}

	return &testRepos{
		seatRepo: &mocks.MockSeatRepo{
			GetHallSeatingSchemaFunc: func(ctx context.Context, hallID int) ([]domain.PhysicalSeat, error) {
				if hallID != testHallID {
					return nil, domain.ErrRecordNotFound
				}
				return layout, nil
			},
			GetSeatsByPositionsFunc: func(ctx context.Context, hallID int, positions []domain.SeatPosition) ([]domain.Seat, error) {
				var seats []domain.Seat
				for _, pos := range positions {
					switch pos {
					case domain.SeatPosition{Row: 1, Col: 1}:
						seats = append(seats, domain.Seat{ID: 1, HallID: hallID, Position: pos, Type: domain.SeatTypeStandard})
					case domain.SeatPosition{Row: 1, Col: 2}:
						seats = append(seats, domain.Seat{ID: 3, HallID: hallID, Position: pos, Type: domain.SeatTypeVIP})
					}
				}
				return seats, nil
			},
		},
		sessionRepo: &mocks.MockMovieSessionRepo{
			GetByIdFunc: func(ctx context.Context, id int) (*domain.MovieSession, error) {
				if id != testMovieSessionID {
					return nil, domain.ErrRecordNotFound
				}
				return &domain.MovieSession{
					ID:           testMovieSessionID,
					MovieID:      5,
					CinemaHallID: testHallID,
					StartTime:    testStartTime,
					BasePrice:    decimal.NewFromInt(10),
					Currency:     "EUR",
				}, nil
			},
			GetPriceFactorsFunc: func(ctx context.Context, movieSessionID int) ([]domain.PriceFactor, error) {
				return []domain.PriceFactor{
					{MovieSessionID: movieSessionID, SeatType: domain.SeatTypeVIP, Factor: decimal.RequireFromString("1.5")},
				}, nil
			},
		},
		bookingRepo: new(mocks.MockBookingRepo),
		cinemaRepo: &mocks.MockCinemaRepo{
			GetByHallIdFunc: func(ctx context.Context, hallID int) (*domain.Cinema, error) {
				if hallID != testHallID {
					return nil, domain.ErrRecordNotFound
				}
				return &domain.Cinema{
					ID:      2,
					Name:    "Odeon",
					Address: "1 Main Street",
					City:    "Dublin",
					Halls: []domain.CinemaHall{
						{ID: testHallID, CinemaID: 2, Name: "Hall 7"},
						{ID: 8, CinemaID: 2, Name: "Hall 8"},
					},
				}, nil
			},
		},
	}
}

func (r *testRepos) service() *booking.Service {
	return booking.NewService(
		r.seatRepo,
		r.sessionRepo,
		r.bookingRepo,
		r.cinemaRepo,
		booking.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

func newTestApplication(opts ...func(*Application)) *Application {
	registry := prometheus.NewRegistry()

	app := &Application{
		config:         Config{Env: "test"},
		validator:      validator.NewValidator(),
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		sessionManager: scs.New(),
		bookings:       newTestRepos().service(),
		metrics:        newHTTPMetrics(registry),
		registry:       registry,
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// setupTestSession stores the user id in a fresh session and returns the
// cookie identifying it.
func setupTestSession(t *testing.T, app *Application, userId int) *http.Cookie {
	ctx, err := app.sessionManager.Load(context.Background(), "")
	if err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}

	app.sessionManager.Put(ctx, SessionKeyUserId.String(), userId)

	token, _, err := app.sessionManager.Commit(ctx)
	if err != nil {
		t.Fatalf("Failed to commit session: %v", err)
	}

	return &http.Cookie{Name: app.sessionManager.Cookie.Name, Value: token}
}

func withUser(r *http.Request, userId int) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), SessionKeyUserId, userId))
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader

	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch tt.wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}
	}
}
