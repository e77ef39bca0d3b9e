package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/metinatakli/cinema-booking/internal/domain"
)

type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, booking domain.Booking) error
	PublishBookingCancelled(ctx context.Context, booking domain.Booking) error
}

type Service struct {
	seatRepo    domain.SeatRepository
	sessionRepo domain.MovieSessionRepository
	bookingRepo domain.BookingRepository
	cinemaRepo  domain.CinemaRepository
	publisher   EventPublisher
	policy      domain.PricingPolicy
	logger      *slog.Logger
	metrics     *metrics
}

type Option func(*Service)

func WithPricingPolicy(policy domain.PricingPolicy) Option {
	return func(s *Service) {
		s.policy = policy
	}
}

func WithEventPublisher(publisher EventPublisher) Option {
	return func(s *Service) {
		if publisher != nil {
			s.publisher = publisher
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewService(
	seatRepo domain.SeatRepository,
	sessionRepo domain.MovieSessionRepository,
	bookingRepo domain.BookingRepository,
	cinemaRepo domain.CinemaRepository,
	opts ...Option) *Service {

	svc := &Service{
		seatRepo:    seatRepo,
		sessionRepo: sessionRepo,
		bookingRepo: bookingRepo,
		cinemaRepo:  cinemaRepo,
		publisher:   noopPublisher{},
		policy:      domain.DefaultPricingPolicy(),
		logger:      slog.Default(),
		metrics:     newMetrics(),
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc
}

type SeatingSchema struct {
	MovieSessionID int
	CinemaHallID   int
	Seats          domain.MergedBookingSeatingSchema
}

type CreateBookingInput struct {
	UserID         int
	MovieSessionID int
	Seats          []domain.SeatPosition
}

type Availability struct {
	AllSeatsAreAvailable bool
	BookedSeats          []domain.SeatPosition
}

type BatchResult struct {
	Count int
}

// FindSeatingSchema rebuilds the seating schema of the session's hall with the
// current booking state.
func (s *Service) FindSeatingSchema(ctx context.Context, movieSessionID int) (*SeatingSchema, error) {
	session, err := s.sessionRepo.GetById(ctx, movieSessionID)
	if err != nil {
		return nil, err
	}

	seats, err := s.mergedSchema(ctx, session.ID, session.CinemaHallID)
	if err != nil {
		return nil, err
	}

	return &SeatingSchema{
		MovieSessionID: session.ID,
		CinemaHallID:   session.CinemaHallID,
		Seats:          seats,
	}, nil
}

func (s *Service) mergedSchema(ctx context.Context, movieSessionID, hallID int) (domain.MergedBookingSeatingSchema, error) {
	layout, err := s.seatRepo.GetHallSeatingSchema(ctx, hallID)
	if err != nil {
		return nil, err
	}

	source := domain.GenerateSourceBookingSchema(layout)

	booked, err := s.bookingRepo.GetBookedPositionsByMovieSession(ctx, movieSessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booked seats of movie session %d: %w", movieSessionID, err)
	}

	actual := domain.GenerateActualBookingSchema(source, booked)

	return domain.GenerateMergedBookingSeatingSchema(layout, actual), nil
}

// CreateBooking validates the desired seats against a freshly built seating
// schema, prices them and stores the booking with its seats in one
// transaction. Seats taken by a concurrent booking surface as
// domain.ErrBookingConflict.
func (s *Service) CreateBooking(ctx context.Context, in CreateBookingInput) (*domain.Booking, error) {
	err := validateSelection(in.Seats)
	if err != nil {
		return nil, err
	}

	session, err := s.sessionRepo.GetById(ctx, in.MovieSessionID)
	if err != nil {
		return nil, err
	}

	schema, err := s.mergedSchema(ctx, session.ID, session.CinemaHallID)
	if err != nil {
		return nil, err
	}

	selected, err := schema.SelectSeats(in.Seats)
	if err != nil {
		return nil, err
	}

	seatsWithType := make([]domain.SeatWithType, len(selected))
	var alreadyBooked []domain.SeatPosition

	for i, entry := range selected {
		seatsWithType[i] = domain.SeatWithType{Position: entry.BookingPosition(), Type: entry.Type}

		if entry.IsBooked {
			alreadyBooked = append(alreadyBooked, entry.BookingPosition())
		}
	}

	if len(alreadyBooked) > 0 {
		return nil, fmt.Errorf("%w: %v", domain.ErrSeatAlreadyReserved, alreadyBooked)
	}

	factors, err := s.sessionRepo.GetPriceFactors(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get price factors of movie session %d: %w", session.ID, err)
	}

	totalPrice, err := domain.CalcTotalPrice(seatsWithType, factors, session.BasePrice, s.policy)
	if err != nil {
		return nil, err
	}

	seats, err := s.seatRepo.GetSeatsByPositions(ctx, session.CinemaHallID, in.Seats)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve seats of hall %d: %w", session.CinemaHallID, err)
	}

	if len(seats) != len(in.Seats) {
		return nil, fmt.Errorf("%w: resolved %d of %d seats", domain.ErrSeatNotInSchema, len(seats), len(in.Seats))
	}

	booking := &domain.Booking{
		UserID:         in.UserID,
		MovieSessionID: session.ID,
		TotalPrice:     totalPrice,
		Currency:       session.Currency,
		Seats:          make([]domain.SeatOnBooking, len(seats)),
	}

	for i, seat := range seats {
		booking.Seats[i] = domain.SeatOnBooking{
			MovieSessionID: session.ID,
			SeatID:         seat.ID,
		}
	}

	err = s.bookingRepo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, domain.ErrBookingConflict) {
			s.metrics.conflicts.Add(ctx, 1)
		}

		return nil, err
	}

	s.metrics.created.Add(ctx, 1)

	err = s.publisher.PublishBookingCreated(ctx, *booking)
	if err != nil {
		s.logger.Error("failed to publish booking created event", "booking_id", booking.ID, "error", err)
	}

	return booking, nil
}

func validateSelection(seats []domain.SeatPosition) error {
	if len(seats) == 0 {
		return domain.ErrNoSeatsSelected
	}

	seen := make(map[domain.SeatPosition]struct{}, len(seats))

	for _, pos := range seats {
		if _, ok := seen[pos]; ok {
			return fmt.Errorf("%w: row %d, col %d", domain.ErrDuplicateSeat, pos.Row, pos.Col)
		}
		seen[pos] = struct{}{}
	}

	return nil
}

// CheckSeatsAvailability splits the desired seats into available and already
// booked ones. The answer is advisory, CreateBooking does not rely on it.
func (s *Service) CheckSeatsAvailability(
	ctx context.Context,
	movieSessionID int,
	desired []domain.SeatPosition) (Availability, error) {

	_, err := s.sessionRepo.GetById(ctx, movieSessionID)
	if err != nil {
		return Availability{}, err
	}

	booked, err := s.bookingRepo.GetBookedPositionsByMovieSession(ctx, movieSessionID)
	if err != nil {
		return Availability{}, fmt.Errorf("failed to get booked seats of movie session %d: %w", movieSessionID, err)
	}

	bookedSet := make(map[domain.SeatPosition]struct{}, len(booked))
	for _, pos := range booked {
		bookedSet[pos] = struct{}{}
	}

	bookedSeats := make([]domain.SeatPosition, 0)

	for _, pos := range desired {
		if _, ok := bookedSet[pos]; ok {
			bookedSeats = append(bookedSeats, pos)
		}
	}

	return Availability{
		AllSeatsAreAvailable: len(bookedSeats) == 0,
		BookedSeats:          bookedSeats,
	}, nil
}

// CancelBooking removes the booking and its seats. A missing booking is
// reported as domain.ErrRecordNotFound.
func (s *Service) CancelBooking(ctx context.Context, bookingID int) (*domain.Booking, error) {
	booking, err := s.bookingRepo.Delete(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	s.metrics.cancelled.Add(ctx, 1)
	s.publishCancelled(ctx, *booking)

	return booking, nil
}

func (s *Service) CancelAllBookingsForSessionAndUser(ctx context.Context, userID, movieSessionID int) (BatchResult, error) {
	bookings, err := s.bookingRepo.DeleteByUserAndMovieSession(ctx, userID, movieSessionID)
	if err != nil {
		return BatchResult{}, err
	}

	s.metrics.cancelled.Add(ctx, int64(len(bookings)))

	for _, booking := range bookings {
		s.publishCancelled(ctx, booking)
	}

	return BatchResult{Count: len(bookings)}, nil
}

func (s *Service) publishCancelled(ctx context.Context, booking domain.Booking) {
	err := s.publisher.PublishBookingCancelled(ctx, booking)
	if err != nil {
		s.logger.Error("failed to publish booking cancelled event", "booking_id", booking.ID, "error", err)
	}
}

func (s *Service) FindBookingByID(ctx context.Context, bookingID int) (*domain.Booking, error) {
	return s.bookingRepo.GetById(ctx, bookingID)
}

func (s *Service) FindBookingsByUser(
	ctx context.Context,
	userID int,
	pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error) {

	return s.bookingRepo.GetSummariesByUserId(ctx, userID, pagination)
}

// FindSeatsByBookingID returns the booked seats of a booking annotated with
// their seat type taken from the hall seating schema.
func (s *Service) FindSeatsByBookingID(ctx context.Context, booking *domain.Booking) ([]domain.SeatWithType, error) {
	session, err := s.sessionRepo.GetById(ctx, booking.MovieSessionID)
	if err != nil {
		return nil, err
	}

	schema, err := s.mergedSchema(ctx, session.ID, session.CinemaHallID)
	if err != nil {
		return nil, err
	}

	positions, err := s.bookingRepo.GetSeatPositionsByBookingId(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get seats of booking %d: %w", booking.ID, err)
	}

	seats := make([]domain.SeatWithType, 0, len(positions))

	for _, pos := range positions {
		seatType, ok := schema.SeatType(pos)
		if !ok {
			s.logger.Warn("booked seat missing from seating schema",
				"booking_id", booking.ID, "row", pos.Row, "col", pos.Col)
			continue
		}

		seats = append(seats, domain.SeatWithType{Position: pos, Type: seatType})
	}

	return seats, nil
}

func (s *Service) FindCinemaByHallID(ctx context.Context, hallID int) (*domain.Cinema, error) {
	return s.cinemaRepo.GetByHallId(ctx, hallID)
}

type noopPublisher struct{}

func (noopPublisher) PublishBookingCreated(context.Context, domain.Booking) error {
	return nil
}

func (noopPublisher) PublishBookingCancelled(context.Context, domain.Booking) error {
	return nil
}
