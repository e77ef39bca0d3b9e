package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking/internal/domain"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO bookings (user_id, movie_session_id, total_price, currency)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at
		`

		err := tx.QueryRow(
			ctx,
			query,
			booking.UserID,
			booking.MovieSessionID,
			booking.TotalPrice,
			booking.Currency).Scan(&booking.ID, &booking.CreatedAt)

		if err != nil {
			return err
		}

		rows := make([][]any, 0, len(booking.Seats))
		for i := range booking.Seats {
			booking.Seats[i].BookingID = booking.ID

			rows = append(rows, []any{
				booking.ID,
				booking.Seats[i].MovieSessionID,
				booking.Seats[i].SeatID,
			})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"seat_on_booking"},
			[]string{"booking_id", "movie_session_id", "seat_id"},
			pgx.CopyFromRows(rows),
		)

		return err
	})

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrBookingConflict
		}

		return err
	}

	return nil
}

func (p *PostgresBookingRepository) GetById(ctx context.Context, id int) (*domain.Booking, error) {
	query := `
		SELECT id, user_id, movie_session_id, total_price, currency, created_at
		FROM bookings
		WHERE id = $1
	`

	var booking domain.Booking

	err := p.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.MovieSessionID,
		&booking.TotalPrice,
		&booking.Currency,
		&booking.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	query = `
		SELECT booking_id, movie_session_id, seat_id
		FROM seat_on_booking
		WHERE booking_id = $1
		ORDER BY seat_id
	`

	rows, err := p.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}

	booking.Seats, err = scanSeatsOnBooking(rows)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func (p *PostgresBookingRepository) GetBookedPositionsByMovieSession(
	ctx context.Context,
	movieSessionID int) ([]domain.SeatPosition, error) {

	query := `
		SELECT bs.booking_row, bs.booking_col
		FROM seat_on_booking sob
		JOIN movie_sessions ms ON ms.id = sob.movie_session_id
		JOIN bookable_seats bs ON bs.id = sob.seat_id AND bs.hall_id = ms.cinema_hall_id
		WHERE sob.movie_session_id = $1
		ORDER BY bs.booking_row, bs.booking_col
	`

	rows, err := p.db.Query(ctx, query, movieSessionID)
	if err != nil {
		return nil, err
	}

	return scanSeatPositions(rows)
}

func (p *PostgresBookingRepository) GetSeatPositionsByBookingId(
	ctx context.Context,
	bookingID int) ([]domain.SeatPosition, error) {

	query := `
		SELECT bs.booking_row, bs.booking_col
		FROM seat_on_booking sob
		JOIN bookable_seats bs ON bs.id = sob.seat_id
		WHERE sob.booking_id = $1
		ORDER BY bs.booking_row, bs.booking_col
	`

	rows, err := p.db.Query(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}

	return scanSeatPositions(rows)
}

func (p *PostgresBookingRepository) GetSummariesByUserId(
	ctx context.Context,
	userID int,
	pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error) {

	query := `
		SELECT
			COUNT(*) OVER(),
			b.id,
			b.movie_session_id,
			ms.cinema_hall_id,
			ms.start_time,
			b.total_price,
			b.currency,
			b.created_at
		FROM bookings b
		JOIN movie_sessions ms ON b.movie_session_id = ms.id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, userID, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	bookings := make([]domain.BookingSummary, 0)
	totalRecords := 0

	for rows.Next() {
		var booking domain.BookingSummary

		err := rows.Scan(
			&totalRecords,
			&booking.BookingID,
			&booking.MovieSessionID,
			&booking.CinemaHallID,
			&booking.StartTime,
			&booking.TotalPrice,
			&booking.Currency,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination)

	return bookings, metadata, nil
}

// Delete removes the booking together with its seats and returns what was
// removed.
func (p *PostgresBookingRepository) Delete(ctx context.Context, id int) (*domain.Booking, error) {
	var booking domain.Booking

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			DELETE FROM seat_on_booking
			WHERE booking_id = $1
			RETURNING booking_id, movie_session_id, seat_id
		`, id)
		if err != nil {
			return err
		}

		booking.Seats, err = scanSeatsOnBooking(rows)
		if err != nil {
			return err
		}

		query := `
			DELETE FROM bookings
			WHERE id = $1
			RETURNING id, user_id, movie_session_id, total_price, currency, created_at
		`

		err = tx.QueryRow(ctx, query, id).Scan(
			&booking.ID,
			&booking.UserID,
			&booking.MovieSessionID,
			&booking.TotalPrice,
			&booking.Currency,
			&booking.CreatedAt,
		)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrRecordNotFound
		}

		return err
	})

	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func (p *PostgresBookingRepository) DeleteByUserAndMovieSession(
	ctx context.Context,
	userID,
	movieSessionID int) ([]domain.Booking, error) {

	bookings := make([]domain.Booking, 0)

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			DELETE FROM seat_on_booking sob
			USING bookings b
			WHERE sob.booking_id = b.id AND b.user_id = $1 AND b.movie_session_id = $2
			RETURNING sob.booking_id, sob.movie_session_id, sob.seat_id
		`, userID, movieSessionID)
		if err != nil {
			return err
		}

		seats, err := scanSeatsOnBooking(rows)
		if err != nil {
			return err
		}

		seatsByBooking := make(map[int][]domain.SeatOnBooking)
		for _, seat := range seats {
			seatsByBooking[seat.BookingID] = append(seatsByBooking[seat.BookingID], seat)
		}

		rows, err = tx.Query(ctx, `
			DELETE FROM bookings
			WHERE user_id = $1 AND movie_session_id = $2
			RETURNING id, user_id, movie_session_id, total_price, currency, created_at
		`, userID, movieSessionID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var booking domain.Booking

			err = rows.Scan(
				&booking.ID,
				&booking.UserID,
				&booking.MovieSessionID,
				&booking.TotalPrice,
				&booking.Currency,
				&booking.CreatedAt,
			)
			if err != nil {
				return err
			}

			booking.Seats = seatsByBooking[booking.ID]
			bookings = append(bookings, booking)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func scanSeatsOnBooking(rows pgx.Rows) ([]domain.SeatOnBooking, error) {
	defer rows.Close()

	seats := make([]domain.SeatOnBooking, 0)

	for rows.Next() {
		var seat domain.SeatOnBooking

		err := rows.Scan(
			&seat.BookingID,
			&seat.MovieSessionID,
			&seat.SeatID,
		)
		if err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

func scanSeatPositions(rows pgx.Rows) ([]domain.SeatPosition, error) {
	defer rows.Close()

	positions := make([]domain.SeatPosition, 0)

	for rows.Next() {
		var pos domain.SeatPosition

		err := rows.Scan(&pos.Row, &pos.Col)
		if err != nil {
			return nil, err
		}

		positions = append(positions, pos)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return positions, nil
}
