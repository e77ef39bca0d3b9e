package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking/internal/domain"
)

type PostgresSeatRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSeatRepository(db *pgxpool.Pool) *PostgresSeatRepository {
	return &PostgresSeatRepository{
		db: db,
	}
}

func (p *PostgresSeatRepository) GetHallSeatingSchema(ctx context.Context, hallID int) ([]domain.PhysicalSeat, error) {
	query := `
		SELECT id, hall_id, grid_row, grid_col, seat_type
		FROM seats
		WHERE hall_id = $1
		ORDER BY grid_row, grid_col
	`

	rows, err := p.db.Query(ctx, query, hallID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]domain.PhysicalSeat, 0)

	for rows.Next() {
		var seat domain.PhysicalSeat

		err = rows.Scan(
			&seat.ID,
			&seat.HallID,
			&seat.Row,
			&seat.Col,
			&seat.Type,
		)
		if err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(seats) == 0 {
		var exists bool

		err = p.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM cinema_halls WHERE id = $1)`, hallID).Scan(&exists)
		if err != nil {
			return nil, err
		}

		if !exists {
			return nil, domain.ErrRecordNotFound
		}
	}

	return seats, nil
}

// GetSeatsByPositions resolves booking coordinates to the persisted seats of a
// hall. Positions that do not address a real seat are left out of the result.
func (p *PostgresSeatRepository) GetSeatsByPositions(
	ctx context.Context,
	hallID int,
	positions []domain.SeatPosition) ([]domain.Seat, error) {

	rowNums := make([]int32, len(positions))
	colNums := make([]int32, len(positions))

	for i, pos := range positions {
		rowNums[i] = int32(pos.Row)
		colNums[i] = int32(pos.Col)
	}

	query := `
		SELECT bs.id, bs.hall_id, bs.booking_row, bs.booking_col, bs.seat_type
		FROM bookable_seats bs
		JOIN unnest($2::int[], $3::int[]) AS p(booking_row, booking_col)
			ON bs.booking_row = p.booking_row AND bs.booking_col = p.booking_col
		WHERE bs.hall_id = $1
	`

	rows, err := p.db.Query(ctx, query, hallID, rowNums, colNums)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]domain.Seat, 0, len(positions))

	for rows.Next() {
		var seat domain.Seat

		err = rows.Scan(
			&seat.ID,
			&seat.HallID,
			&seat.Position.Row,
			&seat.Position.Col,
			&seat.Type,
		)
		if err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}
