package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking/internal/domain"
)

type PostgresMovieSessionRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieSessionRepository(db *pgxpool.Pool) *PostgresMovieSessionRepository {
	return &PostgresMovieSessionRepository{
		db: db,
	}
}

func (p *PostgresMovieSessionRepository) GetById(ctx context.Context, id int) (*domain.MovieSession, error) {
	query := `
		SELECT id, movie_id, cinema_hall_id, start_time, base_price, currency
		FROM movie_sessions
		WHERE id = $1
	`

	var session domain.MovieSession

	err := p.db.QueryRow(ctx, query, id).Scan(
		&session.ID,
		&session.MovieID,
		&session.CinemaHallID,
		&session.StartTime,
		&session.BasePrice,
		&session.Currency,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &session, nil
}

func (p *PostgresMovieSessionRepository) GetPriceFactors(
	ctx context.Context,
	movieSessionID int) ([]domain.PriceFactor, error) {

	query := `
		SELECT movie_session_id, seat_type, factor
		FROM movie_session_price_factors
		WHERE movie_session_id = $1
	`

	rows, err := p.db.Query(ctx, query, movieSessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	factors := make([]domain.PriceFactor, 0)

	for rows.Next() {
		var factor domain.PriceFactor

		err = rows.Scan(&factor.MovieSessionID, &factor.SeatType, &factor.Factor)
		if err != nil {
			return nil, err
		}

		factors = append(factors, factor)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return factors, nil
}
