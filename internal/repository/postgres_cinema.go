package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking/internal/domain"
)

type PostgresCinemaRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCinemaRepository(db *pgxpool.Pool) *PostgresCinemaRepository {
	return &PostgresCinemaRepository{
		db: db,
	}
}

func (p *PostgresCinemaRepository) GetByHallId(ctx context.Context, hallID int) (*domain.Cinema, error) {
	query := `
		SELECT
			c.id,
			c.name,
			c.address,
			c.city,
			COALESCE(jsonb_agg(
				jsonb_build_object(
					'id', h.id,
					'cinemaId', h.cinema_id,
					'name', h.name
				) ORDER BY h.id), '[]') AS halls
		FROM cinemas c
		JOIN cinema_halls h ON h.cinema_id = c.id
		WHERE c.id = (SELECT cinema_id FROM cinema_halls WHERE id = $1)
		GROUP BY c.id, c.name, c.address, c.city
	`

	var cinema domain.Cinema
	var hallsJson json.RawMessage

	err := p.db.QueryRow(ctx, query, hallID).Scan(
		&cinema.ID,
		&cinema.Name,
		&cinema.Address,
		&cinema.City,
		&hallsJson,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	if len(hallsJson) > 0 {
		if err := json.Unmarshal(hallsJson, &cinema.Halls); err != nil {
			return nil, err
		}
	}

	return &cinema, nil
}
