package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type MovieSession struct {
	ID           int
	MovieID      int
	CinemaHallID int
	StartTime    time.Time
	BasePrice    decimal.Decimal
	Currency     string
}

type MovieSessionRepository interface {
	GetById(ctx context.Context, id int) (*MovieSession, error)
	GetPriceFactors(ctx context.Context, movieSessionID int) ([]PriceFactor, error)
}
