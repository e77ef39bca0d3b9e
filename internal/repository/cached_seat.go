package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/metinatakli/cinema-booking/internal/domain"
	"github.com/redis/go-redis/v9"
)

const DefaultLayoutCacheTTL = 10 * time.Minute

// CachedSeatRepository keeps hall layouts in Redis. Only the static layout is
// cached, booking state is always read from the database. Layouts of halls
// with movie sessions cannot change (see the seats_frozen_layout trigger), so
// entries are only dropped by their TTL.
type CachedSeatRepository struct {
	next   domain.SeatRepository
	redis  redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedSeatRepository(
	next domain.SeatRepository,
	client redis.UniversalClient,
	ttl time.Duration,
	logger *slog.Logger) *CachedSeatRepository {

	if ttl <= 0 {
		ttl = DefaultLayoutCacheTTL
	}

	return &CachedSeatRepository{
		next:   next,
		redis:  client,
		ttl:    ttl,
		logger: logger,
	}
}

func hallLayoutKey(hallID int) string {
	return fmt.Sprintf("hall_layout:%d", hallID)
}

// GetHallSeatingSchema serves the layout from Redis when present and falls
// back to the wrapped repository otherwise. Redis failures never fail the call.
func (c *CachedSeatRepository) GetHallSeatingSchema(ctx context.Context, hallID int) ([]domain.PhysicalSeat, error) {
	key := hallLayoutKey(hallID)

	layoutBytes, err := c.redis.Get(ctx, key).Bytes()
	if err == nil {
		var layout []domain.PhysicalSeat

		err = json.Unmarshal(layoutBytes, &layout)
		if err == nil {
			return layout, nil
		}

		c.logger.Warn("discarding malformed cached hall layout", "hall_id", hallID, "error", err)
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("failed to read hall layout from cache", "hall_id", hallID, "error", err)
	}

	layout, err := c.next.GetHallSeatingSchema(ctx, hallID)
	if err != nil {
		return nil, err
	}

	layoutBytes, err = json.Marshal(layout)
	if err != nil {
		return nil, err
	}

	err = c.redis.Set(ctx, key, layoutBytes, c.ttl).Err()
	if err != nil {
		c.logger.Warn("failed to cache hall layout", "hall_id", hallID, "error", err)
	}

	return layout, nil
}

func (c *CachedSeatRepository) GetSeatsByPositions(
	ctx context.Context,
	hallID int,
	positions []domain.SeatPosition) ([]domain.Seat, error) {

	return c.next.GetSeatsByPositions(ctx, hallID, positions)
}
