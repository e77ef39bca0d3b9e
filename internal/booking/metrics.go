package booking

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/metinatakli/cinema-booking/internal/booking"

type metrics struct {
	created   metric.Int64Counter
	cancelled metric.Int64Counter
	conflicts metric.Int64Counter
}

// newMetrics registers the booking counters on the global meter provider,
// falling back to no-op counters if an instrument cannot be created.
func newMetrics() *metrics {
	meter := otel.Meter(meterName)
	fallback := noop.Meter{}

	counter := func(name, description string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(description), metric.WithUnit("{booking}"))
		if err != nil {
			c, _ = fallback.Int64Counter(name)
		}
		return c
	}

	return &metrics{
		created:   counter("booking.created", "Number of bookings created"),
		cancelled: counter("booking.cancelled", "Number of bookings cancelled"),
		conflicts: counter("booking.conflicts", "Number of bookings rejected because a seat was taken concurrently"),
	}
}
