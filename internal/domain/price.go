package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PriceFactor is the per session multiplier applied to the base price of a
// seat of the given type.
type PriceFactor struct {
	MovieSessionID int
	SeatType       SeatType
	Factor         decimal.Decimal
}

// PricingPolicy decides how seat types without a price factor row are priced.
type PricingPolicy struct {
	DefaultFactor         decimal.Decimal
	RequireExplicitFactor bool
}

func DefaultPricingPolicy() PricingPolicy {
	return PricingPolicy{
		DefaultFactor: decimal.NewFromInt(1),
	}
}

// factorFor returns the multiplier for a seat type, falling back to the
// policy default unless an explicit factor is required. A non-positive
// default counts as a factor of one.
func (p PricingPolicy) factorFor(seatType SeatType, factors map[SeatType]decimal.Decimal) (decimal.Decimal, error) {
	if factor, ok := factors[seatType]; ok {
		return factor, nil
	}

	if p.RequireExplicitFactor {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrMissingPriceFactor, seatType)
	}

	if !p.DefaultFactor.IsPositive() {
		return decimal.NewFromInt(1), nil
	}

	return p.DefaultFactor, nil
}

func CalcSeatPrice(basePrice, factor decimal.Decimal) decimal.Decimal {
	return basePrice.Mul(factor)
}

// CalcTotalPrice sums basePrice × factor over the given seats.
func CalcTotalPrice(
	seats []SeatWithType,
	factors []PriceFactor,
	basePrice decimal.Decimal,
	policy PricingPolicy) (decimal.Decimal, error) {

	factorsByType := make(map[SeatType]decimal.Decimal, len(factors))
	for _, f := range factors {
		factorsByType[f.SeatType] = f.Factor
	}

	total := decimal.Zero

	for _, seat := range seats {
		if !seat.Type.IsSeat() {
			return decimal.Zero, fmt.Errorf("%w: row %d, col %d", ErrSeatNotInSchema, seat.Position.Row, seat.Position.Col)
		}

		factor, err := policy.factorFor(seat.Type, factorsByType)
		if err != nil {
			return decimal.Zero, err
		}

		total = total.Add(CalcSeatPrice(basePrice, factor))
	}

	return total, nil
}
