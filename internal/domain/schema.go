package domain

import (
	"cmp"
	"fmt"
	"slices"
)

// SourceSchemaEntry is a real seat of a hall expressed both in grid
// coordinates (Row, Col) and in booking coordinates (BookingRow, BookingCol).
type SourceSchemaEntry struct {
	Row        int
	Col        int
	BookingRow int
	BookingCol int
	Type       SeatType
}

func (e SourceSchemaEntry) BookingPosition() SeatPosition {
	return SeatPosition{Row: e.BookingRow, Col: e.BookingCol}
}

type SourceBookingSchema []SourceSchemaEntry

type ActualSchemaEntry struct {
	SourceSchemaEntry
	IsBooked bool
}

type ActualBookingSchema []ActualSchemaEntry

// MergedSchemaEntry is one cell of the client facing seating schema. Gaps are
// kept so the layout can be rendered, they have zero booking coordinates and
// are never bookable.
type MergedSchemaEntry struct {
	SeatID     int
	Row        int
	Col        int
	BookingRow int
	BookingCol int
	Type       SeatType
	Bookable   bool
	IsBooked   bool
}

func (e MergedSchemaEntry) BookingPosition() SeatPosition {
	return SeatPosition{Row: e.BookingRow, Col: e.BookingCol}
}

type MergedBookingSeatingSchema []MergedSchemaEntry

// GenerateSourceBookingSchema maps every real seat of the layout to booking
// coordinates. Booking rows count only grid rows holding at least one seat and
// booking columns count only seats, so aisles do not shift seat numbers.
// The layout is not modified.
func GenerateSourceBookingSchema(layout []PhysicalSeat) SourceBookingSchema {
	sorted := sortedLayout(layout)
	schema := make(SourceBookingSchema, 0, len(sorted))

	var (
		bookingRow int
		bookingCol int
		currentRow int
		last       *PhysicalSeat
	)

	for i := range sorted {
		cell := &sorted[i]

		if last != nil && last.Row == cell.Row && last.Col == cell.Col {
			continue
		}
		last = cell

		if !cell.Type.IsSeat() {
			continue
		}

		if bookingRow == 0 || cell.Row != currentRow {
			currentRow = cell.Row
			bookingRow++
			bookingCol = 0
		}
		bookingCol++

		schema = append(schema, SourceSchemaEntry{
			Row:        cell.Row,
			Col:        cell.Col,
			BookingRow: bookingRow,
			BookingCol: bookingCol,
			Type:       cell.Type,
		})
	}

	return schema
}

// GenerateActualBookingSchema marks the entries of the source schema whose
// booking position appears in booked.
func GenerateActualBookingSchema(source SourceBookingSchema, booked []SeatPosition) ActualBookingSchema {
	bookedSet := make(map[SeatPosition]struct{}, len(booked))
	for _, pos := range booked {
		bookedSet[pos] = struct{}{}
	}

	actual := make(ActualBookingSchema, len(source))

	for i, entry := range source {
		_, isBooked := bookedSet[entry.BookingPosition()]

		actual[i] = ActualSchemaEntry{
			SourceSchemaEntry: entry,
			IsBooked:          isBooked,
		}
	}

	return actual
}

// GenerateMergedBookingSeatingSchema returns one entry per layout cell in
// row-major order, annotated with the booking coordinates and availability
// found in actual for the same grid position.
func GenerateMergedBookingSeatingSchema(layout []PhysicalSeat, actual ActualBookingSchema) MergedBookingSeatingSchema {
	byGridPosition := make(map[SeatPosition]ActualSchemaEntry, len(actual))
	for _, entry := range actual {
		byGridPosition[SeatPosition{Row: entry.Row, Col: entry.Col}] = entry
	}

	sorted := sortedLayout(layout)
	merged := make(MergedBookingSeatingSchema, 0, len(sorted))

	for _, cell := range sorted {
		entry := MergedSchemaEntry{
			SeatID: cell.ID,
			Row:    cell.Row,
			Col:    cell.Col,
			Type:   cell.Type,
		}

		if a, ok := byGridPosition[SeatPosition{Row: cell.Row, Col: cell.Col}]; ok && cell.Type.IsSeat() {
			entry.BookingRow = a.BookingRow
			entry.BookingCol = a.BookingCol
			entry.Bookable = true
			entry.IsBooked = a.IsBooked
		}

		merged = append(merged, entry)
	}

	return merged
}

// SelectSeats returns the bookable entries matching the desired booking
// positions, in the order they were requested. It fails if any position is
// not part of the schema.
func (s MergedBookingSeatingSchema) SelectSeats(desired []SeatPosition) ([]MergedSchemaEntry, error) {
	byBookingPosition := make(map[SeatPosition]MergedSchemaEntry, len(s))
	for _, entry := range s {
		if entry.Bookable {
			byBookingPosition[entry.BookingPosition()] = entry
		}
	}

	selected := make([]MergedSchemaEntry, 0, len(desired))

	for _, pos := range desired {
		entry, ok := byBookingPosition[pos]
		if !ok {
			return nil, fmt.Errorf("%w: row %d, col %d", ErrSeatNotInSchema, pos.Row, pos.Col)
		}

		selected = append(selected, entry)
	}

	return selected, nil
}

// SeatType returns the type of the bookable seat at the booking position.
func (s MergedBookingSeatingSchema) SeatType(pos SeatPosition) (SeatType, bool) {
	for _, entry := range s {
		if entry.Bookable && entry.BookingPosition() == pos {
			return entry.Type, true
		}
	}

	return "", false
}

func sortedLayout(layout []PhysicalSeat) []PhysicalSeat {
	sorted := slices.Clone(layout)

	slices.SortStableFunc(sorted, func(a, b PhysicalSeat) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Col, b.Col)
	})

	return sorted
}
