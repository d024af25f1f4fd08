package model

import "fmt"

// Room geometry.  The venue is fixed: 25 round tables of 10 seats each,
// 250 seats in total.  Callers address a seat either by its (table, seat)
// pair or by a global identifier in the range [1,250].
const (
	TableCount    = 25                         // number of tables in the room
	SeatsPerTable = 10                         // seats around each table
	TotalSeats    = TableCount * SeatsPerTable // 250 addressable seats
)

// TableRowSizes partitions the 25 tables into display rows for the floor
// plan.  The grouping is purely presentational and carries no booking
// semantics; the sizes sum to TableCount.
var TableRowSizes = []int{4, 3, 4, 3, 4, 3, 4}

// SeatRef identifies a single seat by its table and position.  It is a
// stateless value type: whether the seat is free, booked or blocked is
// derived from the seat status store, never stored on the seat itself.
//
// Fields:
//  TableID – table number, 1..25.
//  SeatID  – position around the table, 1..10.
type SeatRef struct {
	TableID uint32 `json:"tableId"` // table number in [1,TableCount]
	SeatID  uint32 `json:"seatId"`  // seat number in [1,SeatsPerTable]
}

// Valid reports whether the reference addresses one of the 250 seats.
func (s SeatRef) Valid() bool {
	return s.TableID >= 1 && s.TableID <= TableCount &&
		s.SeatID >= 1 && s.SeatID <= SeatsPerTable
}

// GlobalID converts the (table, seat) pair into the flat identifier
// (tableID-1)*10 + seatID, in [1,TotalSeats].
func (s SeatRef) GlobalID() uint32 {
	return (s.TableID-1)*SeatsPerTable + s.SeatID
}

// SeatFromGlobalID is the inverse of GlobalID.  It returns false when the
// identifier falls outside [1,TotalSeats].
func SeatFromGlobalID(id uint32) (SeatRef, bool) {
	if id < 1 || id > TotalSeats {
		return SeatRef{}, false
	}
	return SeatRef{
		TableID: (id-1)/SeatsPerTable + 1,
		SeatID:  (id-1)%SeatsPerTable + 1,
	}, true
}

// Next returns the circular successor of the seat within its table: seat
// 10 wraps around to seat 1.  Tables are round, so seats 10 and 1 are
// physical neighbours.
func (s SeatRef) Next() SeatRef {
	n := s.SeatID + 1
	if n > SeatsPerTable {
		n = 1
	}
	return SeatRef{TableID: s.TableID, SeatID: n}
}

// Label renders the seat as a short human-readable tag such as "T3-S9".
// Used in event payloads and admin views.
func (s SeatRef) Label() string {
	return fmt.Sprintf("T%d-S%d", s.TableID, s.SeatID)
}

// TableSeats returns the 10 seats of the given table in ascending seat
// order.
func TableSeats(tableID uint32) []SeatRef {
	seats := make([]SeatRef, 0, SeatsPerTable)
	for n := uint32(1); n <= SeatsPerTable; n++ {
		seats = append(seats, SeatRef{TableID: tableID, SeatID: n})
	}
	return seats
}
