package model

import "encoding/json"

// Source identifies the actor responsible for a seat being unavailable.
// A user source is a customer booking tied to a reservation; an admin
// source is an administrative block that end users can never select and
// the allocator never hands out.
type Source string

const (
	SourceUser  Source = "user"  // customer booking
	SourceAdmin Source = "admin" // administrative block
)

// SeatStatus marks one seat as taken.  At most one entry exists per
// (table, seat) pair at any time; a seat with no entry is free.
//
// Fields:
//  TableID – table number, 1..25.
//  SeatID  – seat number, 1..10.
//  Source  – who took the seat (user or admin).
type SeatStatus struct {
	TableID uint32 `json:"tableId"` // table of the occupied seat
	SeatID  uint32 `json:"seatId"`  // position of the occupied seat
	Source  Source `json:"source"`  // booking actor
}

// Seat returns the reference of the occupied seat.
func (s SeatStatus) Seat() SeatRef {
	return SeatRef{TableID: s.TableID, SeatID: s.SeatID}
}

// UnmarshalJSON decodes a persisted status entry.  Records written by
// older versions of the system carry no source field; those decode as a
// user booking.
func (s *SeatStatus) UnmarshalJSON(data []byte) error {
	type alias SeatStatus
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if a.Source == "" {
		a.Source = SourceUser
	}
	*s = SeatStatus(a)
	return nil
}
