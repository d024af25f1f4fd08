package model

import "time"

// Reservation records a booking made through the event form or the
// admin panel.  It groups the seats taken under one name and phone
// number together with the pack that was purchased.
//
// Fields:
//  ID        – store-assigned identifier, positive, never reused.
//  Name      – customer name.
//  Phone     – customer phone number.
//  Pack      – size class of the booking.
//  Seats     – seats held by this reservation, in assignment order.
//  CreatedAt – creation (or last update) timestamp, UTC.
type Reservation struct {
	ID        uint64    `json:"id"`        // assigned by the reservation store
	Name      string    `json:"name"`      // customer name
	Phone     string    `json:"phone"`     // customer phone
	Pack      PackKind  `json:"pack"`      // size class
	Seats     []SeatRef `json:"seats"`     // seats held by the booking
	CreatedAt time.Time `json:"timestamp"` // creation time, UTC
}

// SeatLabels returns the human-readable tags of the reservation's seats,
// in order, for event payloads and logs.
func (r Reservation) SeatLabels() []string {
	labels := make([]string, 0, len(r.Seats))
	for _, s := range r.Seats {
		labels = append(labels, s.Label())
	}
	return labels
}
