// Package queue defines the reservation lifecycle events exchanged over
// the message broker and the consumer that journals them.
package queue

import (
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/event-seating/internal/model"
)

// Event types published on the reservation.events queue.
const (
	EventReservationConfirmed = "reservation.confirmed"
	EventReservationUpdated   = "reservation.updated"
	EventReservationCancelled = "reservation.cancelled"
)

// ReservationEvent is published whenever a reservation is created,
// updated or deleted.  It carries enough for downstream consumers to
// log or notify without reading the primary store.
type ReservationEvent struct {
	EventID       string   `json:"event_id"`       // unique id for deduplication
	Type          string   `json:"type"`           // one of the EventReservation* constants
	ReservationID uint64   `json:"reservation_id"` // id of the affected reservation
	Name          string   `json:"name"`           // customer name
	Pack          string   `json:"pack"`           // customer-facing pack label
	SeatLabels    []string `json:"seats"`          // seat tags such as "T3-S9"
	OccurredAt    string   `json:"occurred_at"`    // RFC3339 UTC timestamp
}

// NewReservationEvent builds an event of the given type for a
// reservation, stamping a fresh uuid and the current time.
func NewReservationEvent(eventType string, res model.Reservation) ReservationEvent {
	return ReservationEvent{
		EventID:       uuid.NewString(),
		Type:          eventType,
		ReservationID: res.ID,
		Name:          res.Name,
		Pack:          res.Pack.Label(),
		SeatLabels:    res.SeatLabels(),
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	}
}
