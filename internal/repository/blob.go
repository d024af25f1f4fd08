package repository

import "context"

// Persisted record names.  The whole inventory lives in two independent
// blobs: the ordered reservation list and the seat status set.
const (
	ReservationsKey = "reservations"
	SeatStatusesKey = "seatStatuses"
)

// BlobStore is the persistence boundary of the inventory engine.  The
// engine treats storage as an opaque key→blob mapping; MySQL, Redis and
// in-memory implementations are provided and selected by configuration.
// Get returns (nil, nil) when the key has never been written.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
}
