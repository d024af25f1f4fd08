package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/iliyamo/event-seating/internal/model"
)

// SeatStatusRepo is the ground truth of seat availability.  It persists
// the set of taken seats as one JSON blob under SeatStatusesKey; a seat
// with no entry is free.  All mutations are read-modify-write on that
// blob, so callers must serialize access (the coordinator does).
type SeatStatusRepo struct {
	store BlobStore
}

// NewSeatStatusRepo returns a repo bound to the given blob store.
func NewSeatStatusRepo(store BlobStore) *SeatStatusRepo { return &SeatStatusRepo{store: store} }

// GetAll returns the current snapshot of taken seats.  Order is not
// significant.  When the persisted blob cannot be decoded, the snapshot
// degrades to empty and the error is ErrCorruptData; callers keep the
// empty snapshot and may log the signal without changing control flow.
func (r *SeatStatusRepo) GetAll(ctx context.Context) ([]model.SeatStatus, error) {
	return r.load(ctx)
}

// Book inserts an entry for every given seat that has no entry yet.
// Seats already taken, by either source, are left untouched: booking is
// idempotent and never converts an admin block into a user booking or
// the reverse.
func (r *SeatStatusRepo) Book(ctx context.Context, seats []model.SeatRef, source model.Source) error {
	if len(seats) == 0 {
		return nil
	}
	entries, err := r.loadForWrite(ctx)
	if err != nil {
		return err
	}
	taken := seatSet(entries)
	for _, s := range seats {
		if taken[s] {
			continue
		}
		entries = append(entries, model.SeatStatus{TableID: s.TableID, SeatID: s.SeatID, Source: source})
		taken[s] = true
	}
	return r.save(ctx, entries)
}

// Unbook removes the entries for the given seats.  Unbooking a free
// seat is a no-op.
func (r *SeatStatusRepo) Unbook(ctx context.Context, seats []model.SeatRef) error {
	if len(seats) == 0 {
		return nil
	}
	entries, err := r.loadForWrite(ctx)
	if err != nil {
		return err
	}
	drop := make(map[model.SeatRef]bool, len(seats))
	for _, s := range seats {
		drop[s] = true
	}
	kept := entries[:0]
	for _, e := range entries {
		if !drop[e.Seat()] {
			kept = append(kept, e)
		}
	}
	return r.save(ctx, kept)
}

// ToggleAdmin flips the administrative state of one seat: an existing
// entry is removed whatever its source, an absent one is inserted with
// the admin source.  Toggling a user-booked seat therefore frees it
// without touching the owning reservation; the coordinator documents
// that caveat.
func (r *SeatStatusRepo) ToggleAdmin(ctx context.Context, tableID, seatID uint32) error {
	entries, err := r.loadForWrite(ctx)
	if err != nil {
		return err
	}
	target := model.SeatRef{TableID: tableID, SeatID: seatID}
	kept := entries[:0]
	removed := false
	for _, e := range entries {
		if e.Seat() == target {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		kept = append(kept, model.SeatStatus{TableID: tableID, SeatID: seatID, Source: model.SourceAdmin})
	}
	return r.save(ctx, kept)
}

// load decodes the persisted blob.  A missing blob is an empty set; a
// blob that fails to decode degrades to empty with ErrCorruptData.
func (r *SeatStatusRepo) load(ctx context.Context) ([]model.SeatStatus, error) {
	data, err := r.store.Get(ctx, SeatStatusesKey)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []model.SeatStatus{}, nil
	}
	var entries []model.SeatStatus
	if err := json.Unmarshal(data, &entries); err != nil {
		return []model.SeatStatus{}, ErrCorruptData
	}
	return entries, nil
}

// loadForWrite is load with the corruption signal downgraded to a log
// line, for mutations that must proceed on a reset store.
func (r *SeatStatusRepo) loadForWrite(ctx context.Context) ([]model.SeatStatus, error) {
	entries, err := r.load(ctx)
	if errors.Is(err, ErrCorruptData) {
		log.Printf("seatstatus: %v", err)
		return entries, nil
	}
	return entries, err
}

func (r *SeatStatusRepo) save(ctx context.Context, entries []model.SeatStatus) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, SeatStatusesKey, data)
}

func seatSet(entries []model.SeatStatus) map[model.SeatRef]bool {
	set := make(map[model.SeatRef]bool, len(entries))
	for _, e := range entries {
		set[e.Seat()] = true
	}
	return set
}
