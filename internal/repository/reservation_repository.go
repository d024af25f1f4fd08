package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/iliyamo/event-seating/internal/model"
)

// ReservationRepo persists the ordered reservation list as one JSON blob
// under ReservationsKey.  Identifiers are assigned here: max existing id
// plus one, starting at 1.  Updates keep the id and position of the
// record; deletes never renumber the survivors.
type ReservationRepo struct {
	store BlobStore
}

// NewReservationRepo returns a repo bound to the given blob store.
func NewReservationRepo(store BlobStore) *ReservationRepo { return &ReservationRepo{store: store} }

// List returns all reservations in insertion order.  A corrupt blob
// degrades to an empty list with ErrCorruptData, mirroring the seat
// status repo.
func (r *ReservationRepo) List(ctx context.Context) ([]model.Reservation, error) {
	return r.load(ctx)
}

// Get returns the reservation with the given id, or ErrNotFound.
func (r *ReservationRepo) Get(ctx context.Context, id uint64) (model.Reservation, error) {
	list, err := r.loadForWrite(ctx)
	if err != nil {
		return model.Reservation{}, err
	}
	for _, res := range list {
		if res.ID == id {
			return res, nil
		}
	}
	return model.Reservation{}, ErrNotFound
}

// Add assigns the next id, stamps the creation time when unset, appends
// the record and persists the list.  The stored reservation is returned.
func (r *ReservationRepo) Add(ctx context.Context, res model.Reservation) (model.Reservation, error) {
	list, err := r.loadForWrite(ctx)
	if err != nil {
		return model.Reservation{}, err
	}
	var maxID uint64
	for _, existing := range list {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	res.ID = maxID + 1
	if res.CreatedAt.IsZero() {
		res.CreatedAt = time.Now().UTC()
	}
	list = append(list, res)
	if err := r.save(ctx, list); err != nil {
		return model.Reservation{}, err
	}
	return res, nil
}

// Update replaces the record with the given id in place, preserving its
// position in the list.  ErrNotFound is returned when no record matches;
// the blob is not rewritten in that case.
func (r *ReservationRepo) Update(ctx context.Context, id uint64, res model.Reservation) error {
	list, err := r.loadForWrite(ctx)
	if err != nil {
		return err
	}
	for i, existing := range list {
		if existing.ID == id {
			res.ID = id
			list[i] = res
			return r.save(ctx, list)
		}
	}
	return ErrNotFound
}

// Delete removes the record with the given id, or returns ErrNotFound.
// Deleting does not free the reservation's seats; the coordinator
// cascades that.
func (r *ReservationRepo) Delete(ctx context.Context, id uint64) error {
	list, err := r.loadForWrite(ctx)
	if err != nil {
		return err
	}
	for i, existing := range list {
		if existing.ID == id {
			list = append(list[:i], list[i+1:]...)
			return r.save(ctx, list)
		}
	}
	return ErrNotFound
}

func (r *ReservationRepo) load(ctx context.Context) ([]model.Reservation, error) {
	data, err := r.store.Get(ctx, ReservationsKey)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []model.Reservation{}, nil
	}
	var list []model.Reservation
	if err := json.Unmarshal(data, &list); err != nil {
		return []model.Reservation{}, ErrCorruptData
	}
	return list, nil
}

func (r *ReservationRepo) loadForWrite(ctx context.Context) ([]model.Reservation, error) {
	list, err := r.load(ctx)
	if errors.Is(err, ErrCorruptData) {
		log.Printf("reservations: %v", err)
		return list, nil
	}
	return list, err
}

func (r *ReservationRepo) save(ctx context.Context, list []model.Reservation) error {
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, ReservationsKey, data)
}
