// Package service contains the reservation coordinator, the only writer
// of the seat status and reservation stores.  It sequences every
// operation so the two records never diverge: after each public call
// the union of seats across live reservations equals the set of
// user-sourced status entries.
package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/iliyamo/event-seating/internal/model"
	"github.com/iliyamo/event-seating/internal/repository"
	"github.com/iliyamo/event-seating/internal/seating"
)

// Coordinator orchestrates reservation and seat status mutations.  A
// single mutex serializes every public operation end to end, so the
// allocator snapshot, the booking and the record write behave as one
// step even under concurrent HTTP callers.
type Coordinator struct {
	mu    sync.Mutex // serializes every public operation
	seats *repository.SeatStatusRepo
	resv  *repository.ReservationRepo
	alloc *seating.Allocator
}

// New wires the coordinator to its stores and allocator.
func New(seats *repository.SeatStatusRepo, resv *repository.ReservationRepo, alloc *seating.Allocator) *Coordinator {
	return &Coordinator{seats: seats, resv: resv, alloc: alloc}
}

// ListReservations returns all reservations in insertion order.
func (c *Coordinator) ListReservations(ctx context.Context) ([]model.Reservation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	list, err := c.resv.List(ctx)
	return list, c.demoteCorrupt(err, "reservations")
}

// SeatStatuses returns the current occupancy snapshot.
func (c *Coordinator) SeatStatuses(ctx context.Context) ([]model.SeatStatus, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot(ctx)
}

// FreeSeats returns every seat without a status entry, in (table, seat)
// ascending order.
func (c *Coordinator) FreeSeats(ctx context.Context) ([]model.SeatRef, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	taken, err := c.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	occupied := make(map[model.SeatRef]bool, len(taken))
	for _, e := range taken {
		occupied[e.Seat()] = true
	}
	free := make([]model.SeatRef, 0, model.TotalSeats-len(taken))
	for t := uint32(1); t <= model.TableCount; t++ {
		for n := uint32(1); n <= model.SeatsPerTable; n++ {
			seat := model.SeatRef{TableID: t, SeatID: n}
			if !occupied[seat] {
				free = append(free, seat)
			}
		}
	}
	return free, nil
}

// AssignPreview runs the allocator against the current snapshot without
// booking anything.  The result is only a suggestion: it is not held
// and a later create may receive different seats.
func (c *Coordinator) AssignPreview(ctx context.Context, count int) ([]model.SeatRef, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	taken, err := c.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return c.alloc.Assign(count, taken), nil
}

// CreateAuto creates a reservation letting the allocator choose seats
// for the pack.  Insufficient inventory yields a reservation holding
// fewer seats than the pack normally carries; callers that care must
// check the seat count.
func (c *Coordinator) CreateAuto(ctx context.Context, name, phone string, pack model.PackKind) (model.Reservation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	taken, err := c.snapshot(ctx)
	if err != nil {
		return model.Reservation{}, err
	}
	seats := c.alloc.Assign(pack.SeatCount(), taken)
	return c.commitCreate(ctx, name, phone, pack, seats)
}

// CreateExplicit creates a reservation for seats the caller already
// picked on the floor plan.  The pack class is derived from the seat
// count.  The view layer validates that the seats are free and not
// blocked before this point; seats that turn out taken are skipped by
// the idempotent book and dropped from the stored reservation.
func (c *Coordinator) CreateExplicit(ctx context.Context, name, phone string, seats []model.SeatRef) (model.Reservation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	taken, err := c.snapshot(ctx)
	if err != nil {
		return model.Reservation{}, err
	}
	occupied := make(map[model.SeatRef]bool, len(taken))
	for _, e := range taken {
		occupied[e.Seat()] = true
	}
	granted := make([]model.SeatRef, 0, len(seats))
	for _, s := range seats {
		if s.Valid() && !occupied[s] {
			granted = append(granted, s)
			occupied[s] = true
		}
	}
	return c.commitCreate(ctx, name, phone, model.PackForCount(len(seats)), granted)
}

// commitCreate books the seats then appends the record.  Both writes
// happen under the coordinator lock.
func (c *Coordinator) commitCreate(ctx context.Context, name, phone string, pack model.PackKind, seats []model.SeatRef) (model.Reservation, error) {
	if err := c.seats.Book(ctx, seats, model.SourceUser); err != nil {
		return model.Reservation{}, err
	}
	res := model.Reservation{
		Name:      name,
		Phone:     phone,
		Pack:      pack,
		Seats:     seats,
		CreatedAt: time.Now().UTC(),
	}
	stored, err := c.resv.Add(ctx, res)
	if err != nil {
		// Roll the booking back so no user-sourced entry is orphaned.
		if uerr := c.seats.Unbook(ctx, seats); uerr != nil {
			log.Printf("coordinator: rollback after failed add: %v", uerr)
		}
		return model.Reservation{}, err
	}
	return stored, nil
}

// Update rewrites an existing reservation.  An unknown id is a silent
// no-op, per the not-found contract: ok is false and err is nil.
//
// The new seat set is computed from a snapshot that excludes the
// reservation's own seats, so the allocator can reassign them; when an
// explicit seat is given it is used directly, plus its circular
// successor for a duo pack.  The record is persisted before the status
// entries move, so a failed write leaves the old seats booked and the
// old record intact rather than leaking inventory.
func (c *Coordinator) Update(ctx context.Context, id uint64, name, phone string, pack model.PackKind, explicit *model.SeatRef) (model.Reservation, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	current, err := c.resv.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Reservation{}, false, nil
	}
	if err != nil {
		return model.Reservation{}, false, err
	}

	taken, err := c.snapshot(ctx)
	if err != nil {
		return model.Reservation{}, false, err
	}
	own := make(map[model.SeatRef]bool, len(current.Seats))
	for _, s := range current.Seats {
		own[s] = true
	}
	visible := taken[:0:0]
	for _, e := range taken {
		if !own[e.Seat()] {
			visible = append(visible, e)
		}
	}

	var newSeats []model.SeatRef
	switch {
	case explicit != nil && explicit.Valid():
		newSeats = []model.SeatRef{*explicit}
		if pack == model.PackDuo {
			newSeats = append(newSeats, explicit.Next())
		}
	default:
		newSeats = c.alloc.Assign(pack.SeatCount(), visible)
	}

	updated := model.Reservation{
		ID:        id,
		Name:      name,
		Phone:     phone,
		Pack:      pack,
		Seats:     newSeats,
		CreatedAt: time.Now().UTC(),
	}
	if err := c.resv.Update(ctx, id, updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Reservation{}, false, nil
		}
		return model.Reservation{}, false, err
	}
	if err := c.seats.Unbook(ctx, current.Seats); err != nil {
		return model.Reservation{}, false, err
	}
	if err := c.seats.Book(ctx, newSeats, model.SourceUser); err != nil {
		return model.Reservation{}, false, err
	}
	return updated, true, nil
}

// Delete removes a reservation and cascades the unbooking of exactly
// its seats.  An unknown id is a no-op with ok false.
func (c *Coordinator) Delete(ctx context.Context, id uint64) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	current, err := c.resv.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := c.seats.Unbook(ctx, current.Seats); err != nil {
		return false, err
	}
	if err := c.resv.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// BookSeats inserts status entries for the given seats with the given
// source, skipping seats already taken.
func (c *Coordinator) BookSeats(ctx context.Context, seats []model.SeatRef, source model.Source) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seats.Book(ctx, seats, source)
}

// UnbookSeats removes the status entries for the given seats.
func (c *Coordinator) UnbookSeats(ctx context.Context, seats []model.SeatRef) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seats.Unbook(ctx, seats)
}

// ToggleAdminSeat flips one seat between free and admin-blocked.  When
// the seat is currently user-booked the toggle frees it without editing
// the owning reservation's seat list; whether that admin override is a
// feature or a defect is undecided upstream, so the behaviour is kept
// and merely logged.
func (c *Coordinator) ToggleAdminSeat(ctx context.Context, tableID, seatID uint32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	taken, err := c.snapshot(ctx)
	if err != nil {
		return err
	}
	target := model.SeatRef{TableID: tableID, SeatID: seatID}
	for _, e := range taken {
		if e.Seat() == target && e.Source == model.SourceUser {
			log.Printf("coordinator: admin toggle frees user-booked seat %s; owning reservation keeps it listed", target.Label())
			break
		}
	}
	return c.seats.ToggleAdmin(ctx, tableID, seatID)
}

// snapshot loads the seat statuses, downgrading a corruption signal to
// a log line so callers proceed on the reset store.
func (c *Coordinator) snapshot(ctx context.Context) ([]model.SeatStatus, error) {
	taken, err := c.seats.GetAll(ctx)
	return taken, c.demoteCorrupt(err, "seatStatuses")
}

func (c *Coordinator) demoteCorrupt(err error, record string) error {
	if errors.Is(err, repository.ErrCorruptData) {
		log.Printf("coordinator: %s blob reset: %v", record, err)
		return nil
	}
	return err
}
