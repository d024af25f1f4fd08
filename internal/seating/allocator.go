// Package seating implements the seat allocation algorithm.  Allocation
// is pure: it reads an availability snapshot and returns a seat
// selection without touching any store.  The caller must book the
// returned seats before asking for the next assignment.
package seating

import (
	"math/rand"
	"time"

	"github.com/iliyamo/event-seating/internal/model"
)

// Allocator selects seats for a requested pack size.  The only
// non-determinism is the random fallback; tests inject a seeded source.
type Allocator struct {
	rng *rand.Rand
}

// New returns an allocator drawing fallback seats from the given random
// source.  A nil source is replaced with a time-seeded one.
func New(rng *rand.Rand) *Allocator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Allocator{rng: rng}
}

// Assign picks up to count seats given the snapshot of taken seats.
// Rules apply in order, first match wins:
//
//  1. count == 10: the first table (ascending id) with no taken seat is
//     returned whole.
//  2. count == 2: scanning tables by ascending id and free seats by
//     ascending seat id, the first free seat whose circular successor in
//     the same table is also free yields the pair (seat, successor).
//  3. otherwise, and when rules 1–2 find no candidate: seats are drawn
//     uniformly at random from the system-wide free pool until count is
//     reached or the pool runs out.
//
// Rules 1 and 2 prefer socially coherent seating before degrading to
// scattered singles.  Admin blocks count as taken like any other entry,
// so blocked seats are never handed out.  Insufficient inventory yields
// a short result, never an error.
func (a *Allocator) Assign(count int, taken []model.SeatStatus) []model.SeatRef {
	if count <= 0 {
		return nil
	}
	occupied := make(map[model.SeatRef]bool, len(taken))
	for _, e := range taken {
		occupied[e.Seat()] = true
	}

	if count == model.SeatsPerTable {
		if seats := emptyTable(occupied); seats != nil {
			return seats
		}
	}
	if count == 2 {
		if pair := adjacentPair(occupied); pair != nil {
			return pair
		}
	}
	return a.randomDraw(count, occupied)
}

// emptyTable returns the 10 seats of the first fully free table, or nil.
func emptyTable(occupied map[model.SeatRef]bool) []model.SeatRef {
	for t := uint32(1); t <= model.TableCount; t++ {
		free := true
		for n := uint32(1); n <= model.SeatsPerTable; n++ {
			if occupied[model.SeatRef{TableID: t, SeatID: n}] {
				free = false
				break
			}
		}
		if free {
			return model.TableSeats(t)
		}
	}
	return nil
}

// adjacentPair returns the first pair of circularly adjacent free seats
// at the same table, or nil.  Seat 10 wraps to seat 1.
func adjacentPair(occupied map[model.SeatRef]bool) []model.SeatRef {
	for t := uint32(1); t <= model.TableCount; t++ {
		for n := uint32(1); n <= model.SeatsPerTable; n++ {
			seat := model.SeatRef{TableID: t, SeatID: n}
			if occupied[seat] {
				continue
			}
			next := seat.Next()
			if !occupied[next] {
				return []model.SeatRef{seat, next}
			}
		}
	}
	return nil
}

// randomDraw collects the free pool in (table, seat) ascending order and
// removes uniformly random picks from it, count times or until empty.
func (a *Allocator) randomDraw(count int, occupied map[model.SeatRef]bool) []model.SeatRef {
	pool := make([]model.SeatRef, 0, model.TotalSeats-len(occupied))
	for t := uint32(1); t <= model.TableCount; t++ {
		for n := uint32(1); n <= model.SeatsPerTable; n++ {
			seat := model.SeatRef{TableID: t, SeatID: n}
			if !occupied[seat] {
				pool = append(pool, seat)
			}
		}
	}
	picked := make([]model.SeatRef, 0, count)
	for len(picked) < count && len(pool) > 0 {
		i := a.rng.Intn(len(pool))
		picked = append(picked, pool[i])
		pool = append(pool[:i], pool[i+1:]...)
	}
	return picked
}
