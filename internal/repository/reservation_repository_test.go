package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/iliyamo/event-seating/internal/model"
)

func addReservation(t *testing.T, repo *ReservationRepo, name string, seats ...model.SeatRef) model.Reservation {
	t.Helper()
	res, err := repo.Add(context.Background(), model.Reservation{
		Name:  name,
		Phone: "0600000000",
		Pack:  model.PackForCount(len(seats)),
		Seats: seats,
	})
	if err != nil {
		t.Fatalf("add %s: %v", name, err)
	}
	return res
}

func TestAddAssignsIncreasingIDs(t *testing.T) {
	repo := NewReservationRepo(NewMemoryBlobStore())

	first := addReservation(t, repo, "alice", model.SeatRef{TableID: 1, SeatID: 1})
	second := addReservation(t, repo, "bob", model.SeatRef{TableID: 1, SeatID: 2})

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
	if first.CreatedAt.IsZero() {
		t.Fatal("expected creation timestamp to be stamped")
	}

	// Deleting a middle record never renumbers survivors; the next id
	// follows the current maximum.
	if err := repo.Delete(context.Background(), first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	third := addReservation(t, repo, "carol", model.SeatRef{TableID: 1, SeatID: 3})
	if third.ID != 3 {
		t.Fatalf("expected id 3, got %d", third.ID)
	}
}

func TestUpdatePreservesPositionAndID(t *testing.T) {
	repo := NewReservationRepo(NewMemoryBlobStore())
	addReservation(t, repo, "alice", model.SeatRef{TableID: 1, SeatID: 1})
	addReservation(t, repo, "bob", model.SeatRef{TableID: 1, SeatID: 2})
	addReservation(t, repo, "carol", model.SeatRef{TableID: 1, SeatID: 3})

	err := repo.Update(context.Background(), 2, model.Reservation{
		Name:  "bob renamed",
		Phone: "0700000000",
		Pack:  model.PackDuo,
		Seats: []model.SeatRef{{TableID: 4, SeatID: 1}, {TableID: 4, SeatID: 2}},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 records, got %d", len(list))
	}
	if list[1].ID != 2 || list[1].Name != "bob renamed" {
		t.Fatalf("expected updated record in place, got %+v", list[1])
	}
	if list[0].Name != "alice" || list[2].Name != "carol" {
		t.Fatal("neighbouring records were disturbed")
	}
}

func TestUpdateUnknownIDReturnsNotFound(t *testing.T) {
	repo := NewReservationRepo(NewMemoryBlobStore())
	err := repo.Update(context.Background(), 42, model.Reservation{Name: "ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteUnknownIDReturnsNotFound(t *testing.T) {
	repo := NewReservationRepo(NewMemoryBlobStore())
	if err := repo.Delete(context.Background(), 7); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetReturnsStoredRecord(t *testing.T) {
	repo := NewReservationRepo(NewMemoryBlobStore())
	stored := addReservation(t, repo, "alice", model.SeatRef{TableID: 6, SeatID: 6})

	got, err := repo.Get(context.Background(), stored.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "alice" || len(got.Seats) != 1 || got.Seats[0] != (model.SeatRef{TableID: 6, SeatID: 6}) {
		t.Fatalf("unexpected record: %+v", got)
	}

	if _, err := repo.Get(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCorruptReservationBlobDegradesToEmpty(t *testing.T) {
	store := NewMemoryBlobStore()
	if err := store.Set(context.Background(), ReservationsKey, []byte("[broken")); err != nil {
		t.Fatalf("seed corrupt blob: %v", err)
	}
	repo := NewReservationRepo(store)

	list, err := repo.List(context.Background())
	if !errors.Is(err, ErrCorruptData) {
		t.Fatalf("expected ErrCorruptData, got %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d records", len(list))
	}

	// The next add starts the sequence over on the reset store.
	res := addReservation(t, repo, "alice", model.SeatRef{TableID: 1, SeatID: 1})
	if res.ID != 1 {
		t.Fatalf("expected id 1 after reset, got %d", res.ID)
	}
}
