package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/iliyamo/event-seating/internal/model"
)

func statusSet(t *testing.T, repo *SeatStatusRepo) map[model.SeatRef]model.Source {
	t.Helper()
	entries, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	set := make(map[model.SeatRef]model.Source, len(entries))
	for _, e := range entries {
		if _, dup := set[e.Seat()]; dup {
			t.Fatalf("duplicate status entry for %v", e.Seat())
		}
		set[e.Seat()] = e.Source
	}
	return set
}

func TestBookIsIdempotent(t *testing.T) {
	repo := NewSeatStatusRepo(NewMemoryBlobStore())
	seat := model.SeatRef{TableID: 2, SeatID: 4}

	if err := repo.Book(context.Background(), []model.SeatRef{seat}, model.SourceUser); err != nil {
		t.Fatalf("book: %v", err)
	}
	if err := repo.Book(context.Background(), []model.SeatRef{seat}, model.SourceUser); err != nil {
		t.Fatalf("book twice: %v", err)
	}

	set := statusSet(t, repo)
	if len(set) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(set))
	}
	if set[seat] != model.SourceUser {
		t.Fatalf("expected user source, got %q", set[seat])
	}
}

func TestBookNeverOverwritesExistingSource(t *testing.T) {
	repo := NewSeatStatusRepo(NewMemoryBlobStore())
	seat := model.SeatRef{TableID: 5, SeatID: 1}

	if err := repo.Book(context.Background(), []model.SeatRef{seat}, model.SourceAdmin); err != nil {
		t.Fatalf("book admin: %v", err)
	}
	if err := repo.Book(context.Background(), []model.SeatRef{seat}, model.SourceUser); err != nil {
		t.Fatalf("book user: %v", err)
	}

	set := statusSet(t, repo)
	if set[seat] != model.SourceAdmin {
		t.Fatalf("admin block was overwritten: got %q", set[seat])
	}
}

func TestUnbookFreeSeatIsNoOp(t *testing.T) {
	repo := NewSeatStatusRepo(NewMemoryBlobStore())
	booked := model.SeatRef{TableID: 1, SeatID: 1}

	if err := repo.Book(context.Background(), []model.SeatRef{booked}, model.SourceUser); err != nil {
		t.Fatalf("book: %v", err)
	}
	if err := repo.Unbook(context.Background(), []model.SeatRef{{TableID: 9, SeatID: 9}}); err != nil {
		t.Fatalf("unbook free seat: %v", err)
	}

	set := statusSet(t, repo)
	if len(set) != 1 {
		t.Fatalf("expected booked seat untouched, got %d entries", len(set))
	}
}

func TestToggleAdminIsItsOwnInverseOnFreeSeat(t *testing.T) {
	repo := NewSeatStatusRepo(NewMemoryBlobStore())
	seat := model.SeatRef{TableID: 12, SeatID: 6}

	if err := repo.ToggleAdmin(context.Background(), seat.TableID, seat.SeatID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	set := statusSet(t, repo)
	if set[seat] != model.SourceAdmin {
		t.Fatalf("expected admin block after first toggle, got %q", set[seat])
	}

	if err := repo.ToggleAdmin(context.Background(), seat.TableID, seat.SeatID); err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if set := statusSet(t, repo); len(set) != 0 {
		t.Fatalf("expected free seat after second toggle, got %d entries", len(set))
	}
}

func TestToggleAdminFreesUserBookedSeat(t *testing.T) {
	// Documented admin override: the toggle removes the entry whatever
	// its source.
	repo := NewSeatStatusRepo(NewMemoryBlobStore())
	seat := model.SeatRef{TableID: 3, SeatID: 3}

	if err := repo.Book(context.Background(), []model.SeatRef{seat}, model.SourceUser); err != nil {
		t.Fatalf("book: %v", err)
	}
	if err := repo.ToggleAdmin(context.Background(), seat.TableID, seat.SeatID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if set := statusSet(t, repo); len(set) != 0 {
		t.Fatalf("expected seat freed, got %d entries", len(set))
	}
}

func TestCorruptBlobDegradesToEmptyWithSignal(t *testing.T) {
	store := NewMemoryBlobStore()
	if err := store.Set(context.Background(), SeatStatusesKey, []byte("{this is not json")); err != nil {
		t.Fatalf("seed corrupt blob: %v", err)
	}
	repo := NewSeatStatusRepo(store)

	entries, err := repo.GetAll(context.Background())
	if !errors.Is(err, ErrCorruptData) {
		t.Fatalf("expected ErrCorruptData, got %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty snapshot, got %d entries", len(entries))
	}

	// Mutations proceed on the reset store.
	seat := model.SeatRef{TableID: 1, SeatID: 2}
	if err := repo.Book(context.Background(), []model.SeatRef{seat}, model.SourceUser); err != nil {
		t.Fatalf("book after reset: %v", err)
	}
	set := statusSet(t, repo)
	if len(set) != 1 || set[seat] != model.SourceUser {
		t.Fatalf("expected single user entry after reset, got %v", set)
	}
}
