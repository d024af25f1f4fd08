package model

import (
	"encoding/json"
	"testing"
)

func TestGlobalIDRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		seat SeatRef
		id   uint32
	}{
		{name: "first seat", seat: SeatRef{TableID: 1, SeatID: 1}, id: 1},
		{name: "end of first table", seat: SeatRef{TableID: 1, SeatID: 10}, id: 10},
		{name: "start of second table", seat: SeatRef{TableID: 2, SeatID: 1}, id: 11},
		{name: "last seat", seat: SeatRef{TableID: 25, SeatID: 10}, id: 250},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.seat.GlobalID(); got != tc.id {
				t.Fatalf("GlobalID: expected %d, got %d", tc.id, got)
			}
			back, ok := SeatFromGlobalID(tc.id)
			if !ok || back != tc.seat {
				t.Fatalf("SeatFromGlobalID(%d): expected %v, got %v (ok=%v)", tc.id, tc.seat, back, ok)
			}
		})
	}

	if _, ok := SeatFromGlobalID(0); ok {
		t.Fatal("expected id 0 to be rejected")
	}
	if _, ok := SeatFromGlobalID(251); ok {
		t.Fatal("expected id 251 to be rejected")
	}
}

func TestNextWrapsAroundTable(t *testing.T) {
	if got := (SeatRef{TableID: 4, SeatID: 9}).Next(); got != (SeatRef{TableID: 4, SeatID: 10}) {
		t.Fatalf("expected seat 10, got %v", got)
	}
	if got := (SeatRef{TableID: 4, SeatID: 10}).Next(); got != (SeatRef{TableID: 4, SeatID: 1}) {
		t.Fatalf("expected wrap to seat 1, got %v", got)
	}
}

func TestTableRowSizesSumToTableCount(t *testing.T) {
	sum := 0
	for _, n := range TableRowSizes {
		sum += n
	}
	if sum != TableCount {
		t.Fatalf("row sizes sum to %d, want %d", sum, TableCount)
	}
}

func TestPackForCount(t *testing.T) {
	cases := []struct {
		count    int
		expected PackKind
	}{
		{1, PackTicket},
		{2, PackDuo},
		{10, PackFullTable},
		{3, PackCustom},
		{0, PackCustom},
	}
	for _, tc := range cases {
		if got := PackForCount(tc.count); got != tc.expected {
			t.Fatalf("PackForCount(%d): expected %s, got %s", tc.count, tc.expected, got)
		}
	}
}

func TestPackSeatCount(t *testing.T) {
	if got := PackFullTable.SeatCount(); got != 10 {
		t.Fatalf("full table: expected 10, got %d", got)
	}
	if got := PackDuo.SeatCount(); got != 2 {
		t.Fatalf("duo: expected 2, got %d", got)
	}
	if got := PackTicket.SeatCount(); got != 1 {
		t.Fatalf("ticket: expected 1, got %d", got)
	}
	if got := PackCustom.SeatCount(); got != 0 {
		t.Fatalf("custom: expected 0, got %d", got)
	}
}

func TestSeatStatusDecodeDefaultsSourceToUser(t *testing.T) {
	// Records written before the admin-block feature carry no source.
	var s SeatStatus
	if err := json.Unmarshal([]byte(`{"tableId":3,"seatId":7}`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.Source != SourceUser {
		t.Fatalf("expected source %q, got %q", SourceUser, s.Source)
	}

	if err := json.Unmarshal([]byte(`{"tableId":3,"seatId":7,"source":"admin"}`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.Source != SourceAdmin {
		t.Fatalf("expected source %q, got %q", SourceAdmin, s.Source)
	}
}
