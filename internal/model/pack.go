package model

// PackKind enumerates the reservation size classes sold by the event.
// The kind is carried explicitly on every reservation and passed
// explicitly to the allocator; no string matching on display labels
// happens anywhere in the system.
type PackKind string

const (
	PackTicket    PackKind = "TICKET"     // one seat, placed anywhere
	PackDuo       PackKind = "DUO"        // two adjacent seats at the same table
	PackFullTable PackKind = "FULL_TABLE" // all ten seats of one table
	PackCustom    PackKind = "CUSTOM"     // any other seat count (admin selections)
)

// SeatCount returns the number of seats a pack normally occupies.  For
// PackCustom the count comes from the explicit selection, so zero is
// returned and the caller must supply the seats itself.
func (k PackKind) SeatCount() int {
	switch k {
	case PackFullTable:
		return SeatsPerTable
	case PackDuo:
		return 2
	case PackTicket:
		return 1
	default:
		return 0
	}
}

// Label returns the customer-facing name of the pack as it appears on
// the reservation form.
func (k PackKind) Label() string {
	switch k {
	case PackFullTable:
		return "table complète"
	case PackDuo:
		return "duo"
	case PackTicket:
		return "ticket"
	default:
		return "sélection libre"
	}
}

// Valid reports whether the kind is one of the defined pack classes.
func (k PackKind) Valid() bool {
	switch k {
	case PackTicket, PackDuo, PackFullTable, PackCustom:
		return true
	}
	return false
}

// PackForCount derives the pack class from an explicit seat selection:
// one seat is a ticket, two a duo, a full table of ten a table pack, and
// anything else a custom selection.
func PackForCount(n int) PackKind {
	switch n {
	case 1:
		return PackTicket
	case 2:
		return PackDuo
	case SeatsPerTable:
		return PackFullTable
	default:
		return PackCustom
	}
}
