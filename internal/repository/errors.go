package repository

import "errors"

// Sentinel errors shared by the repositories.  Callers compare with
// errors.Is.
var (
	// ErrNotFound is returned when an update or delete references a
	// reservation id that does not exist.
	ErrNotFound = errors.New("reservation not found")

	// ErrCorruptData signals that a persisted blob could not be decoded
	// and the repository fell back to an empty collection.  The default
	// contract is to log it and continue; it exists so operators can
	// tell "store was reset" apart from "store was empty".
	ErrCorruptData = errors.New("persisted data corrupt, treated as empty")
)
