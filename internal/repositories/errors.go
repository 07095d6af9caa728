package repositories

import "errors"

// Sentinel errors shared by every repository implementation. Services map
// these onto their own domain error taxonomy with errors.Is.
var (
	// ErrNotFound reports that no record matched the lookup key.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate reports that a record with the same unique key already
	// exists in the collection.
	ErrDuplicate = errors.New("record already exists")
)
