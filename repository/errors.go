package repository

import "errors"

var (
	// ErrNotFound means no document matched the logical id.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicateID means the unique index on "id" rejected an insert.
	ErrDuplicateID = errors.New("duplicate id")
)
