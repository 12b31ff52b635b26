package db

import "errors"

var (
	// ErrNotFound reports a detail lookup that matched no record. It is a
	// distinct result value, not a store failure.
	ErrNotFound = errors.New("record not found")

	// ErrStoreUnavailable wraps transient store I/O failures.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrDuplicateRecord reports a rejected insert for an already-present
	// natural key, when the collection carries a unique index.
	ErrDuplicateRecord = errors.New("duplicate record for natural key")

	errMissingDatabaseURI  = errors.New("database uri is required")
	errMissingDatabaseName = errors.New("database name is required")
)
