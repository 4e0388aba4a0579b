package repository

import "errors"

var (
	// ErrNotFound is returned when the lookup, update or delete target is absent.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when creating an entity whose ID is taken.
	ErrAlreadyExists = errors.New("already exists")

	// ErrLock is returned when a store's lock cannot be acquired. It is an
	// infrastructure fault and the only error a caller may treat as transient.
	ErrLock = errors.New("store lock unavailable")
)
