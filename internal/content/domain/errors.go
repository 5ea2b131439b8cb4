package domain

import "errors"

var (
	// ErrNotFound covers both absent documents and, on public paths,
	// documents hidden by the published gate. Callers cannot tell the two
	// apart.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable signals a store failure; the operation may be retried
	// by the caller.
	ErrUnavailable = errors.New("store unavailable")
)
