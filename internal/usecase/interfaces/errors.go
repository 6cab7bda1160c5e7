package interfaces

import "errors"

var (
	// ErrConditionalCheckFailed is returned by repositories when a write
	// loses a state condition (hire compare-and-swap, the status check on a
	// transactional dual write). Use cases translate it into the domain
	// error for the operation; it must never leak to handlers directly.
	ErrConditionalCheckFailed = errors.New("conditional check failed")

	// ErrRecordExists is returned when a conditional create loses its
	// attribute_not_exists condition: the id is already taken, which in
	// practice means a client retried a create with the same
	// Idempotency-Key. Same leak rule as ErrConditionalCheckFailed.
	ErrRecordExists = errors.New("record already exists")
)
