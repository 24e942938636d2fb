package worm

import "errors"

var (
	// ErrNilValue is returned by Set when it's passed a nil value of a
	// nilable kind, and is the panic value of the Of constructor for the
	// same input.
	// It's always detected before any exclusivity is acquired, so an
	// invalid value never contends with a valid one.
	ErrNilValue = errors.New("worm: nil value")

	// ErrAlreadySet is returned by Set and SetUnknown once the cell is
	// resolved, including by every loser of a concurrent set race.
	ErrAlreadySet = errors.New("worm: value already set")
)
