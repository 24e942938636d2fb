package optional

import "errors"

var (
	ErrNoValue      = errors.New("optional: no value present")
	ErrUnknownValue = errors.New("optional: value is unknown")

	// ErrNilValue is the panic value of the Present constructor when it's
	// passed a nil value of a nilable kind.
	// The generic Of constructor maps such values to Empty instead.
	ErrNilValue = errors.New("optional: nil value")

	// ErrNilFunc is the panic value of any combinator or accessor that's
	// passed a nil function argument.
	ErrNilFunc = errors.New("optional: nil function")
)
