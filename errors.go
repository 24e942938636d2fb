package outcome

import (
	"errors"
	"fmt"
)

var (
	ErrNilValue = errors.New("outcome: nil value")
	ErrNilFunc  = errors.New("outcome: nil function")

	// ErrNilError will be the failure of a Failure call that's passed a nil
	// error, wrapped with the stack of that call.
	ErrNilError = errors.New("outcome: nil error")

	// ErrNoMatch will be the failure of a Filter call whose predicate didn't
	// hold, wrapped with a rendering of the filtered value.
	ErrNoMatch = errors.New("outcome: no value matching the predicate")

	// ErrNoError will be the failure of a Failed call on a success, which
	// has no error to extract.
	ErrNoError = errors.New("outcome: no error present")
)

// PanicError wraps a panic value that was recovered inside Try or one of
// the combinators, when that value is not itself an error value.
// Error values are kept as the failure's error, as-is.
type PanicError struct {
	v any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("outcome: recovered panic: %v", e.v)
}

func (e *PanicError) V() any {
	return e.v
}

func newPanicError(v any) *PanicError {
	return &PanicError{v: v}
}

// recoveredError converts a recovered panic value to a failure's error,
// keeping error values as-is.
func recoveredError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return newPanicError(v)
}
