// Copyright 2025 Ahmad Sameh(asmsh)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package outcome

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"

	"github.com/asmsh/outcome/internal/absent"
)

// Outcome is a container for the result of a computation that either
// succeeded with a value of type T, or failed with an error.
// It's either a Success, holding a usable value, or a Failure, holding a
// non-nil error.
//
// Outcome values are immutable, and all combinators return new values.
// The failure's error is an ordinary error value, so its message, cause
// chain, and kind are accessible through the errors package, directly or
// through the Err, ErrIs, and StackTrace methods.
//
// The zero value of Outcome is a Success holding the zero value of T.
// Prefer the constructors, which enforce that a Success never holds an
// absent value.
type Outcome[T any] struct {
	val T
	err error
}

// Success returns a successful Outcome holding the provided value.
//
// By contract, callers must not pass an absent value, as a successful
// Outcome must always hold a usable one.
// It panics with ErrNilValue if val is a nil value of a nilable kind.
//
// If val is itself a non-nil error value, the call is treated as a misused
// Failure call, so it logs a warning through the package logger and returns
// a Failure of that error, rather than a Success holding an error.
func Success[T any](val T) Outcome[T] {
	if absent.Is(val) {
		panic(ErrNilValue)
	}
	if err, ok := any(val).(error); ok {
		logger().Warn("outcome: Success called with an error value, returning a Failure of it",
			"err", err)
		return Outcome[T]{err: err}
	}
	return Outcome[T]{val: val}
}

// Failure returns a failed Outcome holding the provided error.
//
// If err is nil, it logs a warning through the package logger and returns
// a Failure of ErrNilError instead, wrapped with the stack of this call,
// so a misused call stays observable as a failure, and traceable.
func Failure[T any](err error) Outcome[T] {
	if err == nil {
		logger().Warn("outcome: Failure called with a nil error, returning a Failure of ErrNilError")
		err = pkgerrors.WithStack(ErrNilError)
	}
	return Outcome[T]{err: err}
}

// Try runs fn and captures its result as an Outcome.
//
// It returns a Failure if fn returned a non-nil error, or if it panicked,
// with error panic values kept as the failure's error, as-is, and other
// panic values wrapped in a *PanicError.
// Otherwise, it returns a Success of the returned value, following the
// Success contract, so returning a nil value of a nilable kind with a nil
// error ends up as a Failure of ErrNilValue.
//
// If fn is nil, it returns a Failure of ErrNilFunc.
func Try[T any](fn func() (T, error)) (o Outcome[T]) {
	if fn == nil {
		return Outcome[T]{err: ErrNilFunc}
	}
	defer func() {
		if v := recover(); v != nil {
			o = Outcome[T]{err: recoveredError(v)}
		}
	}()
	val, err := fn()
	if err != nil {
		return Outcome[T]{err: err}
	}
	return Success(val)
}

// IsSuccess returns true, only if the Outcome holds a usable value.
func (o Outcome[T]) IsSuccess() bool { return o.err == nil }

// IsFailure returns true, only if the Outcome holds an error.
func (o Outcome[T]) IsFailure() bool { return o.err != nil }

// Get returns the held value, if the Outcome is a Success.
// Otherwise, it returns the zero value of T, along with the held error.
func (o Outcome[T]) Get() (T, error) {
	return o.val, o.err
}

// MustGet is like Get, but panics with the held error, instead of
// returning it.
func (o Outcome[T]) MustGet() T {
	if o.err != nil {
		panic(o.err)
	}
	return o.val
}

// OrElse returns the held value if the Outcome is a Success, otherwise it
// returns alt.
func (o Outcome[T]) OrElse(alt T) T {
	if o.err != nil {
		return alt
	}
	return o.val
}

// GetOrElse returns the held value if the Outcome is a Success, otherwise
// it returns the result of calling fn.
// A successful Outcome never invokes fn.
// It panics with ErrNilFunc if fn is nil, regardless of the state, as a
// value-returning accessor has no failure to contain misuse into.
func (o Outcome[T]) GetOrElse(fn func() T) T {
	if fn == nil {
		panic(ErrNilFunc)
	}
	if o.err != nil {
		return fn()
	}
	return o.val
}

// Err returns the held error, or nil if the Outcome is a Success.
func (o Outcome[T]) Err() error { return o.err }

// ErrIs returns true, only if the Outcome is a Failure whose error(or any
// error in its chain) matches target, as reported by errors.Is.
func (o Outcome[T]) ErrIs(target error) bool {
	return o.err != nil && errors.Is(o.err, target)
}

// stackTracer is the interface of stack-carrying errors created by the
// github.com/pkg/errors constructors.
type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// StackTrace returns the stack held by the Outcome's error, if that error
// (or any error in its chain) carries one, otherwise it returns nil.
func (o Outcome[T]) StackTrace() pkgerrors.StackTrace {
	for err := o.err; err != nil; err = errors.Unwrap(err) {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}
	}
	return nil
}

// Failed inverts the Outcome, turning its failure into a value.
// A Failure becomes a Success holding the error itself, and a Success
// becomes a Failure of ErrNoError, as it has no error to extract.
func (o Outcome[T]) Failed() Outcome[error] {
	if o.err != nil {
		return Outcome[error]{val: o.err}
	}
	return Outcome[error]{err: ErrNoError}
}

// String returns "success: %v" of the held value, or "failure: %s" of the
// held error, based on the state of the Outcome.
func (o Outcome[T]) String() string {
	if o.err != nil {
		return fmt.Sprintf("failure: %s", o.err.Error())
	}
	return fmt.Sprintf("success: %v", o.val)
}
