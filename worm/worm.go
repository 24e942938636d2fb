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

// Package worm provides a write-once-read-many(worm) concurrent value cell.
//
// A cell starts unset, and accepts at most one successful transition, to
// either a present value, through Set, or to unknown, through SetUnknown.
// Both are terminal states, and there's no reset.
// Readers observe the cell as a tri-state optional, so an unset cell reads
// as Empty, and a resolved one as Present or Unknown.
//
// # States
//
// A cell is always in exactly one of three states:
//
//   - unset: the initial state, and the only one a transition can start
//     from.
//   - present: the cell holds a value. Terminal.
//   - unknown: the cell was resolved without a value. Terminal.
//
// # Concurrency
//
// Any number of goroutines may call any of the cell's methods concurrently.
// Writers serialize on a single atomic status word, and the first writer to
// observe the unset state wins the transition, while every other concurrent
// or later writer fails with ErrAlreadySet, after the in-flight transition
// (if any) completes.
// A losing writer always releases its exclusivity before the failure is
// reported, so it never holds up the next waiter.
// Readers never block each other, and wait only transiently while a writer
// is mid transition.
// A failed Set leaves the cell's state completely unaffected, and a failed
// attempt against a cell that's still unset doesn't consume the one
// transition.
package worm

import (
	"fmt"

	"github.com/asmsh/outcome/internal/absent"
	"github.com/asmsh/outcome/internal/status"
	"github.com/asmsh/outcome/optional"
)

// Value is a write-once-read-many cell for a value of type T.
// The zero value is a valid, unset cell, but a Value must not be copied
// after first use.
type Value[T any] struct {
	val    T
	status status.CellStatus
}

// New returns a new, unset Value.
func New[T any]() *Value[T] {
	return &Value[T]{}
}

// Of returns a new Value that's already resolved to present, holding the
// provided value.
// It panics with ErrNilValue if val is a nil value of a nilable kind.
func Of[T any](val T) *Value[T] {
	if absent.Is(val) {
		panic(ErrNilValue)
	}
	w := &Value[T]{val: val}
	w.status.SetPresentSync()
	return w
}

// Unknown returns a new Value that's already resolved to unknown.
func Unknown[T any]() *Value[T] {
	w := &Value[T]{}
	w.status.SetUnknownSync()
	return w
}

// Set transitions the cell from unset to present, holding the provided
// value.
//
// It returns ErrNilValue if val is a nil value of a nilable kind, which is
// detected before any exclusivity is acquired, leaving the cell eligible
// for a later valid Set.
// It returns ErrAlreadySet if the cell is already resolved, including when
// this call loses a race against another Set or SetUnknown call.
func (w *Value[T]) Set(val T) error {
	if absent.Is(val) {
		return ErrNilValue
	}
	set, _ := w.status.BeginSet()
	if !set {
		return ErrAlreadySet
	}
	// the status is still locked here, so this write is exclusive, and
	// the releasing end call below is what publishes it to readers.
	w.val = val
	w.status.EndSetPresent()
	return nil
}

// SetUnknown transitions the cell from unset to unknown.
// It returns ErrAlreadySet if the cell is already resolved, including when
// this call loses a race against another Set or SetUnknown call.
func (w *Value[T]) SetUnknown() error {
	set, _ := w.status.BeginSet()
	if !set {
		return ErrAlreadySet
	}
	w.status.EndSetUnknown()
	return nil
}

// Get returns the cell's value as a tri-state optional, Empty if the cell
// is still unset, and Present or Unknown once it's resolved.
// The returned optional is an immutable copy, never a handle into the
// cell's state.
// Get never blocks indefinitely, it only waits transiently while a write
// is in flight.
func (w *Value[T]) Get() optional.Optional[T] {
	cs := w.status.Load()
	switch {
	case status.IsPresent(cs):
		return optional.Present(w.val)
	case status.IsUnknown(cs):
		return optional.Unknown[T]()
	default:
		return optional.Empty[T]()
	}
}

// IsSet returns true, only if the cell is resolved to a present value.
func (w *Value[T]) IsSet() bool {
	return status.IsPresent(w.status.Load())
}

// IsUnknown returns true, only if the cell is resolved to unknown.
func (w *Value[T]) IsUnknown() bool {
	return status.IsUnknown(w.status.Load())
}

// IsResolved returns true if the cell is resolved, to either a present
// value or unknown, and false while it's still unset.
func (w *Value[T]) IsResolved() bool {
	return status.IsResolved(w.status.Load())
}

// State returns the name of the cell's current state, which is one of
// "unset", "present", or "unknown".
func (w *Value[T]) State() string {
	cs := w.status.Load()
	switch {
	case status.IsPresent(cs):
		return "present"
	case status.IsUnknown(cs):
		return "unknown"
	default:
		return "unset"
	}
}

// String returns "present: %v" of the held value, "unknown", or "unset",
// based on the state of the cell.
func (w *Value[T]) String() string {
	cs := w.status.Load()
	switch {
	case status.IsPresent(cs):
		return fmt.Sprintf("present: %v", w.val)
	case status.IsUnknown(cs):
		return "unknown"
	default:
		return "unset"
	}
}
