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

import "fmt"

// Containment is the contract of all the combinators below: a user
// function that fails does so into the resulting Outcome, never past the
// combinator call.
// A panic from the function is recovered at the combinator boundary and
// becomes the resulting Failure's error, with error panic values kept
// as-is, and other panic values wrapped in a *PanicError.
// Only conditions that Go's recover can't observe escape.

// Map returns an Outcome holding the result of applying fn to o's value,
// if o is a Success, following the Success contract, so a nil result of a
// nilable kind becomes a Failure of ErrNilValue.
// A Failure o passes through untouched, without fn being invoked.
// A nil fn becomes a Failure of ErrNilFunc.
func Map[T any, U any](o Outcome[T], fn func(T) U) (res Outcome[U]) {
	if o.err != nil {
		return Outcome[U]{err: o.err}
	}
	if fn == nil {
		return Outcome[U]{err: ErrNilFunc}
	}
	defer func() {
		if v := recover(); v != nil {
			res = Outcome[U]{err: recoveredError(v)}
		}
	}()
	return Success(fn(o.val))
}

// FlatMap returns the Outcome returned from applying fn to o's value, if o
// is a Success, without re-wrapping it, so fn fully controls the resulting
// state.
// A Failure o passes through untouched, without fn being invoked.
// A nil fn becomes a Failure of ErrNilFunc.
func FlatMap[T any, U any](o Outcome[T], fn func(T) Outcome[U]) (res Outcome[U]) {
	if o.err != nil {
		return Outcome[U]{err: o.err}
	}
	if fn == nil {
		return Outcome[U]{err: ErrNilFunc}
	}
	defer func() {
		if v := recover(); v != nil {
			res = Outcome[U]{err: recoveredError(v)}
		}
	}()
	return fn(o.val)
}

// Filter returns the Outcome itself if it's a Success and its value passes
// pred, or a Failure of ErrNoMatch, wrapped with a rendering of the value,
// if the value doesn't pass it.
// A Failure o passes through unchanged, without pred being invoked.
// A nil pred becomes a Failure of ErrNilFunc.
func (o Outcome[T]) Filter(pred func(T) bool) (res Outcome[T]) {
	if o.err != nil {
		return o
	}
	if pred == nil {
		return Outcome[T]{err: ErrNilFunc}
	}
	defer func() {
		if v := recover(); v != nil {
			res = Outcome[T]{err: recoveredError(v)}
		}
	}()
	if pred(o.val) {
		return o
	}
	return Outcome[T]{err: fmt.Errorf("%w: %v", ErrNoMatch, o.val)}
}

// Equal reports whether a and b are structurally equal: two successful
// Outcomes are equal iff their values are equal, and two failed Outcomes
// are equal iff they hold the same error value.
func Equal[T comparable](a, b Outcome[T]) bool {
	return a == b
}

// EqualFunc is like Equal, but compares the values of two successful
// Outcomes using eq, which allows comparing Outcomes of non-comparable or
// different types.
// Failed Outcomes still compare by their error values.
// It panics with ErrNilFunc if eq is nil, regardless of the states.
func EqualFunc[T any, U any](a Outcome[T], b Outcome[U], eq func(T, U) bool) bool {
	if eq == nil {
		panic(ErrNilFunc)
	}
	if a.err != nil || b.err != nil {
		return a.err == b.err
	}
	return eq(a.val, b.val)
}
