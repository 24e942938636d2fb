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

package optional

import "iter"

// Filter returns the Optional itself if it's Present and its value passes
// pred, or an Empty Optional if the value doesn't pass it.
// Empty and Unknown Optionals pass through unchanged, without pred being
// invoked.
// It panics with ErrNilFunc if pred is nil, regardless of the state.
func (o Optional[T]) Filter(pred func(T) bool) Optional[T] {
	if pred == nil {
		panic(ErrNilFunc)
	}
	if o.state != variantPresent {
		return o
	}
	if pred(o.val) {
		return o
	}
	return Optional[T]{}
}

// IfPresent calls do with the held value, only if the Optional is Present.
// It panics with ErrNilFunc if do is nil, regardless of the state.
func (o Optional[T]) IfPresent(do func(T)) {
	if do == nil {
		panic(ErrNilFunc)
	}
	if o.state == variantPresent {
		do(o.val)
	}
}

// IfPresentOrElse calls do with the held value if the Optional is Present,
// otherwise it calls otherwise, for both Empty and Unknown.
// It panics with ErrNilFunc if either function is nil, regardless of the
// state.
func (o Optional[T]) IfPresentOrElse(do func(T), otherwise func()) {
	if do == nil || otherwise == nil {
		panic(ErrNilFunc)
	}
	if o.state == variantPresent {
		do(o.val)
		return
	}
	otherwise()
}

// Values returns an iterator over the Optional's values, yielding exactly
// one value for a Present Optional, and none for an Empty or Unknown one.
// The sequence is finite and restartable, so it can be ranged over any
// number of times, yielding the same result each time.
func (o Optional[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.state == variantPresent {
			yield(o.val)
		}
	}
}

// Map returns an Optional holding the result of applying fn to o's value,
// if o is Present.
// A nil result of a nilable kind is downgraded to Empty, like the Of
// constructor does.
// An Empty o maps to Empty, and an Unknown o maps to Unknown, without fn
// being invoked, so Unknown propagates as itself and is never downgraded.
// It panics with ErrNilFunc if fn is nil, regardless of the state.
func Map[T any, U any](o Optional[T], fn func(T) U) Optional[U] {
	if fn == nil {
		panic(ErrNilFunc)
	}
	switch o.state {
	case variantPresent:
		return Of(fn(o.val))
	case variantUnknown:
		return Unknown[U]()
	default:
		return Empty[U]()
	}
}

// FlatMap returns the Optional returned from applying fn to o's value, if o
// is Present, without re-wrapping it, so fn fully controls the resulting
// state.
// An Empty o maps to Empty, and an Unknown o maps to Unknown, without fn
// being invoked.
// It panics with ErrNilFunc if fn is nil, regardless of the state.
func FlatMap[T any, U any](o Optional[T], fn func(T) Optional[U]) Optional[U] {
	if fn == nil {
		panic(ErrNilFunc)
	}
	switch o.state {
	case variantPresent:
		return fn(o.val)
	case variantUnknown:
		return Unknown[U]()
	default:
		return Empty[U]()
	}
}

// Equal reports whether a and b are structurally equal: two Present
// Optionals are equal iff their values are equal, all Empty Optionals are
// mutually equal, all Unknown Optionals are mutually equal, and Optionals
// in different states are never equal.
func Equal[T comparable](a, b Optional[T]) bool {
	return a == b
}

// EqualFunc is like Equal, but compares the values of two Present Optionals
// using eq, which allows comparing Optionals of non-comparable or different
// types.
// It panics with ErrNilFunc if eq is nil, regardless of the states.
func EqualFunc[T any, U any](a Optional[T], b Optional[U], eq func(T, U) bool) bool {
	if eq == nil {
		panic(ErrNilFunc)
	}
	if a.state != b.state {
		return false
	}
	if a.state != variantPresent {
		return true
	}
	return eq(a.val, b.val)
}
