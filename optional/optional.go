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

// Package optional provides a tri-state optional container, which
// distinguishes between three cases: a value is present, no value
// exists(empty), and a value exists but cannot currently be determined
// (unknown).
//
// Unknown is deliberately distinct from Empty, to let consumers distinguish
// "not computed" from "computation determined no answer exists", instead of
// overloading a single absence case with both meanings.
//
// Optional values are immutable, and all combinators return new values.
// The zero value of Optional is Empty, and the Empty and Unknown
// constructors return zero-payload values, so no allocation or shared
// instance is involved, and equality stays structural.
//
// Unknown-ness never arises implicitly.
// It's only introduced by the Unknown constructor(or by sources built on
// it), and it's only propagated, never manufactured, by the combinators.
package optional

import (
	"fmt"

	"github.com/asmsh/outcome/internal/absent"
)

// variant enumerates the three states an Optional value can be in.
type variant uint8

const (
	variantEmpty variant = iota // the zero value, so the zero Optional is Empty
	variantPresent
	variantUnknown
)

// Optional is a tri-state container for a value of type T.
// It's either Present, holding a usable value, Empty, holding nothing, or
// Unknown, holding a marker that a value exists but can't be determined.
//
// For comparable T, Optional values are comparable with ==, which is exactly
// the structural equality described on Equal.
type Optional[T any] struct {
	val   T
	state variant
}

// Present returns an Optional holding the provided value.
//
// By contract, callers must not pass an absent value, as a Present value
// must always hold a usable one.
// It panics with ErrNilValue if val is a nil value of a nilable kind.
// Use Of to map such values to Empty instead.
func Present[T any](val T) Optional[T] {
	if absent.Is(val) {
		panic(ErrNilValue)
	}
	return Optional[T]{val: val, state: variantPresent}
}

// Of returns an Optional holding the provided value, or an Empty one if
// val is a nil value of a nilable kind.
//
// Unlike Present, it never fails on absent input, downgrading it to Empty.
// It never downgrades to Unknown, as unknown-ness is always explicit.
func Of[T any](val T) Optional[T] {
	if absent.Is(val) {
		return Optional[T]{}
	}
	return Optional[T]{val: val, state: variantPresent}
}

// OfPtr returns an Optional holding the value that ptr points to, or an
// Empty one if ptr(or the pointed-to value itself) is nil.
func OfPtr[T any](ptr *T) Optional[T] {
	if ptr == nil {
		return Optional[T]{}
	}
	return Of(*ptr)
}

// Empty returns an Empty Optional.
// It's equivalent to the zero value of Optional.
func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

// Unknown returns an Unknown Optional.
func Unknown[T any]() Optional[T] {
	return Optional[T]{state: variantUnknown}
}

// IsPresent returns true, only if the Optional holds a usable value.
func (o Optional[T]) IsPresent() bool { return o.state == variantPresent }

// IsEmpty returns true, only if the Optional holds no value.
func (o Optional[T]) IsEmpty() bool { return o.state == variantEmpty }

// IsUnknown returns true, only if the Optional's value can't be determined.
func (o Optional[T]) IsUnknown() bool { return o.state == variantUnknown }

// Get returns the held value, if the Optional is Present.
// Otherwise, it returns the zero value of T, along with ErrNoValue if the
// Optional is Empty, or ErrUnknownValue if it's Unknown.
func (o Optional[T]) Get() (T, error) {
	switch o.state {
	case variantPresent:
		return o.val, nil
	case variantUnknown:
		var zero T
		return zero, ErrUnknownValue
	default:
		var zero T
		return zero, ErrNoValue
	}
}

// MustGet is like Get, but panics with the error that Get would return,
// instead of returning it.
func (o Optional[T]) MustGet() T {
	val, err := o.Get()
	if err != nil {
		panic(err)
	}
	return val
}

// OrElse returns the held value if the Optional is Present, otherwise it
// returns alt.
func (o Optional[T]) OrElse(alt T) T {
	if o.state == variantPresent {
		return o.val
	}
	return alt
}

// OrElseGet returns the held value if the Optional is Present, otherwise it
// returns the result of calling fn.
// A Present Optional never invokes fn.
// It panics with ErrNilFunc if fn is nil, regardless of the state.
func (o Optional[T]) OrElseGet(fn func() T) T {
	if fn == nil {
		panic(ErrNilFunc)
	}
	if o.state == variantPresent {
		return o.val
	}
	return fn()
}

// OrElseErr returns the held value if the Optional is Present, otherwise it
// returns the zero value of T, along with the error returned from errFn.
// A Present Optional never invokes errFn.
// It panics with ErrNilFunc if errFn is nil, regardless of the state.
func (o Optional[T]) OrElseErr(errFn func() error) (T, error) {
	if errFn == nil {
		panic(ErrNilFunc)
	}
	if o.state == variantPresent {
		return o.val, nil
	}
	var zero T
	return zero, errFn()
}

// Or returns the Optional itself if it's Present, otherwise it returns the
// replacement Optional returned from fn.
// It panics with ErrNilFunc if fn is nil, regardless of the state.
func (o Optional[T]) Or(fn func() Optional[T]) Optional[T] {
	if fn == nil {
		panic(ErrNilFunc)
	}
	if o.state == variantPresent {
		return o
	}
	return fn()
}

// String returns "present: %v" of the held value, "empty", or "unknown",
// based on the state of the Optional.
func (o Optional[T]) String() string {
	switch o.state {
	case variantPresent:
		return fmt.Sprintf("present: %v", o.val)
	case variantUnknown:
		return "unknown"
	default:
		return "empty"
	}
}
