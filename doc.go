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

// Package outcome provides small, immutable containers for the results of
// computations that may fail, along with the optional and worm subpackages,
// for values that may be absent, and for values that are written once.
//
// Besides being lightweight, it focuses on Go's idioms, like multi return
// parameters, error being a value, the convention of returning errors as
// the last return parameter, and the existence of panics and their
// difference from errors.
//
// An Outcome has two states, and it can be in only one of them, at any time:
// Success: the computation that corresponds to this Outcome has finished
// and produced a usable value.
// Failure: the computation that corresponds to this Outcome has finished
// with a non-nil error, which the Outcome holds in the value's place.
//
// General Notes:-
//
// * Outcome values are immutable. Every combinator returns a new value,
// and the receiver is never changed.
//
// * A Success never holds an absent value. Constructing one from a nil
// value of a nilable kind(pointer, interface, map, slice, func, or chan)
// panics with ErrNilValue, and the Try and Map boundaries convert that
// same condition into a Failure of ErrNilValue instead.
//
// * Misusing a constructor or combinator directly(like passing a nil
// value to Success, or a nil function to an accessor that must return a
// value) panics synchronously, with the corresponding error value.
// Failures of the computation itself never panic, they travel as values.
//
// * Try, Map, FlatMap, and Filter contain everything the user function
// does, including panics, as a Failure, at exactly the combinator call.
// Error panic values are kept as-is, and other panic values are wrapped
// in a *PanicError.
//
// Subpackages:-
//
// * The optional subpackage provides Optional, a tri-state container that
// distinguishes a present value, an empty result, and a value that exists
// but can't currently be determined. The ToOptional and FromOptional
// calls bridge between the two containers.
//
// * The worm subpackage provides Value, a write-once-read-many cell that
// starts unset and accepts exactly one resolution, to a present value or
// to the unknown marker, even under concurrent writers. It reads as an
// Optional.
package outcome
