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

import "github.com/asmsh/outcome/optional"

// ToOptional projects the Outcome onto an Optional, with a Success mapping
// to a Present Optional, and a Failure mapping to an Empty one, discarding
// the error info.
// The success value is wrapped with the Of constructor's semantics, so the
// absent value held by a zero-constructed Outcome of a nilable type maps to
// Empty as well.
func (o Outcome[T]) ToOptional() optional.Optional[T] {
	if o.err != nil {
		return optional.Empty[T]()
	}
	return optional.Of(o.val)
}

// FromOptional builds an Outcome from an Optional, with a Present Optional
// mapping to a Success, an Empty one mapping to a Failure of
// optional.ErrNoValue, and an Unknown one mapping to a Failure of
// optional.ErrUnknownValue.
//
// Round-tripping through FromOptional and ToOptional preserves Present and
// Empty, but degrades Unknown to Empty, as Outcome has no unknown state,
// and it never manufactures one.
func FromOptional[T any](o optional.Optional[T]) Outcome[T] {
	val, err := o.Get()
	if err != nil {
		return Outcome[T]{err: err}
	}
	return Outcome[T]{val: val}
}
