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

package status

// IsUnset returns true if the state is 'unset'.
func IsUnset(status uint32) bool {
	return status == stateUnset
}

// IsPresent returns true if the state is 'present'.
func IsPresent(status uint32) bool {
	return status == statePresent
}

// IsUnknown returns true if the state is 'unknown'.
func IsUnknown(status uint32) bool {
	return status == stateUnknown
}

// IsResolved returns true if the state is either 'present' or 'unknown',
// which are the two terminal states of the cell.
func IsResolved(status uint32) bool {
	return status == statePresent || status == stateUnknown
}
