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

import (
	"runtime"
	"sync/atomic"
)

var (
	cas  = atomic.CompareAndSwapUint32
	load = atomic.LoadUint32
	swap = atomic.SwapUint32
)

// CellStatus holds the value that defines and represents the state of the
// worm cell.
// It's read and written/updated atomically.
// The zero value is a valid status, describing an unset cell.
type CellStatus uint32

// the lock's related values and constants, using 2 bits(the [1st : 2nd] bits)
const (
	// lockAcquired is the value of the status while some writer call is
	// running(a BeginSet call that hasn't been ended yet).
	// No state value overlaps with it, as all states start after the
	// lock section.
	lockAcquired uint32 = 1 << iota
	_                   // reserved
)

// the state's related values and constants, using 2 bits(the [3rd : 4th] bits)
const (
	// starting with a shift amount of 2, which is the number of bits used by
	// previous sections.

	// cell states, using 2 bits
	stateUnset   uint32 = iota << 2
	statePresent uint32 = iota << 2
	stateUnknown uint32 = iota << 2
)

func (s *CellStatus) readAndAcquireLock() (currentStatus uint32) {
	// read the current status value, and acquire the update lock,
	// by checking if there's any other, previous, update call is
	// still processing, and wait for it to finish.
	cs := swap((*uint32)(s), lockAcquired)
	for cs == lockAcquired {
		// don't actively wait for concurrent update calls, instead,
		// tell the go scheduler to run other goroutines(including the
		// one which has the lock) instead of the current(waiting) one.
		runtime.Gosched()
		cs = swap((*uint32)(s), lockAcquired)
	}
	// at this point, the value of the current status, cs, here is
	// only available to this method and its caller.
	return cs
}

func (s *CellStatus) saveAndReleaseLock(newStatus uint32) {
	// save the new status value, and release the update lock
	if !cas((*uint32)(s), lockAcquired, newStatus) {
		// panic if the status value has been changed unexpectedly
		panic("outcome: internal: unexpected status change")
	}
}

// Load returns the current status value, if it's not being updated right now,
// and if it's, it waits until it's updated then return the value.
// The returned value is always one of the three cell states, never the
// locked value.
func (s *CellStatus) Load() (currentStatus uint32) {
	// read the current status value, and return it, as long as the
	// read value is not the locked status, otherwise, wait until the
	// read value becomes different than the locked status.
	cs := load((*uint32)(s))
	for cs == lockAcquired {
		cs = load((*uint32)(s))
	}
	return cs
}

// BeginSet starts the cell's single write, by acquiring the update lock and
// checking that the cell is still unset.
//
// If it returns with set as true, the lock is still held, and the caller must
// complete the transition by calling EndSetPresent or EndSetUnknown, after
// writing the cell's payload.
// If it returns with set as false, the cell is already resolved, the lock has
// been released before returning, and status holds the resolved state.
func (s *CellStatus) BeginSet() (set bool, status uint32) {
	// read the current status value, and acquire the update lock
	cs := s.readAndAcquireLock()

	// keep holding the lock, only if the state is unset
	if cs == stateUnset {
		return true, cs
	}

	// save the current status value back, and release the update lock,
	// before reporting the failure to the caller
	s.saveAndReleaseLock(cs)
	return false, cs
}

// EndSetPresent completes a write started by a successful BeginSet call,
// setting the state to present and releasing the update lock.
func (s *CellStatus) EndSetPresent() {
	// save the new status value, and release the update lock
	s.saveAndReleaseLock(statePresent)
}

// EndSetUnknown completes a write started by a successful BeginSet call,
// setting the state to unknown and releasing the update lock.
func (s *CellStatus) EndSetUnknown() {
	// save the new status value, and release the update lock
	s.saveAndReleaseLock(stateUnknown)
}

// SetPresentSync should be used only from factories that resolve the cell
// before returning it to the caller.
// It updates the status value directly, as it's guaranteed that the cell is
// accessible from the creating goroutine only.
func (s *CellStatus) SetPresentSync() (status uint32) {
	*s = CellStatus(statePresent)
	return statePresent
}

// SetUnknownSync should be used only from factories that resolve the cell
// before returning it to the caller.
// It updates the status value directly, as it's guaranteed that the cell is
// accessible from the creating goroutine only.
func (s *CellStatus) SetUnknownSync() (status uint32) {
	*s = CellStatus(stateUnknown)
	return stateUnknown
}
