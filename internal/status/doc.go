// Package status represents values for the worm cell's status.
//
// The value is split into 2 sections, state, and lock, as follows, starting
// from the right:
// - The lock section takes 2 bits, with only 1 currently in use.
// - The state section takes 2 bits.
//
// Description of the sections:
//
//   - The lock section.
//     = Although it's named 'lock', it doesn't use any Mutexes.
//     = The lock is implemented through atomic writing, reading, and updating
//     of the status value.
//     = Although the implementation is lock-free(in the sense of Mutexes), it's
//     not wait-free.
//     = The lock logic used is just a way to tell new comers(that want to read
//     or update the status) that: "the value is currently being updated by
//     some previous update call so wait here until it finish, then you can get
//     your chance to read or update the status too".
//     = The whole waiting behaviour is passed to the 'go scheduler'(through a call
//     to runtime.Gosched) to decide which goroutine should run now(and hence
//     acquire the lock first).
//     = The lock is held for the duration of exactly one cell transition, which
//     is a state check plus at most one payload assignment, so the acquire
//     time is always small.
//     = Unlike the usual acquire-update-release flow, a successful BeginSet
//     call returns with the lock still held, because the cell's payload must
//     be written while the status is locked, before the final state is
//     published.
//     The transition is completed, and the lock released, by EndSetPresent or
//     EndSetUnknown.
//     A failed BeginSet call restores the status(releasing the lock) before
//     returning, so a losing writer never blocks the next waiter from getting
//     its chance to also fail fast.
//
//   - The state section describes the state of the cell.
//     = 3 mutually exclusive possible values, represented by 2 bits:
//
//   - unset: the cell has never been written.
//     It's the only state a transition can start from, and it's the zero
//     value of the status.
//
//   - present: the cell holds a usable value.
//     It's a terminal state.
//
//   - unknown: the cell has been resolved without a usable value.
//     It's a terminal state.
//     = The state value is written once, by the single writer which won the
//     BeginSet call, and never changes afterwards.
//     = A status whose state is present or unknown is called resolved.
//
// Memory ordering: the payload write of the winning writer is ordered before
// the atomic store of its EndSet call, and a reader's atomic Load that
// observes a resolved state is ordered after that store, so the payload read
// that follows such a Load always observes the winner's fully written value.
package status
