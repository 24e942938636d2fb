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

package worm_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/asmsh/outcome/optional"
	"github.com/asmsh/outcome/worm"
)

func TestNew(t *testing.T) {
	w := worm.New[int]()

	assert.False(t, w.IsSet())
	assert.False(t, w.IsUnknown())
	assert.False(t, w.IsResolved())
	assert.True(t, w.Get().IsEmpty())
	assert.Equal(t, "unset", w.State())
}

func TestOf(t *testing.T) {
	t.Run("resolves to present immediately", func(t *testing.T) {
		w := worm.Of(42)
		assert.True(t, w.IsSet())
		assert.True(t, w.IsResolved())
		assert.False(t, w.IsUnknown())
		assert.Equal(t, 42, w.Get().MustGet())
	})

	t.Run("panics on nil value", func(t *testing.T) {
		assert.PanicsWithError(t, worm.ErrNilValue.Error(), func() {
			worm.Of[*int](nil)
		})
	})
}

func TestUnknown(t *testing.T) {
	w := worm.Unknown[int]()

	assert.True(t, w.IsUnknown())
	assert.True(t, w.IsResolved())
	assert.False(t, w.IsSet())
	assert.True(t, w.Get().IsUnknown())
}

func TestValue_Set(t *testing.T) {
	t.Run("first set wins", func(t *testing.T) {
		w := worm.New[int]()
		require.NoError(t, w.Set(1))
		assert.True(t, w.IsSet())
		assert.Equal(t, 1, w.Get().MustGet())
	})

	t.Run("second set fails and changes nothing", func(t *testing.T) {
		w := worm.New[int]()
		require.NoError(t, w.Set(1))

		err := w.Set(2)
		require.ErrorIs(t, err, worm.ErrAlreadySet)
		assert.Equal(t, 1, w.Get().MustGet())
	})

	t.Run("set after unknown fails", func(t *testing.T) {
		w := worm.Unknown[int]()
		err := w.Set(1)
		require.ErrorIs(t, err, worm.ErrAlreadySet)
		assert.True(t, w.IsUnknown())
	})
}

func TestValue_Set_NilValue(t *testing.T) {
	w := worm.New[*int]()

	// the nil check fails before any exclusivity is acquired, so the
	// cell stays unset and eligible for a later valid set.
	err := w.Set(nil)
	require.ErrorIs(t, err, worm.ErrNilValue)
	assert.False(t, w.IsResolved())
	assert.True(t, w.Get().IsEmpty())

	n := 4
	require.NoError(t, w.Set(&n))
	require.True(t, w.IsSet())
	assert.Equal(t, &n, w.Get().MustGet())
}

func TestValue_SetUnknown(t *testing.T) {
	t.Run("first set unknown wins", func(t *testing.T) {
		w := worm.New[int]()
		require.NoError(t, w.SetUnknown())
		assert.True(t, w.IsUnknown())
		assert.True(t, w.Get().IsUnknown())
	})

	t.Run("set unknown on a present cell fails and keeps the value", func(t *testing.T) {
		w := worm.New[int]()
		require.NoError(t, w.Set(1))

		err := w.SetUnknown()
		require.ErrorIs(t, err, worm.ErrAlreadySet)
		assert.True(t, w.IsSet())
		assert.Equal(t, 1, w.Get().MustGet())
	})
}

// TestValue_Lifecycle follows a cell from unset, through resolving to
// unknown, to rejecting a later set.
func TestValue_Lifecycle(t *testing.T) {
	w := worm.New[int]()
	assert.False(t, w.IsSet())
	assert.False(t, w.IsUnknown())
	assert.False(t, w.IsResolved())

	require.NoError(t, w.SetUnknown())
	assert.True(t, w.IsUnknown())
	assert.False(t, w.IsSet())
	assert.True(t, w.IsResolved())

	err := w.Set(5)
	require.ErrorIs(t, err, worm.ErrAlreadySet)
	assert.True(t, w.Get().IsUnknown())
}

func TestValue_Get(t *testing.T) {
	t.Run("unset reads as empty", func(t *testing.T) {
		assert.True(t, worm.New[string]().Get().IsEmpty())
	})

	t.Run("present reads as an immutable copy", func(t *testing.T) {
		w := worm.Of("v")
		first := w.Get()
		second := w.Get()
		assert.True(t, optional.Equal(first, second))
		assert.Equal(t, "v", first.MustGet())
	})

	t.Run("unknown reads as unknown", func(t *testing.T) {
		assert.True(t, worm.Unknown[string]().Get().IsUnknown())
	})
}

func TestValue_Strings(t *testing.T) {
	assert.Equal(t, "unset", worm.New[int]().String())
	assert.Equal(t, "present: 42", worm.Of(42).String())
	assert.Equal(t, "unknown", worm.Unknown[int]().String())

	assert.Equal(t, "present", worm.Of(42).State())
	assert.Equal(t, "unknown", worm.Unknown[int]().State())
}

// TestValue_ConcurrentSet races many writers against one cell, expecting
// exactly one winner, with every loser failing fast, and the cell holding
// the winner's value.
func TestValue_ConcurrentSet(t *testing.T) {
	w := worm.New[int]()

	const writers = 32
	errs := make([]error, writers)
	g := errgroup.Group{}
	for i := 0; i < writers; i++ {
		g.Go(func() error {
			errs[i] = w.Set(i + 1)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	wins, winner := 0, 0
	for i, err := range errs {
		if err == nil {
			wins++
			winner = i + 1
			continue
		}
		assert.ErrorIs(t, err, worm.ErrAlreadySet)
	}
	assert.Equal(t, 1, wins, "expected exactly one winning Set call")

	require.True(t, w.IsSet())
	assert.Equal(t, winner, w.Get().MustGet())
}

// TestValue_ConcurrentSetAndSetUnknown races a Set against a SetUnknown,
// expecting the cell to end up in the winner's state, whichever it is.
func TestValue_ConcurrentSetAndSetUnknown(t *testing.T) {
	w := worm.New[string]()

	var setErr, unknownErr error
	g := errgroup.Group{}
	g.Go(func() error {
		setErr = w.Set("v")
		return nil
	})
	g.Go(func() error {
		unknownErr = w.SetUnknown()
		return nil
	})
	require.NoError(t, g.Wait())

	if setErr == nil {
		require.ErrorIs(t, unknownErr, worm.ErrAlreadySet)
		assert.True(t, w.IsSet())
		assert.Equal(t, "v", w.Get().MustGet())
	} else {
		require.ErrorIs(t, setErr, worm.ErrAlreadySet)
		require.NoError(t, unknownErr)
		assert.True(t, w.IsUnknown())
	}
}

// TestValue_ConcurrentReaders runs a reader storm against a cell that gets
// set mid flight, expecting every read to observe either the unset state or
// the final value, and nothing else.
func TestValue_ConcurrentReaders(t *testing.T) {
	w := worm.New[int]()

	g := errgroup.Group{}
	g.Go(func() error {
		return w.Set(42)
	})

	const readers = 8
	for r := 0; r < readers; r++ {
		g.Go(func() error {
			for n := 0; n < 1000; n++ {
				o := w.Get()
				switch {
				case o.IsEmpty():
					// not set yet
				case o.IsPresent():
					if v := o.MustGet(); v != 42 {
						return fmt.Errorf("observed a torn value: %d", v)
					}
				default:
					return errors.New("observed unknown, unexpectedly")
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	require.True(t, w.IsSet())
	assert.Equal(t, 42, w.Get().MustGet())
}
