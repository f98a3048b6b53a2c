package session

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviousBound(t *testing.T) {
	a := NewArena(2 * time.Minute)
	id := a.Create()

	for i := 1; i <= 3; i++ {
		off, err := a.Step(id, ActionPrevious, nil)
		require.NoError(t, err)
		assert.Equal(t, -i, off)
	}

	off, err := a.Step(id, ActionPrevious, nil)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, -3, off)
}

func TestNextBound(t *testing.T) {
	a := NewArena(2 * time.Minute)
	id := a.Create()

	for i := 1; i <= 6; i++ {
		off, err := a.Step(id, ActionNext, nil)
		require.NoError(t, err)
		assert.Equal(t, i, off)
	}

	off, err := a.Step(id, ActionNext, nil)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, 6, off)
}

func TestReset(t *testing.T) {
	a := NewArena(2 * time.Minute)
	id := a.Create()

	_, err := a.Step(id, ActionPrevious, nil)
	require.NoError(t, err)
	_, err = a.Step(id, ActionPrevious, nil)
	require.NoError(t, err)

	off, err := a.Step(id, ActionReset, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, off)
}

func TestUnknownAction(t *testing.T) {
	a := NewArena(2 * time.Minute)
	id := a.Create()

	_, err := a.Step(id, Action("sideways"), nil)
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestUnknownSession(t *testing.T) {
	a := NewArena(2 * time.Minute)

	_, err := a.Step("no-such-session", ActionNext, nil)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestExpiry(t *testing.T) {
	a := NewArena(120 * time.Second)
	base := time.Now()
	a.now = func() time.Time { return base }

	id := a.Create()

	// Exactly the timeout of inactivity is already expired.
	a.now = func() time.Time { return base.Add(120 * time.Second) }
	_, err := a.Step(id, ActionNext, nil)
	assert.ErrorIs(t, err, ErrExpired)
	assert.Equal(t, 0, a.Len())

	// An expired session never reactivates.
	_, err = a.Step(id, ActionReset, nil)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestActivityExtendsSession(t *testing.T) {
	a := NewArena(120 * time.Second)
	base := time.Now()
	a.now = func() time.Time { return base }

	id := a.Create()

	a.now = func() time.Time { return base.Add(100 * time.Second) }
	_, err := a.Step(id, ActionNext, nil)
	require.NoError(t, err)

	// 100s after the last step is still inside the window.
	a.now = func() time.Time { return base.Add(200 * time.Second) }
	off, err := a.Step(id, ActionNext, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, off)
}

func TestStepFnErrorKeepsCommittedOffset(t *testing.T) {
	a := NewArena(2 * time.Minute)
	id := a.Create()

	errBoom := errors.New("boom")
	off, err := a.Step(id, ActionNext, func(int) error { return errBoom })
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, off)

	// The transition was accepted; the next step continues from it.
	off, err = a.Step(id, ActionNext, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, off)
}

func TestStepFnSeesNewOffset(t *testing.T) {
	a := NewArena(2 * time.Minute)
	id := a.Create()

	var seen int
	_, err := a.Step(id, ActionPrevious, func(offset int) error {
		seen = offset
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, -1, seen)
}

func TestSweep(t *testing.T) {
	a := NewArena(120 * time.Second)
	base := time.Now()
	a.now = func() time.Time { return base }

	a.Create()
	a.Create()
	live := a.Create()

	// Keep one session active past the sweep cutoff.
	a.now = func() time.Time { return base.Add(60 * time.Second) }
	_, err := a.Step(live, ActionNext, nil)
	require.NoError(t, err)

	a.now = func() time.Time { return base.Add(130 * time.Second) }
	assert.Equal(t, 2, a.Sweep())
	assert.Equal(t, 1, a.Len())
}
