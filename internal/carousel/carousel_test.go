package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const (
	heroInterval = 6000 * time.Millisecond
	lock         = 700 * time.Millisecond
)

func newManual(count int) *Carousel {
	// No autoplay, no lock: pure index arithmetic.
	return New(count, Options{Clock: &fakeClock{}})
}

func TestNextIsCyclic(t *testing.T) {
	for n := 2; n <= 7; n++ {
		c := newManual(n)
		for i := 1; i <= n; i++ {
			require.True(t, c.Next(), "n=%d step %d", n, i)
			assert.Equal(t, i%n, c.State().ActiveIndex, "n=%d step %d", n, i)
		}
		assert.Equal(t, 0, c.State().ActiveIndex, "n=%d should be back at 0", n)
		c.Close()
	}
}

func TestPrevUndoesNext(t *testing.T) {
	const n = 5
	for start := 0; start < n; start++ {
		c := newManual(n)
		if start != 0 {
			require.True(t, c.GoTo(start))
		}
		require.True(t, c.Next())
		require.True(t, c.Prev())
		assert.Equal(t, start, c.State().ActiveIndex)
		c.Close()
	}
}

func TestPrevWrapsToLast(t *testing.T) {
	c := newManual(4)
	defer c.Close()

	require.True(t, c.Prev())
	assert.Equal(t, 3, c.State().ActiveIndex)
}

func TestSingleItemIsNoop(t *testing.T) {
	clock := &fakeClock{}
	c := New(1, Options{Interval: heroInterval, TransitionLock: lock, Clock: clock})
	defer c.Close()

	assert.False(t, c.Next())
	assert.False(t, c.Prev())
	assert.False(t, c.GoTo(0))
	assert.Equal(t, 0, c.State().ActiveIndex)
	assert.False(t, c.State().Transitioning)
	assert.Zero(t, clock.Pending(), "single item should not arm autoplay")
}

func TestEmptyCarouselNeverTicks(t *testing.T) {
	clock := &fakeClock{}
	changes := 0
	c := New(0, Options{
		Interval:       heroInterval,
		TransitionLock: lock,
		Clock:          clock,
		OnChange:       func(State) { changes++ },
	})
	defer c.Close()

	clock.Advance(time.Hour)

	st := c.State()
	assert.False(t, st.Enabled())
	assert.Equal(t, -1, st.ActiveIndex)
	assert.Zero(t, changes)
	assert.Zero(t, clock.Pending())
	assert.False(t, c.Next())
	assert.False(t, c.GoTo(0))
}

func TestGoToOutOfRangeIgnored(t *testing.T) {
	c := newManual(3)
	defer c.Close()

	assert.False(t, c.GoTo(-1))
	assert.False(t, c.GoTo(3))
	assert.False(t, c.GoTo(0), "current index is not a transition")
	assert.True(t, c.GoTo(2))
	assert.Equal(t, 2, c.State().ActiveIndex)
}

func TestTransitionLockIgnoresRapidNavigation(t *testing.T) {
	clock := &fakeClock{}
	c := New(5, Options{TransitionLock: lock, Clock: clock})
	defer c.Close()

	require.True(t, c.Next())
	assert.True(t, c.State().Transitioning)

	assert.False(t, c.Next(), "next during transition must be ignored")
	assert.False(t, c.Prev(), "prev during transition must be ignored")
	assert.False(t, c.GoTo(4), "goto during transition must be ignored")
	assert.Equal(t, 1, c.State().ActiveIndex)

	clock.Advance(lock - time.Millisecond)
	assert.True(t, c.State().Transitioning)

	clock.Advance(time.Millisecond)
	assert.False(t, c.State().Transitioning)
	require.True(t, c.Next())
	assert.Equal(t, 2, c.State().ActiveIndex)
}

func TestAutoplayAdvancesOnInterval(t *testing.T) {
	clock := &fakeClock{}
	c := New(3, Options{Interval: heroInterval, TransitionLock: lock, Clock: clock})
	defer c.Close()

	clock.Advance(heroInterval - time.Millisecond)
	assert.Equal(t, 0, c.State().ActiveIndex)

	clock.Advance(time.Millisecond)
	assert.Equal(t, 1, c.State().ActiveIndex)

	clock.Advance(heroInterval)
	assert.Equal(t, 2, c.State().ActiveIndex)

	clock.Advance(heroInterval)
	assert.Equal(t, 0, c.State().ActiveIndex, "autoplay wraps")
}

func TestAutoplayRearmsAfterManualChange(t *testing.T) {
	clock := &fakeClock{}
	c := New(5, Options{Interval: heroInterval, TransitionLock: lock, Clock: clock})
	defer c.Close()

	clock.Advance(4 * time.Second)
	require.True(t, c.Next())
	assert.Equal(t, 1, c.State().ActiveIndex)

	// The original tick at 6s must not fire: the interval restarted at 4s.
	clock.Advance(2 * time.Second)
	assert.Equal(t, 1, c.State().ActiveIndex)

	clock.Advance(heroInterval - 2*time.Second - time.Millisecond)
	assert.Equal(t, 1, c.State().ActiveIndex)

	clock.Advance(time.Millisecond)
	assert.Equal(t, 2, c.State().ActiveIndex)
}

func TestPauseSuppressesAutoplayOnly(t *testing.T) {
	clock := &fakeClock{}
	c := New(4, Options{Interval: heroInterval, TransitionLock: lock, Clock: clock})
	defer c.Close()

	c.SetPaused(true)
	assert.True(t, c.State().Paused)

	clock.Advance(time.Minute)
	assert.Equal(t, 0, c.State().ActiveIndex, "paused carousel must not autoplay")

	require.True(t, c.Next(), "manual navigation works while paused")
	assert.Equal(t, 1, c.State().ActiveIndex)
	clock.Advance(time.Minute)
	assert.Equal(t, 1, c.State().ActiveIndex)

	c.SetPaused(false)
	clock.Advance(heroInterval)
	assert.Equal(t, 2, c.State().ActiveIndex)
}

func TestResumeRestartsFullInterval(t *testing.T) {
	clock := &fakeClock{}
	c := New(4, Options{Interval: heroInterval, TransitionLock: lock, Clock: clock})
	defer c.Close()

	clock.Advance(5 * time.Second)
	c.SetPaused(true)
	c.SetPaused(false)

	clock.Advance(heroInterval - time.Millisecond)
	assert.Equal(t, 0, c.State().ActiveIndex)
	clock.Advance(time.Millisecond)
	assert.Equal(t, 1, c.State().ActiveIndex)
}

func TestOnChangeSeesEveryTransition(t *testing.T) {
	clock := &fakeClock{}
	var seen []State
	c := New(3, Options{
		Interval:       heroInterval,
		TransitionLock: lock,
		Clock:          clock,
		OnChange:       func(s State) { seen = append(seen, s) },
	})
	defer c.Close()

	clock.Advance(heroInterval)
	clock.Advance(lock)

	require.Len(t, seen, 2)
	assert.Equal(t, State{ActiveIndex: 1, ItemCount: 3, Transitioning: true}, seen[0])
	assert.Equal(t, State{ActiveIndex: 1, ItemCount: 3, Transitioning: false}, seen[1])

	c.SetPaused(true)
	require.Len(t, seen, 3)
	assert.True(t, seen[2].Paused)

	c.SetPaused(true)
	assert.Len(t, seen, 3, "no notification when pause state is unchanged")
}

func TestCloseCancelsTimers(t *testing.T) {
	clock := &fakeClock{}
	changes := 0
	c := New(3, Options{
		Interval:       heroInterval,
		TransitionLock: lock,
		Clock:          clock,
		OnChange:       func(State) { changes++ },
	})
	require.True(t, c.Next())
	changes = 0

	c.Close()
	c.Close()
	assert.Zero(t, clock.Pending())

	clock.Advance(time.Hour)
	assert.Zero(t, changes)
	assert.False(t, c.Next())
	c.SetPaused(true)
	assert.False(t, c.State().Paused)
}

func TestSystemClockDoesNotLeak(t *testing.T) {
	ticks := make(chan State, 16)
	c := New(3, Options{
		Interval:       5 * time.Millisecond,
		TransitionLock: time.Millisecond,
		OnChange: func(s State) {
			select {
			case ticks <- s:
			default:
			}
		},
	})

	deadline := time.After(2 * time.Second)
	moved := 0
	for moved < 2 {
		select {
		case s := <-ticks:
			if s.Transitioning {
				moved++
			}
		case <-deadline:
			t.Fatal("autoplay did not advance on the system clock")
		}
	}
	c.Close()

	goleak.VerifyNone(t)
}

func TestSuspendHoldsAutoplayWithoutPausing(t *testing.T) {
	clock := &fakeClock{}
	changes := 0
	c := New(3, Options{
		Interval:       heroInterval,
		TransitionLock: lock,
		Clock:          clock,
		Suspended:      true,
		OnChange:       func(State) { changes++ },
	})
	defer c.Close()

	assert.Zero(t, clock.Pending(), "suspended carousel arms no autoplay")
	clock.Advance(time.Minute)
	assert.Equal(t, 0, c.State().ActiveIndex)

	c.SetSuspended(false)
	assert.Zero(t, changes, "suspension is not a visible change")
	assert.False(t, c.State().Paused)
	clock.Advance(heroInterval)
	assert.Equal(t, 1, c.State().ActiveIndex)

	c.SetSuspended(true)
	clock.Advance(time.Minute)
	assert.Equal(t, 1, c.State().ActiveIndex)

	require.True(t, c.Next(), "manual navigation works while suspended")
	clock.Advance(time.Minute)
	assert.Equal(t, 2, c.State().ActiveIndex, "navigation does not rearm a suspended carousel")
}
