package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTime struct {
	t time.Time
}

func (f *fakeTime) now() time.Time { return f.t }

func (f *fakeTime) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestClockFirstTickIsZero(t *testing.T) {
	ft := &fakeTime{t: time.Unix(100, 0)}
	clock := NewClock(ft.now)

	delta, ok := clock.Tick()
	require.True(t, ok)
	assert.Equal(t, time.Duration(0), delta)

	ft.advance(16 * time.Millisecond)
	delta, ok = clock.Tick()
	require.True(t, ok)
	assert.Equal(t, 16*time.Millisecond, delta)
	assert.Equal(t, 16*time.Millisecond, clock.Elapsed())
}

func TestClockResumeDoesNotReportPausedSpan(t *testing.T) {
	ft := &fakeTime{t: time.Unix(100, 0)}
	clock := NewClock(ft.now)
	clock.Tick()
	ft.advance(16 * time.Millisecond)
	clock.Tick()

	clock.Pause()
	ft.advance(10 * time.Second)
	_, ok := clock.Tick()
	assert.False(t, ok, "paused clock must not deliver ticks")

	ft.advance(5 * time.Second)
	clock.Resume()
	ft.advance(17 * time.Millisecond)

	delta, ok := clock.Tick()
	require.True(t, ok)
	assert.Equal(t, 17*time.Millisecond, delta)
	assert.Equal(t, 33*time.Millisecond, clock.Elapsed())
}

func TestClockMaxDeltaAndBackwardsTime(t *testing.T) {
	ft := &fakeTime{t: time.Unix(100, 0)}
	clock := NewClock(ft.now)
	clock.SetMaxDelta(50 * time.Millisecond)
	clock.Tick()

	ft.advance(time.Second)
	delta, _ := clock.Tick()
	assert.Equal(t, 50*time.Millisecond, delta)

	ft.advance(-time.Second)
	delta, _ = clock.Tick()
	assert.Equal(t, time.Duration(0), delta)
}

func TestClockDriveAndToggle(t *testing.T) {
	ft := &fakeTime{t: time.Unix(100, 0)}
	clock := NewClock(ft.now)

	var got []float64
	record := func(ms float64) { got = append(got, ms) }

	assert.True(t, clock.Drive(record))
	ft.advance(20 * time.Millisecond)
	assert.True(t, clock.Drive(record))

	assert.True(t, clock.Toggle())
	ft.advance(20 * time.Millisecond)
	assert.False(t, clock.Drive(record))

	assert.False(t, clock.Toggle())
	ft.advance(10 * time.Millisecond)
	assert.True(t, clock.Drive(record))

	assert.Equal(t, []float64{0, 20, 10}, got)
}
