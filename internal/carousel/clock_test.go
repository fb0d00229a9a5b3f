package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeClockFiresDueTimers(t *testing.T) {
	c := NewFakeClock()
	start := c.Now()
	short := c.NewTimer(100 * time.Millisecond)
	long := c.NewTimer(time.Second)

	assert.Equal(t, 0, c.Advance(50*time.Millisecond))
	assert.Equal(t, 1, c.Advance(50*time.Millisecond))
	assert.Equal(t, start.Add(100*time.Millisecond), <-short.C())
	assert.Equal(t, 1, c.Pending())

	assert.True(t, long.Stop())
	assert.False(t, long.Stop())
	assert.Equal(t, 0, c.Advance(time.Hour))
	assert.Equal(t, 0, c.Pending())
}

func TestFakeClockStopAfterFire(t *testing.T) {
	c := NewFakeClock()
	timer := c.NewTimer(0)
	assert.Equal(t, 1, c.Advance(0))
	assert.False(t, timer.Stop())
}

func TestRealClockTimer(t *testing.T) {
	timer := realClock{}.NewTimer(time.Millisecond)
	select {
	case <-timer.C():
	case <-time.After(time.Second):
		t.Fatal("real timer did not fire")
	}
	assert.False(t, timer.Stop())
}
