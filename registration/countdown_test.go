package registration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCountdownTicksToZero(t *testing.T) {
	ticks := make(chan int, 4)
	c := NewCountdown(func(remaining int) { ticks <- remaining })

	c.Reset(2)
	assert.Equal(t, 2, c.Remaining())

	deadline := time.After(5 * time.Second)
	var seen []int
	for len(seen) < 2 {
		select {
		case r := <-ticks:
			seen = append(seen, r)
		case <-deadline:
			t.Fatalf("countdown stalled, saw ticks %v", seen)
		}
	}
	assert.Equal(t, []int{1, 0}, seen)
	assert.Equal(t, 0, c.Remaining())
}

func TestCountdownStop(t *testing.T) {
	c := NewCountdown(nil)
	c.Reset(60)
	c.Stop()
	assert.Equal(t, 0, c.Remaining())

	// A second stop must be safe.
	c.Stop()
}

func TestCountdownResetReplacesRunningLoop(t *testing.T) {
	c := NewCountdown(nil)
	c.Reset(60)
	c.Reset(5)
	assert.Equal(t, 5, c.Remaining())
	c.Stop()
}
