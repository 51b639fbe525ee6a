package registration

import (
	"sync"
	"time"
)

// Countdown is the resend cool-down task. It ticks once per second down to
// zero and is owned by the flow that created it; Reset and Stop make sure no
// ticker goroutine outlives the flow. It throttles the resend buttons only —
// the backend is the actual rate-limiter.
type Countdown struct {
	mu        sync.Mutex
	remaining int
	stop      chan struct{}
	onTick    func(remaining int)
}

// NewCountdown creates a stopped countdown. onTick, when non-nil, is invoked
// after every decrement with the seconds left; it must not call back into the
// countdown.
func NewCountdown(onTick func(remaining int)) *Countdown {
	return &Countdown{onTick: onTick}
}

// Reset cancels any running tick loop and restarts the countdown at secs.
func (c *Countdown) Reset(secs int) {
	c.mu.Lock()
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
	c.remaining = secs
	if secs <= 0 {
		c.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	c.stop = stop
	c.mu.Unlock()

	go c.run(stop)
}

func (c *Countdown) run(stop chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			c.mu.Lock()
			if c.stop != stop {
				// Reset raced with this tick; a newer loop owns the state.
				c.mu.Unlock()
				return
			}
			c.remaining--
			remaining := c.remaining
			done := remaining <= 0
			if done {
				c.remaining = 0
				close(c.stop)
				c.stop = nil
			}
			onTick := c.onTick
			c.mu.Unlock()

			if onTick != nil {
				onTick(remaining)
			}
			if done {
				return
			}
		}
	}
}

// Remaining returns the seconds left; zero means resending is allowed.
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Stop cancels the tick loop and zeroes the countdown.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
	c.remaining = 0
}
