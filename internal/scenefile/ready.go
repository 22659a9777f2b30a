package scenefile

import (
	"go.uber.org/zap"

	"github.com/Faultbox/skybridge/internal/engine/event"
	"github.com/Faultbox/skybridge/internal/logger"
)

// DefaultExpectedLoads is the number of model loads the built-in layout waits
// for: every model it places.
const DefaultExpectedLoads = 4

// ReadyCounter tracks asynchronous loads and fires Ready once when the
// expected number have completed. Repeated reports for the same asset count once.
type ReadyCounter struct {
	expected int
	done     map[string]bool
	fired    bool

	// Ready carries the number of completed loads.
	Ready event.Event[int]
}

// NewReadyCounter creates a counter waiting for expected loads.
// With expected <= 0 the counter starts out ready.
func NewReadyCounter(expected int) *ReadyCounter {
	return &ReadyCounter{
		expected: expected,
		done:     make(map[string]bool),
		fired:    expected <= 0,
	}
}

// Done records a finished load. It returns true if this report made the
// scene ready.
func (c *ReadyCounter) Done(name string) bool {
	if c.done[name] {
		return false
	}
	c.done[name] = true
	logger.Debug("asset loaded", zap.String("asset", name), zap.Int("remaining", c.Remaining()))

	if c.fired || len(c.done) < c.expected {
		return false
	}
	c.fired = true
	c.Ready.Publish(len(c.done))
	return true
}

// IsReady reports whether the expected loads have completed.
func (c *ReadyCounter) IsReady() bool {
	return c.fired
}

// Remaining returns how many loads are still outstanding.
func (c *ReadyCounter) Remaining() int {
	return max(0, c.expected-len(c.done))
}
