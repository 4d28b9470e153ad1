package clock

import (
	"sync"

	"github.com/google/uuid"
)

// TestClock is the deterministic clock variant used by backtests. Time only
// moves when AdvanceTime or SetTime is called; nothing fires on a wall-clock
// tick. This mirrors §4.1 of the runtime's time contract.
type TestClock struct {
	mu             sync.Mutex
	nowNs          uint64
	reg            *timerRegistry
	defaultHandler string
}

// NewTestClock creates a TestClock starting at time zero.
func NewTestClock() *TestClock {
	return &TestClock{reg: newTimerRegistry()}
}

// NewTestClockAt creates a TestClock starting at the given time.
func NewTestClockAt(nowNs uint64) *TestClock {
	return &TestClock{nowNs: nowNs, reg: newTimerRegistry()}
}

// TimestampNs returns the clock's current virtual time.
func (c *TestClock) TimestampNs() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nowNs
}

// TimestampUs returns the current virtual time in microseconds.
func (c *TestClock) TimestampUs() uint64 { return c.TimestampNs() / 1_000 }

// TimestampMs returns the current virtual time in milliseconds.
func (c *TestClock) TimestampMs() uint64 { return c.TimestampNs() / 1_000_000 }

// Timestamp returns the current virtual time as floating-point UNIX seconds.
func (c *TestClock) Timestamp() float64 { return float64(c.TimestampNs()) / 1e9 }

// SetTimeAlert registers a one-shot alert.
func (c *TestClock) SetTimeAlert(name string, alertTimeNs uint64, callbackID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reg.addAlert(name, alertTimeNs, callbackID)
}

// SetTimer registers a recurring timer.
func (c *TestClock) SetTimer(name string, intervalNs, startTimeNs, stopTimeNs uint64, callbackID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reg.addTimer(name, intervalNs, startTimeNs, stopTimeNs, callbackID)
}

// CancelTimer cancels a timer or alert; cancelling twice is a no-op.
func (c *TestClock) CancelTimer(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reg.cancel(name)
}

// CancelTimers cancels every registered timer and alert.
func (c *TestClock) CancelTimers() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reg.cancelAll()
}

// NextTimeNs returns the next scheduled firing time for name.
func (c *TestClock) NextTimeNs(name string) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reg.nextTimeNs(name)
}

// TimerCount returns the number of registered timers/alerts.
func (c *TestClock) TimerCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reg.count()
}

// TimerNames returns the names of every registered timer/alert.
func (c *TestClock) TimerNames() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reg.names()
}

// RegisterDefaultHandler sets the fallback callback id.
func (c *TestClock) RegisterDefaultHandler(callbackID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.defaultHandler = callbackID
}

// CallbackID returns the callback id registered for name, falling back to the
// default handler.
func (c *TestClock) CallbackID(name string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if id, ok := c.reg.callbackFor(name); ok {
		return id, true
	}
	if c.defaultHandler != "" {
		return c.defaultHandler, true
	}
	return "", false
}

// SetTime jumps the clock to toNs without firing any timers or alerts.
func (c *TestClock) SetTime(toNs uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nowNs = toNs
}

// AdvanceTime moves the clock forward to toNs and returns, in strict ts_event
// ascending order (ties broken by registration order), every timer/alert
// firing in (current, toNs], plus any alert whose time is already at or
// before current. Nothing fires when toNs is not after the current time.
// If setTime is true the clock's current time
// becomes toNs afterwards; otherwise it is left unchanged.
func (c *TestClock) AdvanceTime(toNs uint64, setTime bool) []TimeEvent {
	c.mu.Lock()
	defer c.mu.Unlock()

	fromNs := c.nowNs
	var events []TimeEvent
	if toNs > fromNs {
		due := c.reg.dueBetween(fromNs, toNs)
		events = make([]TimeEvent, 0, len(due))
		for _, e := range due {
			events = append(events, TimeEvent{
				Name:    e.name,
				EventID: uuid.New(),
				TsEvent: e.nextNsOfFiring(),
				TsInit:  toNs,
			})
		}
	}

	if setTime {
		c.nowNs = toNs
	}
	return events
}
