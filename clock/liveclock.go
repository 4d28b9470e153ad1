package clock

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// LiveClock is bound to wall-clock time. Alerts and timers are dispatched
// asynchronously by a background driver goroutine (ticking at Resolution)
// into a bounded channel of TimeEvents; cancellation is idempotent. This
// mirrors the worker/ticker shape of the teacher's scheduler.Scheduler, with
// cron expressions replaced by plain nanosecond intervals.
type LiveClock struct {
	mu             sync.Mutex
	reg            *timerRegistry
	defaultHandler string

	resolution time.Duration
	events     chan TimeEvent
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	running    bool
}

// DefaultResolution is how often the live driver checks for due timers.
const DefaultResolution = time.Millisecond

// NewLiveClock creates a LiveClock with the default polling resolution.
func NewLiveClock() *LiveClock {
	return NewLiveClockWithResolution(DefaultResolution)
}

// NewLiveClockWithResolution creates a LiveClock polling at the given resolution.
func NewLiveClockWithResolution(resolution time.Duration) *LiveClock {
	return &LiveClock{
		reg:        newTimerRegistry(),
		resolution: resolution,
		events:     make(chan TimeEvent, 1024),
	}
}

// TimestampNs returns the current wall-clock time in UNIX nanoseconds.
func (c *LiveClock) TimestampNs() uint64 { return nsFromTime(time.Now()) }

// TimestampUs returns the current wall-clock time in UNIX microseconds.
func (c *LiveClock) TimestampUs() uint64 { return c.TimestampNs() / 1_000 }

// TimestampMs returns the current wall-clock time in UNIX milliseconds.
func (c *LiveClock) TimestampMs() uint64 { return c.TimestampNs() / 1_000_000 }

// Timestamp returns the current wall-clock time as floating-point UNIX seconds.
func (c *LiveClock) Timestamp() float64 { return float64(c.TimestampNs()) / 1e9 }

// SetTimeAlert registers a one-shot alert. An alert_time_ns in the past fires
// at the next dispatch opportunity.
func (c *LiveClock) SetTimeAlert(name string, alertTimeNs uint64, callbackID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reg.addAlert(name, alertTimeNs, callbackID)
}

// SetTimer registers a recurring timer.
func (c *LiveClock) SetTimer(name string, intervalNs, startTimeNs, stopTimeNs uint64, callbackID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reg.addTimer(name, intervalNs, startTimeNs, stopTimeNs, callbackID)
}

// CancelTimer cancels a timer or alert; idempotent.
func (c *LiveClock) CancelTimer(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reg.cancel(name)
}

// CancelTimers cancels every registered timer and alert.
func (c *LiveClock) CancelTimers() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reg.cancelAll()
}

// NextTimeNs returns the next scheduled firing time for name.
func (c *LiveClock) NextTimeNs(name string) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reg.nextTimeNs(name)
}

// TimerCount returns the number of registered timers/alerts.
func (c *LiveClock) TimerCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reg.count()
}

// TimerNames returns the names of every registered timer/alert.
func (c *LiveClock) TimerNames() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reg.names()
}

// RegisterDefaultHandler sets the fallback callback id.
func (c *LiveClock) RegisterDefaultHandler(callbackID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.defaultHandler = callbackID
}

// CallbackID returns the callback id registered for name, falling back to the
// default handler.
func (c *LiveClock) CallbackID(name string) (string, bool) {
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

// Events returns the channel TimeEvents are delivered on once Start has been
// called. The dispatch loop (bus or session driver) should drain it and
// serialize handler invocation, per §5's single-global-order guarantee.
func (c *LiveClock) Events() <-chan TimeEvent { return c.events }

// Start begins the background driver goroutine that polls for due
// timers/alerts at Resolution and pushes TimeEvents onto Events(). Calling
// Start twice is a no-op.
func (c *LiveClock) Start(ctx context.Context) {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.running = true
	c.mu.Unlock()

	c.wg.Add(1)
	go c.run(runCtx)
}

// Stop halts the background driver and waits for it to exit.
func (c *LiveClock) Stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	cancel := c.cancel
	c.running = false
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	c.wg.Wait()
}

func (c *LiveClock) run(ctx context.Context) {
	defer c.wg.Done()

	ticker := time.NewTicker(c.resolution)
	defer ticker.Stop()

	lastNs := nsFromTime(time.Now())
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			nowNs := nsFromTime(time.Now())

			c.mu.Lock()
			due := c.reg.dueBetween(lastNs, nowNs)
			c.mu.Unlock()

			for _, e := range due {
				event := TimeEvent{
					Name:    e.name,
					EventID: uuid.New(),
					TsEvent: e.nextNsOfFiring(),
					TsInit:  nsFromTime(time.Now()),
				}
				select {
				case c.events <- event:
				case <-ctx.Done():
					return
				}
			}
			lastNs = nowNs
		}
	}
}
