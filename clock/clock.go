// Package clock provides the deterministic time source used throughout the
// trading runtime: a common Clock contract backing a TestClock (advanced
// explicitly, for backtests) and a LiveClock (bound to wall time, for live
// sessions), both producing TimeEvents from named one-shot alerts and
// recurring timers.
//
// The design mirrors the teacher's scheduler module (cron-driven job
// dispatch, worker pool, start/stop lifecycle) but replaces cron-expression
// scheduling with explicit nanosecond intervals, since the runtime substrate
// needs bit-for-bit reproducible firing order in backtests.
package clock

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Clock errors.
var (
	ErrIntervalNotPositive = errors.New("timer interval must be strictly positive")
	ErrTimerNameTaken      = errors.New("a timer or alert with this name is already registered")
	ErrTimerNotFound       = errors.New("no timer or alert registered with this name")
)

// TimeEvent is produced whenever a timer or alert fires.
type TimeEvent struct {
	Name    string
	EventID uuid.UUID
	TsEvent uint64
	TsInit  uint64
}

// Timer is a named, possibly-recurring schedule. A zero StopTimeNs means the
// timer is open-ended. CallbackID is an opaque handler token routed by the
// caller (typically a bus.HandlerID) - the clock package itself never
// dereferences it.
type Timer struct {
	Name        string
	IntervalNs  uint64
	StartTimeNs uint64
	StopTimeNs  uint64
	CallbackID  string

	// nextNs is the next scheduled firing time, maintained internally.
	nextNs uint64
}

// Alert is a one-shot Timer: it fires exactly once, at AlertTimeNs, then is
// removed from the registry.
type Alert struct {
	Name        string
	AlertTimeNs uint64
	CallbackID  string
}

// Clock is the shared contract implemented by both TestClock and LiveClock.
type Clock interface {
	// TimestampNs returns the current time as UNIX nanoseconds.
	TimestampNs() uint64
	// TimestampUs returns the current time as UNIX microseconds.
	TimestampUs() uint64
	// TimestampMs returns the current time as UNIX milliseconds.
	TimestampMs() uint64
	// Timestamp returns the current time as a floating-point UNIX seconds value.
	Timestamp() float64

	// SetTimeAlert registers a single-shot alert. Registering under an
	// existing timer/alert name is an error.
	SetTimeAlert(name string, alertTimeNs uint64, callbackID string) error
	// SetTimer registers a recurring timer. intervalNs must be > 0.
	// stopTimeNs == 0 means open-ended.
	SetTimer(name string, intervalNs, startTimeNs, stopTimeNs uint64, callbackID string) error

	// CancelTimer cancels a timer or alert by name. Idempotent: cancelling an
	// unknown name is a silent no-op.
	CancelTimer(name string)
	// CancelTimers cancels every registered timer and alert.
	CancelTimers()

	// NextTimeNs returns the next scheduled firing time for a named
	// timer/alert, or an error if unknown.
	NextTimeNs(name string) (uint64, error)
	// TimerCount returns the number of currently registered timers/alerts.
	TimerCount() int
	// TimerNames returns the names of all currently registered timers/alerts.
	TimerNames() []string

	// RegisterDefaultHandler sets the fallback callback id used when a fired
	// TimeEvent's name cannot be routed to a specific handler.
	RegisterDefaultHandler(callbackID string)

	// CallbackID returns the callback id a TimeEvent's name should route to,
	// falling back to the default handler if one was registered and the name
	// carries no callback of its own.
	CallbackID(name string) (string, bool)
}

// nsFromTime converts a time.Time to UNIX nanoseconds, matching the ts_event /
// ts_init representation used throughout the runtime (§6: all timestamps are
// unsigned 64-bit UNIX nanoseconds).
func nsFromTime(t time.Time) uint64 {
	return uint64(t.UnixNano())
}
