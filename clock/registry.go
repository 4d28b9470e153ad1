package clock

import "sort"

// entry is the shared internal representation for both timers and alerts;
// per the spec, alerts are one-shot timers and share the same name-space.
type entry struct {
	name        string
	intervalNs  uint64 // 0 for a one-shot alert
	startTimeNs uint64
	stopTimeNs  uint64
	callbackID  string
	nextNs      uint64
	seq         uint64 // registration order, used to break ts_event ties
}

func (e *entry) isAlert() bool { return e.intervalNs == 0 }

// timerRegistry is the name -> entry table shared by TestClock and LiveClock.
// It is intentionally unsynchronized; callers hold whatever lock fits their
// concurrency model (TestClock: none needed, single-threaded backtest driver;
// LiveClock: guarded by its own mutex).
type timerRegistry struct {
	entries   map[string]*entry
	nextSeq   uint64
	callbacks map[string]string // name -> callback id, retained across firings for routing
}

func newTimerRegistry() *timerRegistry {
	return &timerRegistry{entries: make(map[string]*entry), callbacks: make(map[string]string)}
}

func (r *timerRegistry) addAlert(name string, alertTimeNs uint64, callbackID string) error {
	if _, exists := r.entries[name]; exists {
		return ErrTimerNameTaken
	}
	r.entries[name] = &entry{
		name:        name,
		intervalNs:  0,
		startTimeNs: alertTimeNs,
		stopTimeNs:  alertTimeNs,
		callbackID:  callbackID,
		nextNs:      alertTimeNs,
		seq:         r.nextSeq,
	}
	r.callbacks[name] = callbackID
	r.nextSeq++
	return nil
}

func (r *timerRegistry) addTimer(name string, intervalNs, startTimeNs, stopTimeNs uint64, callbackID string) error {
	if intervalNs == 0 {
		return ErrIntervalNotPositive
	}
	if _, exists := r.entries[name]; exists {
		return ErrTimerNameTaken
	}
	r.entries[name] = &entry{
		name:        name,
		intervalNs:  intervalNs,
		startTimeNs: startTimeNs,
		stopTimeNs:  stopTimeNs,
		callbackID:  callbackID,
		nextNs:      startTimeNs + intervalNs,
		seq:         r.nextSeq,
	}
	r.callbacks[name] = callbackID
	r.nextSeq++
	return nil
}

// callbackFor returns the callback id last registered under name, even after
// the timer/alert has fired and been removed, so a dispatch loop can still
// route the TimeEvent it already captured.
func (r *timerRegistry) callbackFor(name string) (string, bool) {
	id, ok := r.callbacks[name]
	return id, ok
}

func (r *timerRegistry) cancel(name string) {
	delete(r.entries, name)
}

func (r *timerRegistry) cancelAll() {
	r.entries = make(map[string]*entry)
}

func (r *timerRegistry) nextTimeNs(name string) (uint64, error) {
	e, ok := r.entries[name]
	if !ok {
		return 0, ErrTimerNotFound
	}
	return e.nextNs, nil
}

func (r *timerRegistry) count() int { return len(r.entries) }

func (r *timerRegistry) names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// dueBetween returns, ordered by firing time and then registration order,
// every timer firing that falls in (fromNs, toNs], plus every alert due at or
// before toNs (an alert whose time is already at or before fromNs fires now).
// Recurring timers may appear multiple times (once per due firing); alerts
// appear at most once and are removed from the registry as a side effect of
// being collected.
func (r *timerRegistry) dueBetween(fromNs, toNs uint64) []*entry {
	// Stable registration-order traversal so ties at equal ts_event resolve
	// by registration order, per spec §5.
	ordered := make([]*entry, 0, len(r.entries))
	for _, e := range r.entries {
		ordered = append(ordered, e)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].seq < ordered[j].seq })

	var due []*entry
	for _, e := range ordered {
		for (e.nextNs > fromNs || e.isAlert()) && e.nextNs <= toNs {
			fire := *e // snapshot the firing time before advancing/removing
			due = append(due, &fire)

			if e.isAlert() {
				delete(r.entries, e.name)
				break
			}
			e.nextNs += e.intervalNs
			if e.stopTimeNs != 0 && e.nextNs > e.stopTimeNs {
				delete(r.entries, e.name)
				break
			}
		}
	}

	// Re-sort the collected firings by (ts_event asc, registration seq asc)
	// to honour strict ascending ts_event delivery across different timers.
	sort.SliceStable(due, func(i, j int) bool {
		if due[i].nextNsOfFiring() != due[j].nextNsOfFiring() {
			return due[i].nextNsOfFiring() < due[j].nextNsOfFiring()
		}
		return due[i].seq < due[j].seq
	})
	return due
}

// nextNsOfFiring returns the ts_event this snapshot entry actually fired at.
// dueBetween snapshots entries *before* advancing nextNs, so the snapshot's
// nextNs field already holds the firing timestamp.
func (e *entry) nextNsOfFiring() uint64 { return e.nextNs }
