// Package reconcile drives periodic order-status reconciliation against
// live venue adapters. It is deliberately separate from the clock package:
// reconciliation cadence is operational housekeeping against wall-clock
// time, not part of the deterministic timer/alert contract a backtest
// replays bit-for-bit.
package reconcile

import (
	"errors"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/JoeTonDev/nautilus-trader/execution"
	"github.com/JoeTonDev/nautilus-trader/logging"
)

// Errors returned by Scheduler.
var (
	ErrEmptyVenueName    = errors.New("reconcile: venue name must not be empty")
	ErrVenueAlreadyAdded = errors.New("reconcile: venue already registered")
	ErrVenueNotFound     = errors.New("reconcile: venue not registered")
)

// VenueJob names a venue and the query its Adapter (passed separately to
// AddVenue) should be asked to reconcile on every tick.
type VenueJob struct {
	Venue string
	Query execution.QueryOrderCommand
}

// Scheduler registers one cron entry per venue, each issuing a
// SyncOrderStatusCommand against that venue's Adapter. Grounded on the
// teacher's scheduler.Scheduler, which wraps a *cron.Cron the same way and
// exposes Start/Stop over a set of named jobs.
type Scheduler struct {
	mu      sync.Mutex
	cron    *cron.Cron
	logger  logging.Logger
	entries map[string]cron.EntryID
	jobs    map[string]VenueJob
}

// New constructs a Scheduler. logger may be nil, in which case failures are
// silently dropped rather than logged.
func New(logger logging.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		logger:  logger,
		entries: make(map[string]cron.EntryID),
		jobs:    make(map[string]VenueJob),
	}
}

// AddVenue registers a cron expression (standard five-field syntax) that
// calls adapter.SyncOrderStatus with job.Query on every tick. spec is parsed
// eagerly so a malformed expression is reported at registration time rather
// than silently never firing.
func (s *Scheduler) AddVenue(spec string, job VenueJob, adapter execution.Adapter) error {
	if job.Venue == "" {
		return ErrEmptyVenueName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[job.Venue]; exists {
		return ErrVenueAlreadyAdded
	}

	entryID, err := s.cron.AddFunc(spec, func() { s.runTick(job, adapter) })
	if err != nil {
		return err
	}

	s.entries[job.Venue] = entryID
	s.jobs[job.Venue] = job
	return nil
}

// RemoveVenue deregisters a previously-added venue. It is a no-op error if
// the venue was never registered.
func (s *Scheduler) RemoveVenue(venue string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entryID, ok := s.entries[venue]
	if !ok {
		return ErrVenueNotFound
	}
	s.cron.Remove(entryID)
	delete(s.entries, venue)
	delete(s.jobs, venue)
	return nil
}

// Start begins firing registered cron entries. Safe to call with zero
// entries registered; later AddVenue calls take effect immediately.
func (s *Scheduler) Start() { s.cron.Start() }

// Stop halts the scheduler and waits for any in-flight tick to finish.
func (s *Scheduler) Stop() { <-s.cron.Stop().Done() }

func (s *Scheduler) runTick(job VenueJob, adapter execution.Adapter) {
	cmd := execution.SyncOrderStatusCommand{Query: job.Query}
	if err := adapter.SyncOrderStatus(cmd); err != nil && s.logger != nil {
		s.logger.Error("reconcile: sync_order_status failed", "venue", job.Venue, "error", err)
	}
}
