package clock_test

import (
	"context"
	"testing"
	"time"

	"github.com/JoeTonDev/nautilus-trader/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiveClock_TimestampMonotonicAroundNow(t *testing.T) {
	c := clock.NewLiveClock()
	before := uint64(time.Now().UnixNano())
	ts := c.TimestampNs()
	after := uint64(time.Now().UnixNano())
	assert.GreaterOrEqual(t, ts, before)
	assert.LessOrEqual(t, ts, after)
}

func TestLiveClock_DuplicateTimerNameErrors(t *testing.T) {
	c := clock.NewLiveClock()
	require.NoError(t, c.SetTimer("t1", uint64(time.Second), 0, 0, "cb"))
	err := c.SetTimer("t1", uint64(time.Second), 0, 0, "cb")
	require.ErrorIs(t, err, clock.ErrTimerNameTaken)
}

func TestLiveClock_FiresAlertIntoEventsChannel(t *testing.T) {
	c := clock.NewLiveClockWithResolution(5 * time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c.Start(ctx)
	defer c.Stop()

	alertAt := c.TimestampNs() // in the past by the time the driver ticks: fires at next opportunity
	require.NoError(t, c.SetTimeAlert("now", alertAt, "cb"))

	select {
	case e := <-c.Events():
		assert.Equal(t, "now", e.Name)
		assert.GreaterOrEqual(t, e.TsInit, e.TsEvent)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for alert to fire")
	}
}

func TestLiveClock_CancelIsIdempotent(t *testing.T) {
	c := clock.NewLiveClock()
	require.NoError(t, c.SetTimer("t1", uint64(time.Second), 0, 0, "cb"))
	c.CancelTimer("t1")
	c.CancelTimer("t1")
	assert.Equal(t, 0, c.TimerCount())
}

func TestLiveClock_StartStopIdempotent(t *testing.T) {
	c := clock.NewLiveClock()
	ctx := context.Background()
	c.Start(ctx)
	c.Start(ctx) // no-op
	c.Stop()
	c.Stop() // no-op
}
