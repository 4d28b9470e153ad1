package reconcile

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeTonDev/nautilus-trader/execution"
	"github.com/JoeTonDev/nautilus-trader/ids"
)

// fakeAdapter records SyncOrderStatus calls; the other Adapter methods are
// unused by the scheduler and simply return nil.
type fakeAdapter struct {
	mu    sync.Mutex
	ticks []execution.SyncOrderStatusCommand
}

func (f *fakeAdapter) SubmitOrder(execution.SubmitOrderCommand) error         { return nil }
func (f *fakeAdapter) SubmitOrderList(execution.SubmitOrderListCommand) error { return nil }
func (f *fakeAdapter) ModifyOrder(execution.ModifyOrderCommand) error        { return nil }
func (f *fakeAdapter) CancelOrder(execution.CancelOrderCommand) error        { return nil }
func (f *fakeAdapter) CancelAllOrders(execution.CancelAllOrdersCommand) error { return nil }

func (f *fakeAdapter) SyncOrderStatus(cmd execution.SyncOrderStatusCommand) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ticks = append(f.ticks, cmd)
	return nil
}

func (f *fakeAdapter) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.ticks)
}

func TestScheduler_AddVenue_RejectsEmptyName(t *testing.T) {
	s := New(nil)
	err := s.AddVenue("* * * * *", VenueJob{Venue: ""}, &fakeAdapter{})
	require.ErrorIs(t, err, ErrEmptyVenueName)
}

func TestScheduler_AddVenue_RejectsDuplicate(t *testing.T) {
	s := New(nil)
	adapter := &fakeAdapter{}
	require.NoError(t, s.AddVenue("* * * * *", VenueJob{Venue: "SIM"}, adapter))
	err := s.AddVenue("@every 1m", VenueJob{Venue: "SIM"}, adapter)
	require.ErrorIs(t, err, ErrVenueAlreadyAdded)
}

func TestScheduler_AddVenue_RejectsMalformedExpression(t *testing.T) {
	s := New(nil)
	err := s.AddVenue("not a cron expression", VenueJob{Venue: "SIM"}, &fakeAdapter{})
	require.Error(t, err)
}

func TestScheduler_TicksInvokeSyncOrderStatusOnAdapter(t *testing.T) {
	s := New(nil)
	adapter := &fakeAdapter{}
	clientOrderID, err := ids.NewClientOrderId("O-1")
	require.NoError(t, err)
	job := VenueJob{
		Venue: "SIM",
		Query: execution.QueryOrderCommand{ClientOrderID: clientOrderID},
	}
	require.NoError(t, s.AddVenue("@every 10ms", job, adapter))

	s.Start()
	defer s.Stop()

	require.Eventually(t, func() bool { return adapter.count() >= 1 }, time.Second, 5*time.Millisecond)

	adapter.mu.Lock()
	got := adapter.ticks[0].Query.ClientOrderID
	adapter.mu.Unlock()
	assert.Equal(t, clientOrderID, got)
}

func TestScheduler_RemoveVenue_StopsFutureTicks(t *testing.T) {
	s := New(nil)
	adapter := &fakeAdapter{}
	require.NoError(t, s.AddVenue("@every 10ms", VenueJob{Venue: "SIM"}, adapter))
	s.Start()

	require.Eventually(t, func() bool { return adapter.count() >= 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, s.RemoveVenue("SIM"))

	countAtRemoval := adapter.count()
	time.Sleep(50 * time.Millisecond)
	s.Stop()
	assert.LessOrEqual(t, adapter.count(), countAtRemoval+1) // at most one in-flight tick could race removal
}

func TestScheduler_RemoveVenue_UnknownIsError(t *testing.T) {
	s := New(nil)
	err := s.RemoveVenue("UNKNOWN")
	require.ErrorIs(t, err, ErrVenueNotFound)
}
