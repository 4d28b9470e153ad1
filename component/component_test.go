package component_test

import (
	"testing"

	"github.com/JoeTonDev/nautilus-trader/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingBus struct {
	topics []string
}

func (b *recordingBus) Publish(topic string, msg any) {
	b.topics = append(b.topics, topic)
}

func TestComponent_FullHappyPathLifecycle(t *testing.T) {
	b := &recordingBus{}
	c := component.New("strategy-1", b)

	require.NoError(t, c.Apply(component.Initialize))
	assert.Equal(t, component.Ready, c.State())

	require.NoError(t, c.Apply(component.Start))
	assert.Equal(t, component.Starting, c.State())

	require.NoError(t, c.Apply(component.StartCompleted))
	assert.Equal(t, component.Running, c.State())

	require.NoError(t, c.Apply(component.Stop))
	assert.Equal(t, component.Stopping, c.State())

	require.NoError(t, c.Apply(component.StopCompleted))
	assert.Equal(t, component.Stopped, c.State())

	require.NoError(t, c.Apply(component.Resume))
	assert.Equal(t, component.Resuming, c.State())

	require.NoError(t, c.Apply(component.ResumeCompleted))
	assert.Equal(t, component.Running, c.State())

	want := []string{
		"events.system.component.strategy-1.READY",
		"events.system.component.strategy-1.STARTING",
		"events.system.component.strategy-1.RUNNING",
		"events.system.component.strategy-1.STOPPING",
		"events.system.component.strategy-1.STOPPED",
		"events.system.component.strategy-1.RESUMING",
		"events.system.component.strategy-1.RUNNING",
	}
	assert.Equal(t, want, b.topics)
}

func TestComponent_IllegalTriggerLeavesStateUnchanged(t *testing.T) {
	b := &recordingBus{}
	c := component.New("strategy-1", b)

	err := c.Apply(component.StartCompleted) // illegal from PRE_INITIALIZED
	require.ErrorIs(t, err, component.ErrIllegalTransition)
	assert.Equal(t, component.PreInitialized, c.State())
	assert.Empty(t, b.topics)
}

func TestComponent_ResetFromStoppedOrDegraded(t *testing.T) {
	b := &recordingBus{}
	c := component.New("c1", b)
	require.NoError(t, c.Apply(component.Initialize))
	require.NoError(t, c.Apply(component.Start))
	require.NoError(t, c.Apply(component.StartCompleted))
	require.NoError(t, c.Apply(component.Stop))
	require.NoError(t, c.Apply(component.StopCompleted))

	require.NoError(t, c.Apply(component.Reset))
	assert.Equal(t, component.Resetting, c.State())
	require.NoError(t, c.Apply(component.ResetCompleted))
	assert.Equal(t, component.Ready, c.State())
}

func TestComponent_DegradeIsCompoundFromRunning(t *testing.T) {
	b := &recordingBus{}
	c := component.New("c1", b)
	require.NoError(t, c.Apply(component.Initialize))
	require.NoError(t, c.Apply(component.Start))
	require.NoError(t, c.Apply(component.StartCompleted))

	require.NoError(t, c.Apply(component.Degrade))
	assert.Equal(t, component.Degraded, c.State())
	assert.Contains(t, b.topics, "events.system.component.c1.DEGRADING")
	assert.Contains(t, b.topics, "events.system.component.c1.DEGRADED")

	require.NoError(t, c.Apply(component.Reset))
	assert.Equal(t, component.Resetting, c.State())
}

func TestComponent_FaultIsLegalFromAnyNonTerminalState(t *testing.T) {
	b := &recordingBus{}
	c := component.New("c1", b)
	require.NoError(t, c.Apply(component.Fault))
	assert.Equal(t, component.Faulted, c.State())
	assert.True(t, component.IsTerminal(c.State()))

	// Faulted is terminal: any further trigger is illegal.
	err := c.Apply(component.Initialize)
	require.ErrorIs(t, err, component.ErrIllegalTransition)
}

func TestComponent_DisposeIsLegalFromAnyNonTerminalState(t *testing.T) {
	b := &recordingBus{}
	c := component.New("c1", b)
	require.NoError(t, c.Apply(component.Initialize))
	require.NoError(t, c.Apply(component.Dispose))
	assert.Equal(t, component.Disposed, c.State())

	err := c.Apply(component.Dispose)
	require.ErrorIs(t, err, component.ErrIllegalTransition)
}

func TestRegistry_RegisterAndSnapshot(t *testing.T) {
	b := &recordingBus{}
	reg := component.NewRegistry()
	c1 := component.New("a", b)
	c2 := component.New("b", b)
	require.NoError(t, reg.Register(c1))
	require.NoError(t, reg.Register(c2))

	err := reg.Register(component.New("a", b))
	require.ErrorIs(t, err, component.ErrAlreadyRegistered)

	require.NoError(t, c1.Apply(component.Fault))
	assert.False(t, reg.Healthy())

	snaps := reg.Snapshots()
	require.Len(t, snaps, 2)
	assert.Equal(t, "a", snaps[0].ID)
	assert.Equal(t, component.Faulted, snaps[0].State)
}
