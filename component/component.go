package component

import (
	"fmt"
	"sync"
)

// Publisher is the subset of MessageBus a Component needs to announce its
// own transitions. Depending on bus.MessageBus directly (rather than an
// interface) would be fine too, but keeping it narrow lets tests substitute
// a recording fake without building a whole bus.
type Publisher interface {
	Publish(topic string, msg any)
}

// TransitionEvent is published to
// `events.system.component.<component_id>.<new_state>` for every state the
// component enters, including the transient *-ING states of compound
// transitions.
type TransitionEvent struct {
	ComponentID string
	From        ComponentState
	Trigger     ComponentTrigger
	To          ComponentState
}

// Component is the embeddable lifecycle base every runtime component
// (ExecutionClient, strategy, data engine, ...) builds on. It owns nothing
// domain-specific; it only enforces the legal state graph and announces
// transitions on the bus.
type Component struct {
	mu  sync.Mutex
	id  string
	st  ComponentState
	bus Publisher
}

// New creates a Component in PRE_INITIALIZED state, identified by id for the
// transition topic and publishing through b.
func New(id string, b Publisher) *Component {
	return &Component{id: id, st: PreInitialized, bus: b}
}

// ID returns the component's identifier.
func (c *Component) ID() string { return c.id }

// State returns the component's current state.
func (c *Component) State() ComponentState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st
}

// Apply fires trigger against the component's current state. On success the
// component's state becomes the final state of the resulting path, and a
// TransitionEvent is published for every state entered along the way. On
// failure the state is left unchanged and no event is published.
func (c *Component) Apply(trigger ComponentTrigger) error {
	c.mu.Lock()
	from := c.st
	path, err := apply(from, trigger)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.st = path[len(path)-1]
	c.mu.Unlock()

	step := from
	for _, to := range path {
		if c.bus != nil {
			c.bus.Publish(topicFor(c.id, to), TransitionEvent{
				ComponentID: c.id,
				From:        step,
				Trigger:     trigger,
				To:          to,
			})
		}
		step = to
	}
	return nil
}

// topicFor builds the `events.system.component.<component_id>.<new_state>`
// topic required by §4.3.
func topicFor(componentID string, to ComponentState) string {
	return fmt.Sprintf("events.system.component.%s.%s", componentID, to)
}
