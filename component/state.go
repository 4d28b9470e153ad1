// Package component provides the finite-state-machine base every runtime
// component embeds: a strict ComponentState graph driven by ComponentTrigger
// values, publishing a topic on every transition.
//
// The State/Trigger/Name() shape is grounded on the teacher's Module
// interface family (module.go: Name(), Init(Application) error, Startable,
// Stoppable) generalized from a one-shot Init/Start/Stop application
// lifecycle into the runtime's full resumable/degradable/faultable state
// graph.
package component

import "errors"

// ComponentState is one node of the lifecycle graph.
type ComponentState string

const (
	PreInitialized ComponentState = "PRE_INITIALIZED"
	Ready          ComponentState = "READY"
	Starting       ComponentState = "STARTING"
	Running        ComponentState = "RUNNING"
	Stopping       ComponentState = "STOPPING"
	Stopped        ComponentState = "STOPPED"
	Resuming       ComponentState = "RESUMING"
	Resetting      ComponentState = "RESETTING"
	Disposing      ComponentState = "DISPOSING"
	Disposed       ComponentState = "DISPOSED"
	Degrading      ComponentState = "DEGRADING"
	Degraded       ComponentState = "DEGRADED"
	Faulting       ComponentState = "FAULTING"
	Faulted        ComponentState = "FAULTED"
)

// ComponentTrigger is one edge label of the lifecycle graph.
type ComponentTrigger string

const (
	Initialize      ComponentTrigger = "INITIALIZE"
	Start           ComponentTrigger = "START"
	StartCompleted  ComponentTrigger = "START_COMPLETED"
	Stop            ComponentTrigger = "STOP"
	StopCompleted   ComponentTrigger = "STOP_COMPLETED"
	Resume          ComponentTrigger = "RESUME"
	ResumeCompleted ComponentTrigger = "RESUME_COMPLETED"
	Reset           ComponentTrigger = "RESET"
	ResetCompleted  ComponentTrigger = "RESET_COMPLETED"
	Dispose         ComponentTrigger = "DISPOSE"
	Degrade         ComponentTrigger = "DEGRADE"
	Fault           ComponentTrigger = "FAULT"
)

// ErrIllegalTransition is returned when a trigger is not legal for the
// component's current state; the state is left unchanged.
var ErrIllegalTransition = errors.New("component: trigger not legal for current state")

// terminal holds the states a component can never leave.
var terminal = map[ComponentState]bool{
	Disposed: true,
	Faulted:  true,
}

// IsTerminal reports whether s is a terminal state.
func IsTerminal(s ComponentState) bool { return terminal[s] }

// transitions encodes the legal graph from §4.3. FAULT is legal from any
// non-terminal state and is handled as a special case in apply rather than
// enumerated here for every source state.
var transitions = map[ComponentState]map[ComponentTrigger]ComponentState{
	PreInitialized: {Initialize: Ready},
	Ready:          {Start: Starting},
	Starting:       {StartCompleted: Running},
	Running:        {Stop: Stopping},
	Stopping:       {StopCompleted: Stopped},
	Stopped:        {Resume: Resuming, Reset: Resetting},
	Resuming:       {ResumeCompleted: Running},
	Resetting:      {ResetCompleted: Ready},
	Degraded:       {Reset: Resetting},
}

// apply computes the path of states entered by firing trigger from from, or
// an error if the trigger is not legal for from. Most triggers produce a
// single-element path. DISPOSE, DEGRADE and FAULT are compound: the table's
// "DISPOSING → DISPOSED" notation means firing DISPOSE carries the component
// through the *-ING state and directly into its terminal/settled state in
// one call, each step still getting its own transition topic.
func apply(from ComponentState, trigger ComponentTrigger) ([]ComponentState, error) {
	if trigger == Fault {
		if IsTerminal(from) {
			return nil, ErrIllegalTransition
		}
		return []ComponentState{Faulting, Faulted}, nil
	}
	if trigger == Dispose {
		if IsTerminal(from) {
			return nil, ErrIllegalTransition
		}
		return []ComponentState{Disposing, Disposed}, nil
	}
	if trigger == Degrade {
		if from != Running {
			return nil, ErrIllegalTransition
		}
		return []ComponentState{Degrading, Degraded}, nil
	}

	edges, ok := transitions[from]
	if !ok {
		return nil, ErrIllegalTransition
	}
	to, ok := edges[trigger]
	if !ok {
		return nil, ErrIllegalTransition
	}
	return []ComponentState{to}, nil
}
