package submission

import (
	"errors"
	"sync"
	"time"
)

// State of a form submission lifecycle.
type State string

const (
	// StateEditing is the initial state; the form accepts input.
	StateEditing State = "EDITING"
	// StateSubmitting means a submission is in flight; further submits are rejected.
	StateSubmitting State = "SUBMITTING"
	// StateSuccess is shown after a successful submission until the reset window elapses.
	StateSuccess State = "SUCCESS"
)

var (
	// ErrSubmissionInFlight is returned when a submit arrives while another is running.
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
	// ErrAwaitingReset is returned when a submit arrives during the success window.
	ErrAwaitingReset = errors.New("previous submission is awaiting reset")
)

// Scheduler schedules the auto-reset callback. Production uses
// time.AfterFunc; tests substitute a manual trigger.
type Scheduler func(d time.Duration, f func()) *time.Timer

// Machine is the editing/submitting/success state machine owned by one form
// instance. A successful submission auto-reverts to editing after the reset
// window; a failed one reverts immediately with entered data preserved.
type Machine struct {
	resetAfter time.Duration
	schedule   Scheduler
	onReset    func()

	mu    sync.Mutex
	state State
}

// NewMachine creates a machine with the given success window. A zero window
// disables the auto-reset. onReset may be nil.
func NewMachine(resetAfter time.Duration, onReset func()) *Machine {
	return NewMachineWithScheduler(resetAfter, onReset, time.AfterFunc)
}

// NewMachineWithScheduler is NewMachine with an injectable timer, so tests
// can fire the reset without waiting out the window.
func NewMachineWithScheduler(resetAfter time.Duration, onReset func(), schedule Scheduler) *Machine {
	return &Machine{
		resetAfter: resetAfter,
		schedule:   schedule,
		onReset:    onReset,
		state:      StateEditing,
	}
}

// State returns the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Begin moves editing to submitting. Any other current state rejects the
// transition, which is how double-submission is prevented.
func (m *Machine) Begin() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case StateSubmitting:
		return ErrSubmissionInFlight
	case StateSuccess:
		return ErrAwaitingReset
	}

	m.state = StateSubmitting
	return nil
}

// Fail reverts submitting to editing without touching entered data.
func (m *Machine) Fail() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateSubmitting {
		m.state = StateEditing
	}
}

// Succeed moves submitting to success and, when a reset window is
// configured, schedules the auto-revert to editing.
func (m *Machine) Succeed() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateSubmitting {
		return
	}
	m.state = StateSuccess

	if m.resetAfter > 0 {
		m.schedule(m.resetAfter, m.reset)
	}
}

// reset reverts success to editing and fires the onReset callback.
func (m *Machine) reset() {
	m.mu.Lock()
	if m.state != StateSuccess {
		m.mu.Unlock()
		return
	}
	m.state = StateEditing
	m.mu.Unlock()

	if m.onReset != nil {
		m.onReset()
	}
}
