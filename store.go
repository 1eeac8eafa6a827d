package litho

import (
	"fmt"
	"sync"
)

// DisplayScheduler is the host-provided "run this once on the next
// display refresh" abstraction the store uses to coalesce bursts of
// edits (spec.md section 6, section 9 design note: a single-slot
// mailbox with drain-on-tick). Any equivalent fire-once-per-tick
// mechanism satisfies the contract; the store does not care how ticks
// are produced.
type DisplayScheduler interface {
	Schedule(callback func())
}

// ManualScheduler is a DisplayScheduler for tests and for any host
// that wants to drive ticks explicitly: each Schedule call replaces
// the pending callback, and Advance fires and clears it.
type ManualScheduler struct {
	mu      sync.Mutex
	pending func()
}

func (s *ManualScheduler) Schedule(callback func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = callback
}

// Advance fires the pending callback, if any, exactly once.
func (s *ManualScheduler) Advance() {
	s.mu.Lock()
	cb := s.pending
	s.pending = nil
	s.mu.Unlock()
	if cb != nil {
		cb()
	}
}

// State is the snapshot delivered to store subscribers.
type State struct {
	Mask   Mask
	Params PupilParams
	View   ViewParams
}

// Store holds process-wide mask/optics/view state and coalesces
// bursts of setter calls within a single display-refresh window into
// exactly one subscriber invocation, delivered at the next tick
// (spec.md section 4.7).
type Store struct {
	mu        sync.Mutex
	state     State
	scheduler DisplayScheduler
	scheduled bool
	listeners []func(State)
}

// NewStore returns a Store seeded with the spec.md section 6 defaults
// and a blank N x N mask.
func NewStore(scheduler DisplayScheduler) *Store {
	return &Store{
		state: State{
			Mask:   NewMask(),
			Params: DefaultPupilParams(),
			View:   DefaultViewParams(),
		},
		scheduler: scheduler,
	}
}

// GetState returns the current state snapshot.
func (s *Store) GetState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to be invoked with the whole state at most
// once per display tick, whenever a setter has run since the last
// notification.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// markDirty schedules a single coalesced notification if one is not
// already pending. A listener that mutates state during its own
// invocation queues the next tick rather than being called again
// within this one, since the scheduled flag is cleared before
// listeners run.
func (s *Store) markDirty() {
	s.mu.Lock()
	alreadyScheduled := s.scheduled
	s.scheduled = true
	s.mu.Unlock()

	if alreadyScheduled {
		return
	}
	s.scheduler.Schedule(func() {
		s.mu.Lock()
		s.scheduled = false
		snapshot := s.state
		listeners := append([]func(State){}, s.listeners...)
		s.mu.Unlock()

		for _, l := range listeners {
			l(snapshot)
		}
	})
}

// NotifyNow synchronously invokes every subscriber with the current
// state, bypassing the scheduler. Used for the initial publication.
func (s *Store) NotifyNow() {
	s.mu.Lock()
	snapshot := s.state
	listeners := append([]func(State){}, s.listeners...)
	s.mu.Unlock()

	for _, l := range listeners {
		l(snapshot)
	}
}

// SetMask replaces the mask wholesale.
func (s *Store) SetMask(m Mask) {
	s.mu.Lock()
	s.state.Mask = m
	s.mu.Unlock()
	s.markDirty()
}

// SetParam sets one of "wavelength", "na", "sigma", or "defocus". The
// store accepts any finite value; clamping to the documented slider
// ranges is the UI collaborator's responsibility (spec.md section 7).
func (s *Store) SetParam(key string, value float64) error {
	s.mu.Lock()
	switch key {
	case "wavelength":
		s.state.Params.WavelengthNm = value
	case "na":
		s.state.Params.NA = value
	case "sigma":
		s.state.Params.Sigma = value
	case "defocus":
		s.state.Params.DefocusUm = value
	default:
		s.mu.Unlock()
		return fmt.Errorf("litho: unknown param %q", key)
	}
	s.mu.Unlock()
	s.markDirty()
	return nil
}

// SetZernikeCoeff sets one of "z4".."z11".
func (s *Store) SetZernikeCoeff(key string, value float64) error {
	s.mu.Lock()
	switch key {
	case "z4":
		s.state.Params.Zernike.Z4 = value
	case "z5":
		s.state.Params.Zernike.Z5 = value
	case "z6":
		s.state.Params.Zernike.Z6 = value
	case "z7":
		s.state.Params.Zernike.Z7 = value
	case "z8":
		s.state.Params.Zernike.Z8 = value
	case "z9":
		s.state.Params.Zernike.Z9 = value
	case "z10":
		s.state.Params.Zernike.Z10 = value
	case "z11":
		s.state.Params.Zernike.Z11 = value
	default:
		s.mu.Unlock()
		return fmt.Errorf("litho: unknown zernike coefficient %q", key)
	}
	s.mu.Unlock()
	s.markDirty()
	return nil
}

// SetViewParam sets "threshold" or "crossSectionRow".
func (s *Store) SetViewParam(key string, value float64) error {
	s.mu.Lock()
	switch key {
	case "threshold":
		s.state.View.Threshold = value
	case "crossSectionRow":
		s.state.View.CrossSectionRow = int(value)
	default:
		s.mu.Unlock()
		return fmt.Errorf("litho: unknown view param %q", key)
	}
	s.mu.Unlock()
	s.markDirty()
	return nil
}

// ResetParams restores the optical parameters to their defaults,
// leaving the mask and view params untouched.
func (s *Store) ResetParams() {
	s.mu.Lock()
	s.state.Params = DefaultPupilParams()
	s.mu.Unlock()
	s.markDirty()
}
