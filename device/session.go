// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device

import (
	"errors"
	"fmt"
)

// package errors
var (
	ErrInstanceCreation = errors.New("instance creation failed")
	ErrInvalidState     = errors.New("operation not valid in current session state")
)

// State is a Session lifecycle state
type State int

// Session states
const (
	Uninitialized State = iota
	WindowingReady
	InstanceReady
	TornDown
	Failed
)

var stateNames = [...]string{
	Uninitialized:  "uninitialized",
	WindowingReady: "windowing ready",
	InstanceReady:  "instance ready",
	TornDown:       "torn down",
	Failed:         "failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "invalid"
	}
	return stateNames[s]
}

// NewSession creates a Session that is yet to be started
func NewSession(w Windowing, rt Runtime) *Session {
	return &Session{
		windowing: w,
		runtime:   rt,
	}
}

// Session owns the windowing library session and the runtime instance.
// Every resource it acquires is released exactly once, whichever
// way the run ends.
type Session struct {
	windowing Windowing
	runtime   Runtime
	instance  Instance
	state     State
}

// State returns the current lifecycle state
func (s *Session) State() State {
	return s.state
}

// Instance returns the live instance, nil unless InstanceReady
func (s *Session) Instance() Instance {
	if s.state != InstanceReady {
		return nil
	}
	return s.instance
}

// Start initialises the windowing library. The session becomes
// WindowingReady even if initialisation reports an error, which
// is returned for the caller to log.
func (s *Session) Start() error {
	if s.state != Uninitialized {
		return fmt.Errorf("start: %w (%s)", ErrInvalidState, s.state)
	}
	err := s.windowing.Init()
	s.state = WindowingReady
	return err
}

// CreateInstance asks the runtime for an instance. On failure the
// windowing library is released and the session becomes Failed.
func (s *Session) CreateInstance(app ApplicationDescriptor, extensions []string) error {
	if s.state != WindowingReady {
		return fmt.Errorf("create instance: %w (%s)", ErrInvalidState, s.state)
	}

	instance, err := s.runtime.CreateInstance(app, extensions)
	if err != nil {
		s.windowing.Terminate()
		s.state = Failed
		return fmt.Errorf("%w: %v", ErrInstanceCreation, err)
	}

	s.instance = instance
	s.state = InstanceReady
	return nil
}

// Close destroys the instance, then terminates the windowing library.
// Closing a session that holds nothing is a no-op.
func (s *Session) Close() {
	switch s.state {
	case InstanceReady:
		s.instance.Destroy()
		s.instance = nil
		s.windowing.Terminate()
		s.state = TornDown
	case WindowingReady:
		s.windowing.Terminate()
		s.state = TornDown
	}
}
