package driver

import "fmt"

// State represents driver's state
type State string

const (
	// StateClosed means that the driver has not been opened. In this state,
	// all information related to the hardware are still unknown.
	StateClosed State = "closed"
	// StateOpened means that the driver is already opened and its capabilities
	// may be probed.
	StateOpened State = "opened"
)

// Update updates current state, s, to next. If f fails to execute,
// s will stay unchanged. Otherwise, s will be updated to next
func (s *State) Update(next State, f func() error) error {
	checks := map[State]func() error{
		StateOpened: s.toOpened,
		StateClosed: s.toClosed,
	}

	check, ok := checks[next]
	if !ok {
		return fmt.Errorf("invalid state: unknown state %q", next)
	}
	if err := check(); err != nil {
		return err
	}

	err := f()
	if err == nil {
		*s = next
	}
	return err
}

func (s *State) toOpened() error {
	if *s != StateClosed {
		return fmt.Errorf("invalid state: driver is already opened")
	}
	return nil
}

func (s *State) toClosed() error {
	return nil
}
