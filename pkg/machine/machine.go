// Package machine implements a tiny state machine used to guard state
// transitions in storage.
package machine

import "errors"

var ErrInvalidTransition = errors.New("invalid state transition")

type State interface {
	~string
}

// Transition names the states reachable from a single state.
type Transition[S State] struct {
	from S
	to   []S
}

// From starts declaring the transitions allowed out of a state.
func From[S State](from S) Transition[S] {
	return Transition[S]{from: from}
}

// To sets the states the transition may land in.
func (t Transition[S]) To(to ...S) Transition[S] {
	t.to = to
	return t
}

// StateMachine validates transitions out of a fixed current state.
type StateMachine[S State] struct {
	current S
	allowed map[S][]S
}

func New[S State](current S, transitions ...Transition[S]) *StateMachine[S] {
	allowed := make(map[S][]S, len(transitions))
	for _, t := range transitions {
		allowed[t.from] = append(allowed[t.from], t.to...)
	}
	return &StateMachine[S]{current: current, allowed: allowed}
}

// ToState reports whether the machine may move from its current state
// to the given one.
func (m *StateMachine[S]) ToState(s S) error {
	for _, to := range m.allowed[m.current] {
		if to == s {
			return nil
		}
	}
	return ErrInvalidTransition
}
