package drone

import (
	"fmt"

	"drones/internal/pkg/errs"
)

// State is the operational state of a drone. States cycle
// IDLE -> LOADING -> LOADED -> DELIVERING -> DELIVERED -> RETURNING -> IDLE.
type State int

const (
	Unknown State = iota
	Idle
	Loading
	Loaded
	Delivering
	Delivered
	Returning
)

func getStateStrings() map[State]string {
	return map[State]string{
		Unknown:    "UNKNOWN",
		Idle:       "IDLE",
		Loading:    "LOADING",
		Loaded:     "LOADED",
		Delivering: "DELIVERING",
		Delivered:  "DELIVERED",
		Returning:  "RETURNING",
	}
}

func getNextStates() map[State]State {
	return map[State]State{
		Idle:       Loading,
		Loading:    Loaded,
		Loaded:     Delivering,
		Delivering: Delivered,
		Delivered:  Returning,
		Returning:  Idle,
	}
}

// ParseState converts the persisted / wire form ("IDLE", "LOADING", ...) back into a State.
func ParseState(s string) (State, error) {
	for state, str := range getStateStrings() {
		if state != Unknown && str == s {
			return state, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%q is not a valid state", s))
}

func (s State) Validate() error {
	if _, ok := getNextStates()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Next returns the successor of s in the delivery cycle, or Unknown for an invalid state.
func (s State) Next() State {
	return getNextStates()[s]
}

// IsLoadDriven reports whether the state is one the load validator sets.
func (s State) IsLoadDriven() bool {
	return s == Loading || s == Loaded
}

// CanTransitionTo reports whether a drone in state s may move to target.
// LOADING and LOADED are reachable from any state because loading is decided
// by payload and battery alone; every other target must be the cycle successor.
func (s State) CanTransitionTo(target State) bool {
	if s.Validate() != nil || target.Validate() != nil {
		return false
	}
	if target.IsLoadDriven() {
		return true
	}
	return s.Next() == target
}
