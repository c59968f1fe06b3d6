package drone

import (
	"fmt"

	"drones/internal/pkg/errs"
)

// Model is the weight class of a drone. The class is informational: the
// carriage limit is always the explicit weightLimit of the drone.
type Model int

const (
	UnknownModel Model = iota
	Lightweight
	Middleweight
	Cruiserweight
	Heavyweight
)

func getModelStrings() map[Model]string {
	return map[Model]string{
		Lightweight:   "Lightweight",
		Middleweight:  "Middleweight",
		Cruiserweight: "Cruiserweight",
		Heavyweight:   "Heavyweight",
	}
}

func ParseModel(s string) (Model, error) {
	for m, str := range getModelStrings() {
		if str == s {
			return m, nil
		}
	}
	return UnknownModel, errs.NewValueIsInvalidErrorWithCause("model", fmt.Errorf("%q is not a valid model", s))
}

func (m Model) Validate() error {
	if _, ok := getModelStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("model", fmt.Errorf("%d is not a valid model", m))
	}
	return nil
}

func (m Model) String() string {
	if str, ok := getModelStrings()[m]; ok {
		return str
	}
	return "Unknown"
}
