package kernel

import (
	"fmt"

	"drones/internal/pkg/errs"
	"drones/internal/pkg/guard"
)

// ErrWeightIsNotConstructed is returned when a zero-value Weight is used.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError(
	"weight must be created via NewWeight")

// Weight is a strictly positive mass in grams. It is used both for a drone's
// weight limit and for the weight of a single medication item.
type Weight struct { //nolint:recvcheck //using for validation
	grams int
	guard guard.ConstructorGuard
}

func NewWeight(grams int) (Weight, error) {
	w := Weight{guard: guard.NewConstructorGuard()}
	if err := w.setGrams(grams); err != nil {
		return Weight{}, err
	}
	return w, nil
}

func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}

func (w Weight) Grams() int {
	return w.grams
}

func (w Weight) String() string {
	return fmt.Sprintf("%dg", w.grams)
}

func (w *Weight) setGrams(grams int) error {
	if grams <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("must be positive, got %d", grams))
	}
	w.grams = grams
	return nil
}
