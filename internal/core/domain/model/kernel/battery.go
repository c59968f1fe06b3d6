package kernel

import (
	"fmt"

	"drones/internal/pkg/errs"
	"drones/internal/pkg/guard"
)

const (
	BatteryMin = 0
	BatteryMax = 100
)

// ErrBatteryIsNotConstructed is returned when a zero-value Battery is used.
var ErrBatteryIsNotConstructed = errs.NewValueIsRequiredError(
	"battery must be created via NewBattery")

// Battery is a charge level in whole percent, BatteryMin..BatteryMax inclusive.
//
// Example:
//
//	b, err := kernel.NewBattery(15)
//	if err != nil {
//	    return err
//	}
//	b.IsBelow(20) // true
type Battery struct { //nolint:recvcheck //using for validation
	percent int
	guard   guard.ConstructorGuard
}

func NewBattery(percent int) (Battery, error) {
	b := Battery{guard: guard.NewConstructorGuard()}
	if err := b.setPercent(percent); err != nil {
		return Battery{}, err
	}
	return b, nil
}

func (b Battery) Validate() error {
	return b.guard.Validate(ErrBatteryIsNotConstructed)
}

func (b Battery) Percent() int {
	return b.percent
}

// IsBelow reports whether the charge is strictly below threshold percent.
func (b Battery) IsBelow(threshold int) bool {
	return b.percent < threshold
}

func (b Battery) String() string {
	return fmt.Sprintf("%d%%", b.percent)
}

func (b *Battery) setPercent(percent int) error {
	if percent < BatteryMin || percent > BatteryMax {
		return errs.NewValueIsOutOfRangeError("batteryCapacity", percent, BatteryMin, BatteryMax)
	}
	b.percent = percent
	return nil
}
