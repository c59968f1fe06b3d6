package commands

import (
	"errors"
	"fmt"

	"drones/internal/core/domain/model/kernel"
	"drones/internal/core/domain/model/medication"
	"drones/internal/pkg/errs"
	"drones/internal/pkg/guard"
)

var ErrLoadMedicationCommandIsNotConstructed = errors.New(
	"LoadMedicationCommand must be created via NewLoadMedicationCommand constructor",
)

// LoadMedicationCommand puts a new medication item on a drone.
type LoadMedicationCommand struct { //nolint:recvcheck //using for validation
	droneID          int64
	name             string
	code             string
	weight           kernel.Weight
	image            []byte
	imageContentType string

	guard guard.ConstructorGuard
}

func NewLoadMedicationCommand(
	droneID int64,
	name string,
	code string,
	weight int,
	image []byte,
	imageContentType string,
) (LoadMedicationCommand, error) {
	command := LoadMedicationCommand{
		name:             name,
		code:             code,
		image:            image,
		imageContentType: imageContentType,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDroneID(droneID),
		command.setWeight(weight),
	); err != nil {
		return LoadMedicationCommand{}, err
	}

	return command, nil
}

func (c LoadMedicationCommand) Validate() error {
	return c.guard.Validate(ErrLoadMedicationCommandIsNotConstructed)
}

func (c LoadMedicationCommand) DroneID() int64 {
	return c.droneID
}

// NewItem builds the detached item described by the command.
func (c LoadMedicationCommand) NewItem() (*medication.Item, error) {
	return medication.NewItem(c.name, c.code, c.weight, c.image, c.imageContentType)
}

func (c *LoadMedicationCommand) setDroneID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("droneID", fmt.Errorf("%d is not a positive id", id))
	}
	c.droneID = id
	return nil
}

func (c *LoadMedicationCommand) setWeight(grams int) error {
	w, err := kernel.NewWeight(grams)
	if err != nil {
		return err
	}
	c.weight = w
	return nil
}
