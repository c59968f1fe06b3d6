package commands

import (
	"errors"
	"fmt"

	"drones/internal/core/domain/model/kernel"
	"drones/internal/pkg/errs"
	"drones/internal/pkg/guard"
)

var ErrUpdateMedicationCommandIsNotConstructed = errors.New(
	"UpdateMedicationCommand must be created via NewUpdateMedicationCommand constructor",
)

// UpdateMedicationCommand replaces the details of an item already in the fleet.
// The item stays on the drone it is loaded on.
type UpdateMedicationCommand struct { //nolint:recvcheck //using for validation
	medicationID     int64
	name             string
	code             string
	weight           kernel.Weight
	image            []byte
	imageContentType string

	guard guard.ConstructorGuard
}

func NewUpdateMedicationCommand(
	medicationID int64,
	name string,
	code string,
	weight int,
	image []byte,
	imageContentType string,
) (UpdateMedicationCommand, error) {
	command := UpdateMedicationCommand{
		name:             name,
		code:             code,
		image:            image,
		imageContentType: imageContentType,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setMedicationID(medicationID),
		command.setWeight(weight),
	); err != nil {
		return UpdateMedicationCommand{}, err
	}

	return command, nil
}

func (c UpdateMedicationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMedicationCommandIsNotConstructed)
}

func (c UpdateMedicationCommand) MedicationID() int64 {
	return c.medicationID
}

func (c UpdateMedicationCommand) Name() string {
	return c.name
}

func (c UpdateMedicationCommand) Code() string {
	return c.code
}

func (c UpdateMedicationCommand) Weight() kernel.Weight {
	return c.weight
}

func (c UpdateMedicationCommand) Image() []byte {
	return c.image
}

func (c UpdateMedicationCommand) ImageContentType() string {
	return c.imageContentType
}

func (c *UpdateMedicationCommand) setMedicationID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("medicationID", fmt.Errorf("%d is not a positive id", id))
	}
	c.medicationID = id
	return nil
}

func (c *UpdateMedicationCommand) setWeight(grams int) error {
	w, err := kernel.NewWeight(grams)
	if err != nil {
		return err
	}
	c.weight = w
	return nil
}
