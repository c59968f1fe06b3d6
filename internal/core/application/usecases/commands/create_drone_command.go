package commands

import (
	"errors"

	"drones/internal/core/domain/model/drone"
	"drones/internal/core/domain/model/kernel"
	"drones/internal/pkg/guard"
)

var ErrCreateDroneCommandIsNotConstructed = errors.New(
	"CreateDroneCommand must be created via NewCreateDroneCommand constructor",
)

// CreateDroneCommand registers a drone in the fleet.
//
// Example:
//
//	cmd, err := NewCreateDroneCommand("SN-001", "Heavyweight", 500, 100)
//	if err != nil {
//	    return fmt.Errorf("invalid drone data: %w", err)
//	}
//	d, err := handler.Handle(ctx, cmd)
type CreateDroneCommand struct { //nolint:recvcheck //using for validation
	serialNumber string
	model        drone.Model
	weightLimit  kernel.Weight
	battery      kernel.Battery

	guard guard.ConstructorGuard
}

func NewCreateDroneCommand(
	serialNumber string,
	model string,
	weightLimit int,
	batteryCapacity int,
) (CreateDroneCommand, error) {
	command := CreateDroneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSerialNumber(serialNumber),
		command.setModel(model),
		command.setWeightLimit(weightLimit),
		command.setBattery(batteryCapacity),
	); err != nil {
		return CreateDroneCommand{}, err
	}

	return command, nil
}

func (c CreateDroneCommand) Validate() error {
	return c.guard.Validate(ErrCreateDroneCommandIsNotConstructed)
}

func (c CreateDroneCommand) SerialNumber() string {
	return c.serialNumber
}

func (c CreateDroneCommand) Model() drone.Model {
	return c.model
}

func (c CreateDroneCommand) WeightLimit() kernel.Weight {
	return c.weightLimit
}

func (c CreateDroneCommand) Battery() kernel.Battery {
	return c.battery
}

func (c *CreateDroneCommand) setSerialNumber(serialNumber string) error {
	if serialNumber == "" {
		return drone.ErrSerialNumberIsRequired
	}
	c.serialNumber = serialNumber
	return nil
}

func (c *CreateDroneCommand) setModel(model string) error {
	m, err := drone.ParseModel(model)
	if err != nil {
		return err
	}
	c.model = m
	return nil
}

func (c *CreateDroneCommand) setWeightLimit(grams int) error {
	w, err := kernel.NewWeight(grams)
	if err != nil {
		return err
	}
	c.weightLimit = w
	return nil
}

func (c *CreateDroneCommand) setBattery(percent int) error {
	b, err := kernel.NewBattery(percent)
	if err != nil {
		return err
	}
	c.battery = b
	return nil
}
