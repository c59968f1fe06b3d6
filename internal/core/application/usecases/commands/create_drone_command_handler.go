package commands

import (
	"context"

	"drones/internal/core/domain/model/drone"
)

// CreateDroneCommandHandler registers new drones. A registered drone is IDLE
// and has no audit alert raised.
type CreateDroneCommandHandler struct {
	uowFactory DroneUoWFactory
}

func NewCreateDroneCommandHandler(uowFactory DroneUoWFactory) CreateDroneCommandHandler {
	return CreateDroneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists the drone and returns it with its store-assigned id.
func (h *CreateDroneCommandHandler) Handle(ctx context.Context, cmd CreateDroneCommand) (*drone.Drone, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := drone.NewDrone(cmd.SerialNumber(), cmd.Model(), cmd.WeightLimit(), cmd.Battery())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DroneRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
