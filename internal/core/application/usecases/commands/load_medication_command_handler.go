package commands

import (
	"context"

	"drones/internal/core/domain/model/drone"
	"drones/internal/core/domain/services"
)

// LoadResult reports the item written and the state the drone ended up in.
type LoadResult struct {
	MedicationID int64
	DroneState   drone.State
}

// LoadMedicationCommandHandler runs the load validator against a locked drone.
//
// The drone row stays locked from the read of its current items until commit,
// so two concurrent loads on the same drone cannot both pass the capacity check.
// The drone state is written before the item; a rejected load writes nothing.
type LoadMedicationCommandHandler struct {
	uowFactory LoadUoWFactory
	validator  services.LoadValidator
}

func NewLoadMedicationCommandHandler(
	uowFactory LoadUoWFactory,
	validator services.LoadValidator,
) LoadMedicationCommandHandler {
	return LoadMedicationCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
	}
}

func (h *LoadMedicationCommandHandler) Handle(ctx context.Context, cmd LoadMedicationCommand) (LoadResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoadResult{}, err
	}

	item, err := cmd.NewItem()
	if err != nil {
		return LoadResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return LoadResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	droneRepo := uow.DroneRepository()
	medicationRepo := uow.MedicationRepository()

	aggregate, err := droneRepo.GetForUpdate(ctx, cmd.DroneID())
	if err != nil {
		return LoadResult{}, err
	}

	existing, err := medicationRepo.FindByDrone(ctx, aggregate.ID())
	if err != nil {
		return LoadResult{}, err
	}

	state, err := h.validator.Validate(aggregate, existing, item)
	if err != nil {
		return LoadResult{}, err
	}

	if err = aggregate.TransitionTo(state); err != nil {
		return LoadResult{}, err
	}

	if err = droneRepo.Update(ctx, aggregate); err != nil {
		return LoadResult{}, err
	}

	if err = item.AttachTo(aggregate.ID()); err != nil {
		return LoadResult{}, err
	}

	if err = medicationRepo.Add(ctx, item); err != nil {
		return LoadResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return LoadResult{}, err
	}

	return LoadResult{MedicationID: item.ID(), DroneState: aggregate.State()}, nil
}
