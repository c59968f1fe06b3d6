package commands

import (
	"context"

	"drones/internal/core/domain/model/drone"
	"drones/internal/core/domain/services"
)

// UpdateMedicationCommandHandler edits an item and re-runs the load validator
// for the drone carrying it. The edited item is left out of the drone's current
// load so that only its new weight is counted.
type UpdateMedicationCommandHandler struct {
	uowFactory LoadUoWFactory
	validator  services.LoadValidator
}

func NewUpdateMedicationCommandHandler(
	uowFactory LoadUoWFactory,
	validator services.LoadValidator,
) UpdateMedicationCommandHandler {
	return UpdateMedicationCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
	}
}

// Handle returns the drone state after the edit. For an item that is not on
// any drone the state is drone.Unknown.
func (h *UpdateMedicationCommandHandler) Handle(ctx context.Context, cmd UpdateMedicationCommand) (LoadResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoadResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LoadResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	droneRepo := uow.DroneRepository()
	medicationRepo := uow.MedicationRepository()

	item, err := medicationRepo.Get(ctx, cmd.MedicationID())
	if err != nil {
		return LoadResult{}, err
	}

	if err = item.UpdateDetails(cmd.Name(), cmd.Code(), cmd.Weight(), cmd.Image(), cmd.ImageContentType()); err != nil {
		return LoadResult{}, err
	}

	result := LoadResult{MedicationID: item.ID(), DroneState: drone.Unknown}

	if droneID := item.DroneID(); droneID != nil {
		aggregate, droneErr := droneRepo.GetForUpdate(ctx, *droneID)
		if droneErr != nil {
			return LoadResult{}, droneErr
		}

		existing, findErr := medicationRepo.FindByDrone(ctx, aggregate.ID())
		if findErr != nil {
			return LoadResult{}, findErr
		}

		state, validateErr := h.validator.Validate(aggregate, services.ExcludeItem(existing, item.ID()), item)
		if validateErr != nil {
			return LoadResult{}, validateErr
		}

		if err = aggregate.TransitionTo(state); err != nil {
			return LoadResult{}, err
		}

		if err = droneRepo.Update(ctx, aggregate); err != nil {
			return LoadResult{}, err
		}

		result.DroneState = aggregate.State()
	}

	if err = medicationRepo.Update(ctx, item); err != nil {
		return LoadResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return LoadResult{}, err
	}

	return result, nil
}
