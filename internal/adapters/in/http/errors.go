package http

import (
	"errors"
	"net/http"

	"drones/internal/core/domain/model/drone"
	"drones/internal/core/domain/model/medication"
	"drones/internal/core/domain/services"
	"drones/internal/generated/servers"
	"drones/internal/metrics"
	"drones/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps a use case error to a response. Load rejections carry their
// numbers; anything unclassified becomes a 500 with fallback as message.
func writeError(ctx echo.Context, err error, fallback string) error {
	var overCapacity *services.OverCapacityError
	if errors.As(err, &overCapacity) {
		return ctx.JSON(http.StatusUnprocessableEntity, servers.LoadRejection{
			Code:      servers.OverCapacity,
			Message:   overCapacity.Error(),
			Limit:     &overCapacity.Limit,
			Attempted: &overCapacity.Attempted,
		})
	}

	var batteryTooLow *services.BatteryTooLowError
	if errors.As(err, &batteryTooLow) {
		return ctx.JSON(http.StatusUnprocessableEntity, servers.LoadRejection{
			Code:     servers.BatteryTooLow,
			Message:  batteryTooLow.Error(),
			Required: &batteryTooLow.Required,
			Actual:   &batteryTooLow.Actual,
		})
	}

	status := statusOf(err)
	message := fallback
	if status != http.StatusInternalServerError {
		message = err.Error()
	} else {
		ctx.Logger().Errorf("%s: %v", fallback, err)
	}

	return ctx.JSON(status, servers.Error{Code: status, Message: message})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, drone.ErrSerialNumberIsTaken),
		errors.Is(err, drone.ErrTransitionIsNotAllowed),
		errors.Is(err, medication.ErrItemIsOnAnotherDrone):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func loadResultLabel(err error) string {
	switch {
	case err == nil:
		return metrics.LoadAccepted
	case errors.Is(err, services.ErrOverCapacity):
		return metrics.LoadOverCapacity
	case errors.Is(err, services.ErrBatteryTooLow):
		return metrics.LoadBatteryTooLow
	case statusOf(err) == http.StatusInternalServerError:
		return metrics.LoadFailed
	default:
		return metrics.LoadRejected
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
