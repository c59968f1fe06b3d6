package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Latest battery audit records
	// (GET /api/v1/audits)
	GetAudits(ctx echo.Context, params GetAuditsParams) error
	// Register a drone
	// (POST /api/v1/drones)
	CreateDrone(ctx echo.Context) error
	// Drones that can take more load
	// (GET /api/v1/drones/available)
	GetAvailableDrones(ctx echo.Context) error
	// Medication items carried by a drone
	// (GET /api/v1/drones/{droneId}/load)
	GetDroneLoad(ctx echo.Context, droneId int64) error
	// Load a medication item onto a drone
	// (POST /api/v1/drones/{droneId}/medications)
	LoadMedication(ctx echo.Context, droneId int64) error
	// Update a medication item and re-validate the load of its drone
	// (PUT /api/v1/medications/{medicationId})
	UpdateMedication(ctx echo.Context, medicationId int64) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetAudits converts echo context to params.
func (w *ServerInterfaceWrapper) GetAudits(ctx echo.Context) error {
	var err error

	var params GetAuditsParams
	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	return w.Handler.GetAudits(ctx, params)
}

// CreateDrone converts echo context to params.
func (w *ServerInterfaceWrapper) CreateDrone(ctx echo.Context) error {
	return w.Handler.CreateDrone(ctx)
}

// GetAvailableDrones converts echo context to params.
func (w *ServerInterfaceWrapper) GetAvailableDrones(ctx echo.Context) error {
	return w.Handler.GetAvailableDrones(ctx)
}

// GetDroneLoad converts echo context to params.
func (w *ServerInterfaceWrapper) GetDroneLoad(ctx echo.Context) error {
	var droneId int64
	err := runtime.BindStyledParameterWithLocation("simple", false, "droneId", runtime.ParamLocationPath, ctx.Param("droneId"), &droneId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter droneId: %s", err))
	}

	return w.Handler.GetDroneLoad(ctx, droneId)
}

// LoadMedication converts echo context to params.
func (w *ServerInterfaceWrapper) LoadMedication(ctx echo.Context) error {
	var droneId int64
	err := runtime.BindStyledParameterWithLocation("simple", false, "droneId", runtime.ParamLocationPath, ctx.Param("droneId"), &droneId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter droneId: %s", err))
	}

	return w.Handler.LoadMedication(ctx, droneId)
}

// UpdateMedication converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateMedication(ctx echo.Context) error {
	var medicationId int64
	err := runtime.BindStyledParameterWithLocation("simple", false, "medicationId", runtime.ParamLocationPath, ctx.Param("medicationId"), &medicationId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter medicationId: %s", err))
	}

	return w.Handler.UpdateMedication(ctx, medicationId)
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the routes under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/audits", wrapper.GetAudits)
	router.POST(baseURL+"/api/v1/drones", wrapper.CreateDrone)
	router.GET(baseURL+"/api/v1/drones/available", wrapper.GetAvailableDrones)
	router.GET(baseURL+"/api/v1/drones/:droneId/load", wrapper.GetDroneLoad)
	router.POST(baseURL+"/api/v1/drones/:droneId/medications", wrapper.LoadMedication)
	router.PUT(baseURL+"/api/v1/medications/:medicationId", wrapper.UpdateMedication)
}
