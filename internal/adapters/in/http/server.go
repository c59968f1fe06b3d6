package http

import (
	"context"
	"net/http"

	"drones/internal/core/application/usecases/commands"
	"drones/internal/core/application/usecases/queries"
	"drones/internal/core/domain/model/drone"
	"drones/internal/generated/servers"
	"drones/internal/metrics"

	"github.com/labstack/echo/v4"
)

// Use case ports of the HTTP adapter. Command handlers are passed by pointer.
type (
	DroneCreator interface {
		Handle(ctx context.Context, cmd commands.CreateDroneCommand) (*drone.Drone, error)
	}

	MedicationLoader interface {
		Handle(ctx context.Context, cmd commands.LoadMedicationCommand) (commands.LoadResult, error)
	}

	MedicationUpdater interface {
		Handle(ctx context.Context, cmd commands.UpdateMedicationCommand) (commands.LoadResult, error)
	}

	DroneLoadReader interface {
		Handle(ctx context.Context, query queries.GetDroneLoadQuery) (queries.GetDroneLoadQueryResponse, error)
	}

	AvailableDronesReader interface {
		Handle(ctx context.Context, query queries.GetAvailableDronesQuery) ([]queries.GetAvailableDronesQueryResponse, error)
	}

	AuditRecordsReader interface {
		Handle(ctx context.Context, query queries.GetAuditRecordsQuery) ([]queries.GetAuditRecordsQueryResponse, error)
	}
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface on top of the fleet use cases.
type Server struct {
	// Command handlers
	createDroneHandler      DroneCreator
	loadMedicationHandler   MedicationLoader
	updateMedicationHandler MedicationUpdater

	// Query handlers
	getDroneLoadHandler       DroneLoadReader
	getAvailableDronesHandler AvailableDronesReader
	getAuditRecordsHandler    AuditRecordsReader

	minLoadingBattery int
}

func NewServer(
	createDroneHandler DroneCreator,
	loadMedicationHandler MedicationLoader,
	updateMedicationHandler MedicationUpdater,
	getDroneLoadHandler DroneLoadReader,
	getAvailableDronesHandler AvailableDronesReader,
	getAuditRecordsHandler AuditRecordsReader,
	minLoadingBattery int,
) *Server {
	return &Server{
		createDroneHandler:        createDroneHandler,
		loadMedicationHandler:     loadMedicationHandler,
		updateMedicationHandler:   updateMedicationHandler,
		getDroneLoadHandler:       getDroneLoadHandler,
		getAvailableDronesHandler: getAvailableDronesHandler,
		getAuditRecordsHandler:    getAuditRecordsHandler,
		minLoadingBattery:         minLoadingBattery,
	}
}

// CreateDrone handles POST /api/v1/drones.
func (s *Server) CreateDrone(ctx echo.Context) error {
	var body servers.NewDrone
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateDroneCommand(body.SerialNumber, body.Model, body.WeightLimit, body.BatteryCapacity)
	if err != nil {
		return badRequest(ctx, "Invalid drone data: "+err.Error())
	}

	d, err := s.createDroneHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, "Failed to register drone")
	}

	return ctx.JSON(http.StatusCreated, servers.Drone{
		Id:              d.ID(),
		SerialNumber:    d.SerialNumber(),
		Model:           d.Model().String(),
		WeightLimit:     d.WeightLimit().Grams(),
		BatteryCapacity: d.Battery().Percent(),
		State:           servers.DroneState(d.State().String()),
	})
}

// GetAvailableDrones handles GET /api/v1/drones/available.
func (s *Server) GetAvailableDrones(ctx echo.Context) error {
	query, err := queries.NewGetAvailableDronesQuery(s.minLoadingBattery)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve available drones")
	}

	drones, err := s.getAvailableDronesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve available drones")
	}

	response := make([]servers.AvailableDrone, len(drones))
	for i, d := range drones {
		response[i] = servers.AvailableDrone{
			Id:                d.ID,
			SerialNumber:      d.SerialNumber,
			Model:             d.Model,
			State:             servers.DroneState(d.State),
			BatteryCapacity:   d.BatteryCapacity,
			WeightLimit:       d.WeightLimit,
			RemainingCapacity: d.RemainingCapacity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDroneLoad handles GET /api/v1/drones/{droneId}/load.
func (s *Server) GetDroneLoad(ctx echo.Context, droneID int64) error {
	query, err := queries.NewGetDroneLoadQuery(droneID)
	if err != nil {
		return badRequest(ctx, "Invalid drone id")
	}

	load, err := s.getDroneLoadHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve drone load")
	}

	items := make([]servers.LoadedItem, len(load.Items))
	for i, item := range load.Items {
		items[i] = servers.LoadedItem{
			Id:       item.ID,
			Name:     item.Name,
			Code:     item.Code,
			Weight:   item.Weight,
			HasImage: item.HasImage,
		}
		if item.ImageContentType != "" {
			items[i].ImageContentType = &item.ImageContentType
		}
	}

	return ctx.JSON(http.StatusOK, servers.DroneLoad{
		Id:                load.ID,
		SerialNumber:      load.SerialNumber,
		State:             servers.DroneState(load.State),
		BatteryCapacity:   load.BatteryCapacity,
		WeightLimit:       load.WeightLimit,
		TotalWeight:       load.TotalWeight,
		RemainingCapacity: load.RemainingCapacity,
		Items:             items,
	})
}

// LoadMedication handles POST /api/v1/drones/{droneId}/medications.
func (s *Server) LoadMedication(ctx echo.Context, droneID int64) error {
	var body servers.Medication
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	image, contentType := imageOf(body)
	cmd, err := commands.NewLoadMedicationCommand(droneID, body.Name, body.Code, body.Weight, image, contentType)
	if err != nil {
		return badRequest(ctx, "Invalid medication data: "+err.Error())
	}

	result, err := s.loadMedicationHandler.Handle(ctx.Request().Context(), cmd)
	metrics.LoadAttempts.WithLabelValues(loadResultLabel(err)).Inc()
	if err != nil {
		return writeError(ctx, err, "Failed to load medication")
	}

	return ctx.JSON(http.StatusCreated, servers.LoadResult{
		Id:         result.MedicationID,
		DroneState: result.DroneState.String(),
	})
}

// UpdateMedication handles PUT /api/v1/medications/{medicationId}.
func (s *Server) UpdateMedication(ctx echo.Context, medicationID int64) error {
	var body servers.Medication
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	image, contentType := imageOf(body)
	cmd, err := commands.NewUpdateMedicationCommand(medicationID, body.Name, body.Code, body.Weight, image, contentType)
	if err != nil {
		return badRequest(ctx, "Invalid medication data: "+err.Error())
	}

	result, err := s.updateMedicationHandler.Handle(ctx.Request().Context(), cmd)
	metrics.LoadAttempts.WithLabelValues(loadResultLabel(err)).Inc()
	if err != nil {
		return writeError(ctx, err, "Failed to update medication")
	}

	return ctx.JSON(http.StatusOK, servers.LoadResult{
		Id:         result.MedicationID,
		DroneState: result.DroneState.String(),
	})
}

// GetAudits handles GET /api/v1/audits.
func (s *Server) GetAudits(ctx echo.Context, params servers.GetAuditsParams) error {
	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewGetAuditRecordsQuery(limit)
	if err != nil {
		return badRequest(ctx, "Invalid limit: "+err.Error())
	}

	records, err := s.getAuditRecordsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve audit records")
	}

	response := make([]servers.AuditRecord, len(records))
	for i, record := range records {
		response[i] = servers.AuditRecord{
			Id:        record.ID,
			RunId:     record.RunID.Bytes(),
			DroneId:   record.DroneID,
			Message:   record.Message,
			CreatedBy: record.CreatedBy,
			CreatedAt: record.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func imageOf(body servers.Medication) ([]byte, string) {
	var image []byte
	if body.Image != nil {
		image = *body.Image
	}
	var contentType string
	if body.ImageContentType != nil {
		contentType = *body.ImageContentType
	}
	return image, contentType
}
