// Package servers holds the transport types, the ServerInterface and the Echo
// route registration for the OpenAPI document in api/openapi.json. It follows
// the oapi-codegen echo server layout.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for DroneState.
const (
	DELIVERED  DroneState = "DELIVERED"
	DELIVERING DroneState = "DELIVERING"
	IDLE       DroneState = "IDLE"
	LOADED     DroneState = "LOADED"
	LOADING    DroneState = "LOADING"
	RETURNING  DroneState = "RETURNING"
)

// Defines values for LoadRejectionCode.
const (
	BatteryTooLow LoadRejectionCode = "battery_too_low"
	OverCapacity  LoadRejectionCode = "over_capacity"
)

// AuditRecord defines model for AuditRecord.
type AuditRecord struct {
	CreatedAt time.Time          `json:"createdAt"`
	CreatedBy string             `json:"createdBy"`
	DroneId   int64              `json:"droneId"`
	Id        int64              `json:"id"`
	Message   string             `json:"message"`
	RunId     openapi_types.UUID `json:"runId"`
}

// AvailableDrone defines model for AvailableDrone.
type AvailableDrone struct {
	BatteryCapacity   int        `json:"batteryCapacity"`
	Id                int64      `json:"id"`
	Model             string     `json:"model"`
	RemainingCapacity int        `json:"remainingCapacity"`
	SerialNumber      string     `json:"serialNumber"`
	State             DroneState `json:"state"`
	WeightLimit       int        `json:"weightLimit"`
}

// Drone defines model for Drone.
type Drone struct {
	BatteryCapacity int        `json:"batteryCapacity"`
	Id              int64      `json:"id"`
	Model           string     `json:"model"`
	SerialNumber    string     `json:"serialNumber"`
	State           DroneState `json:"state"`
	WeightLimit     int        `json:"weightLimit"`
}

// DroneLoad defines model for DroneLoad.
type DroneLoad struct {
	BatteryCapacity   int          `json:"batteryCapacity"`
	Id                int64        `json:"id"`
	Items             []LoadedItem `json:"items"`
	RemainingCapacity int          `json:"remainingCapacity"`
	SerialNumber      string       `json:"serialNumber"`
	State             DroneState   `json:"state"`
	TotalWeight       int          `json:"totalWeight"`
	WeightLimit       int          `json:"weightLimit"`
}

// DroneState defines model for DroneState.
type DroneState string

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LoadRejection defines model for LoadRejection.
type LoadRejection struct {
	Actual    *int              `json:"actual,omitempty"`
	Attempted *int              `json:"attempted,omitempty"`
	Code      LoadRejectionCode `json:"code"`
	Limit     *int              `json:"limit,omitempty"`
	Message   string            `json:"message"`
	Required  *int              `json:"required,omitempty"`
}

// LoadRejectionCode defines model for LoadRejection.Code.
type LoadRejectionCode string

// LoadResult defines model for LoadResult.
type LoadResult struct {
	DroneState string `json:"droneState"`
	Id         int64  `json:"id"`
}

// LoadedItem defines model for LoadedItem.
type LoadedItem struct {
	Code             string  `json:"code"`
	HasImage         bool    `json:"hasImage"`
	Id               int64   `json:"id"`
	ImageContentType *string `json:"imageContentType,omitempty"`
	Name             string  `json:"name"`
	Weight           int     `json:"weight"`
}

// Medication defines model for Medication.
type Medication struct {
	Code             string  `json:"code"`
	Image            *[]byte `json:"image,omitempty"`
	ImageContentType *string `json:"imageContentType,omitempty"`
	Name             string  `json:"name"`
	Weight           int     `json:"weight"`
}

// NewDrone defines model for NewDrone.
type NewDrone struct {
	BatteryCapacity int    `json:"batteryCapacity"`
	Model           string `json:"model"`
	SerialNumber    string `json:"serialNumber"`
	WeightLimit     int    `json:"weightLimit"`
}

// GetAuditsParams defines parameters for GetAudits.
type GetAuditsParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// CreateDroneJSONRequestBody defines body for CreateDrone for application/json ContentType.
type CreateDroneJSONRequestBody = NewDrone

// LoadMedicationJSONRequestBody defines body for LoadMedication for application/json ContentType.
type LoadMedicationJSONRequestBody = Medication

// UpdateMedicationJSONRequestBody defines body for UpdateMedication for application/json ContentType.
type UpdateMedicationJSONRequestBody = Medication
