package queries_test

import (
	"context"
	"testing"
	"time"

	"drones/internal/adapters/out/postgres/auditrepo"
	"drones/internal/adapters/out/postgres/dronerepo"
	"drones/internal/adapters/out/postgres/medicationrepo"
	"drones/internal/adapters/out/postgres/pgtest"
	"drones/internal/core/application/usecases/queries"
	"drones/internal/core/domain/model/audit"
	"drones/internal/core/domain/model/drone"
	"drones/internal/core/domain/model/kernel"
	"drones/internal/core/domain/model/medication"
	"drones/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type QueryHandlersTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	drones      *dronerepo.GormDroneRepository
	medications *medicationrepo.GormMedicationRepository
	audits      *auditrepo.GormAuditRepository
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)

	suite.db = db
	suite.drones = dronerepo.NewGormDroneRepository(db)
	suite.medications = medicationrepo.NewGormMedicationRepository(db)
	suite.audits = auditrepo.NewGormAuditRepository(db)
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersTestSuite) TestGetDroneLoad() {
	d := suite.addDrone("SN-LOAD", 500, 70, drone.Loading)
	suite.addItem(d.ID(), "Aspirin", "ASP", 120, []byte{1, 2, 3}, "image/jpeg")
	suite.addItem(d.ID(), "Codeine", "COD", 80, nil, "")
	suite.addItem(0, "Saline", "SAL", 300, nil, "")

	handler := queries.NewGetDroneLoadQueryHandler(suite.db)
	query, err := queries.NewGetDroneLoadQuery(d.ID())
	suite.Require().NoError(err)

	load, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(d.ID(), load.ID)
	suite.Equal("SN-LOAD", load.SerialNumber)
	suite.Equal("Lightweight", load.Model)
	suite.Equal("LOADING", load.State)
	suite.Equal(70, load.BatteryCapacity)
	suite.Equal(500, load.WeightLimit)
	suite.Equal(200, load.TotalWeight)
	suite.Equal(300, load.RemainingCapacity)
	suite.Require().Len(load.Items, 2)
	suite.Equal("Aspirin", load.Items[0].Name)
	suite.True(load.Items[0].HasImage)
	suite.Equal("image/jpeg", load.Items[0].ImageContentType)
	suite.False(load.Items[1].HasImage)
}

func (suite *QueryHandlersTestSuite) TestGetDroneLoad_EmptyDrone() {
	d := suite.addDrone("SN-EMPTY", 250, 100, drone.Idle)
	query, _ := queries.NewGetDroneLoadQuery(d.ID())

	load, err := queries.NewGetDroneLoadQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(load.Items)
	suite.Empty(load.Items)
	suite.Equal(250, load.RemainingCapacity)
}

func (suite *QueryHandlersTestSuite) TestGetDroneLoad_UnknownDrone() {
	query, _ := queries.NewGetDroneLoadQuery(404)

	_, err := queries.NewGetDroneLoadQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetAvailableDrones() {
	roomy := suite.addDrone("SN-ROOMY", 500, 90, drone.Idle)
	partly := suite.addDrone("SN-PARTLY", 500, 25, drone.Loading)
	suite.addItem(partly.ID(), "Aspirin", "ASP", 400, nil, "")
	full := suite.addDrone("SN-FULL", 100, 90, drone.Loading)
	suite.addItem(full.ID(), "Saline", "SAL", 100, nil, "")
	suite.addDrone("SN-WEAK", 500, 24, drone.Idle)
	nearlyFull := suite.addDrone("SN-NEARLY-FULL", 500, 20, drone.Loading)
	suite.addItem(nearlyFull.ID(), "Insulin", "INS", 450, nil, "")
	suite.addDrone("SN-LOADED", 500, 90, drone.Loaded)

	query, _ := queries.NewGetAvailableDronesQuery(25)
	result, err := queries.NewGetAvailableDronesQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(roomy.ID(), result[0].ID)
	suite.Equal(500, result[0].RemainingCapacity)
	suite.Equal(partly.ID(), result[1].ID)
	suite.Equal(100, result[1].RemainingCapacity)
	suite.Equal("LOADING", result[1].State)
}

func (suite *QueryHandlersTestSuite) TestGetAvailableDrones_Empty() {
	query, _ := queries.NewGetAvailableDronesQuery(25)

	result, err := queries.NewGetAvailableDronesQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *QueryHandlersTestSuite) TestGetAuditRecords_NewestFirstWithLimit() {
	runID := kernel.NewUUID()
	battery, _ := kernel.NewBattery(10)
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := range 3 {
		record, err := audit.NewLowBatteryRecord(runID, int64(i+1), "SN", battery, 20, base.Add(time.Duration(i)*time.Minute))
		suite.Require().NoError(err)
		suite.Require().NoError(suite.audits.Add(context.Background(), record))
	}

	query, _ := queries.NewGetAuditRecordsQuery(2)
	result, err := queries.NewGetAuditRecordsQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(int64(3), result[0].DroneID)
	suite.Equal(int64(2), result[1].DroneID)
	suite.True(result[0].RunID.IsEqual(runID))
	suite.Equal(audit.SystemActor, result[0].CreatedBy)
	suite.True(base.Add(2 * time.Minute).Equal(result[0].CreatedAt))
}

func (suite *QueryHandlersTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	query, _ := queries.NewGetAuditRecordsQuery(0)
	result, err := queries.NewGetAuditRecordsQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *QueryHandlersTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := queries.NewGetAvailableDronesQueryHandler(suite.db).Handle(context.Background(), queries.GetAvailableDronesQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetAvailableDronesQueryIsNotConstructed)
}

func (suite *QueryHandlersTestSuite) addDrone(serial string, limit, battery int, state drone.State) *drone.Drone {
	weightLimit, _ := kernel.NewWeight(limit)
	capacity, _ := kernel.NewBattery(battery)
	d, err := drone.NewDrone(serial, drone.Lightweight, weightLimit, capacity)
	suite.Require().NoError(err)
	if state != drone.Idle {
		suite.Require().NoError(d.TransitionTo(state))
	}
	suite.Require().NoError(suite.drones.Add(context.Background(), d))
	return d
}

func (suite *QueryHandlersTestSuite) addItem(droneID int64, name, code string, grams int, image []byte, contentType string) {
	weight, _ := kernel.NewWeight(grams)
	item, err := medication.NewItem(name, code, weight, image, contentType)
	suite.Require().NoError(err)
	if droneID != 0 {
		suite.Require().NoError(item.AttachTo(droneID))
	}
	suite.Require().NoError(suite.medications.Add(context.Background(), item))
}

func TestQueryHandlersTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(QueryHandlersTestSuite))
}
