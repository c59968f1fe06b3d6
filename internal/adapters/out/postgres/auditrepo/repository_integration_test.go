package auditrepo_test

import (
	"context"
	"testing"
	"time"

	"drones/internal/adapters/out/postgres/auditrepo"
	"drones/internal/adapters/out/postgres/pgtest"
	"drones/internal/core/domain/model/audit"
	"drones/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type AuditRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *auditrepo.GormAuditRepository
}

func (suite *AuditRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)

	suite.db = db
	suite.repo = auditrepo.NewGormAuditRepository(db)
}

func (suite *AuditRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
}

func (suite *AuditRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AuditRepositoryIntegrationTestSuite) TestAdd() {
	ctx := context.Background()
	runID := kernel.NewUUID()
	battery, _ := kernel.NewBattery(12)
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	record, err := audit.NewLowBatteryRecord(runID, 7, "SN-007", battery, 20, now)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repo.Add(ctx, record))
	suite.Positive(record.ID())

	var row auditrepo.AuditRecordDTO
	suite.Require().NoError(suite.db.First(&row, "id = ?", record.ID()).Error)
	suite.Equal(runID.Bytes(), row.RunID)
	suite.Equal(int64(7), row.DroneID)
	suite.Equal("Drone SN-007 battery is below 20% (current: 12%)", row.Message)
	suite.Equal(audit.SystemActor, row.CreatedBy)
	suite.True(now.Equal(row.CreatedAt))
}

func (suite *AuditRepositoryIntegrationTestSuite) TestAdd_RecordsOfOneRunShareRunID() {
	ctx := context.Background()
	runID := kernel.NewUUID()
	battery, _ := kernel.NewBattery(3)
	now := time.Now().UTC()

	for _, droneID := range []int64{1, 2, 3} {
		record, err := audit.NewLowBatteryRecord(runID, droneID, "SN", battery, 20, now)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repo.Add(ctx, record))
	}

	var count int64
	suite.Require().NoError(suite.db.Model(&auditrepo.AuditRecordDTO{}).
		Where("run_id = ?", runID.String()).
		Count(&count).Error)
	suite.Equal(int64(3), count)
}

func TestAuditRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(AuditRepositoryIntegrationTestSuite))
}
