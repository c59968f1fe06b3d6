package cmd

import (
	"log/slog"

	httpadapter "drones/internal/adapters/in/http"
	"drones/internal/adapters/out/postgres"
	"drones/internal/core/application/usecases/commands"
	"drones/internal/core/application/usecases/queries"
	"drones/internal/core/domain/services"
	"drones/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateDroneCommandHandler() commands.CreateDroneCommandHandler {
	var f commands.DroneUoWFactory = FuncDroneUoWFactory(func() commands.DroneUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDroneCommandHandler(f)
}

func (c *CompositionRoot) CreateLoadMedicationCommandHandler() commands.LoadMedicationCommandHandler {
	var f commands.LoadUoWFactory = FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLoadMedicationCommandHandler(f, c.CreateLoadValidator())
}

func (c *CompositionRoot) CreateUpdateMedicationCommandHandler() commands.UpdateMedicationCommandHandler {
	var f commands.LoadUoWFactory = FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateMedicationCommandHandler(f, c.CreateLoadValidator())
}

func (c *CompositionRoot) CreateAuditBatteryCommandHandler() commands.AuditBatteryCommandHandler {
	var f commands.AuditUoWFactory = FuncAuditUoWFactory(func() commands.AuditUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAuditBatteryCommandHandler(f)
}

func (c *CompositionRoot) CreateLoadValidator() services.LoadValidator {
	return services.NewLoadValidator(c.config.LoadMinBattery)
}

func (c *CompositionRoot) CreateGetDroneLoadQueryHandler() queries.GetDroneLoadQueryHandler {
	return queries.NewGetDroneLoadQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableDronesQueryHandler() queries.GetAvailableDronesQueryHandler {
	return queries.NewGetAvailableDronesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAuditRecordsQueryHandler() queries.GetAuditRecordsQueryHandler {
	return queries.NewGetAuditRecordsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	createDrone := c.CreateCreateDroneCommandHandler()
	loadMedication := c.CreateLoadMedicationCommandHandler()
	updateMedication := c.CreateUpdateMedicationCommandHandler()

	return httpadapter.NewServer(
		&createDrone,
		&loadMedication,
		&updateMedication,
		c.CreateGetDroneLoadQueryHandler(),
		c.CreateGetAvailableDronesQueryHandler(),
		c.CreateGetAuditRecordsQueryHandler(),
		c.CreateLoadValidator().MinBattery(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	auditHandler := c.CreateAuditBatteryCommandHandler()
	auditJob := jobs.NewBatteryAuditJob(
		&auditHandler,
		c.config.AuditInterval,
		c.config.AuditBatteryThreshold,
		c.logger,
	)
	return jobs.NewJobManager(auditJob)
}

type FuncDroneUoWFactory func() commands.DroneUoW

func (f FuncDroneUoWFactory) Create() commands.DroneUoW {
	return f()
}

type FuncLoadUoWFactory func() commands.LoadUoW

func (f FuncLoadUoWFactory) Create() commands.LoadUoW {
	return f()
}

type FuncAuditUoWFactory func() commands.AuditUoW

func (f FuncAuditUoWFactory) Create() commands.AuditUoW {
	return f()
}
