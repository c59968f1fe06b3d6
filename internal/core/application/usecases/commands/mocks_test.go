package commands_test

import (
	"context"

	"drones/internal/core/application/usecases/commands"
	"drones/internal/core/domain/model/audit"
	"drones/internal/core/domain/model/drone"
	"drones/internal/core/domain/model/medication"
	"drones/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDroneRepository struct {
	mock.Mock
}

func (m *MockDroneRepository) Add(ctx context.Context, aggregate *drone.Drone) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDroneRepository) Update(ctx context.Context, aggregate *drone.Drone) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDroneRepository) Get(ctx context.Context, id int64) (*drone.Drone, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*drone.Drone)
	return d, args.Error(1)
}

func (m *MockDroneRepository) GetForUpdate(ctx context.Context, id int64) (*drone.Drone, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*drone.Drone)
	return d, args.Error(1)
}

func (m *MockDroneRepository) FindBelowBattery(ctx context.Context, threshold int, notified bool) ([]*drone.Drone, error) {
	args := m.Called(ctx, threshold, notified)
	drones, _ := args.Get(0).([]*drone.Drone)
	return drones, args.Error(1)
}

func (m *MockDroneRepository) FindNotifiedAtOrAboveBattery(ctx context.Context, threshold int) ([]*drone.Drone, error) {
	args := m.Called(ctx, threshold)
	drones, _ := args.Get(0).([]*drone.Drone)
	return drones, args.Error(1)
}

type MockMedicationRepository struct {
	mock.Mock
}

func (m *MockMedicationRepository) Add(ctx context.Context, item *medication.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMedicationRepository) Update(ctx context.Context, item *medication.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMedicationRepository) Get(ctx context.Context, id int64) (*medication.Item, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*medication.Item)
	return item, args.Error(1)
}

func (m *MockMedicationRepository) FindByDrone(ctx context.Context, droneID int64) ([]*medication.Item, error) {
	args := m.Called(ctx, droneID)
	items, _ := args.Get(0).([]*medication.Item)
	return items, args.Error(1)
}

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Add(ctx context.Context, record *audit.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// MockUoW satisfies every narrowed unit of work interface.
type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) DroneRepository() ports.DroneRepository {
	args := m.Called()
	return args.Get(0).(ports.DroneRepository)
}

func (m *MockUoW) MedicationRepository() ports.MedicationRepository {
	args := m.Called()
	return args.Get(0).(ports.MedicationRepository)
}

func (m *MockUoW) AuditRepository() ports.AuditRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditRepository)
}

type MockDroneUoWFactory struct {
	mock.Mock
}

func (m *MockDroneUoWFactory) Create() commands.DroneUoW {
	args := m.Called()
	return args.Get(0).(commands.DroneUoW)
}

type MockLoadUoWFactory struct {
	mock.Mock
}

func (m *MockLoadUoWFactory) Create() commands.LoadUoW {
	args := m.Called()
	return args.Get(0).(commands.LoadUoW)
}

type MockAuditUoWFactory struct {
	mock.Mock
}

func (m *MockAuditUoWFactory) Create() commands.AuditUoW {
	args := m.Called()
	return args.Get(0).(commands.AuditUoW)
}
