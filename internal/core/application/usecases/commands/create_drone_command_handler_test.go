package commands_test

import (
	"errors"
	"testing"

	"drones/internal/core/application/usecases/commands"
	"drones/internal/core/domain/model/drone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateDroneCommand(t *testing.T) commands.CreateDroneCommand {
	t.Helper()
	cmd, err := commands.NewCreateDroneCommand("SN-001", "Heavyweight", 500, 100)
	require.NoError(t, err)
	return cmd
}

func TestCreateDroneCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := newCreateDroneCommand(t)

	mockRepo := new(MockDroneRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockDroneUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DroneRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*drone.Drone")).
			Run(func(args mock.Arguments) {
				require.NoError(t, args.Get(1).(*drone.Drone).AssignID(42))
			}).
			Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateDroneCommandHandler(mockFactory)

	// Act
	created, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID())
	assert.Equal(t, "SN-001", created.SerialNumber())
	assert.Equal(t, drone.Idle, created.State())
	assert.False(t, created.AuditNotified())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCreateDroneCommandHandler_Handle_InvalidCommand(t *testing.T) {
	mockFactory := new(MockDroneUoWFactory)
	handler := commands.NewCreateDroneCommandHandler(mockFactory)

	_, err := handler.Handle(t.Context(), commands.CreateDroneCommand{})

	require.ErrorIs(t, err, commands.ErrCreateDroneCommandIsNotConstructed)
	mockFactory.AssertNotCalled(t, "Create")
}

func TestCreateDroneCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	expectedError := errors.New("begin transaction failed")
	mockUoW := new(MockUoW)
	mockFactory := new(MockDroneUoWFactory)

	mock.InOrder(
		mockFactory.On("Create").Return(mockUoW).Once(),
		mockUoW.On("Begin", ctx).Return(expectedError).Once(),
	)

	handler := commands.NewCreateDroneCommandHandler(mockFactory)

	_, err := handler.Handle(ctx, newCreateDroneCommand(t))

	assert.Equal(t, expectedError, err)
	mockUoW.AssertExpectations(t)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateDroneCommandHandler_Handle_RepositoryAddError(t *testing.T) {
	ctx := t.Context()
	expectedError := errors.New("duplicate serial number")
	mockRepo := new(MockDroneRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockDroneUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DroneRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*drone.Drone")).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateDroneCommandHandler(mockFactory)

	created, err := handler.Handle(ctx, newCreateDroneCommand(t))

	assert.Nil(t, created)
	assert.Equal(t, expectedError, err)
	mockUoW.AssertExpectations(t)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateDroneCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	expectedError := errors.New("commit failed")
	mockRepo := new(MockDroneRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockDroneUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DroneRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*drone.Drone")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateDroneCommandHandler(mockFactory)

	_, err := handler.Handle(ctx, newCreateDroneCommand(t))

	assert.Equal(t, expectedError, err)
	mockUoW.AssertExpectations(t)
}
