package commands_test

import (
	"testing"

	"drones/internal/core/application/usecases/commands"
	"drones/internal/core/domain/model/drone"
	"drones/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateDroneCommand_ValidInput(t *testing.T) {
	// Act
	cmd, err := commands.NewCreateDroneCommand("SN-001", "Cruiserweight", 400, 90)

	// Assert
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "SN-001", cmd.SerialNumber())
	assert.Equal(t, drone.Cruiserweight, cmd.Model())
	assert.Equal(t, 400, cmd.WeightLimit().Grams())
	assert.Equal(t, 90, cmd.Battery().Percent())
}

func TestNewCreateDroneCommand_InvalidInput(t *testing.T) {
	testCases := []struct {
		name    string
		serial  string
		model   string
		limit   int
		battery int
		wantErr error
	}{
		{name: "empty serial", serial: "", model: "Lightweight", limit: 100, battery: 50, wantErr: errs.ErrValueIsRequired},
		{name: "unknown model", serial: "SN", model: "Jumbo", limit: 100, battery: 50, wantErr: errs.ErrValueIsInvalid},
		{name: "zero limit", serial: "SN", model: "Lightweight", limit: 0, battery: 50, wantErr: errs.ErrValueIsInvalid},
		{name: "battery over 100", serial: "SN", model: "Lightweight", limit: 100, battery: 101, wantErr: errs.ErrValueIsOutOfRange},
		{name: "negative battery", serial: "SN", model: "Lightweight", limit: 100, battery: -1, wantErr: errs.ErrValueIsOutOfRange},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := commands.NewCreateDroneCommand(tc.serial, tc.model, tc.limit, tc.battery)

			require.ErrorIs(t, err, tc.wantErr)
			require.ErrorIs(t, cmd.Validate(), commands.ErrCreateDroneCommandIsNotConstructed)
		})
	}
}
