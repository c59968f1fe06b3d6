package drone_test

import (
	"testing"

	"drones/internal/core/domain/model/drone"
	"drones/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_Next(t *testing.T) {
	cycle := []drone.State{
		drone.Idle, drone.Loading, drone.Loaded, drone.Delivering, drone.Delivered, drone.Returning,
	}

	for i, s := range cycle {
		want := cycle[(i+1)%len(cycle)]
		assert.Equal(t, want, s.Next(), "next of %s", s)
	}
	assert.Equal(t, drone.Unknown, drone.Unknown.Next())
}

func TestState_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   drone.State
		to     drone.State
		expect bool
	}{
		{"idle to loading", drone.Idle, drone.Loading, true},
		{"idle to loaded", drone.Idle, drone.Loaded, true},
		{"loading to loading", drone.Loading, drone.Loading, true},
		{"loading to loaded", drone.Loading, drone.Loaded, true},
		{"delivered to loading", drone.Delivered, drone.Loading, true},
		{"loaded to delivering", drone.Loaded, drone.Delivering, true},
		{"delivering to delivered", drone.Delivering, drone.Delivered, true},
		{"delivered to returning", drone.Delivered, drone.Returning, true},
		{"returning to idle", drone.Returning, drone.Idle, true},
		{"idle to delivering", drone.Idle, drone.Delivering, false},
		{"loading to delivering", drone.Loading, drone.Delivering, false},
		{"loaded to idle", drone.Loaded, drone.Idle, false},
		{"returning to delivered", drone.Returning, drone.Delivered, false},
		{"unknown source", drone.Unknown, drone.Loading, false},
		{"unknown target", drone.Idle, drone.Unknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestParseState(t *testing.T) {
	for _, s := range []drone.State{
		drone.Idle, drone.Loading, drone.Loaded, drone.Delivering, drone.Delivered, drone.Returning,
	} {
		parsed, err := drone.ParseState(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := drone.ParseState("UNKNOWN")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = drone.ParseState("idle")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestState_Validate(t *testing.T) {
	require.NoError(t, drone.Idle.Validate())
	require.ErrorIs(t, drone.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, drone.State(42).Validate(), errs.ErrValueIsInvalid)
	assert.Equal(t, "UNKNOWN", drone.State(42).String())
}
