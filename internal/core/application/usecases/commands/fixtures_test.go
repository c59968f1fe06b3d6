package commands_test

import (
	"fmt"
	"testing"

	"drones/internal/core/domain/model/drone"
	"drones/internal/core/domain/model/kernel"
	"drones/internal/core/domain/model/medication"

	"github.com/stretchr/testify/require"
)

func restoreDrone(t *testing.T, id int64, limit, battery int, state drone.State, notified bool) *drone.Drone {
	t.Helper()
	w, err := kernel.NewWeight(limit)
	require.NoError(t, err)
	b, err := kernel.NewBattery(battery)
	require.NoError(t, err)
	d, err := drone.RestoreDrone(id, fmt.Sprintf("SN-%03d", id), drone.Heavyweight, w, b, state, notified, 1)
	require.NoError(t, err)
	return d
}

func restoreItem(t *testing.T, id, droneID int64, grams int) *medication.Item {
	t.Helper()
	w, err := kernel.NewWeight(grams)
	require.NoError(t, err)
	item, err := medication.RestoreItem(id, "Aspirin", "ASP", w, nil, "", &droneID)
	require.NoError(t, err)
	return item
}
