package servers_test

import (
	"testing"

	"drones/internal/generated/servers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	doc, err := servers.GetSwagger()
	require.NoError(t, err)

	for _, path := range []string{
		"/api/v1/drones",
		"/api/v1/drones/available",
		"/api/v1/drones/{droneId}/load",
		"/api/v1/drones/{droneId}/medications",
		"/api/v1/medications/{medicationId}",
		"/api/v1/audits",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}

	available := doc.Paths.Find("/api/v1/drones/available").Get
	require.NotNil(t, available)
	assert.Contains(t, available.Description, "exact")

	again, err := servers.GetSwagger()
	require.NoError(t, err)
	assert.NotSame(t, doc, again)
}
