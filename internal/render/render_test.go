package render

import (
	"strings"
	"testing"

	"github.com/shenikar/atoa_simulation/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoad() *models.RoadState {
	return &models.RoadState{
		ID: "B", Topology: models.TopologyLooping, Length: 20, AlertChannel: true,
		Vehicles: []*models.Vehicle{
			{ID: "B-0", Seq: 0, Position: 15, Status: models.StatusCrashed},
			{ID: "B-1", Seq: 1, Position: 8, Status: models.StatusBrakingAlert, Speed: 1},
			{ID: "B-2", Seq: 2, Position: 2, Status: models.StatusNormal, Speed: 2},
		},
		Hazard: &models.Hazard{OriginVehicleID: "B-0", Position: 15},
	}
}

func TestRoad_WholeRoad(t *testing.T) {
	out, err := Road(testRoad(), Options{})
	require.NoError(t, err)
	assert.Equal(t, "-->-----B------X----", out)
}

func TestRoad_ViewpointHidesFog(t *testing.T) {
	road := testRoad()
	road.Hazard = nil
	road.AlertChannel = false

	out, err := Road(road, Options{Viewpoint: "B-2", Visibility: 4})
	require.NoError(t, err)
	assert.Equal(t, "~~@----~~~~~~~~~~~~~", out)

	out, err = Road(road, Options{Viewpoint: "B-2", Visibility: 6})
	require.NoError(t, err)
	assert.Equal(t, "~~@-----B~~~~~~~~~~~", out)
}

func TestRoad_BroadcastHazardVisibleThroughFog(t *testing.T) {
	out, err := Road(testRoad(), Options{Viewpoint: "B-2", Visibility: 1})
	require.NoError(t, err)
	assert.Equal(t, "~~@-~~~~~~~~~~~!~~~~", out)
}

func TestRoad_Reproducible(t *testing.T) {
	a, err := Road(testRoad(), Options{Viewpoint: "B-1", Visibility: 5, Width: 10})
	require.NoError(t, err)
	b, err := Road(testRoad(), Options{Viewpoint: "B-1", Visibility: 5, Width: 10})
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 10)
}

func TestRoad_UnknownViewpoint(t *testing.T) {
	_, err := Road(testRoad(), Options{Viewpoint: "Z-9"})
	assert.Error(t, err)
}

func TestFrame(t *testing.T) {
	out, err := Frame(testRoad(), Options{})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "B |"))
	assert.Contains(t, lines[1], "crashed")
}
