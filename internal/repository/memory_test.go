package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/atoa_simulation/internal/models"
	"github.com/shenikar/atoa_simulation/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_SimulationLifecycle(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	sim := &models.Simulation{ID: uuid.New(), Status: models.SimulationRunning, CreatedAt: time.Now()}

	require.NoError(t, repo.CreateSimulation(ctx, sim))
	assert.Error(t, repo.CreateSimulation(ctx, sim))

	sim.Tick = 9
	sim.Status = models.SimulationStopped
	require.NoError(t, repo.UpdateSimulation(ctx, sim))

	got, err := repo.GetSimulation(ctx, sim.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, got.Tick)
	assert.Equal(t, models.SimulationStopped, got.Status)

	// Хранится копия, а не переданный указатель
	sim.Tick = 100
	got, err = repo.GetSimulation(ctx, sim.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, got.Tick)
}

func TestMemoryRepository_NotFound(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.GetSimulation(ctx, uuid.New())
	assert.ErrorIs(t, err, service.ErrSimulationNotFound)

	err = repo.UpdateSimulation(ctx, &models.Simulation{ID: uuid.New()})
	assert.ErrorIs(t, err, service.ErrSimulationNotFound)

	snap, err := repo.GetSnapshot(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, snap)
}

func TestMemoryRepository_ListNewestFirst(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	base := time.Now()
	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		sim := &models.Simulation{ID: uuid.New(), CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		ids = append(ids, sim.ID)
		require.NoError(t, repo.CreateSimulation(ctx, sim))
	}

	page1, err := repo.ListSimulations(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	assert.Equal(t, ids[2], page1[0].ID)
	assert.Equal(t, ids[1], page1[1].ID)

	page2, err := repo.ListSimulations(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, ids[0], page2[0].ID)

	page3, err := repo.ListSimulations(ctx, 3, 2)
	require.NoError(t, err)
	assert.Empty(t, page3)
}

func TestMemoryRepository_EventsInOrder(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, repo.SaveEvents(ctx, id, []models.Event{{Tick: 1, VehicleID: "B-0"}, {Tick: 1, VehicleID: "B-1"}}))
	require.NoError(t, repo.SaveEvents(ctx, id, []models.Event{{Tick: 2, VehicleID: "B-2"}}))

	events, err := repo.ListEvents(ctx, id, 1, 10)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "B-0", events[0].VehicleID)
	assert.Equal(t, "B-2", events[2].VehicleID)

	events, err = repo.ListEvents(ctx, id, 2, 2)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 2, events[0].Tick)
}
