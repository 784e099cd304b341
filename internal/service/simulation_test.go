package service_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/atoa_simulation/internal/config"
	"github.com/shenikar/atoa_simulation/internal/models"
	"github.com/shenikar/atoa_simulation/internal/service"
	"github.com/shenikar/atoa_simulation/internal/service/mocks"
	"github.com/shenikar/atoa_simulation/internal/webhook"
	webhook_mocks "github.com/shenikar/atoa_simulation/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	repo      *mocks.MockSimulationRepository
	cache     *mocks.MockSnapshotCache
	publisher *webhook_mocks.MockAnnouncementPublisher
}

// newTestSimulationService — сервис с моками репозитория, кеша и издателя
func newTestSimulationService(t *testing.T) (service.SimulationService, testDeps) {
	ctrl := gomock.NewController(t)
	deps := testDeps{
		repo:      mocks.NewMockSimulationRepository(ctrl),
		cache:     mocks.NewMockSnapshotCache(ctrl),
		publisher: webhook_mocks.NewMockAnnouncementPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{MaxTicksPerStep: 100}
	return service.NewSimulationService(deps.repo, deps.cache, deps.publisher, logger, cfg), deps
}

// demoParams: петля 100, три машины через 20, без случайных аварий
func demoParams() models.SimulationParams {
	return models.SimulationParams{
		RoadLength:      100,
		Topology:        models.TopologyLooping,
		VehicleCount:    3,
		VehicleSpacing:  20,
		BaseVisibility:  50,
		BrakingDistance: 15,
		FollowBuffer:    5,
		StopMargin:      5,
		SpawnMargin:     10,
		NormalSpeed:     2,
		BrakingSpeed:    1,
		HazardDuration:  20,
		Seed:            42,
	}
}

// createRun создает прогон, ожидая запись в БД и кеш
func createRun(t *testing.T, svc service.SimulationService, deps testDeps, req service.CreateRequest) *models.Simulation {
	t.Helper()
	deps.repo.EXPECT().CreateSimulation(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	deps.cache.EXPECT().SetSnapshot(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	sim, err := svc.CreateSimulation(context.Background(), req)
	require.NoError(t, err)
	return sim
}

// expectPersist ожидает одну запись результата шага
func expectPersist(deps testDeps, withEvents bool) {
	if withEvents {
		deps.repo.EXPECT().SaveEvents(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
	}
	deps.repo.EXPECT().UpdateSimulation(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	deps.cache.EXPECT().SetSnapshot(gomock.Any(), gomock.Any()).Return(nil).Times(1)
}

// expectFinalPersist ожидает запись итога: снимок завершенного прогона удаляется из кеша
func expectFinalPersist(deps testDeps, withEvents bool) {
	if withEvents {
		deps.repo.EXPECT().SaveEvents(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
	}
	deps.repo.EXPECT().UpdateSimulation(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	deps.cache.EXPECT().SetSnapshot(gomock.Any(), gomock.Any()).Times(0)
	deps.cache.EXPECT().DeleteSnapshot(gomock.Any(), gomock.Any()).Return(nil).Times(1)
}

func TestCreateSimulation_Success(t *testing.T) {
	svc, deps := newTestSimulationService(t)

	sim := createRun(t, svc, deps, service.CreateRequest{Params: demoParams(), FogLevel: 70})

	assert.NotEqual(t, uuid.Nil, sim.ID)
	assert.Equal(t, models.SimulationRunning, sim.Status)
	assert.Equal(t, 0, sim.Tick)
	assert.Equal(t, 70.0, sim.FogLevel)
	require.Len(t, sim.Roads, 2)

	control := sim.Road(service.ControlRoadID)
	atoa := sim.Road(service.AlertRoadID)
	require.NotNil(t, control)
	require.NotNil(t, atoa)
	assert.False(t, control.AlertChannel)
	assert.True(t, atoa.AlertChannel)
	assert.Len(t, control.Vehicles, 3)
	assert.Len(t, atoa.Vehicles, 3)
	assert.Contains(t, sim.Stats, service.ControlRoadID)
	assert.Contains(t, sim.Stats, service.AlertRoadID)
}

func TestCreateSimulation_PicksSeed(t *testing.T) {
	svc, deps := newTestSimulationService(t)
	params := demoParams()
	params.Seed = 0

	sim := createRun(t, svc, deps, service.CreateRequest{Params: params})

	assert.NotZero(t, sim.Params.Seed)
}

func TestCreateSimulation_InvalidFog(t *testing.T) {
	svc, deps := newTestSimulationService(t)
	deps.repo.EXPECT().CreateSimulation(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.CreateSimulation(context.Background(), service.CreateRequest{Params: demoParams(), FogLevel: 95})

	assert.ErrorIs(t, err, service.ErrInvalidRequest)
}

func TestCreateSimulation_InvalidParams(t *testing.T) {
	svc, deps := newTestSimulationService(t)
	deps.repo.EXPECT().CreateSimulation(gomock.Any(), gomock.Any()).Times(0)
	params := demoParams()
	params.VehicleCount = 0

	_, err := svc.CreateSimulation(context.Background(), service.CreateRequest{Params: params})

	assert.ErrorIs(t, err, service.ErrInvalidRequest)
}

func TestCreateSimulation_RepositoryError(t *testing.T) {
	svc, deps := newTestSimulationService(t)
	dbError := errors.New("connection refused")
	deps.repo.EXPECT().CreateSimulation(gomock.Any(), gomock.Any()).Return(dbError).Times(1)

	_, err := svc.CreateSimulation(context.Background(), service.CreateRequest{Params: demoParams()})

	require.Error(t, err)
	assert.ErrorIs(t, err, dbError)
}

func TestCreateSimulation_CacheErrorIsNotFatal(t *testing.T) {
	svc, deps := newTestSimulationService(t)
	deps.repo.EXPECT().CreateSimulation(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	deps.cache.EXPECT().SetSnapshot(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

	sim, err := svc.CreateSimulation(context.Background(), service.CreateRequest{Params: demoParams()})

	require.NoError(t, err)
	assert.NotNil(t, sim)
}

func TestStep_ScriptedCrashAlertsOnlyAtoaRoad(t *testing.T) {
	svc, deps := newTestSimulationService(t)
	sim := createRun(t, svc, deps, service.CreateRequest{
		Params: demoParams(),
		Script: []service.ScriptEntry{{Tick: 1, VehicleSeq: 0}},
	})

	expectPersist(deps, true)
	var announced []webhook.Announcement
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a webhook.Announcement) error {
			announced = append(announced, a)
			return nil
		}).AnyTimes()

	res, err := svc.Step(context.Background(), sim.ID, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Simulation.Tick)
	assert.Equal(t, 1, res.Simulation.Stats[service.ControlRoadID].Hazards)
	assert.Equal(t, 1, res.Simulation.Stats[service.AlertRoadID].Hazards)
	assert.Zero(t, res.Simulation.Stats[service.ControlRoadID].AlertsReceived)
	assert.Positive(t, res.Simulation.Stats[service.AlertRoadID].AlertsReceived)

	var alerts int
	for _, a := range announced {
		assert.Equal(t, sim.ID, a.SimulationID)
		assert.Equal(t, 1, a.Tick)
		if a.Kind == models.EventAlertReceived {
			alerts++
			assert.Equal(t, service.AlertRoadID, a.RoadID)
		}
	}
	assert.Equal(t, res.Simulation.Stats[service.AlertRoadID].AlertsReceived, alerts)

	for _, ev := range res.Events {
		assert.Equal(t, 1, ev.Tick)
	}
}

func TestStep_SameSeedSameAccidentTick(t *testing.T) {
	svc, deps := newTestSimulationService(t)
	params := demoParams()
	params.AccidentProbability = 0.2
	sim := createRun(t, svc, deps, service.CreateRequest{Params: params})

	deps.repo.EXPECT().SaveEvents(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	deps.repo.EXPECT().UpdateSimulation(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	deps.cache.EXPECT().SetSnapshot(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := svc.Step(context.Background(), sim.ID, 100)
	require.NoError(t, err)

	firstHazard := map[string]int{}
	for _, ev := range res.Events {
		if ev.Kind != models.EventHazardCreated {
			continue
		}
		if _, seen := firstHazard[ev.RoadID]; !seen {
			firstHazard[ev.RoadID] = ev.Tick
		}
	}
	require.Contains(t, firstHazard, service.ControlRoadID)
	require.Contains(t, firstHazard, service.AlertRoadID)
	assert.Equal(t, firstHazard[service.ControlRoadID], firstHazard[service.AlertRoadID])
}

func TestStep_BoundedRoadFinishes(t *testing.T) {
	svc, deps := newTestSimulationService(t)
	params := demoParams()
	params.Topology = models.TopologyBounded
	params.RoadLength = 30
	params.VehicleCount = 1
	params.VehicleSpacing = 0
	sim := createRun(t, svc, deps, service.CreateRequest{Params: params})

	expectFinalPersist(deps, true)
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := svc.Step(context.Background(), sim.ID, 50)
	require.NoError(t, err)
	assert.Equal(t, models.SimulationFinished, res.Simulation.Status)
	assert.Equal(t, 15, res.Simulation.Tick)

	// Завершенный прогон больше не живой
	deps.repo.EXPECT().GetSimulation(gomock.Any(), sim.ID).Return(res.Simulation, nil).Times(1)
	_, err = svc.Step(context.Background(), sim.ID, 1)
	assert.ErrorIs(t, err, service.ErrSimulationNotRunning)
}

func TestStep_BoundedRunOutlivesAccident(t *testing.T) {
	svc, deps := newTestSimulationService(t)
	params := demoParams()
	params.Topology = models.TopologyBounded
	// Одинаковое зерно: головные машины обеих дорог разбиваются на одном тике
	sim := createRun(t, svc, deps, service.CreateRequest{
		Params: params,
		Script: []service.ScriptEntry{{Tick: 5, VehicleSeq: 0}},
	})

	deps.repo.EXPECT().SaveEvents(gomock.Any(), sim.ID, gomock.Any()).Return(nil).AnyTimes()
	deps.repo.EXPECT().UpdateSimulation(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	deps.cache.EXPECT().SetSnapshot(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	deps.cache.EXPECT().DeleteSnapshot(gomock.Any(), sim.ID).Return(nil).Times(1)
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := svc.Step(context.Background(), sim.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, models.SimulationRunning, res.Simulation.Status)
	assert.Equal(t, 5, res.Simulation.Tick)
	for _, road := range res.Simulation.Roads {
		require.NotNil(t, road.Hazard, "road %s", road.ID)
		assert.Equal(t, models.StatusCrashed, road.Vehicle(road.ID+"-0").Status)
	}

	res, err = svc.Step(context.Background(), sim.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, models.SimulationRunning, res.Simulation.Status)
	assert.Equal(t, 6, res.Simulation.Tick)

	res, err = svc.Step(context.Background(), sim.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, models.SimulationFinished, res.Simulation.Status)
	assert.Greater(t, res.Simulation.Tick, 5+params.HazardDuration)
	for _, road := range res.Simulation.Roads {
		assert.Nil(t, road.Hazard)
		assert.Equal(t, len(road.Vehicles), road.CountStatus(models.StatusFinished), "road %s", road.ID)
	}
}

func TestStep_StochasticAccidentDoesNotEndBoundedRun(t *testing.T) {
	svc, deps := newTestSimulationService(t)
	params := demoParams()
	params.Topology = models.TopologyBounded
	params.RoadLength = 1000
	params.AccidentProbability = 0.05
	params.Seed = 1
	sim := createRun(t, svc, deps, service.CreateRequest{Params: params})

	deps.repo.EXPECT().SaveEvents(gomock.Any(), sim.ID, gomock.Any()).Return(nil).AnyTimes()
	deps.repo.EXPECT().UpdateSimulation(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	deps.cache.EXPECT().SetSnapshot(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	deps.cache.EXPECT().DeleteSnapshot(gomock.Any(), sim.ID).Return(nil).AnyTimes()
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	crashTick := 0
	res, err := svc.Step(context.Background(), sim.ID, 100)
	require.NoError(t, err)
	for _, ev := range res.Events {
		if ev.Kind == models.EventHazardCreated {
			crashTick = ev.Tick
			break
		}
	}
	require.NotZero(t, crashTick, "no accident within 100 ticks")
	// Головная машина на 1000 не доезжает за 100 тиков, прогон продолжается
	assert.Equal(t, models.SimulationRunning, res.Simulation.Status)
	assert.Equal(t, 100, res.Simulation.Tick)
}

func TestStep_TicksOutOfRange(t *testing.T) {
	svc, _ := newTestSimulationService(t)

	_, err := svc.Step(context.Background(), uuid.New(), 0)
	assert.ErrorIs(t, err, service.ErrInvalidRequest)

	_, err = svc.Step(context.Background(), uuid.New(), 101)
	assert.ErrorIs(t, err, service.ErrInvalidRequest)
}

func TestStep_NotFound(t *testing.T) {
	svc, deps := newTestSimulationService(t)
	id := uuid.New()
	deps.repo.EXPECT().GetSimulation(gomock.Any(), id).Return(nil, fmt.Errorf("%w: %s", service.ErrSimulationNotFound, id)).Times(1)

	_, err := svc.Step(context.Background(), id, 1)

	assert.ErrorIs(t, err, service.ErrSimulationNotFound)
}

func TestStep_LookupError(t *testing.T) {
	svc, deps := newTestSimulationService(t)
	id := uuid.New()
	dbError := errors.New("connection reset")
	deps.repo.EXPECT().GetSimulation(gomock.Any(), id).Return(nil, dbError).Times(1)

	_, err := svc.Step(context.Background(), id, 1)

	assert.ErrorIs(t, err, dbError)
	assert.NotErrorIs(t, err, service.ErrSimulationNotFound)
}

func TestStep_PublishErrorIsNotFatal(t *testing.T) {
	svc, deps := newTestSimulationService(t)
	sim := createRun(t, svc, deps, service.CreateRequest{
		Params: demoParams(),
		Script: []service.ScriptEntry{{Tick: 1, VehicleSeq: 0}},
	})
	expectPersist(deps, true)
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).MinTimes(1)

	res, err := svc.Step(context.Background(), sim.ID, 1)

	require.NoError(t, err)
	assert.NotEmpty(t, res.Events)
}

func TestStep_SaveEventsError(t *testing.T) {
	svc, deps := newTestSimulationService(t)
	sim := createRun(t, svc, deps, service.CreateRequest{
		Params: demoParams(),
		Script: []service.ScriptEntry{{Tick: 1, VehicleSeq: 0}},
	})
	dbError := errors.New("disk full")
	deps.repo.EXPECT().SaveEvents(gomock.Any(), sim.ID, gomock.Any()).Return(dbError).Times(1)

	_, err := svc.Step(context.Background(), sim.ID, 1)
	assert.ErrorIs(t, err, dbError)

	// Несохраненный шаг откатывается
	current, err := svc.GetSimulation(context.Background(), sim.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, current.Tick)
	assert.Zero(t, current.Stats[service.AlertRoadID].Hazards)
	for _, road := range current.Roads {
		assert.Nil(t, road.Hazard)
	}

	// Повтор проходит тот же тик заново, события не теряются
	expectPersist(deps, true)
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).MinTimes(1)
	res, err := svc.Step(context.Background(), sim.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Simulation.Tick)
	assert.Equal(t, 1, res.Simulation.Stats[service.ControlRoadID].Hazards)
	assert.Equal(t, 1, res.Simulation.Stats[service.AlertRoadID].Hazards)
	assert.NotEmpty(t, res.Events)
}

func TestStopSimulation_UpdateErrorKeepsRunning(t *testing.T) {
	svc, deps := newTestSimulationService(t)
	sim := createRun(t, svc, deps, service.CreateRequest{Params: demoParams()})
	dbError := errors.New("connection reset")
	deps.repo.EXPECT().UpdateSimulation(gomock.Any(), gomock.Any()).Return(dbError).Times(1)

	_, err := svc.StopSimulation(context.Background(), sim.ID)
	assert.ErrorIs(t, err, dbError)

	current, err := svc.GetSimulation(context.Background(), sim.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SimulationRunning, current.Status)
}

func TestSetFog(t *testing.T) {
	svc, deps := newTestSimulationService(t)
	sim := createRun(t, svc, deps, service.CreateRequest{Params: demoParams()})

	_, err := svc.SetFog(context.Background(), sim.ID, 91)
	assert.ErrorIs(t, err, service.ErrInvalidRequest)

	deps.repo.EXPECT().UpdateSimulation(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	deps.cache.EXPECT().SetSnapshot(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	updated, err := svc.SetFog(context.Background(), sim.ID, 90)
	require.NoError(t, err)
	assert.Equal(t, 90.0, updated.FogLevel)
}

func TestGetSimulation_Live(t *testing.T) {
	svc, deps := newTestSimulationService(t)
	sim := createRun(t, svc, deps, service.CreateRequest{Params: demoParams()})
	deps.cache.EXPECT().GetSnapshot(gomock.Any(), gomock.Any()).Times(0)
	deps.repo.EXPECT().GetSimulation(gomock.Any(), gomock.Any()).Times(0)

	got, err := svc.GetSimulation(context.Background(), sim.ID)

	require.NoError(t, err)
	assert.Equal(t, sim.ID, got.ID)

	// Копия не связана с живым состоянием
	got.Roads[0].Vehicles[0].Position = 99
	again, err := svc.GetSimulation(context.Background(), sim.ID)
	require.NoError(t, err)
	assert.NotEqual(t, 99.0, again.Roads[0].Vehicles[0].Position)
}

func TestGetSimulation_FromCache(t *testing.T) {
	svc, deps := newTestSimulationService(t)
	id := uuid.New()
	cached := &models.Simulation{ID: id, Status: models.SimulationStopped}
	deps.cache.EXPECT().GetSnapshot(gomock.Any(), id).Return(cached, nil).Times(1)
	deps.repo.EXPECT().GetSimulation(gomock.Any(), gomock.Any()).Times(0)

	got, err := svc.GetSimulation(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestGetSimulation_FromDB(t *testing.T) {
	svc, deps := newTestSimulationService(t)
	id := uuid.New()
	stored := &models.Simulation{ID: id, Status: models.SimulationFinished, UpdatedAt: time.Now()}
	deps.cache.EXPECT().GetSnapshot(gomock.Any(), id).Return(nil, nil).Times(1)
	deps.repo.EXPECT().GetSimulation(gomock.Any(), id).Return(stored, nil).Times(1)

	got, err := svc.GetSimulation(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestGetSimulation_NotFound(t *testing.T) {
	svc, deps := newTestSimulationService(t)
	id := uuid.New()
	dbError := errors.New("не найдено")
	deps.cache.EXPECT().GetSnapshot(gomock.Any(), id).Return(nil, errors.New("redis down")).Times(1)
	deps.repo.EXPECT().GetSimulation(gomock.Any(), id).Return(nil, dbError).Times(1)

	got, err := svc.GetSimulation(context.Background(), id)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, dbError)
}

func TestInjectHazard(t *testing.T) {
	svc, deps := newTestSimulationService(t)
	sim := createRun(t, svc, deps, service.CreateRequest{Params: demoParams()})

	expectPersist(deps, true)
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	ev, err := svc.InjectHazard(context.Background(), sim.ID, service.AlertRoadID, "B-0")
	require.NoError(t, err)
	assert.Equal(t, models.EventHazardCreated, ev.Kind)
	assert.Equal(t, "B-0", ev.VehicleID)
	assert.Equal(t, service.AlertRoadID, ev.RoadID)

	// Вторая авария при активной игнорируется с ошибкой
	_, err = svc.InjectHazard(context.Background(), sim.ID, service.AlertRoadID, "B-1")
	assert.ErrorIs(t, err, service.ErrInvalidRequest)

	_, err = svc.InjectHazard(context.Background(), sim.ID, "C", "C-0")
	assert.ErrorIs(t, err, service.ErrInvalidRequest)
}

func TestRenderView(t *testing.T) {
	svc, deps := newTestSimulationService(t)
	sim := createRun(t, svc, deps, service.CreateRequest{Params: demoParams()})

	view, err := svc.RenderView(context.Background(), sim.ID, service.ViewRequest{RoadID: service.AlertRoadID, Width: 20})
	require.NoError(t, err)
	assert.Len(t, []rune(view), 20)
	assert.Positive(t, strings.Count(view, ">"))

	_, err = svc.RenderView(context.Background(), sim.ID, service.ViewRequest{RoadID: "Z"})
	assert.ErrorIs(t, err, service.ErrInvalidRequest)
}

func TestListEvents_NormalizesPage(t *testing.T) {
	svc, deps := newTestSimulationService(t)
	id := uuid.New()
	expected := []models.Event{{Tick: 3, RoadID: "B", VehicleID: "B-1", Kind: models.EventAlertReceived}}
	deps.repo.EXPECT().ListEvents(gomock.Any(), id, 1, 20).Return(expected, nil).Times(1)

	events, err := svc.ListEvents(context.Background(), id, 0, 0)

	require.NoError(t, err)
	assert.Equal(t, expected, events)
}

func TestListSimulations(t *testing.T) {
	svc, deps := newTestSimulationService(t)
	expected := []*models.Simulation{{ID: uuid.New()}}
	deps.repo.EXPECT().ListSimulations(gomock.Any(), 2, 50).Return(expected, nil).Times(1)

	sims, err := svc.ListSimulations(context.Background(), 2, 50)

	require.NoError(t, err)
	assert.Equal(t, expected, sims)
}

func TestStopSimulation(t *testing.T) {
	svc, deps := newTestSimulationService(t)
	sim := createRun(t, svc, deps, service.CreateRequest{Params: demoParams()})

	expectFinalPersist(deps, false)
	stopped, err := svc.StopSimulation(context.Background(), sim.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SimulationStopped, stopped.Status)

	deps.repo.EXPECT().GetSimulation(gomock.Any(), sim.ID).Return(stopped, nil).Times(1)
	_, err = svc.StopSimulation(context.Background(), sim.ID)
	assert.ErrorIs(t, err, service.ErrSimulationNotRunning)
}
