package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/atoa_simulation/internal/config"
	"github.com/shenikar/atoa_simulation/internal/engine"
	"github.com/shenikar/atoa_simulation/internal/geometry"
	"github.com/shenikar/atoa_simulation/internal/models"
	"github.com/shenikar/atoa_simulation/internal/render"
	"github.com/shenikar/atoa_simulation/internal/webhook"
	"github.com/sirupsen/logrus"
)

const (
	// ControlRoadID - дорога без оповещения, водители полагаются только на зрение
	ControlRoadID = "A"
	// AlertRoadID - дорога с широковещательным оповещением ATOA
	AlertRoadID = "B"

	maxFogLevel = 90
)

var (
	ErrSimulationNotFound   = errors.New("simulation not found")
	ErrSimulationNotRunning = errors.New("simulation is not running")
	ErrInvalidRequest       = errors.New("invalid request")
)

//go:generate mockgen -source=simulation.go -destination=mocks/mock_simulation.go -package=mocks

// SimulationRepository определяет контракт для хранения истории прогонов
type SimulationRepository interface {
	CreateSimulation(ctx context.Context, sim *models.Simulation) error
	UpdateSimulation(ctx context.Context, sim *models.Simulation) error
	GetSimulation(ctx context.Context, id uuid.UUID) (*models.Simulation, error)
	ListSimulations(ctx context.Context, page, pageSize int) ([]*models.Simulation, error)
	SaveEvents(ctx context.Context, id uuid.UUID, events []models.Event) error
	ListEvents(ctx context.Context, id uuid.UUID, page, pageSize int) ([]models.Event, error)
}

// SnapshotCache определяет контракт кеша последнего снимка прогона
type SnapshotCache interface {
	GetSnapshot(ctx context.Context, id uuid.UUID) (*models.Simulation, error)
	SetSnapshot(ctx context.Context, sim *models.Simulation) error
	DeleteSnapshot(ctx context.Context, id uuid.UUID) error
}

// SimulationService определяет контракт бизнес-логики управления прогонами
type SimulationService interface {
	CreateSimulation(ctx context.Context, req CreateRequest) (*models.Simulation, error)
	GetSimulation(ctx context.Context, id uuid.UUID) (*models.Simulation, error)
	ListSimulations(ctx context.Context, page, pageSize int) ([]*models.Simulation, error)
	Step(ctx context.Context, id uuid.UUID, ticks int) (*StepResult, error)
	SetFog(ctx context.Context, id uuid.UUID, fogLevel float64) (*models.Simulation, error)
	InjectHazard(ctx context.Context, id uuid.UUID, roadID, vehicleID string) (*models.Event, error)
	RenderView(ctx context.Context, id uuid.UUID, req ViewRequest) (string, error)
	ListEvents(ctx context.Context, id uuid.UUID, page, pageSize int) ([]models.Event, error)
	StopSimulation(ctx context.Context, id uuid.UUID) (*models.Simulation, error)
}

// ScriptEntry - запланированная авария: машина с номером VehicleSeq на каждой дороге
type ScriptEntry struct {
	Tick       int
	VehicleSeq int
}

// CreateRequest - параметры нового прогона
type CreateRequest struct {
	Params   models.SimulationParams
	FogLevel float64
	Script   []ScriptEntry
}

// ViewRequest - параметры ASCII-проекции дороги
type ViewRequest struct {
	RoadID    string
	Viewpoint string
	Width     int
}

// StepResult - состояние прогона после шага и события этого шага
type StepResult struct {
	Simulation *models.Simulation
	Events     []models.Event
}

// run - живой прогон; mu сериализует запросы к одному прогону
type run struct {
	mu      sync.Mutex
	sim     *models.Simulation
	engines map[string]*engine.Engine
}

type simulationService struct {
	repo      SimulationRepository
	cache     SnapshotCache
	publisher webhook.AnnouncementPublisher
	logger    *logrus.Logger
	cfg       *config.Config
	now       func() time.Time

	mu   sync.RWMutex
	runs map[uuid.UUID]*run
}

func NewSimulationService(repo SimulationRepository, cache SnapshotCache, publisher webhook.AnnouncementPublisher, logger *logrus.Logger, cfg *config.Config) SimulationService {
	return &simulationService{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
		runs:      make(map[uuid.UUID]*run),
	}
}

// CreateSimulation создает прогон с контрольной дорогой и дорогой ATOA
func (s *simulationService) CreateSimulation(ctx context.Context, req CreateRequest) (*models.Simulation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "simulation",
		"method":  "CreateSimulation",
	})
	log.Info("Attempting to create a new simulation")

	if req.FogLevel < 0 || req.FogLevel > maxFogLevel {
		return nil, fmt.Errorf("%w: fog level %v outside [0,%d]", ErrInvalidRequest, req.FogLevel, maxFogLevel)
	}
	params := req.Params
	if params.Seed == 0 {
		params.Seed = s.now().UnixNano()
	}

	engines := make(map[string]*engine.Engine, 2)
	sim := &models.Simulation{
		ID:        uuid.New(),
		Status:    models.SimulationRunning,
		FogLevel:  req.FogLevel,
		Params:    params,
		Stats:     make(map[string]*models.RoadStats),
		CreatedAt: s.now().UTC(),
	}
	sim.UpdatedAt = sim.CreatedAt
	for _, road := range []struct {
		id    string
		alert bool
	}{{ControlRoadID, false}, {AlertRoadID, true}} {
		cfg := engine.ConfigFromParams(params)
		for _, entry := range req.Script {
			cfg.Script = append(cfg.Script, engine.ScriptedCrash{
				Tick:      entry.Tick,
				VehicleID: fmt.Sprintf("%s-%d", road.id, entry.VehicleSeq),
			})
		}
		// Одинаковое зерно на обеих дорогах: авария случается в один и тот же тик
		eng, err := engine.New(cfg, engine.NewSeededSource(params.Seed), s.logger.WithFields(logrus.Fields{
			"component":     "engine",
			"simulation_id": sim.ID,
			"road":          road.id,
		}))
		if err != nil {
			log.WithError(err).Warn("Rejected simulation parameters")
			return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		engines[road.id] = eng
		sim.Roads = append(sim.Roads, eng.NewRoad(road.id, road.alert))
		sim.Stats[road.id] = &models.RoadStats{}
	}

	if err := s.repo.CreateSimulation(ctx, sim); err != nil {
		log.WithError(err).Error("Failed to create simulation in repository")
		return nil, fmt.Errorf("service: could not create simulation: %w", err)
	}

	s.mu.Lock()
	s.runs[sim.ID] = &run{sim: sim, engines: engines}
	s.mu.Unlock()

	s.cacheSnapshot(ctx, log, sim)
	log.WithField("simulation_id", sim.ID).Info("Simulation created successfully")
	return sim.Clone(), nil
}

// GetSimulation возвращает текущее состояние прогона: живой прогон, затем кеш, затем БД
func (s *simulationService) GetSimulation(ctx context.Context, id uuid.UUID) (*models.Simulation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "simulation",
		"method":        "GetSimulation",
		"simulation_id": id,
	})

	if r := s.live(id); r != nil {
		r.mu.Lock()
		defer r.mu.Unlock()
		return r.sim.Clone(), nil
	}

	cached, err := s.cache.GetSnapshot(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read snapshot cache")
	}
	if cached != nil {
		log.Debug("Simulation served from cache")
		return cached, nil
	}

	sim, err := s.repo.GetSimulation(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Simulation not found in repository")
		return nil, fmt.Errorf("service: could not get simulation: %w", err)
	}
	return sim, nil
}

// ListSimulations возвращает список прогонов с пагинацией
func (s *simulationService) ListSimulations(ctx context.Context, page, pageSize int) ([]*models.Simulation, error) {
	page, pageSize = normalizePage(page, pageSize)
	log := s.logger.WithFields(logrus.Fields{
		"service":   "simulation",
		"method":    "ListSimulations",
		"page":      page,
		"page_size": pageSize,
	})

	sims, err := s.repo.ListSimulations(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list simulations from repository")
		return nil, fmt.Errorf("service: could not list simulations: %w", err)
	}
	log.WithField("count", len(sims)).Info("Simulations listed successfully")
	return sims, nil
}

// Step продвигает обе дороги прогона на ticks тиков
func (s *simulationService) Step(ctx context.Context, id uuid.UUID, ticks int) (*StepResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "simulation",
		"method":        "Step",
		"simulation_id": id,
		"ticks":         ticks,
	})
	if ticks < 1 || ticks > s.cfg.MaxTicksPerStep {
		return nil, fmt.Errorf("%w: ticks must be within [1,%d]", ErrInvalidRequest, s.cfg.MaxTicksPerStep)
	}

	r, err := s.running(ctx, id)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sim.Status != models.SimulationRunning {
		return nil, ErrSimulationNotRunning
	}

	// При ошибке записи прогон откатывается к состоянию до шага
	prev := r.sim.Clone()
	var events []models.Event
	for i := 0; i < ticks && r.sim.Status == models.SimulationRunning; i++ {
		r.sim.Tick++
		for _, road := range r.sim.Roads {
			tickEvents, err := r.engines[road.ID].Tick(road, r.sim.Tick, r.sim.FogLevel)
			if errors.Is(err, engine.ErrSpawnSkipped) {
				log.WithError(err).WithFields(logrus.Fields{
					"tick":    r.sim.Tick,
					"road_id": road.ID,
				}).Warn("Hazard spawn check skipped")
				err = nil
			}
			if err != nil {
				failed := r.sim.Tick
				r.sim = prev
				log.WithError(err).WithField("tick", failed).Error("Tick failed")
				return nil, fmt.Errorf("service: tick %d road %s: %w", failed, road.ID, err)
			}
			events = append(events, tickEvents...)
		}
		if finished(r.sim) {
			r.sim.Status = models.SimulationFinished
			log.WithField("tick", r.sim.Tick).Info("Simulation finished")
		}
	}
	r.sim.Record(events)
	r.sim.UpdatedAt = s.now().UTC()

	if err := s.persist(ctx, log, r.sim, events); err != nil {
		r.sim = prev
		return nil, err
	}
	if r.sim.Status != models.SimulationRunning {
		s.forget(id)
	}

	log.WithField("events", len(events)).Debug("Step completed")
	return &StepResult{Simulation: r.sim.Clone(), Events: events}, nil
}

// SetFog меняет уровень тумана живого прогона
func (s *simulationService) SetFog(ctx context.Context, id uuid.UUID, fogLevel float64) (*models.Simulation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "simulation",
		"method":        "SetFog",
		"simulation_id": id,
		"fog_level":     fogLevel,
	})
	if fogLevel < 0 || fogLevel > maxFogLevel {
		return nil, fmt.Errorf("%w: fog level %v outside [0,%d]", ErrInvalidRequest, fogLevel, maxFogLevel)
	}
	r, err := s.running(ctx, id)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sim.FogLevel = fogLevel
	r.sim.UpdatedAt = s.now().UTC()
	if err := s.repo.UpdateSimulation(ctx, r.sim); err != nil {
		log.WithError(err).Error("Failed to update simulation in repository")
		return nil, fmt.Errorf("service: could not update fog: %w", err)
	}
	s.cacheSnapshot(ctx, log, r.sim)
	log.Info("Fog level updated")
	return r.sim.Clone(), nil
}

// InjectHazard вызывает аварию вручную на одной из дорог
func (s *simulationService) InjectHazard(ctx context.Context, id uuid.UUID, roadID, vehicleID string) (*models.Event, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "simulation",
		"method":        "InjectHazard",
		"simulation_id": id,
		"road_id":       roadID,
		"vehicle_id":    vehicleID,
	})
	r, err := s.running(ctx, id)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.sim.Clone()
	road := r.sim.Road(roadID)
	if road == nil {
		return nil, fmt.Errorf("%w: unknown road %q", ErrInvalidRequest, roadID)
	}
	ev, err := r.engines[roadID].InjectHazard(road, vehicleID, r.sim.Tick)
	if err != nil {
		log.WithError(err).Warn("Hazard injection rejected")
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	events := []models.Event{ev}
	r.sim.Record(events)
	r.sim.UpdatedAt = s.now().UTC()
	if err := s.persist(ctx, log, r.sim, events); err != nil {
		r.sim = prev
		return nil, err
	}
	log.Info("Hazard injected")
	return &ev, nil
}

// RenderView строит ASCII-проекцию дороги, при необходимости глазами одного водителя
func (s *simulationService) RenderView(ctx context.Context, id uuid.UUID, req ViewRequest) (string, error) {
	sim, err := s.GetSimulation(ctx, id)
	if err != nil {
		return "", err
	}
	road := sim.Road(req.RoadID)
	if road == nil {
		return "", fmt.Errorf("%w: unknown road %q", ErrInvalidRequest, req.RoadID)
	}
	out, err := render.Road(road, render.Options{
		Viewpoint:  req.Viewpoint,
		Visibility: geometry.VisibilityDistance(sim.FogLevel, sim.Params.BaseVisibility),
		Width:      req.Width,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return out, nil
}

// ListEvents возвращает журнал событий прогона с пагинацией
func (s *simulationService) ListEvents(ctx context.Context, id uuid.UUID, page, pageSize int) ([]models.Event, error) {
	page, pageSize = normalizePage(page, pageSize)
	log := s.logger.WithFields(logrus.Fields{
		"service":       "simulation",
		"method":        "ListEvents",
		"simulation_id": id,
		"page":          page,
		"page_size":     pageSize,
	})

	events, err := s.repo.ListEvents(ctx, id, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list events from repository")
		return nil, fmt.Errorf("service: could not list events: %w", err)
	}
	return events, nil
}

// StopSimulation останавливает прогон; живое состояние больше не хранится
func (s *simulationService) StopSimulation(ctx context.Context, id uuid.UUID) (*models.Simulation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "simulation",
		"method":        "StopSimulation",
		"simulation_id": id,
	})
	log.Info("Attempting to stop simulation")

	r, err := s.running(ctx, id)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.sim.Clone()
	r.sim.Status = models.SimulationStopped
	r.sim.UpdatedAt = s.now().UTC()
	if err := s.persist(ctx, log, r.sim, nil); err != nil {
		r.sim = prev
		return nil, err
	}
	s.forget(id)
	log.Info("Simulation stopped")
	return r.sim.Clone(), nil
}

func (s *simulationService) live(id uuid.UUID) *run {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.runs[id]
}

func (s *simulationService) forget(id uuid.UUID) {
	s.mu.Lock()
	delete(s.runs, id)
	s.mu.Unlock()
}

// running возвращает живой прогон; завершенный прогон из БД не возобновляется
func (s *simulationService) running(ctx context.Context, id uuid.UUID) (*run, error) {
	if r := s.live(id); r != nil {
		return r, nil
	}
	_, err := s.repo.GetSimulation(ctx, id)
	switch {
	case err == nil:
		return nil, ErrSimulationNotRunning
	case errors.Is(err, ErrSimulationNotFound):
		return nil, ErrSimulationNotFound
	default:
		return nil, fmt.Errorf("service: could not look up simulation: %w", err)
	}
}

// persist сохраняет события и сводку; кеш и оповещения не влияют на результат
func (s *simulationService) persist(ctx context.Context, log *logrus.Entry, sim *models.Simulation, events []models.Event) error {
	if len(events) > 0 {
		if err := s.repo.SaveEvents(ctx, sim.ID, events); err != nil {
			log.WithError(err).Error("Failed to save events in repository")
			return fmt.Errorf("service: could not save events: %w", err)
		}
	}
	if err := s.repo.UpdateSimulation(ctx, sim); err != nil {
		log.WithError(err).Error("Failed to update simulation in repository")
		return fmt.Errorf("service: could not update simulation: %w", err)
	}
	if sim.Status == models.SimulationRunning {
		s.cacheSnapshot(ctx, log, sim)
	} else {
		// Итог завершенного прогона читается из БД
		s.dropSnapshot(ctx, log, sim.ID)
	}

	for _, ev := range events {
		if !ev.ShouldAnnounce {
			continue
		}
		announcement := webhook.Announcement{
			SimulationID: sim.ID,
			Tick:         ev.Tick,
			RoadID:       ev.RoadID,
			VehicleID:    ev.VehicleID,
			Kind:         ev.Kind,
			Message:      ev.Message,
			Timestamp:    s.now().UTC(),
		}
		if err := s.publisher.Publish(ctx, announcement); err != nil {
			log.WithError(err).WithField("vehicle_id", ev.VehicleID).Warn("Failed to publish announcement")
		}
	}
	return nil
}

func (s *simulationService) cacheSnapshot(ctx context.Context, log *logrus.Entry, sim *models.Simulation) {
	if err := s.cache.SetSnapshot(ctx, sim); err != nil {
		log.WithError(err).Warn("Failed to cache simulation snapshot")
	}
}

func (s *simulationService) dropSnapshot(ctx context.Context, log *logrus.Entry, id uuid.UUID) {
	if err := s.cache.DeleteSnapshot(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete simulation snapshot")
	}
}

// finished - ограниченный прогон завершен, когда ни на одной дороге больше ничего
// не может сдвинуться: аварий нет, каждая машина доехала, разбилась насовсем или
// стоит в очереди за разбитой. Кольцевая дорога не заканчивается сама.
func finished(sim *models.Simulation) bool {
	if sim.Params.Topology != models.TopologyBounded {
		return false
	}
	for _, road := range sim.Roads {
		if road.Hazard != nil {
			return false
		}
		vehicles := slices.Clone(road.Vehicles)
		slices.SortFunc(vehicles, func(a, b *models.Vehicle) int { return a.Seq - b.Seq })
		// blocked - впереди стоит разбитая машина или очередь за ней
		blocked := false
		for _, v := range vehicles {
			switch v.Status {
			case models.StatusFinished:
				blocked = false
			case models.StatusCrashed:
				blocked = true
			case models.StatusStopped:
				if !blocked {
					return false
				}
			default:
				return false
			}
		}
	}
	return true
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
