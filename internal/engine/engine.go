// Package engine - движок тиков симуляции ATOA.
//
// Каждый тик состоит из трех шагов:
//
//  1. Жизненный цикл аварии: активная авария истекает, либо появляется новая
//     (сначала по сценарию, затем случайная проверка для головной машины).
//
//  2. Проход по машинам: каждая машина прогоняет свой автомат состояний против
//     снимка ведущей машины, сделанного после шага 1, поэтому порядок обхода
//     не влияет на результат.
//
//  3. Интегрирование: движущиеся машины сдвигаются на свою скорость, на кольце
//     позиция заворачивается, на ограниченной дороге машина финиширует.
//
// Между вызовами движок не хранит состояния дорог: все лежит в RoadState,
// переданном в Tick.
package engine

import (
	"fmt"
	"math"

	"github.com/shenikar/atoa_simulation/internal/geometry"
	"github.com/shenikar/atoa_simulation/internal/models"
	"github.com/sirupsen/logrus"
)

// Engine продвигает RoadState на один тик за вызов
type Engine struct {
	cfg    Config
	rng    RandomSource
	logger logrus.FieldLogger
}

// New проверяет cfg и создает движок. rng может быть nil при нулевой вероятности
// аварии, иначе каждая проверка аварии завершится ErrNoRandomSource
func New(cfg Config, rng RandomSource, logger logrus.FieldLogger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		logger = l
	}
	return &Engine{cfg: cfg, rng: rng, logger: logger}, nil
}

// Config возвращает конфигурацию движка
func (e *Engine) Config() Config {
	return e.cfg
}

// Visibility - дальность видимости водителя при данном тумане
func (e *Engine) Visibility(fogLevel float64) float64 {
	return geometry.VisibilityDistance(fogLevel, e.cfg.BaseVisibility)
}

// NewRoad расставляет машины от головной, с равным шагом от нуля
func (e *Engine) NewRoad(id string, alertChannel bool) *models.RoadState {
	road := &models.RoadState{
		ID:           id,
		Topology:     e.cfg.Topology,
		Length:       e.cfg.RoadLength,
		AlertChannel: alertChannel,
		Vehicles:     make([]*models.Vehicle, 0, e.cfg.VehicleCount),
	}
	for i := 0; i < e.cfg.VehicleCount; i++ {
		road.Vehicles = append(road.Vehicles, &models.Vehicle{
			ID:       fmt.Sprintf("%s-%d", id, i),
			Seq:      i,
			Position: float64(e.cfg.VehicleCount-i-1) * e.cfg.VehicleSpacing,
			Speed:    e.cfg.NormalSpeed,
			Status:   models.StatusNormal,
		})
	}
	return road
}

// Tick продвигает дорогу на один тик; now - номер тика, fogLevel - туман в процентах.
// Несогласованная дорога отклоняется до любых изменений. Отказ источника случайности
// пропускает только проверку аварии: тик выполняется, события возвращаются вместе
// с ошибкой ErrSpawnSkipped.
func (e *Engine) Tick(road *models.RoadState, now int, fogLevel float64) ([]models.Event, error) {
	if err := validateRoad(road); err != nil {
		return nil, err
	}
	log := e.logger.WithFields(logrus.Fields{"road": road.ID, "tick": now})

	road.SortVehicles()
	events, spawnErr := e.advanceHazard(road, now)

	leaders, err := Leaders(road)
	if err != nil {
		return nil, err
	}
	snapshot := make([]models.Vehicle, len(road.Vehicles))
	for i, v := range road.Vehicles {
		snapshot[i] = *v
	}

	visibility := e.Visibility(fogLevel)
	for i, v := range road.Vehicles {
		var leader *models.Vehicle
		if j := leaders[i]; j >= 0 {
			leader = &snapshot[j]
		}
		events = append(events, e.updateVehicle(road, v, leader, visibility)...)
	}
	road.SortVehicles()

	for i := range events {
		events[i].Tick = now
		events[i].RoadID = road.ID
		log.WithFields(logrus.Fields{
			"vehicle_id": events[i].VehicleID,
			"kind":       events[i].Kind,
		}).Debug(events[i].Message)
	}
	if spawnErr != nil {
		return events, fmt.Errorf("%w: %w", ErrSpawnSkipped, spawnErr)
	}
	return events, nil
}

// distanceAhead - расстояние вперед по дороге от from до to
func distanceAhead(road *models.RoadState, from, to float64) float64 {
	if road.Topology == models.TopologyLooping {
		return geometry.WrappedDistance(from, to, road.Length)
	}
	return to - from
}

// leaderDistance - дистанция до ведущей машины или geometry.NoLeader
func leaderDistance(road *models.RoadState, v, leader *models.Vehicle) float64 {
	if leader == nil {
		return geometry.NoLeader
	}
	if road.Topology == models.TopologyLooping {
		return geometry.WrappedDistance(v.Position, leader.Position, road.Length)
	}
	return geometry.BoundedDistance(v.Position, leader.Position)
}

func validateRoad(road *models.RoadState) error {
	if road == nil {
		return fmt.Errorf("%w: nil road", ErrInconsistentState)
	}
	if len(road.Vehicles) == 0 {
		return fmt.Errorf("%w: road %s has no vehicles", ErrInconsistentState, road.ID)
	}
	if road.Length <= 0 || math.IsNaN(road.Length) {
		return fmt.Errorf("%w: road %s has length %v", ErrInconsistentState, road.ID, road.Length)
	}
	if road.Topology != models.TopologyLooping && road.Topology != models.TopologyBounded {
		return fmt.Errorf("%w: road %s has unknown topology %q", ErrInconsistentState, road.ID, road.Topology)
	}
	seen := make(map[string]struct{}, len(road.Vehicles))
	seqs := make(map[int]struct{}, len(road.Vehicles))
	for _, v := range road.Vehicles {
		if v == nil {
			return fmt.Errorf("%w: road %s holds a nil vehicle", ErrInconsistentState, road.ID)
		}
		if _, dup := seen[v.ID]; dup {
			return fmt.Errorf("%w: duplicate vehicle id %q on road %s", ErrInconsistentState, v.ID, road.ID)
		}
		seen[v.ID] = struct{}{}
		if _, dup := seqs[v.Seq]; dup && road.Topology == models.TopologyBounded {
			return fmt.Errorf("%w: duplicate spawn sequence %d on road %s", ErrInconsistentState, v.Seq, road.ID)
		}
		seqs[v.Seq] = struct{}{}
		if !v.Status.Valid() {
			return fmt.Errorf("%w: vehicle %s has unknown status %q", ErrInconsistentState, v.ID, v.Status)
		}
	}
	if h := road.Hazard; h != nil {
		if h.OriginVehicleID != "" {
			if _, ok := seen[h.OriginVehicleID]; !ok {
				return fmt.Errorf("%w: hazard references unknown vehicle %q", ErrInconsistentState, h.OriginVehicleID)
			}
		}
		if h.Position < 0 || h.Position > road.Length {
			return fmt.Errorf("%w: hazard position %v outside road %s", ErrInconsistentState, h.Position, road.ID)
		}
	}
	return nil
}
