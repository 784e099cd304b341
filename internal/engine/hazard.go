package engine

import (
	"fmt"

	"github.com/shenikar/atoa_simulation/internal/models"
)

// advanceHazard - жизненный цикл аварии за один тик. Ошибка возможна только
// при проверке случайной аварии: истечение и сценарий не падают
func (e *Engine) advanceHazard(road *models.RoadState, now int) ([]models.Event, error) {
	if h := road.Hazard; h != nil {
		if now-h.CreatedAt < e.cfg.HazardDuration {
			return nil, nil
		}
		return []models.Event{e.clearHazard(road)}, nil
	}

	for _, sc := range e.cfg.Script {
		if sc.Tick != now {
			continue
		}
		v := road.Vehicle(sc.VehicleID)
		if v == nil || v.Status.IsTerminal() {
			continue
		}
		return []models.Event{e.crash(road, v, now)}, nil
	}

	if e.cfg.AccidentProbability <= 0 {
		return nil, nil
	}
	lead := leadVehicle(road)
	if lead == nil || !e.spawnEligible(road, lead) {
		return nil, nil
	}
	if e.rng == nil {
		return nil, ErrNoRandomSource
	}
	roll, err := e.rng.Float64()
	if err != nil {
		return nil, fmt.Errorf("accident roll: %w", err)
	}
	if roll >= e.cfg.AccidentProbability {
		return nil, nil
	}
	return []models.Event{e.crash(road, lead, now)}, nil
}

// InjectHazard немедленно разбивает машину vehicleID, ручной аналог сценария
func (e *Engine) InjectHazard(road *models.RoadState, vehicleID string, now int) (models.Event, error) {
	if err := validateRoad(road); err != nil {
		return models.Event{}, err
	}
	if road.Hazard != nil {
		return models.Event{}, fmt.Errorf("%w: road %s", ErrHazardActive, road.ID)
	}
	v := road.Vehicle(vehicleID)
	if v == nil {
		return models.Event{}, fmt.Errorf("%w: vehicle %q not on road %s", ErrInconsistentState, vehicleID, road.ID)
	}
	if v.Status.IsTerminal() {
		return models.Event{}, fmt.Errorf("%w: vehicle %s is %s", ErrNotEligible, v.ID, v.Status)
	}
	ev := e.crash(road, v, now)
	ev.Tick = now
	ev.RoadID = road.ID
	return ev, nil
}

func (e *Engine) crash(road *models.RoadState, v *models.Vehicle, now int) models.Event {
	v.Status = models.StatusCrashed
	v.Speed = 0
	v.AlertMessage = fmt.Sprintf("Accident at %d", int(v.Position))
	road.Hazard = &models.Hazard{
		OriginVehicleID: v.ID,
		Position:        v.Position,
		CreatedAt:       now,
	}
	msg := fmt.Sprintf("Accident on road %s at position %d", road.ID, int(v.Position))
	if road.AlertChannel {
		msg += ", broadcasting ATOA alert"
	}
	return models.Event{
		VehicleID:      v.ID,
		Kind:           models.EventHazardCreated,
		Message:        msg,
		ShouldAnnounce: true,
	}
}

func (e *Engine) clearHazard(road *models.RoadState) models.Event {
	h := road.Hazard
	road.Hazard = nil
	if v := road.Vehicle(h.OriginVehicleID); v != nil && v.Status == models.StatusCrashed {
		v.Status = models.StatusNormal
		v.Speed = 0
		v.AlertMessage = ""
	}
	return models.Event{
		VehicleID:      h.OriginVehicleID,
		Kind:           models.EventHazardCleared,
		Message:        fmt.Sprintf("Accident at %d cleared on road %s", int(h.Position), road.ID),
		ShouldAnnounce: road.AlertChannel,
	}
}

// leadVehicle - головная машина: на кольце самая дальняя, на ограниченной
// дороге первая выпущенная
func leadVehicle(road *models.RoadState) *models.Vehicle {
	if len(road.Vehicles) == 0 {
		return nil
	}
	if road.Topology == models.TopologyLooping {
		return road.Vehicles[0]
	}
	lead := road.Vehicles[0]
	for _, v := range road.Vehicles[1:] {
		if v.Seq < lead.Seq {
			lead = v
		}
	}
	return lead
}

func (e *Engine) spawnEligible(road *models.RoadState, v *models.Vehicle) bool {
	return v.Status == models.StatusNormal &&
		v.Position >= 0 &&
		v.Position < road.Length-e.cfg.SpawnMargin
}
