package engine

import (
	"fmt"

	"github.com/shenikar/atoa_simulation/internal/geometry"
	"github.com/shenikar/atoa_simulation/internal/models"
)

// updateVehicle прогоняет автомат состояний одной машины и двигает ее. leader -
// снимок машины впереди, nil если ее нет.
//
// Порядок: конечные состояния не меняются, оповещение важнее собственных глаз,
// разбитая машина ближе тормозного пути сразу приводит к аварии.
func (e *Engine) updateVehicle(road *models.RoadState, v, leader *models.Vehicle, visibility float64) []models.Event {
	if v.Status.IsTerminal() {
		v.Speed = 0
		return nil
	}
	before := v.Status

	// Доехавшая машина покинула дорогу
	if leader != nil && leader.Status == models.StatusFinished {
		leader = nil
	}
	gap := leaderDistance(road, v, leader)
	h := road.Hazard
	hazardAhead := h != nil && v.ID != h.OriginVehicleID && hazardIsAhead(road, v, h)

	// Восстановление
	if v.Status == models.StatusStopped && (leader == nil || !isBlocking(leader.Status)) {
		v.Status = models.StatusNormal
	}
	if v.Status.IsBraking() && !hazardAhead {
		v.Status = models.StatusNormal
	}

	// Канал оповещения; стоящей из-за этой аварии машине повторно не сообщаем
	var events []models.Event
	if road.AlertChannel && hazardAhead && v.Status == models.StatusNormal {
		v.Status = models.StatusBrakingAlert
		v.AlertMessage = fmt.Sprintf("ATOA alert: accident at %d, slowing down", int(h.Position))
		if before != models.StatusBrakingAlert && before != models.StatusStopped {
			events = append(events, models.Event{
				VehicleID:      v.ID,
				Kind:           models.EventAlertReceived,
				Message:        v.AlertMessage,
				ShouldAnnounce: true,
			})
		}
	}

	// Зрительный канал; стоящая машина ни к кому не приближается
	if leader != nil && gap <= visibility && v.Status != models.StatusStopped {
		switch {
		case leader.Status == models.StatusCrashed && gap <= e.cfg.BrakingDistance:
			v.Status = models.StatusCrashed
			v.Speed = 0
			v.AlertMessage = "Too close to stop, crashed"
			return append(events, transitionEvents(before, v)...)
		case leader.Status == models.StatusCrashed && v.Status == models.StatusNormal:
			v.Status = models.StatusBrakingVisual
			v.AlertMessage = "Driver view: crash ahead, braking"
		case (leader.Status.IsBraking() || leader.Status == models.StatusStopped) && v.Status == models.StatusNormal:
			v.Status = models.StatusBrakingVisual
			v.AlertMessage = "Driver view: vehicle ahead braking"
		}
	}

	// Скорость
	switch {
	case v.Status.IsBraking():
		v.Speed = e.cfg.BrakingSpeed
		if target := stopTarget(road, v, leader, gap, hazardAhead); target <= e.cfg.BrakingDistance+e.cfg.StopMargin {
			v.Status = models.StatusStopped
			v.Speed = 0
			v.AlertMessage = "Stopped safely"
		}
	case v.Status == models.StatusNormal:
		v.Speed = e.cfg.NormalSpeed
		if gap < e.cfg.BrakingDistance+e.cfg.FollowBuffer {
			v.Speed = e.cfg.BrakingSpeed
		}
	default:
		v.Speed = 0
	}

	e.integrate(road, v)
	if len(events) > 0 && v.Status == models.StatusBrakingAlert {
		return events
	}
	return append(events, transitionEvents(before, v)...)
}

func (e *Engine) integrate(road *models.RoadState, v *models.Vehicle) {
	if v.Status == models.StatusStopped || v.Status.IsTerminal() {
		return
	}
	v.Position += v.Speed
	if road.Topology == models.TopologyLooping {
		v.Position = geometry.Wrap(v.Position, road.Length)
		return
	}
	if v.Position >= road.Length {
		v.Position = road.Length
		v.Status = models.StatusFinished
		v.Speed = 0
		v.AlertMessage = ""
	}
}

// hazardIsAhead - авария еще впереди машины. На кольце впереди любая точка,
// кроме самой аварии
func hazardIsAhead(road *models.RoadState, v *models.Vehicle, h *models.Hazard) bool {
	if road.Topology == models.TopologyLooping {
		return distanceAhead(road, v.Position, h.Position) > 0
	}
	return v.Position < h.Position
}

// stopTarget - расстояние до точки остановки: авария, пока она впереди, иначе
// ведущая машина. Стоящая перед аварией машина ближе, очередь не перекрывается
func stopTarget(road *models.RoadState, v, leader *models.Vehicle, gap float64, hazardAhead bool) float64 {
	if !hazardAhead {
		return gap
	}
	target := distanceAhead(road, v.Position, road.Hazard.Position)
	if leader != nil && isBlocking(leader.Status) && gap < target {
		target = gap
	}
	return target
}

func isBlocking(s models.VehicleStatus) bool {
	return s == models.StatusStopped || s == models.StatusCrashed
}

// transitionEvents превращает итоговую смену статуса за тик в события
func transitionEvents(before models.VehicleStatus, v *models.Vehicle) []models.Event {
	if before == v.Status {
		return nil
	}
	ev := models.Event{VehicleID: v.ID, Message: v.AlertMessage}
	switch v.Status {
	case models.StatusBrakingAlert:
		ev.Kind = models.EventAlertReceived
		ev.ShouldAnnounce = true
	case models.StatusBrakingVisual:
		ev.Kind = models.EventVisualBraking
	case models.StatusStopped:
		ev.Kind = models.EventStopped
	case models.StatusCrashed:
		ev.Kind = models.EventChainCrash
		ev.ShouldAnnounce = true
	case models.StatusFinished:
		ev.Kind = models.EventFinished
		ev.Message = "Reached the end of the road"
	case models.StatusNormal:
		ev.Kind = models.EventResumed
		ev.Message = "Alert cleared, resuming"
		v.AlertMessage = ""
	default:
		return nil
	}
	return []models.Event{ev}
}
