package v1

import (
	"github.com/shenikar/atoa_simulation/internal/config"
	"github.com/shenikar/atoa_simulation/internal/geometry"
	"github.com/shenikar/atoa_simulation/internal/models"
	"github.com/shenikar/atoa_simulation/internal/service"
)

// DTOToCreateRequest дополняет запрос значениями по умолчанию из конфигурации
func DTOToCreateRequest(dto CreateSimulationRequest, defaults config.SimulationDefaults) service.CreateRequest {
	p := defaults.Params
	setFloat(&p.RoadLength, dto.RoadLength)
	if dto.Topology != nil {
		p.Topology = models.Topology(*dto.Topology)
	}
	setInt(&p.VehicleCount, dto.VehicleCount)
	setFloat(&p.VehicleSpacing, dto.VehicleSpacing)
	setFloat(&p.BaseVisibility, dto.BaseVisibility)
	setFloat(&p.BrakingDistance, dto.BrakingDistance)
	setFloat(&p.FollowBuffer, dto.FollowBuffer)
	setFloat(&p.StopMargin, dto.StopMargin)
	setFloat(&p.SpawnMargin, dto.SpawnMargin)
	setFloat(&p.NormalSpeed, dto.NormalSpeed)
	setFloat(&p.BrakingSpeed, dto.BrakingSpeed)
	setFloat(&p.AccidentProbability, dto.AccidentProbability)
	setInt(&p.HazardDuration, dto.HazardDuration)
	if dto.Seed != nil {
		p.Seed = *dto.Seed
	}

	req := service.CreateRequest{Params: p, FogLevel: defaults.FogLevel}
	setFloat(&req.FogLevel, dto.FogLevel)
	for _, e := range dto.Script {
		req.Script = append(req.Script, service.ScriptEntry{Tick: e.Tick, VehicleSeq: e.VehicleSeq})
	}
	return req
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// ModelToSimulationResponse преобразует доменную модель в DTO для ответа
func ModelToSimulationResponse(model *models.Simulation) *SimulationResponse {
	resp := &SimulationResponse{
		ID:         model.ID,
		Status:     model.Status,
		Tick:       model.Tick,
		FogLevel:   model.FogLevel,
		Visibility: geometry.VisibilityDistance(model.FogLevel, model.Params.BaseVisibility),
		Seed:       model.Params.Seed,
		Roads:      make([]RoadResponse, 0, len(model.Roads)),
		Stats:      make(map[string]RoadStatsResponse, len(model.Stats)),
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
	for _, road := range model.Roads {
		resp.Roads = append(resp.Roads, modelToRoadResponse(road))
	}
	for id, st := range model.Stats {
		resp.Stats[id] = RoadStatsResponse{
			AlertsReceived: st.AlertsReceived,
			VisualBrakes:   st.VisualBrakes,
			SafeStops:      st.SafeStops,
			ChainCrashes:   st.ChainCrashes,
			Hazards:        st.Hazards,
		}
	}
	return resp
}

func modelToRoadResponse(road *models.RoadState) RoadResponse {
	resp := RoadResponse{
		ID:           road.ID,
		Topology:     string(road.Topology),
		Length:       road.Length,
		AlertChannel: road.AlertChannel,
		Vehicles:     make([]VehicleResponse, 0, len(road.Vehicles)),
	}
	if h := road.Hazard; h != nil {
		resp.Hazard = &HazardResponse{
			OriginVehicleID: h.OriginVehicleID,
			Position:        h.Position,
			CreatedAt:       h.CreatedAt,
		}
	}
	for _, v := range road.Vehicles {
		resp.Vehicles = append(resp.Vehicles, VehicleResponse{
			ID:           v.ID,
			Seq:          v.Seq,
			Position:     v.Position,
			Speed:        v.Speed,
			Status:       string(v.Status),
			AlertMessage: v.AlertMessage,
		})
	}
	return resp
}

// ModelsToSimulationResponses преобразует слайс моделей в слайс DTO
func ModelsToSimulationResponses(models []*models.Simulation) []*SimulationResponse {
	responses := make([]*SimulationResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToSimulationResponse(model)
	}
	return responses
}

// ModelToEventResponse преобразует событие в DTO
func ModelToEventResponse(ev models.Event) EventResponse {
	return EventResponse{
		Tick:           ev.Tick,
		RoadID:         ev.RoadID,
		VehicleID:      ev.VehicleID,
		Kind:           string(ev.Kind),
		Message:        ev.Message,
		ShouldAnnounce: ev.ShouldAnnounce,
	}
}

// ModelsToEventResponses преобразует слайс событий в слайс DTO
func ModelsToEventResponses(events []models.Event) []EventResponse {
	responses := make([]EventResponse, len(events))
	for i, ev := range events {
		responses[i] = ModelToEventResponse(ev)
	}
	return responses
}
