package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	SimulationRunning  = "running"
	SimulationFinished = "finished"
	SimulationStopped  = "stopped"
)

// SimulationParams - настраиваемые параметры прогона
type SimulationParams struct {
	RoadLength          float64  `json:"road_length"`
	Topology            Topology `json:"topology"`
	VehicleCount        int      `json:"vehicle_count"`
	VehicleSpacing      float64  `json:"vehicle_spacing"`
	BaseVisibility      float64  `json:"base_visibility"`
	BrakingDistance     float64  `json:"braking_distance"`
	FollowBuffer        float64  `json:"follow_buffer"`
	StopMargin          float64  `json:"stop_margin"`
	SpawnMargin         float64  `json:"spawn_margin"`
	NormalSpeed         float64  `json:"normal_speed"`
	BrakingSpeed        float64  `json:"braking_speed"`
	AccidentProbability float64  `json:"accident_probability"`
	HazardDuration      int      `json:"hazard_duration"`
	Seed                int64    `json:"seed"`
}

// RoadStats - накопленные счетчики событий по дороге
type RoadStats struct {
	AlertsReceived int `json:"alerts_received"`
	VisualBrakes   int `json:"visual_brakes"`
	SafeStops      int `json:"safe_stops"`
	ChainCrashes   int `json:"chain_crashes"`
	Hazards        int `json:"hazards"`
}

// Simulation - один прогон сравнения контрольной дороги и дороги с ATOA
type Simulation struct {
	ID        uuid.UUID             `json:"id"`
	Status    string                `json:"status"`
	Tick      int                   `json:"tick"`
	FogLevel  float64               `json:"fog_level"`
	Params    SimulationParams      `json:"params"`
	Roads     []*RoadState          `json:"roads"`
	Stats     map[string]*RoadStats `json:"stats"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// Road возвращает дорогу по id или nil
func (s *Simulation) Road(id string) *RoadState {
	for _, r := range s.Roads {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// Record добавляет события тиков в счетчики дорог
func (s *Simulation) Record(events []Event) {
	if s.Stats == nil {
		s.Stats = make(map[string]*RoadStats)
	}
	for _, e := range events {
		st, ok := s.Stats[e.RoadID]
		if !ok {
			st = &RoadStats{}
			s.Stats[e.RoadID] = st
		}
		switch e.Kind {
		case EventAlertReceived:
			st.AlertsReceived++
		case EventVisualBraking:
			st.VisualBrakes++
		case EventStopped:
			st.SafeStops++
		case EventChainCrash:
			st.ChainCrashes++
		case EventHazardCreated:
			st.Hazards++
		}
	}
}

// Clone - глубокая копия, которую можно отдавать, пока прогон продолжается
func (s *Simulation) Clone() *Simulation {
	out := *s
	out.Roads = make([]*RoadState, len(s.Roads))
	for i, r := range s.Roads {
		out.Roads[i] = r.Clone()
	}
	out.Stats = make(map[string]*RoadStats, len(s.Stats))
	for k, v := range s.Stats {
		st := *v
		out.Stats[k] = &st
	}
	return &out
}
