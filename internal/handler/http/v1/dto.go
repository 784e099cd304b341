package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateSimulationRequest DTO для создания прогона; незаданные поля берутся из конфигурации
// @Description DTO для создания прогона
type CreateSimulationRequest struct {
	RoadLength          *float64             `json:"road_length,omitempty" validate:"omitempty,gt=0"`
	Topology            *string              `json:"topology,omitempty" validate:"omitempty,oneof=looping bounded"`
	VehicleCount        *int                 `json:"vehicle_count,omitempty" validate:"omitempty,min=1,max=50"`
	VehicleSpacing      *float64             `json:"vehicle_spacing,omitempty" validate:"omitempty,gte=0"`
	BaseVisibility      *float64             `json:"base_visibility,omitempty" validate:"omitempty,gte=0"`
	BrakingDistance     *float64             `json:"braking_distance,omitempty" validate:"omitempty,gte=0"`
	FollowBuffer        *float64             `json:"follow_buffer,omitempty" validate:"omitempty,gte=0"`
	StopMargin          *float64             `json:"stop_margin,omitempty" validate:"omitempty,gte=0"`
	SpawnMargin         *float64             `json:"spawn_margin,omitempty" validate:"omitempty,gte=0"`
	NormalSpeed         *float64             `json:"normal_speed,omitempty" validate:"omitempty,gt=0"`
	BrakingSpeed        *float64             `json:"braking_speed,omitempty" validate:"omitempty,gt=0"`
	AccidentProbability *float64             `json:"accident_probability,omitempty" validate:"omitempty,gte=0,lte=1"`
	HazardDuration      *int                 `json:"hazard_duration,omitempty" validate:"omitempty,min=1"`
	Seed                *int64               `json:"seed,omitempty"`
	FogLevel            *float64             `json:"fog_level,omitempty" validate:"omitempty,gte=0,lte=90"`
	Script              []ScriptEntryRequest `json:"script,omitempty" validate:"omitempty,dive"`
}

// ScriptEntryRequest - запланированная авария машины vehicle_seq на обеих дорогах
type ScriptEntryRequest struct {
	Tick       int `json:"tick" validate:"min=1"`
	VehicleSeq int `json:"vehicle_seq" validate:"min=0"`
}

// StepRequest DTO для продвижения прогона
// @Description DTO для продвижения прогона на несколько тиков
type StepRequest struct {
	Ticks int `json:"ticks" validate:"required,min=1"`
}

// FogRequest DTO для изменения тумана
// @Description DTO для изменения уровня тумана
type FogRequest struct {
	FogLevel *float64 `json:"fog_level" validate:"required,gte=0,lte=90"`
}

// HazardRequest DTO для ручной аварии
// @Description DTO для ручного создания аварии
type HazardRequest struct {
	RoadID    string `json:"road_id" validate:"required,oneof=A B"`
	VehicleID string `json:"vehicle_id" validate:"required"`
}

// VehicleResponse DTO машины
type VehicleResponse struct {
	ID           string  `json:"id"`
	Seq          int     `json:"seq"`
	Position     float64 `json:"position"`
	Speed        float64 `json:"speed"`
	Status       string  `json:"status"`
	AlertMessage string  `json:"alert_message,omitempty"`
}

// HazardResponse DTO активной аварии
type HazardResponse struct {
	OriginVehicleID string  `json:"origin_vehicle_id,omitempty"`
	Position        float64 `json:"position"`
	CreatedAt       int     `json:"created_at"`
}

// RoadResponse DTO дороги
type RoadResponse struct {
	ID           string            `json:"id"`
	Topology     string            `json:"topology"`
	Length       float64           `json:"length"`
	AlertChannel bool              `json:"alert_channel"`
	Hazard       *HazardResponse   `json:"hazard,omitempty"`
	Vehicles     []VehicleResponse `json:"vehicles"`
}

// RoadStatsResponse DTO счетчиков дороги
type RoadStatsResponse struct {
	AlertsReceived int `json:"alerts_received"`
	VisualBrakes   int `json:"visual_brakes"`
	SafeStops      int `json:"safe_stops"`
	ChainCrashes   int `json:"chain_crashes"`
	Hazards        int `json:"hazards"`
}

// SimulationResponse DTO для ответа с состоянием прогона
// @Description DTO для ответа с состоянием прогона
type SimulationResponse struct {
	ID         uuid.UUID                    `json:"id"`
	Status     string                       `json:"status"`
	Tick       int                          `json:"tick"`
	FogLevel   float64                      `json:"fog_level"`
	Visibility float64                      `json:"visibility"`
	Seed       int64                        `json:"seed"`
	Roads      []RoadResponse               `json:"roads"`
	Stats      map[string]RoadStatsResponse `json:"stats"`
	CreatedAt  time.Time                    `json:"created_at"`
	UpdatedAt  time.Time                    `json:"updated_at"`
}

// EventResponse DTO события
type EventResponse struct {
	Tick           int    `json:"tick"`
	RoadID         string `json:"road_id"`
	VehicleID      string `json:"vehicle_id"`
	Kind           string `json:"kind"`
	Message        string `json:"message"`
	ShouldAnnounce bool   `json:"should_announce"`
}

// StepResponse DTO результата шага
// @Description Состояние после шага и события шага
type StepResponse struct {
	Simulation *SimulationResponse `json:"simulation"`
	Events     []EventResponse     `json:"events"`
}

// ViewResponse DTO ASCII-проекции
// @Description ASCII-проекция дороги
type ViewResponse struct {
	RoadID    string `json:"road_id"`
	Viewpoint string `json:"viewpoint,omitempty"`
	View      string `json:"view"`
	Legend    string `json:"legend"`
}
