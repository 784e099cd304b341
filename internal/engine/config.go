package engine

import (
	"fmt"

	"github.com/shenikar/atoa_simulation/internal/models"
)

// ScriptedCrash - запланированная авария машины VehicleID на тике Tick
type ScriptedCrash struct {
	Tick      int    `json:"tick"`
	VehicleID string `json:"vehicle_id"`
}

// Config - параметры движка, неизменные на все время его жизни
type Config struct {
	RoadLength          float64
	Topology            models.Topology
	VehicleCount        int
	VehicleSpacing      float64
	BaseVisibility      float64
	BrakingDistance     float64
	FollowBuffer        float64
	StopMargin          float64
	SpawnMargin         float64
	NormalSpeed         float64
	BrakingSpeed        float64
	AccidentProbability float64
	HazardDuration      int
	Script              []ScriptedCrash
}

// DefaultConfig - демонстрационные значения: кольцо 100, три машины через 20,
// видимость 50 в ясную погоду, тормозной путь 15
func DefaultConfig() Config {
	return Config{
		RoadLength:          100,
		Topology:            models.TopologyLooping,
		VehicleCount:        3,
		VehicleSpacing:      20,
		BaseVisibility:      50,
		BrakingDistance:     15,
		FollowBuffer:        5,
		StopMargin:          5,
		SpawnMargin:         10,
		NormalSpeed:         2,
		BrakingSpeed:        1,
		AccidentProbability: 0.05,
		HazardDuration:      20,
	}
}

// ConfigFromParams строит конфигурацию движка из параметров прогона
func ConfigFromParams(p models.SimulationParams) Config {
	return Config{
		RoadLength:          p.RoadLength,
		Topology:            p.Topology,
		VehicleCount:        p.VehicleCount,
		VehicleSpacing:      p.VehicleSpacing,
		BaseVisibility:      p.BaseVisibility,
		BrakingDistance:     p.BrakingDistance,
		FollowBuffer:        p.FollowBuffer,
		StopMargin:          p.StopMargin,
		SpawnMargin:         p.SpawnMargin,
		NormalSpeed:         p.NormalSpeed,
		BrakingSpeed:        p.BrakingSpeed,
		AccidentProbability: p.AccidentProbability,
		HazardDuration:      p.HazardDuration,
	}
}

// Validate отклоняет конфигурации, с которыми движок не работает
func (c Config) Validate() error {
	switch {
	case c.VehicleCount < 1:
		return fmt.Errorf("%w: vehicle count must be positive, got %d", ErrInvalidConfig, c.VehicleCount)
	case c.RoadLength <= 0:
		return fmt.Errorf("%w: road length must be positive, got %v", ErrInvalidConfig, c.RoadLength)
	case c.Topology != models.TopologyLooping && c.Topology != models.TopologyBounded:
		return fmt.Errorf("%w: unknown topology %q", ErrInvalidConfig, c.Topology)
	case c.VehicleSpacing < 0:
		return fmt.Errorf("%w: vehicle spacing must not be negative", ErrInvalidConfig)
	case float64(c.VehicleCount-1)*c.VehicleSpacing >= c.RoadLength:
		return fmt.Errorf("%w: %d vehicles spaced %v apart do not fit on a road of %v", ErrInvalidConfig, c.VehicleCount, c.VehicleSpacing, c.RoadLength)
	case c.BaseVisibility < 0:
		return fmt.Errorf("%w: base visibility must not be negative", ErrInvalidConfig)
	case c.BrakingDistance < 0 || c.FollowBuffer < 0 || c.StopMargin < 0 || c.SpawnMargin < 0:
		return fmt.Errorf("%w: distances and margins must not be negative", ErrInvalidConfig)
	case c.NormalSpeed <= 0 || c.BrakingSpeed <= 0:
		return fmt.Errorf("%w: speeds must be positive", ErrInvalidConfig)
	case c.BrakingSpeed > c.NormalSpeed:
		return fmt.Errorf("%w: braking speed %v exceeds normal speed %v", ErrInvalidConfig, c.BrakingSpeed, c.NormalSpeed)
	case c.AccidentProbability < 0 || c.AccidentProbability > 1:
		return fmt.Errorf("%w: accident probability must be within [0,1], got %v", ErrInvalidConfig, c.AccidentProbability)
	case c.HazardDuration <= 0:
		return fmt.Errorf("%w: hazard duration must be positive, got %d", ErrInvalidConfig, c.HazardDuration)
	}
	for _, s := range c.Script {
		if s.VehicleID == "" {
			return fmt.Errorf("%w: scripted crash at tick %d has no vehicle", ErrInvalidConfig, s.Tick)
		}
	}
	return nil
}
