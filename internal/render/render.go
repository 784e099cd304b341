// Package render рисует RoadState одной строкой ASCII. Результат зависит только
// от дороги, видимости и точки обзора.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/shenikar/atoa_simulation/internal/geometry"
	"github.com/shenikar/atoa_simulation/internal/models"
)

const (
	CellEmpty   = '-'
	CellFog     = '~'
	CellHazard  = '!'
	CellNormal  = '>'
	CellBraking = 'B'
	CellStopped = '#'
	CellCrashed = 'X'
	CellViewer  = '@'
)

// Legend - расшифровка символов Road
const Legend = "> normal  B braking  # stopped  X crashed  ! broadcast hazard  ~ fog  @ viewpoint"

// Options - параметры проекции
type Options struct {
	// Viewpoint - машина, глазами водителя которой рисуем; пусто - вся дорога
	Viewpoint string
	// Visibility - дальность видимости, только вместе с Viewpoint
	Visibility float64
	// Width - число клеток; ноль - клетка на единицу дороги
	Width int
}

// Road проецирует дорогу на строку клеток
func Road(road *models.RoadState, opts Options) (string, error) {
	width := opts.Width
	if width <= 0 {
		width = int(math.Ceil(road.Length))
	}
	if width <= 0 {
		return "", fmt.Errorf("render: road %s has no length", road.ID)
	}

	var viewer *models.Vehicle
	if opts.Viewpoint != "" {
		viewer = road.Vehicle(opts.Viewpoint)
		if viewer == nil {
			return "", fmt.Errorf("render: vehicle %q not on road %s", opts.Viewpoint, road.ID)
		}
	}

	cells := make([]rune, width)
	for i := range cells {
		cells[i] = CellEmpty
		if viewer != nil && !visible(road, viewer, cellStart(i, width, road.Length), opts.Visibility) {
			cells[i] = CellFog
		}
	}

	// Об аварии с оповещением знает каждый водитель, туман не мешает
	if h := road.Hazard; h != nil && road.AlertChannel {
		if i, ok := cellOf(h.Position, width, road.Length); ok {
			cells[i] = CellHazard
		}
	}

	// С хвоста к голове: в общей клетке остается головная машина
	for k := len(road.Vehicles) - 1; k >= 0; k-- {
		v := road.Vehicles[k]
		i, ok := cellOf(v.Position, width, road.Length)
		if !ok || v.Status == models.StatusFinished {
			continue
		}
		if viewer != nil && v != viewer && !visible(road, viewer, v.Position, opts.Visibility) {
			continue
		}
		cells[i] = symbol(v.Status)
	}
	if viewer != nil {
		if i, ok := cellOf(viewer.Position, width, road.Length); ok {
			cells[i] = CellViewer
		}
	}
	return string(cells), nil
}

func symbol(s models.VehicleStatus) rune {
	switch {
	case s == models.StatusCrashed:
		return CellCrashed
	case s == models.StatusStopped:
		return CellStopped
	case s.IsBraking():
		return CellBraking
	default:
		return CellNormal
	}
}

// visible - точка pos в пределах видимости впереди наблюдателя
func visible(road *models.RoadState, viewer *models.Vehicle, pos, visibility float64) bool {
	var d float64
	if road.Topology == models.TopologyLooping {
		d = geometry.WrappedDistance(viewer.Position, pos, road.Length)
	} else {
		d = pos - viewer.Position
	}
	return d >= 0 && d <= visibility
}

func cellStart(i, width int, length float64) float64 {
	return float64(i) * length / float64(width)
}

func cellOf(pos float64, width int, length float64) (int, bool) {
	if pos < 0 || pos > length {
		return 0, false
	}
	i := int(pos * float64(width) / length)
	if i >= width {
		i = width - 1
	}
	return i, true
}

// Frame рисует строку дороги и строку статуса на каждую машину
func Frame(road *models.RoadState, opts Options) (string, error) {
	line, err := Road(road, opts)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s |%s|\n", road.ID, line)
	for _, v := range road.Vehicles {
		fmt.Fprintf(&b, "  %-6s %6.1f  %-14s %s\n", v.ID, v.Position, v.Status, v.AlertMessage)
	}
	return b.String(), nil
}
