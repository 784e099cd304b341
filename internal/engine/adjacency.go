package engine

import (
	"fmt"

	"github.com/shenikar/atoa_simulation/internal/models"
)

// Leaders возвращает для каждого индекса road.Vehicles индекс ведущей машины
// или -1. Машины должны быть отсортированы от головной.
//
// На кольце i едет за i-1, а 0 за последней. На ограниченной дороге пары заданы
// порядком выпуска: seq k едет за seq k-1.
func Leaders(road *models.RoadState) ([]int, error) {
	n := len(road.Vehicles)
	leaders := make([]int, n)
	for i := range leaders {
		leaders[i] = -1
	}

	switch road.Topology {
	case models.TopologyLooping:
		if n < 2 {
			return leaders, nil
		}
		for i := range leaders {
			leaders[i] = i - 1
		}
		leaders[0] = n - 1
	case models.TopologyBounded:
		bySeq := make(map[int]int, n)
		for i, v := range road.Vehicles {
			if _, dup := bySeq[v.Seq]; dup {
				return nil, fmt.Errorf("%w: duplicate spawn sequence %d on road %s", ErrInconsistentState, v.Seq, road.ID)
			}
			bySeq[v.Seq] = i
		}
		for i, v := range road.Vehicles {
			if j, ok := bySeq[v.Seq-1]; ok {
				leaders[i] = j
			}
		}
	default:
		return nil, fmt.Errorf("%w: unknown topology %q", ErrInconsistentState, road.Topology)
	}
	return leaders, nil
}
