package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/atoa_simulation/internal/models"
	"github.com/shenikar/atoa_simulation/internal/service"
)

// MemoryRepository хранит прогоны в памяти процесса. Используется cmd/simulate,
// где нет ни Postgres, ни Redis.
type MemoryRepository struct {
	mu     sync.RWMutex
	sims   map[uuid.UUID]*models.Simulation
	events map[uuid.UUID][]models.Event
}

var (
	_ service.SimulationRepository = (*MemoryRepository)(nil)
	_ service.SnapshotCache        = (*MemoryRepository)(nil)
)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		sims:   make(map[uuid.UUID]*models.Simulation),
		events: make(map[uuid.UUID][]models.Event),
	}
}

func (r *MemoryRepository) CreateSimulation(_ context.Context, sim *models.Simulation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sims[sim.ID]; ok {
		return fmt.Errorf("simulation %s already exists", sim.ID)
	}
	r.sims[sim.ID] = sim.Clone()
	return nil
}

func (r *MemoryRepository) UpdateSimulation(_ context.Context, sim *models.Simulation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sims[sim.ID]; !ok {
		return fmt.Errorf("%w: %s not found for update", service.ErrSimulationNotFound, sim.ID)
	}
	r.sims[sim.ID] = sim.Clone()
	return nil
}

func (r *MemoryRepository) GetSimulation(_ context.Context, id uuid.UUID) (*models.Simulation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sim, ok := r.sims[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", service.ErrSimulationNotFound, id)
	}
	return sim.Clone(), nil
}

func (r *MemoryRepository) ListSimulations(_ context.Context, page, pageSize int) ([]*models.Simulation, error) {
	r.mu.RLock()
	all := make([]*models.Simulation, 0, len(r.sims))
	for _, sim := range r.sims {
		all = append(all, sim.Clone())
	}
	r.mu.RUnlock()

	// Новые первыми, как и в Postgres
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return paginate(all, page, pageSize), nil
}

func (r *MemoryRepository) SaveEvents(_ context.Context, id uuid.UUID, events []models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[id] = append(r.events[id], events...)
	return nil
}

func (r *MemoryRepository) ListEvents(_ context.Context, id uuid.UUID, page, pageSize int) ([]models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := paginate(r.events[id], page, pageSize)
	return append(make([]models.Event, 0, len(out)), out...), nil
}

// Снимки в памяти совпадают с записями, отдельного кеша нет
func (r *MemoryRepository) GetSnapshot(ctx context.Context, id uuid.UUID) (*models.Simulation, error) {
	sim, err := r.GetSimulation(ctx, id)
	if err != nil {
		return nil, nil
	}
	return sim, nil
}

func (r *MemoryRepository) SetSnapshot(context.Context, *models.Simulation) error { return nil }

func (r *MemoryRepository) DeleteSnapshot(context.Context, uuid.UUID) error { return nil }

func paginate[T any](items []T, page, pageSize int) []T {
	offset := (page - 1) * pageSize
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
