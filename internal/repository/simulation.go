package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/atoa_simulation/internal/models"
	"github.com/shenikar/atoa_simulation/internal/service"
)

// SimulationRepository хранит историю прогонов в Postgres и последний снимок в Redis
type SimulationRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	snapshotTTL time.Duration
}

var (
	_ service.SimulationRepository = (*SimulationRepository)(nil)
	_ service.SnapshotCache        = (*SimulationRepository)(nil)
)

func NewSimulationRepository(db *pgxpool.Pool, redisClient *redis.Client, snapshotTTL time.Duration) *SimulationRepository {
	return &SimulationRepository{
		db:          db,
		redisClient: redisClient,
		snapshotTTL: snapshotTTL,
	}
}

// CreateSimulation создает запись о прогоне в бд
func (r *SimulationRepository) CreateSimulation(ctx context.Context, sim *models.Simulation) error {
	params, roads, stats, err := encodeSimulation(sim)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO simulations (id, status, tick, fog_level, params, roads, stats, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = r.db.Exec(ctx, query,
		sim.ID,
		sim.Status,
		sim.Tick,
		sim.FogLevel,
		params,
		roads,
		stats,
		sim.CreatedAt,
		sim.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create simulation: %w", err)
	}
	return nil
}

// UpdateSimulation перезаписывает сводку прогона: тик, туман, статус, состояние дорог
func (r *SimulationRepository) UpdateSimulation(ctx context.Context, sim *models.Simulation) error {
	_, roads, stats, err := encodeSimulation(sim)
	if err != nil {
		return err
	}
	query := `
		UPDATE simulations SET
			status = $1,
			tick = $2,
			fog_level = $3,
			roads = $4,
			stats = $5,
			updated_at = $6
		WHERE id = $7;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		sim.Status,
		sim.Tick,
		sim.FogLevel,
		roads,
		stats,
		sim.UpdatedAt,
		sim.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update simulation: %w", err)
	}

	// RowsAffected() == 0 - прогона с таким id не существует
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s not found for update", service.ErrSimulationNotFound, sim.ID)
	}
	return nil
}

// GetSimulation возвращает прогон по его UUID
func (r *SimulationRepository) GetSimulation(ctx context.Context, id uuid.UUID) (*models.Simulation, error) {
	query := `
		SELECT id, status, tick, fog_level, params, roads, stats, created_at, updated_at
		FROM simulations
		WHERE id = $1;
	`
	sim, err := scanSimulation(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", service.ErrSimulationNotFound, id)
		}
		return nil, fmt.Errorf("failed to get simulation by id: %w", err)
	}
	return sim, nil
}

// ListSimulations возвращает список прогонов с пагинацией, новые первыми
func (r *SimulationRepository) ListSimulations(ctx context.Context, page, pageSize int) ([]*models.Simulation, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT id, status, tick, fog_level, params, roads, stats, created_at, updated_at
		FROM simulations
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list simulations: %w", err)
	}
	defer rows.Close()

	sims := make([]*models.Simulation, 0)
	for rows.Next() {
		sim, err := scanSimulation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan simulation row: %w", err)
		}
		sims = append(sims, sim)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return sims, nil
}

// SaveEvents дописывает события шага одним батчем
func (r *SimulationRepository) SaveEvents(ctx context.Context, id uuid.UUID, events []models.Event) error {
	query := `
		INSERT INTO simulation_events (simulation_id, tick, road_id, vehicle_id, kind, message, should_announce)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	batch := &pgx.Batch{}
	for _, ev := range events {
		batch.Queue(query, id, ev.Tick, ev.RoadID, ev.VehicleID, string(ev.Kind), ev.Message, ev.ShouldAnnounce)
	}
	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to save simulation events: %w", err)
	}
	return nil
}

// ListEvents возвращает журнал событий прогона в порядке возникновения
func (r *SimulationRepository) ListEvents(ctx context.Context, id uuid.UUID, page, pageSize int) ([]models.Event, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT tick, road_id, vehicle_id, kind, message, should_announce
		FROM simulation_events
		WHERE simulation_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, id, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list simulation events: %w", err)
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		var ev models.Event
		var kind string
		if err := rows.Scan(&ev.Tick, &ev.RoadID, &ev.VehicleID, &kind, &ev.Message, &ev.ShouldAnnounce); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		ev.Kind = models.EventKind(kind)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return events, nil
}

// GetSnapshot пытается получить снимок прогона из Redis; промах - (nil, nil)
func (r *SimulationRepository) GetSnapshot(ctx context.Context, id uuid.UUID) (*models.Simulation, error) {
	val, err := r.redisClient.Get(ctx, snapshotKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snapshot from cache: %w", err)
	}

	sim := &models.Simulation{}
	if err := json.Unmarshal(val, sim); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot from cache: %w", err)
	}
	return sim, nil
}

// SetSnapshot сохраняет снимок прогона в Redis на SnapshotTTL
func (r *SimulationRepository) SetSnapshot(ctx context.Context, sim *models.Simulation) error {
	val, err := json.Marshal(sim)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, snapshotKey(sim.ID), val, r.snapshotTTL).Err(); err != nil {
		return fmt.Errorf("failed to set snapshot in cache: %w", err)
	}
	return nil
}

// DeleteSnapshot удаляет снимок из кеша
func (r *SimulationRepository) DeleteSnapshot(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, snapshotKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete snapshot from cache: %w", err)
	}
	return nil
}

func snapshotKey(id uuid.UUID) string {
	return fmt.Sprintf("simulation:%s", id.String())
}

func encodeSimulation(sim *models.Simulation) (params, roads, stats []byte, err error) {
	if params, err = json.Marshal(sim.Params); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal simulation params: %w", err)
	}
	if roads, err = json.Marshal(sim.Roads); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal simulation roads: %w", err)
	}
	if stats, err = json.Marshal(sim.Stats); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal simulation stats: %w", err)
	}
	return params, roads, stats, nil
}

func scanSimulation(row pgx.Row) (*models.Simulation, error) {
	sim := &models.Simulation{}
	var params, roads, stats []byte
	err := row.Scan(
		&sim.ID,
		&sim.Status,
		&sim.Tick,
		&sim.FogLevel,
		&params,
		&roads,
		&stats,
		&sim.CreatedAt,
		&sim.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(params, &sim.Params); err != nil {
		return nil, fmt.Errorf("failed to unmarshal simulation params: %w", err)
	}
	if err := json.Unmarshal(roads, &sim.Roads); err != nil {
		return nil, fmt.Errorf("failed to unmarshal simulation roads: %w", err)
	}
	if err := json.Unmarshal(stats, &sim.Stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal simulation stats: %w", err)
	}
	return sim, nil
}
