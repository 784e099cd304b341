package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/atoa_simulation/internal/models"
)

const (
	announceQueueKey = "atoa_announcements"
)

// Announcement - событие для голосового оповещателя
type Announcement struct {
	SimulationID uuid.UUID        `json:"simulation_id"`
	Tick         int              `json:"tick"`
	RoadID       string           `json:"road_id"`
	VehicleID    string           `json:"vehicle_id"`
	Kind         models.EventKind `json:"kind"`
	Message      string           `json:"message"`
	Timestamp    time.Time        `json:"timestamp"`
}

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

// AnnouncementPublisher - интерфейс для публикации оповещений
type AnnouncementPublisher interface {
	Publish(ctx context.Context, announcement Announcement) error
}

// RedisAnnouncementPublisher - реализация AnnouncementPublisher, использующая Redis
type RedisAnnouncementPublisher struct {
	redisClient *redis.Client
}

// NewRedisAnnouncementPublisher создает новый RedisAnnouncementPublisher
func NewRedisAnnouncementPublisher(client *redis.Client) *RedisAnnouncementPublisher {
	return &RedisAnnouncementPublisher{
		redisClient: client,
	}
}

// Publish кладет оповещение в очередь Redis
func (p *RedisAnnouncementPublisher) Publish(ctx context.Context, announcement Announcement) error {
	payload, err := json.Marshal(announcement)
	if err != nil {
		return fmt.Errorf("failed to marshal announcement: %w", err)
	}

	// LPUSH слева, воркер забирает справа через BRPOP
	if err := p.redisClient.LPush(ctx, announceQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish announcement to Redis: %w", err)
	}
	return nil
}

// DiscardPublisher отбрасывает оповещения; используется без Redis (cmd/simulate)
type DiscardPublisher struct{}

func (DiscardPublisher) Publish(context.Context, Announcement) error { return nil }
