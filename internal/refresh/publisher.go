package refresh

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/murefu/geo_status_engine/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	refreshQueueKey = "status_refresh_events"
)

// RefreshEvent - запрос на пересчет статуса (район, услуга). EventID
// связывает логи издателя и воркера для одного события.
type RefreshEvent struct {
	EventID   uuid.UUID          `json:"event_id"`
	Zone      string             `json:"zone"`
	Service   models.ServiceKind `json:"service"`
	Timestamp time.Time          `json:"timestamp"`
}

// RefreshPublisher - интерфейс для публикации событий пересчета
type RefreshPublisher interface {
	Publish(ctx context.Context, event RefreshEvent) error
}

// RedisRefreshPublisher - реализация RefreshPublisher, использующая Redis
type RedisRefreshPublisher struct {
	redisClient *redis.Client
}

// NewRedisRefreshPublisher создает новый RedisRefreshPublisher
func NewRedisRefreshPublisher(client *redis.Client) *RedisRefreshPublisher {
	return &RedisRefreshPublisher{
		redisClient: client,
	}
}

// Publish публикует событие пересчета в очередь Redis
func (p *RedisRefreshPublisher) Publish(ctx context.Context, event RefreshEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal refresh event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, refreshQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish refresh event to Redis: %w", err)
	}
	return nil
}
