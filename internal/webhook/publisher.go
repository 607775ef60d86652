package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/parade_tracking_system/internal/models"
)

const (
	webhookQueueKey = "boat_events"
)

// EventType - вид события лодки
type EventType string

const (
	EventIncident      EventType = "incident"
	EventStatusChanged EventType = "status_changed"
)

// BoatEvent - структура для данных вебхука
type BoatEvent struct {
	Type            EventType        `json:"type"`
	BoatID          string           `json:"boat_id"`
	BoatName        string           `json:"boat_name"`
	Status          models.Status    `json:"status"`
	PreviousStatus  models.Status    `json:"previous_status,omitempty"`
	Latitude        float64          `json:"latitude"`
	Longitude       float64          `json:"longitude"`
	ProgressPercent float64          `json:"progress_percent"`
	Incident        *models.Incident `json:"incident,omitempty"` // Заполняется для событий типа incident
	Timestamp       time.Time        `json:"timestamp"`
}

// EventPublisher - интерфейс для публикации вебхуков
type EventPublisher interface {
	Publish(ctx context.Context, event BoatEvent) error
}

// RedisEventPublisher - реализация EventPublisher, использующая Redis
type RedisEventPublisher struct {
	redisClient *redis.Client
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisEventPublisher) Publish(ctx context.Context, event BoatEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal boat event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish boat event to Redis: %w", err)
	}
	return nil
}
