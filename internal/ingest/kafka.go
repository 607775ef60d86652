package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
	"github.com/shenikar/parade_tracking_system/internal/models"
	"github.com/shenikar/parade_tracking_system/internal/service"
	"github.com/sirupsen/logrus"
)

// FixIngester принимает точки, прочитанные из потока
type FixIngester interface {
	IngestFix(ctx context.Context, boatID string, fix models.PositionFix) (*service.IngestResult, error)
}

// FixMessage - формат сообщения в топике. Ключ сообщения - id лодки,
// boat_id в теле имеет приоритет.
type FixMessage struct {
	BoatID    string    `json:"boat_id" validate:"required,max=64"`
	Latitude  *float64  `json:"latitude" validate:"required,latitude"`
	Longitude *float64  `json:"longitude" validate:"required,longitude"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
	Speed     *float64  `json:"speed,omitempty" validate:"omitempty,gte=0"`
	Heading   *float64  `json:"heading,omitempty" validate:"omitempty,gte=0,lt=360"`
}

// KafkaConsumerConfig - настройки чтения топика
type KafkaConsumerConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

// KafkaConsumer читает GPS-точки из Kafka и передает их в сервис отслеживания
type KafkaConsumer struct {
	reader   *kafka.Reader
	ingester FixIngester
	logger   *logrus.Logger
	validate *validator.Validate
}

func NewKafkaConsumer(cfg KafkaConsumerConfig, ingester FixIngester, logger *logrus.Logger) *KafkaConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		Topic:          cfg.Topic,
		GroupID:        cfg.GroupID,
		MinBytes:       1,
		MaxBytes:       10e6, // 10MB
		CommitInterval: time.Second,
		StartOffset:    kafka.LastOffset,
	})
	return newKafkaConsumer(reader, ingester, logger)
}

func newKafkaConsumer(reader *kafka.Reader, ingester FixIngester, logger *logrus.Logger) *KafkaConsumer {
	return &KafkaConsumer{
		reader:   reader,
		ingester: ingester,
		logger:   logger,
		validate: validator.New(),
	}
}

// Run читает сообщения до отмены контекста. Битые сообщения логируются и коммитятся.
func (c *KafkaConsumer) Run(ctx context.Context) {
	cfg := c.reader.Config()
	c.logger.WithFields(logrus.Fields{
		"brokers":  cfg.Brokers,
		"topic":    cfg.Topic,
		"group_id": cfg.GroupID,
	}).Info("Starting Kafka fix consumer...")

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.logger.Info("Stopping Kafka fix consumer.")
				return
			}
			c.logger.WithError(err).Error("Failed to fetch message from Kafka")
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
			continue
		}

		c.handleMessage(ctx, msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			c.logger.WithError(err).WithField("offset", msg.Offset).Warn("Failed to commit Kafka message")
		}
	}
}

// handleMessage обрабатывает одно сообщение. Ошибки не прерывают чтение топика.
func (c *KafkaConsumer) handleMessage(ctx context.Context, msg kafka.Message) {
	log := c.logger.WithFields(logrus.Fields{
		"partition": msg.Partition,
		"offset":    msg.Offset,
	})

	boatID, fix, err := c.decode(msg)
	if err != nil {
		log.WithError(err).Warn("Invalid fix message")
		return
	}
	log = log.WithField("boat_id", boatID)

	res, err := c.ingester.IngestFix(ctx, boatID, fix)
	if err != nil {
		log.WithError(err).Warn("Failed to ingest fix from Kafka")
		return
	}
	if !res.OnRoute {
		log.WithField("deviation_meters", res.DeviationMeters).Debug("Fix from Kafka is not on route")
	}
}

func (c *KafkaConsumer) decode(msg kafka.Message) (string, models.PositionFix, error) {
	var m FixMessage
	if err := json.Unmarshal(msg.Value, &m); err != nil {
		return "", models.PositionFix{}, fmt.Errorf("failed to unmarshal fix message: %w", err)
	}
	if m.BoatID == "" {
		m.BoatID = string(msg.Key)
	}
	if err := c.validate.Struct(m); err != nil {
		return "", models.PositionFix{}, fmt.Errorf("fix message validation failed: %w", err)
	}

	return m.BoatID, models.PositionFix{
		Latitude:   *m.Latitude,
		Longitude:  *m.Longitude,
		Timestamp:  m.Timestamp,
		RawSpeed:   m.Speed,
		RawHeading: m.Heading,
	}, nil
}

// Close закрывает Kafka reader
func (c *KafkaConsumer) Close() error {
	return c.reader.Close()
}
