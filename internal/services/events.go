package services

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/techlinker/internal/logger"
	"github.com/sbilibin2017/techlinker/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// KafkaEventPublisher publishes user events to Kafka. Publishing never fails
// the calling operation; errors are logged.
type KafkaEventPublisher struct {
	writer KafkaWriter
	now    func() time.Time
}

// NewKafkaEventPublisher creates a publisher. A nil writer disables publishing.
func NewKafkaEventPublisher(writer KafkaWriter) *KafkaEventPublisher {
	return &KafkaEventPublisher{writer: writer, now: time.Now}
}

// Publish sends a UserEvent keyed by user id so one user's events stay ordered.
func (p *KafkaEventPublisher) Publish(ctx context.Context, eventType string, userID uuid.UUID) {
	event := models.UserEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		UserID:    userID.String(),
		Timestamp: p.now().Unix(),
	}

	if p.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", eventType)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := p.writer.WriteMessages(context.WithoutCancel(ctx), msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "type", eventType, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "type", eventType, "user_id", event.UserID)
	}
}
