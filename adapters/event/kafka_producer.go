package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/muftipurwa/portfolio-api/internal/config"
)

const TopicContentEvents = "content.events"

type ContentEventType string

const (
	ContentEventProfileUpdated ContentEventType = "profile.updated"
	ContentEventSkillCreated   ContentEventType = "skill.created"
	ContentEventProjectCreated ContentEventType = "project.created"
	ContentEventProjectUpdated ContentEventType = "project.updated"
	ContentEventProjectDeleted ContentEventType = "project.deleted"
)

// ContentEventPayload announces that a portfolio record changed. Consumers
// rebuild derived read models from it; the payload carries ids only.
type ContentEventPayload struct {
	EventID    uuid.UUID        `json:"event_id"`
	EventType  ContentEventType `json:"event_type"`
	ResourceID int64            `json:"resource_id"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// Publisher is what use cases see; the Kafka client satisfies it.
type Publisher interface {
	PublishContentEvent(ctx context.Context, payload ContentEventPayload) error
}

type KafkaProducerClient struct {
	ContentEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	contentWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicContentEvents,
		Balancer: &kafka.LeastBytes{},
	}

	fmt.Println("Initialize Kafka Producers successfully.")

	return &KafkaProducerClient{
		ContentEventsWriter: contentWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishContentEvent(ctx context.Context, payload ContentEventPayload) error {
	if payload.EventID == uuid.Nil {
		payload.EventID = uuid.New()
	}
	if payload.OccurredAt.IsZero() {
		payload.OccurredAt = time.Now().UTC()
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal content event failed: %w", err)
	}

	return c.ContentEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.EventType),
		Value: value,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.ContentEventsWriter != nil {
		c.ContentEventsWriter.Close()
	}
	fmt.Println("Closed Kafka Producers")
}
