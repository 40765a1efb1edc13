package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/mylance/content-engine/internal/config"
)

const (
	TopicProfileEvents    = "profile.events"
	TopicGenerationEvents = "generation.events"
)

// Event types carried on the two topics.
const (
	EventProfileCreated    = "profile.created"
	EventProfileUpdated    = "profile.updated"
	EventStrategyGenerated = "strategy.generated"
	EventPillarsGenerated  = "pillars.generated"
	EventPromptsGenerated  = "prompts.generated"
	EventBrandAnalyzed     = "brand.analyzed"
	EventStrategyRevised   = "strategy.revised"
	EventStrategyRestored  = "strategy.restored"
)

// Payload is the wire format for both topics. Detail is event-specific
// (counts, batch stats); consumers must tolerate unknown keys.
type Payload struct {
	EventType  string         `json:"event_type"`
	ProfileID  string         `json:"profile_id"`
	Detail     map[string]any `json:"detail,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// Publisher is what the use cases depend on; KafkaProducerClient is the
// production implementation.
type Publisher interface {
	PublishProfileEvent(ctx context.Context, p Payload) error
	PublishGenerationEvent(ctx context.Context, p Payload) error
}

type KafkaProducerClient struct {
	ProfileEventsWriter    *kafka.Writer
	GenerationEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	profileWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicProfileEvents,
		Balancer: &kafka.LeastBytes{},
	}

	generationWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicGenerationEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{
		ProfileEventsWriter:    profileWriter,
		GenerationEventsWriter: generationWriter,
	}, nil
}

func (c *KafkaProducerClient) writeTo(ctx context.Context, w *kafka.Writer, p Payload) error {
	if p.OccurredAt.IsZero() {
		p.OccurredAt = time.Now().UTC()
	}
	value, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}
	return w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(p.ProfileID),
		Value: value,
	})
}

func (c *KafkaProducerClient) PublishProfileEvent(ctx context.Context, p Payload) error {
	return c.writeTo(ctx, c.ProfileEventsWriter, p)
}

func (c *KafkaProducerClient) PublishGenerationEvent(ctx context.Context, p Payload) error {
	return c.writeTo(ctx, c.GenerationEventsWriter, p)
}

func (c *KafkaProducerClient) Close() {
	if c.ProfileEventsWriter != nil {
		c.ProfileEventsWriter.Close()
	}
	if c.GenerationEventsWriter != nil {
		c.GenerationEventsWriter.Close()
	}
}
