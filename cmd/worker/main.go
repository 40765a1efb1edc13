package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/mylance/content-engine/adapters/event"
	"github.com/mylance/content-engine/adapters/persistence"
	activityUC "github.com/mylance/content-engine/internal/application/usecase/activity"
	"github.com/mylance/content-engine/internal/config"
	"github.com/mylance/content-engine/pkg/logger"
)

// messageSource is the slice of kafka.Reader the consume loop needs. Offsets
// are committed explicitly, so a failed event is redelivered instead of lost.
type messageSource interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting Content Engine Worker...")

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	activityRepo := persistence.NewPostgresActivityRepo(dbPool)
	processEventUC := activityUC.NewProcessEventUseCase(activityRepo)

	profileConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicProfileEvents,
		GroupID:  "activity-log-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer profileConsumer.Close()

	generationConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicGenerationEvents,
		GroupID:  "activity-log-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer generationConsumer.Close()

	ctx := context.Background()

	go consumeLoop(ctx, generationConsumer, event.TopicGenerationEvents, processEventUC, appLogger)
	consumeLoop(ctx, profileConsumer, event.TopicProfileEvents, processEventUC, appLogger)
}

func consumeLoop(ctx context.Context, src messageSource, topic string, uc *activityUC.ProcessEventUseCase, appLogger logger.Logger) {
	appLogger.Info("Worker listening", zap.String("topic", topic))

	for {
		msg, err := src.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				return
			}
			appLogger.Error("Failed to fetch message from Kafka", err)
			continue
		}

		var payload event.Payload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			appLogger.Error("Failed to unmarshal event, skipping", err, zap.String("topic", msg.Topic))
			commitMessage(src, msg, appLogger)
			continue
		}

		if err := uc.Execute(ctx, payload); err != nil {
			appLogger.Error("Failed to process event", err,
				zap.String("event_type", payload.EventType),
				zap.String("profile_id", payload.ProfileID))
			continue
		}

		commitMessage(src, msg, appLogger)
	}
}

func commitMessage(src messageSource, msg kafka.Message, appLogger logger.Logger) {
	if err := src.CommitMessages(context.Background(), msg); err != nil {
		appLogger.Error("Failed to commit message", err)
	}
}
