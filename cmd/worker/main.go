package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/muftipurwa/portfolio-api/adapters/event"
	"github.com/muftipurwa/portfolio-api/adapters/persistence"
	portfolioUC "github.com/muftipurwa/portfolio-api/internal/application/usecase/portfolio"
	"github.com/muftipurwa/portfolio-api/internal/config"
	"github.com/muftipurwa/portfolio-api/pkg/logger"
)

func main() {
	fmt.Println("Starting Portfolio Snapshot Worker...")

	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Database
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	// Redis
	redisClient, err := persistence.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	// Repositories
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	snapshotCache := persistence.NewRedisSnapshotCache(redisClient, appLogger)

	// Worker Use Case
	rebuildSnapshotUC := portfolioUC.NewRebuildSnapshotUseCase(snapshotCache, profileRepo, skillRepo, projectRepo)

	// Kafka Consumer
	contentConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicContentEvents,
		GroupID:  "snapshot-rebuilder-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer contentConsumer.Close()

	log.Printf("Worker listening on topic '%s'...", event.TopicContentEvents)

	ctx := context.Background()
	for {
		msg, err := contentConsumer.ReadMessage(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to read message from Kafka: %v", err)
			continue
		}

		var payload event.ContentEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Printf("ERROR: Failed to unmarshal event: %v. Skipping.", err)
			continue
		}

		log.Printf("Processing event: [%s] for resource %d", payload.EventType, payload.ResourceID)

		if err := rebuildSnapshotUC.Execute(ctx); err != nil {
			log.Printf("ERROR: Failed to rebuild snapshot for event %s: %v", payload.EventID, err)
			continue
		}
	}
}
