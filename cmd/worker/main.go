package main

import (
	"context"
	"errors"
	"os/signal"
	"strings"
	"syscall"

	"dispatch-server/internal/clients/gateway"
	"dispatch-server/internal/clients/kafka"
	"dispatch-server/internal/config"
	"dispatch-server/internal/events"
	"dispatch-server/internal/observability"
	"dispatch-server/internal/store"
	"dispatch-server/internal/workers"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := observability.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, "failed to load configuration", err)
	}

	db, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize the database", err)
	}
	defer db.Close()

	gatewayClient := gateway.NewClient(cfg.Gateway, logger)

	brokers := strings.Split(cfg.Kafka.Brokers, ",")

	eventsProducer := kafka.NewProducer(kafka.ProducerConfig{
		Brokers: brokers,
		Topic:   cfg.Kafka.EventsTopic,
	}, logger)
	defer eventsProducer.Close()

	consumer := kafka.NewConsumer(kafka.ConsumerConfig{
		Brokers: brokers,
		Topic:   cfg.Kafka.DispatchTopic,
		GroupID: cfg.Kafka.ConsumerGroup,
	}, logger)
	defer consumer.Close()

	eventPublisher := events.NewPublisher(eventsProducer, logger)
	worker := workers.NewDispatchWorker(&db, gatewayClient, eventPublisher, logger)

	logger.Info(ctx, "dispatch worker starting",
		observability.Field{Key: "topic", Value: cfg.Kafka.DispatchTopic},
		observability.Field{Key: "group", Value: cfg.Kafka.ConsumerGroup})

	if err := consumer.ConsumeDispatchJobs(ctx, worker.Handle); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal(ctx, "dispatch consumer stopped", err)
	}

	logger.Info(context.Background(), "dispatch worker exiting")
}
