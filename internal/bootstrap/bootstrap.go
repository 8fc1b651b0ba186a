package bootstrap

import (
	"context"
	"fmt"
	"strings"

	campaignHandler "dispatch-server/internal/campaigns/handler"
	campaignProcessor "dispatch-server/internal/campaigns/processor"
	"dispatch-server/internal/clients/gateway"
	kafkaClient "dispatch-server/internal/clients/kafka"
	redisClient "dispatch-server/internal/clients/redis"
	"dispatch-server/internal/config"
	deviceHandler "dispatch-server/internal/devices/handler"
	deviceProcessor "dispatch-server/internal/devices/processor"
	"dispatch-server/internal/events"
	"dispatch-server/internal/jobs"
	"dispatch-server/internal/observability"
	"dispatch-server/internal/store"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  *store.Store
	Logger *observability.Logger

	// Handlers
	DeviceHandler   *deviceHandler.Handler
	CampaignHandler *campaignHandler.Handler

	// Processors
	DeviceProcessor   *deviceProcessor.Processor
	CampaignProcessor *campaignProcessor.Processor

	// Background jobs
	Scheduler *jobs.Scheduler

	// Clients (for cleanup)
	EventsProducer   *kafkaClient.Producer
	DispatchProducer *kafkaClient.Producer
	RedisClient      *redisClient.Client
	StreamHub        *deviceHandler.Hub
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	db, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	deps.Store = &db

	// Clients
	gatewayClient := gateway.NewClient(cfg.Gateway, logger)

	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	brokerList := strings.Split(cfg.Kafka.Brokers, ",")
	deps.EventsProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
		Brokers: brokerList,
		Topic:   cfg.Kafka.EventsTopic,
	}, logger)
	deps.DispatchProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
		Brokers: brokerList,
		Topic:   cfg.Kafka.DispatchTopic,
	}, logger)

	eventPublisher := events.NewPublisher(deps.EventsProducer, logger)

	// Device side: the websocket hub, the redis cache, and the event
	// publisher all receive reconciled snapshots.
	deps.StreamHub = deviceHandler.NewHub(logger)
	deps.DeviceProcessor = deviceProcessor.New(
		deps.Store,
		gatewayClient,
		deviceProcessor.Config{Poller: deviceProcessor.PollerConfig{
			Interval: cfg.Poller.Interval,
			MaxPolls: cfg.Poller.MaxPolls,
		}},
		logger,
		deps.StreamHub,
		deps.RedisClient,
		eventPublisher,
	)
	deps.DeviceHandler = deviceHandler.New(deps.DeviceProcessor, deps.RedisClient, deps.StreamHub, logger)

	// Campaign side
	deps.CampaignProcessor = campaignProcessor.New(deps.Store, eventPublisher, logger)
	deps.CampaignHandler = campaignHandler.New(deps.CampaignProcessor, logger)

	// Background jobs
	deps.Scheduler = jobs.NewScheduler(logger)
	deps.Scheduler.Register(jobs.NewActivatorJob(deps.Store, cfg.Worker.ActivatorInterval, logger))
	deps.Scheduler.Register(jobs.NewPlannerJob(deps.Store, deps.DispatchProducer, cfg.Worker.PlannerInterval, cfg.Worker.PlannerBatchSize, logger))

	return deps, nil
}

// Cleanup releases all resources held by the dependencies
func (d *Dependencies) Cleanup(ctx context.Context) {
	d.DeviceProcessor.StopPolling()

	if err := d.EventsProducer.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close events producer", err)
	}
	if err := d.DispatchProducer.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close dispatch producer", err)
	}
	if err := d.RedisClient.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close redis client", err)
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close database", err)
	}
}
