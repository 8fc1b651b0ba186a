package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dispatch-server/internal/config"
	"dispatch-server/internal/observability"
	"dispatch-server/internal/store"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when no snapshot is cached for a device.
var ErrCacheMiss = errors.New("cache miss")

// statusTTL keeps snapshots a little longer than one full polling window.
const statusTTL = 3 * time.Minute

// Client wraps the Redis client with observability. Nil receivers are
// tolerated everywhere so the cache can be disabled by configuration.
type Client struct {
	client *redis.Client
	logger *observability.Logger
}

// NewClient creates a new Redis client
func NewClient(cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	if !cfg.Enabled {
		logger.Info(context.Background(), "Redis is disabled, skipping client initialization")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info(ctx, "successfully connected to Redis",
		observability.Field{Key: "host", Value: cfg.Host},
		observability.Field{Key: "port", Value: cfg.Port},
		observability.Field{Key: "db", Value: cfg.DB},
	)

	return &Client{
		client: client,
		logger: logger,
	}, nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

func deviceKey(id string) string {
	return "device:status:" + id
}

// DeviceUpdated caches the latest reconciled device snapshot so dashboard
// polls between reconcile ticks are served without touching the gateway.
// Implements the device processor's StatusSink.
func (c *Client) DeviceUpdated(ctx context.Context, device store.Device) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(device)
	if err != nil {
		c.logger.Error(ctx, "failed to marshal device snapshot", err)
		return
	}
	if err := c.client.Set(ctx, deviceKey(device.ID.String()), raw, statusTTL).Err(); err != nil {
		c.logger.Error(ctx, "failed to cache device snapshot", err)
	}
}

// GetDeviceSnapshot returns the cached snapshot for a device id.
func (c *Client) GetDeviceSnapshot(ctx context.Context, id string) (store.Device, error) {
	if c == nil || c.client == nil {
		return store.Device{}, ErrCacheMiss
	}
	raw, err := c.client.Get(ctx, deviceKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return store.Device{}, ErrCacheMiss
		}
		return store.Device{}, fmt.Errorf("failed to read device snapshot: %w", err)
	}
	var device store.Device
	if err := json.Unmarshal(raw, &device); err != nil {
		return store.Device{}, fmt.Errorf("failed to decode device snapshot: %w", err)
	}
	return device, nil
}
