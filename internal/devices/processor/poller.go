package processor

import (
	"context"
	"sync"
	"time"

	"dispatch-server/internal/observability"
	"dispatch-server/internal/store"

	"github.com/google/uuid"
)

// PollerConfig tunes the per-device status pollers.
type PollerConfig struct {
	Interval time.Duration
	MaxPolls int
}

// pollerRegistry tracks which devices currently have a poller goroutine.
// At most one poller runs per device; a second Start for the same device
// is a no-op until the first one releases its slot.
type pollerRegistry struct {
	processor *Processor
	config    PollerConfig
	logger    *observability.Logger

	mu     sync.Mutex
	active map[uuid.UUID]struct{}
	wg     sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc
}

func newPollerRegistry(p *Processor, cfg PollerConfig, logger *observability.Logger) *pollerRegistry {
	ctx, cancel := context.WithCancel(context.Background())
	return &pollerRegistry{
		processor: p,
		config:    cfg,
		logger:    logger,
		active:    make(map[uuid.UUID]struct{}),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start launches a status poller for the device. Returns false when a
// poller for that device is already running.
func (r *pollerRegistry) Start(device store.Device) bool {
	r.mu.Lock()
	if _, running := r.active[device.ID]; running {
		r.mu.Unlock()
		return false
	}
	r.active[device.ID] = struct{}{}
	r.mu.Unlock()

	r.wg.Add(1)
	go r.run(device)
	return true
}

// Stop cancels all pollers and waits for them to exit.
func (r *pollerRegistry) Stop() {
	r.cancel()
	r.wg.Wait()
}

func (r *pollerRegistry) run(device store.Device) {
	defer r.wg.Done()
	defer r.release(device.ID)

	ctx := observability.WithFields(r.ctx,
		observability.Field{Key: "device_id", Value: device.ID.String()},
		observability.Field{Key: "store_slug", Value: device.StoreSlug},
	)

	ticker := time.NewTicker(r.config.Interval)
	defer ticker.Stop()

	for polls := 0; polls < r.config.MaxPolls; polls++ {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		// Single attempt per tick: a failed fetch is logged and the next
		// tick tries again, counting against the poll ceiling.
		report, err := r.processor.gateway.GetStatus(ctx, device.StoreSlug, device.Role)
		if err != nil {
			r.logger.Error(ctx, "status poll failed", err)
			continue
		}

		updated, err := r.processor.Reconcile(ctx, device.ID, report)
		if err != nil {
			r.logger.Error(ctx, "status poll reconcile failed", err)
			continue
		}

		if store.DeviceStatusTerminal(updated.Status) {
			r.logger.Info(ctx, "device poller finished",
				observability.Field{Key: "status", Value: updated.Status},
				observability.Field{Key: "polls", Value: polls + 1},
			)
			return
		}
	}

	r.logger.Info(ctx, "device poller reached poll ceiling without a terminal status")
}

func (r *pollerRegistry) release(id uuid.UUID) {
	r.mu.Lock()
	delete(r.active, id)
	r.mu.Unlock()
}

// StartPolling exposes poller start for reuse after process restarts.
func (p *Processor) StartPolling(device store.Device) bool {
	return p.poller.Start(device)
}

// StopPolling shuts down all active pollers.
func (p *Processor) StopPolling() {
	p.poller.Stop()
}
