package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"dispatch-server/internal/observability"
	"dispatch-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pingPeriod     = 30 * time.Second
	clientBuffer   = 16
)

// Hub fans device status snapshots out to websocket subscribers, keyed by
// store slug. It implements the device processor's StatusSink.
type Hub struct {
	upgrader websocket.Upgrader
	logger   *observability.Logger

	mu          sync.RWMutex
	subscribers map[string]map[*subscriber]struct{}
}

type subscriber struct {
	send chan store.Device
}

// NewHub creates a status stream hub. Origin checking is delegated to the
// CORS layer in front of the router.
func NewHub(logger *observability.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		logger:      logger,
		subscribers: make(map[string]map[*subscriber]struct{}),
	}
}

// DeviceUpdated pushes a reconciled device snapshot to every subscriber of
// the device's store. Slow subscribers are skipped rather than blocked on.
func (h *Hub) DeviceUpdated(ctx context.Context, device store.Device) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subscribers[device.StoreSlug] {
		select {
		case sub.send <- device:
		default:
			h.logger.Warn(ctx, "dropping device update for slow stream subscriber")
		}
	}
}

// Serve upgrades the request and streams snapshots until the client leaves.
func (h *Hub) Serve(c *gin.Context, storeSlug string) {
	ctx := c.Request.Context()

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error(ctx, "websocket upgrade failed", err)
		return
	}

	sub := &subscriber{send: make(chan store.Device, clientBuffer)}
	h.add(storeSlug, sub)
	defer func() {
		h.remove(storeSlug, sub)
		conn.Close()
	}()

	// Reader goroutine: drain control frames and detect the client leaving.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case device := <-sub.send:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(device); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Hub) add(storeSlug string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subscribers[storeSlug] == nil {
		h.subscribers[storeSlug] = make(map[*subscriber]struct{})
	}
	h.subscribers[storeSlug][sub] = struct{}{}
}

func (h *Hub) remove(storeSlug string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subscribers[storeSlug], sub)
	if len(h.subscribers[storeSlug]) == 0 {
		delete(h.subscribers, storeSlug)
	}
}
