package handler

import (
	"context"
	"errors"
	"net/http"

	"dispatch-server/internal/apierrors"
	"dispatch-server/internal/clients/redis"
	"dispatch-server/internal/devices/processor"
	"dispatch-server/internal/observability"
	"dispatch-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

// Handler exposes the device connection API.
type Handler struct {
	processor *processor.Processor
	cache     *redis.Client
	hub       *Hub
	logger    *observability.Logger
}

func New(p *processor.Processor, cache *redis.Client, hub *Hub, logger *observability.Logger) *Handler {
	return &Handler{
		processor: p,
		cache:     cache,
		hub:       hub,
		logger:    logger,
	}
}

// HandleConnect opens a pairing session for a device slot and returns the
// device including its QR artifact.
func (h *Handler) HandleConnect(c *gin.Context) {
	ctx := c.Request.Context()
	storeSlug := c.Param("slug")
	role := c.Param("role")

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "store_slug", Value: storeSlug},
		observability.Field{Key: "device_role", Value: role},
	)

	device, err := h.processor.RequestConnection(ctx, storeSlug, role)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, device)
}

// HandleListDevices lists a store's device slots. Fresher snapshots from the
// status cache overlay the database rows when available.
func (h *Handler) HandleListDevices(c *gin.Context) {
	ctx := c.Request.Context()
	storeSlug := c.Param("slug")

	ctx = observability.WithFields(ctx, observability.Field{Key: "store_slug", Value: storeSlug})

	devices, err := h.processor.ListDevices(ctx, storeSlug)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	for i := range devices {
		devices[i] = h.overlayCache(ctx, devices[i])
	}

	c.JSON(http.StatusOK, gin.H{"devices": devices})
}

func (h *Handler) overlayCache(ctx context.Context, device store.Device) store.Device {
	if h.cache == nil {
		return device
	}
	snapshot, err := h.cache.GetDeviceSnapshot(ctx, device.ID.String())
	if err != nil {
		if !errors.Is(err, redis.ErrCacheMiss) {
			h.logger.Error(ctx, "device cache read failed", err)
		}
		return device
	}
	if snapshot.UpdatedAt.After(device.UpdatedAt) {
		return snapshot
	}
	return device
}

// HandleGetQR renders a device's pending QR artifact as a PNG.
func (h *Handler) HandleGetQR(c *gin.Context) {
	ctx := c.Request.Context()

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid device id"))
		return
	}

	device, err := h.processor.GetDevice(ctx, deviceID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	if device.QRCode == nil || *device.QRCode == "" {
		apierrors.RespondWithError(c, apierrors.NotFound(apierrors.CodeDeviceNotFound, "Device has no pending QR code"))
		return
	}

	png, err := qrcode.Encode(*device.QRCode, qrcode.Medium, 256)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// HandleDisconnect is the explicit operator logout for a device.
func (h *Handler) HandleDisconnect(c *gin.Context) {
	ctx := c.Request.Context()

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid device id"))
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "device_id", Value: deviceID.String()})

	device, err := h.processor.Disconnect(ctx, deviceID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, device)
}

// HandleStream upgrades the request to a websocket carrying live device
// status snapshots for one store.
func (h *Handler) HandleStream(c *gin.Context) {
	h.hub.Serve(c, c.Param("slug"))
}
