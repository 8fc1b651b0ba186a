package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"

	"dispatch-server/internal/clients/gateway"
	"dispatch-server/internal/observability"
	"dispatch-server/internal/retry"
	"dispatch-server/internal/store"

	"github.com/google/uuid"
)

// DeviceStore defines the database operations required by the device processor
type DeviceStore interface {
	EnsureDevice(ctx context.Context, storeSlug, role string) (store.Device, error)
	GetDeviceByID(ctx context.Context, id uuid.UUID) (store.Device, error)
	ListDevices(ctx context.Context, storeSlug string) ([]store.Device, error)
	SetDevicePairing(ctx context.Context, id uuid.UUID, status string, qrCode *string) (store.Device, error)
	ApplyDeviceReport(ctx context.Context, id uuid.UUID, params store.DeviceReportParams) (store.Device, error)
	ForceDisconnectDevice(ctx context.Context, id uuid.UUID) (store.Device, error)
}

// Gateway defines the messaging gateway operations the processor relies on
type Gateway interface {
	RequestConnection(ctx context.Context, storeSlug, role string) (gateway.ConnectionResponse, error)
	GetStatus(ctx context.Context, storeSlug, role string) (gateway.StatusReport, error)
	Disconnect(ctx context.Context, storeSlug, role string) error
}

// StatusSink receives every reconciled device snapshot. Implemented by the
// websocket hub and the redis status cache.
type StatusSink interface {
	DeviceUpdated(ctx context.Context, device store.Device)
}

var (
	ErrDeviceNotFound         = errors.New("device not found")
	ErrInvalidDeviceRole      = errors.New("invalid device role")
	ErrUnknownGatewayStatus   = errors.New("gateway reported an unknown status")
	ErrGatewayUnreachable     = errors.New("messaging gateway unreachable")
)

// Processor owns the device connection lifecycle: pairing requests,
// reconciliation of gateway reports, and the per-device status pollers.
type Processor struct {
	store    DeviceStore
	gateway  Gateway
	sinks    []StatusSink
	poller   *pollerRegistry
	retryCfg retry.Config
	logger   *observability.Logger
}

// Config carries the poller tuning knobs.
type Config struct {
	Poller PollerConfig
}

// New creates a device processor.
func New(deviceStore DeviceStore, gw Gateway, cfg Config, logger *observability.Logger, sinks ...StatusSink) *Processor {
	p := &Processor{
		store:    deviceStore,
		gateway:  gw,
		sinks:    sinks,
		retryCfg: retry.DefaultConfig(),
		logger:   logger,
	}
	p.poller = newPollerRegistry(p, cfg.Poller, logger)
	return p
}

// RequestConnection opens a pairing session for a device slot. The row is
// created on the first request for a backup slot. On success the device is
// left in connecting/qr_required with the QR artifact persisted, and a
// status poller is started for it.
func (p *Processor) RequestConnection(ctx context.Context, storeSlug, role string) (store.Device, error) {
	role, err := store.ParseDeviceRole(role)
	if err != nil {
		return store.Device{}, fmt.Errorf("%w: %v", ErrInvalidDeviceRole, err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "store_slug", Value: storeSlug},
		observability.Field{Key: "device_role", Value: role},
	)

	var device store.Device
	err = retry.Do(ctx, p.retryCfg, func(ctx context.Context) error {
		var err error
		device, err = p.store.EnsureDevice(ctx, storeSlug, role)
		return err
	})
	if err != nil {
		p.logger.Error(ctx, "failed to ensure device slot", err)
		return store.Device{}, fmt.Errorf("failed to ensure device slot: %w", err)
	}

	resp, err := p.gateway.RequestConnection(ctx, storeSlug, role)
	if err != nil {
		p.logger.Error(ctx, "gateway connection request failed", err)
		if errors.Is(err, gateway.ErrInstanceNotFound) {
			return store.Device{}, fmt.Errorf("%w: %v", ErrDeviceNotFound, err)
		}
		return store.Device{}, fmt.Errorf("%w: %v", ErrGatewayUnreachable, err)
	}

	status := store.DeviceStatusConnecting
	if resp.QRCode != nil && *resp.QRCode != "" {
		status = store.DeviceStatusQRRequired
	}

	err = retry.Do(ctx, p.retryCfg, func(ctx context.Context) error {
		var err error
		device, err = p.store.SetDevicePairing(ctx, device.ID, status, resp.QRCode)
		if errors.Is(err, store.ErrNotFound) {
			return retry.Permanent(ErrDeviceNotFound)
		}
		return err
	})
	if err != nil {
		return store.Device{}, fmt.Errorf("failed to persist pairing state: %w", err)
	}

	p.notify(ctx, device)
	p.poller.Start(device)

	p.logger.Info(ctx, "pairing session opened",
		observability.Field{Key: "device_id", Value: device.ID.String()},
		observability.Field{Key: "status", Value: device.Status},
	)
	return device, nil
}

// Reconcile applies a gateway report to a device row. Unknown status values
// are rejected before any write. The sticky-connected rule lives in the
// store's conditional update, so concurrent reconciles cannot regress a
// connected device.
func (p *Processor) Reconcile(ctx context.Context, deviceID uuid.UUID, report gateway.StatusReport) (store.Device, error) {
	status, err := store.ParseDeviceStatus(report.Status)
	if err != nil {
		p.logger.Error(ctx, "rejecting gateway report", err)
		return store.Device{}, fmt.Errorf("%w: %v", ErrUnknownGatewayStatus, err)
	}

	var device store.Device
	err = retry.Do(ctx, p.retryCfg, func(ctx context.Context) error {
		var err error
		device, err = p.store.ApplyDeviceReport(ctx, deviceID, store.DeviceReportParams{
			Status:          status,
			PhoneNumber:     report.PhoneNumber,
			QRCode:          report.QRCode,
			CredentialToken: report.CredentialToken,
		})
		if errors.Is(err, store.ErrNotFound) {
			return retry.Permanent(ErrDeviceNotFound)
		}
		return err
	})
	if err != nil {
		return store.Device{}, fmt.Errorf("failed to apply device report: %w", err)
	}

	p.notify(ctx, device)
	return device, nil
}

// Disconnect is the explicit operator logout for a device.
func (p *Processor) Disconnect(ctx context.Context, deviceID uuid.UUID) (store.Device, error) {
	device, err := p.store.GetDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Device{}, ErrDeviceNotFound
		}
		return store.Device{}, fmt.Errorf("failed to load device: %w", err)
	}

	if err := p.gateway.Disconnect(ctx, device.StoreSlug, device.Role); err != nil {
		// Logout is best-effort: the local row is cleared regardless, and
		// the next pairing request opens a fresh gateway session.
		p.logger.Error(ctx, "gateway logout failed", err)
	}

	err = retry.Do(ctx, p.retryCfg, func(ctx context.Context) error {
		var err error
		device, err = p.store.ForceDisconnectDevice(ctx, deviceID)
		if errors.Is(err, store.ErrNotFound) {
			return retry.Permanent(ErrDeviceNotFound)
		}
		return err
	})
	if err != nil {
		return store.Device{}, fmt.Errorf("failed to disconnect device: %w", err)
	}

	p.notify(ctx, device)
	return device, nil
}

// GetDevice returns one device row.
func (p *Processor) GetDevice(ctx context.Context, deviceID uuid.UUID) (store.Device, error) {
	device, err := p.store.GetDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Device{}, ErrDeviceNotFound
		}
		return store.Device{}, fmt.Errorf("failed to load device: %w", err)
	}
	return device, nil
}

// ListDevices returns all device slots of a store.
func (p *Processor) ListDevices(ctx context.Context, storeSlug string) ([]store.Device, error) {
	return p.store.ListDevices(ctx, storeSlug)
}

func (p *Processor) notify(ctx context.Context, device store.Device) {
	for _, sink := range p.sinks {
		sink.DeviceUpdated(ctx, device)
	}
}
