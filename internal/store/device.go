package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const sqlEnsureDevice = `
INSERT INTO devices (store_slug, role, status)
VALUES ($1, $2, 'disconnected')
ON CONFLICT (store_slug, role) DO UPDATE SET updated_at = NOW()
RETURNING id, store_slug, role, status, phone_number, qr_code, credential_token, created_at, updated_at
`

// EnsureDevice returns the device row for the given slot, creating it in
// `disconnected` the first time an admin requests the slot.
func (s *Store) EnsureDevice(ctx context.Context, storeSlug, role string) (Device, error) {
	var device Device
	err := s.db.GetContext(ctx, &device, sqlEnsureDevice, storeSlug, role)
	if err != nil {
		s.logger.Error(ctx, "failed to ensure device row", err)
		return Device{}, fmt.Errorf("failed to ensure device row: %w", err)
	}
	return device, nil
}

const sqlGetDeviceByID = `
SELECT id, store_slug, role, status, phone_number, qr_code, credential_token, created_at, updated_at
FROM devices
WHERE id = $1
`

// GetDeviceByID fetches a single device row.
func (s *Store) GetDeviceByID(ctx context.Context, id uuid.UUID) (Device, error) {
	var device Device
	err := s.db.GetContext(ctx, &device, sqlGetDeviceByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Device{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get device", err)
		return Device{}, fmt.Errorf("failed to get device: %w", err)
	}
	return device, nil
}

const sqlListDevices = `
SELECT id, store_slug, role, status, phone_number, qr_code, credential_token, created_at, updated_at
FROM devices
WHERE store_slug = $1
ORDER BY role
`

// ListDevices returns every device slot a store has requested so far.
func (s *Store) ListDevices(ctx context.Context, storeSlug string) ([]Device, error) {
	devices := []Device{}
	err := s.db.SelectContext(ctx, &devices, sqlListDevices, storeSlug)
	if err != nil {
		s.logger.Error(ctx, "failed to list devices", err)
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	return devices, nil
}

const sqlSetDevicePairing = `
UPDATE devices
SET status = $2, qr_code = $3, updated_at = NOW()
WHERE id = $1
RETURNING id, store_slug, role, status, phone_number, qr_code, credential_token, created_at, updated_at
`

// SetDevicePairing records the outcome of a connection request: the device
// moves to connecting/qr_required and carries the pairing artifact.
func (s *Store) SetDevicePairing(ctx context.Context, id uuid.UUID, status string, qrCode *string) (Device, error) {
	var device Device
	err := s.db.GetContext(ctx, &device, sqlSetDevicePairing, id, status, qrCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Device{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to set device pairing state", err)
		return Device{}, fmt.Errorf("failed to set device pairing state: %w", err)
	}
	return device, nil
}

// DeviceReportParams carries a gateway status report. Nil auxiliary fields
// leave the stored value untouched.
type DeviceReportParams struct {
	Status          string
	PhoneNumber     *string
	QRCode          *string
	CredentialToken *string
}

// applyDeviceReportRule is the row-level statement of the sticky-connected
// rule: once a row is connected, a stale disconnected/error report cannot
// regress its status, while auxiliary fields still update. A connected
// report always wins and clears the pending QR artifact; nil auxiliary
// fields leave the stored value untouched. sqlApplyDeviceReport below
// executes this exact rule inside the UPDATE so it holds under concurrent
// pollers and admin sessions; the two must stay in agreement.
func applyDeviceReportRule(d Device, params DeviceReportParams) Device {
	if !(d.Status == DeviceStatusConnected &&
		(params.Status == DeviceStatusDisconnected || params.Status == DeviceStatusError)) {
		d.Status = params.Status
	}
	if params.PhoneNumber != nil {
		d.PhoneNumber = params.PhoneNumber
	}
	if params.Status == DeviceStatusConnected {
		d.QRCode = nil
	} else if params.QRCode != nil {
		d.QRCode = params.QRCode
	}
	if params.CredentialToken != nil {
		d.CredentialToken = params.CredentialToken
	}
	return d
}

const sqlApplyDeviceReport = `
UPDATE devices
SET
    status = CASE
        WHEN status = 'connected' AND $2 IN ('disconnected', 'error') THEN status
        ELSE $2
    END,
    phone_number = COALESCE($3, phone_number),
    qr_code = CASE WHEN $2 = 'connected' THEN NULL ELSE COALESCE($4, qr_code) END,
    credential_token = COALESCE($5, credential_token),
    updated_at = NOW()
WHERE id = $1
RETURNING id, store_slug, role, status, phone_number, qr_code, credential_token, created_at, updated_at
`

// ApplyDeviceReport applies a gateway-reported status through the guarded
// update and returns the resulting row.
func (s *Store) ApplyDeviceReport(ctx context.Context, id uuid.UUID, params DeviceReportParams) (Device, error) {
	var device Device
	err := s.db.GetContext(ctx, &device, sqlApplyDeviceReport,
		id, params.Status, params.PhoneNumber, params.QRCode, params.CredentialToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Device{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to apply device report", err)
		return Device{}, fmt.Errorf("failed to apply device report: %w", err)
	}
	return device, nil
}

const sqlForceDisconnectDevice = `
UPDATE devices
SET status = 'disconnected', phone_number = NULL, qr_code = NULL, credential_token = NULL, updated_at = NOW()
WHERE id = $1
RETURNING id, store_slug, role, status, phone_number, qr_code, credential_token, created_at, updated_at
`

// ForceDisconnectDevice is the explicit operator logout path. It is the only
// write allowed to take a device out of `connected`.
func (s *Store) ForceDisconnectDevice(ctx context.Context, id uuid.UUID) (Device, error) {
	var device Device
	err := s.db.GetContext(ctx, &device, sqlForceDisconnectDevice, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Device{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to disconnect device", err)
		return Device{}, fmt.Errorf("failed to disconnect device: %w", err)
	}
	return device, nil
}
