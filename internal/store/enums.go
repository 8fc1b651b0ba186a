package store

import "fmt"

// Device role ENUMs. A store has at most one primary and three backup slots.
const (
	DeviceRolePrimary = "primary"
	DeviceRoleBackup1 = "backup_1"
	DeviceRoleBackup2 = "backup_2"
	DeviceRoleBackup3 = "backup_3"
)

// Device connection status ENUMs
const (
	DeviceStatusDisconnected = "disconnected"
	DeviceStatusQRRequired   = "qr_required"
	DeviceStatusConnecting   = "connecting"
	DeviceStatusConnected    = "connected"
	DeviceStatusError        = "error"
)

// Campaign status ENUMs
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusScheduled = "scheduled"
	CampaignStatusRunning   = "running"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
	CampaignStatusCancelled = "cancelled"
	CampaignStatusFailed    = "failed"
)

// Queued message status ENUMs
const (
	MessageStatusPending   = "pending"
	MessageStatusScheduled = "scheduled"
	MessageStatusSending   = "sending"
	MessageStatusSent      = "sent"
	MessageStatusFailed    = "failed"
	MessageStatusCancelled = "cancelled"
	MessageStatusSkipped   = "skipped"
)

// Rotation strategy ENUMs
const (
	RotationRoundRobin   = "round_robin"
	RotationRandom       = "random"
	RotationPrimaryFirst = "primary_first"
)

// Ban-risk level ENUMs
const (
	RiskLevelLow    = "low"
	RiskLevelMedium = "medium"
	RiskLevelHigh   = "high"
)

// ParseDeviceStatus validates a status string coming from the gateway.
// The gateway occasionally emits values outside the known set; those are
// rejected here so an unknown string never reaches a device row.
func ParseDeviceStatus(s string) (string, error) {
	switch s {
	case DeviceStatusDisconnected, DeviceStatusQRRequired, DeviceStatusConnecting,
		DeviceStatusConnected, DeviceStatusError:
		return s, nil
	}
	return "", fmt.Errorf("unknown device status %q", s)
}

// ParseDeviceRole validates a device role slot name.
func ParseDeviceRole(s string) (string, error) {
	switch s {
	case DeviceRolePrimary, DeviceRoleBackup1, DeviceRoleBackup2, DeviceRoleBackup3:
		return s, nil
	}
	return "", fmt.Errorf("unknown device role %q", s)
}

// ParseRotationStrategy validates a rotation strategy name.
func ParseRotationStrategy(s string) (string, error) {
	switch s {
	case RotationRoundRobin, RotationRandom, RotationPrimaryFirst:
		return s, nil
	}
	return "", fmt.Errorf("unknown rotation strategy %q", s)
}

// DeviceStatusTerminal reports whether polling should stop at this status.
func DeviceStatusTerminal(status string) bool {
	return status == DeviceStatusConnected || status == DeviceStatusError
}

// CampaignStatusTerminal reports whether a campaign can progress no further.
func CampaignStatusTerminal(status string) bool {
	switch status {
	case CampaignStatusCompleted, CampaignStatusCancelled, CampaignStatusFailed:
		return true
	}
	return false
}
