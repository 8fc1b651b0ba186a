package apierrors

import (
	"errors"

	campaignProcessor "dispatch-server/internal/campaigns/processor"
	"dispatch-server/internal/clients/gateway"
	deviceProcessor "dispatch-server/internal/devices/processor"
	"dispatch-server/internal/store"
)

// MapError converts domain/processor errors to APIErrors.
// This function centralizes all error mapping logic to ensure consistent
// error responses across the entire API.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Device processor errors
	case errors.Is(err, deviceProcessor.ErrDeviceNotFound):
		return NotFound(CodeDeviceNotFound, "Device not found")

	case errors.Is(err, deviceProcessor.ErrInvalidDeviceRole):
		return BadRequest(CodeInvalidRole, "Unknown device role")

	case errors.Is(err, deviceProcessor.ErrUnknownGatewayStatus):
		return UnprocessableEntity(CodeInvalidStatus, "Gateway reported an unrecognized status")

	case errors.Is(err, deviceProcessor.ErrGatewayUnreachable):
		return ServiceUnavailable(CodeGatewayUnavailable, "Messaging gateway is unavailable. Please try again later.", err)

	// Campaign processor errors
	case errors.Is(err, campaignProcessor.ErrCampaignNotFound):
		return NotFound(CodeCampaignNotFound, "Campaign not found")

	case errors.Is(err, campaignProcessor.ErrInvalidTransition):
		return Conflict(CodeInvalidTransition, err.Error())

	case errors.Is(err, campaignProcessor.ErrNoEligibleDevices):
		return UnprocessableEntity(CodeNoConnectedDevices, "No connected devices available to send this campaign")

	case errors.Is(err, campaignProcessor.ErrEmptyAudience):
		return UnprocessableEntity(CodeInvalidInput, "Campaign audience resolved to zero sendable recipients")

	case errors.Is(err, campaignProcessor.ErrMessageNotFound):
		return NotFound(CodeMessageNotFound, "Queued message not found")

	// Gateway client errors reaching a handler directly
	case errors.Is(err, gateway.ErrInstanceNotFound):
		return NotFound(CodeDeviceNotFound, "Gateway has no session for this device")

	case errors.Is(err, gateway.ErrGatewayUnavailable):
		return ServiceUnavailable(CodeGatewayUnavailable, "Messaging gateway is unavailable. Please try again later.", err)

	// Store errors
	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeInvalidInput, "Resource not found")

	default:
		return InternalError(err)
	}
}
