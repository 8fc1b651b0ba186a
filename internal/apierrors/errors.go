package apierrors

import (
	"fmt"
	"net/http"
)

// Machine-readable error codes returned to API clients.
const (
	CodeDeviceNotFound     = "DEVICE_NOT_FOUND"
	CodeCampaignNotFound   = "CAMPAIGN_NOT_FOUND"
	CodeMessageNotFound    = "MESSAGE_NOT_FOUND"
	CodeInvalidRole        = "INVALID_DEVICE_ROLE"
	CodeInvalidTransition  = "INVALID_TRANSITION"
	CodeInvalidStatus      = "INVALID_STATUS"
	CodeInvalidInput       = "INVALID_INPUT"
	CodeNoConnectedDevices = "NO_CONNECTED_DEVICES"
	CodeGatewayUnavailable = "GATEWAY_UNAVAILABLE"
	CodeInternalError      = "INTERNAL_ERROR"
)

// APIError is a domain error carrying the HTTP status and machine-readable
// code used when rendering the response.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	internal   error
}

func (e *APIError) Error() string {
	if e.internal != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.internal)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.internal
}

// NotFound creates a 404 error.
func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

// BadRequest creates a 400 error.
func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

// Conflict creates a 409 error.
func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

// UnprocessableEntity creates a 422 error.
func UnprocessableEntity(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusUnprocessableEntity, Code: code, Message: message}
}

// ServiceUnavailable creates a 503 error keeping the internal cause for logs.
func ServiceUnavailable(code, message string, internal error) *APIError {
	return &APIError{StatusCode: http.StatusServiceUnavailable, Code: code, Message: message, internal: internal}
}

// InternalError creates a sanitized 500 error. The internal cause is kept for
// logging but never exposed to clients.
func InternalError(internal error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		internal:   internal,
	}
}
