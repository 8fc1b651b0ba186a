// Package gateway is the HTTP client for the external WhatsApp messaging
// gateway. The gateway owns the actual device sessions; this service only
// ever sees its eventually-consistent status reports.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"dispatch-server/internal/config"
	"dispatch-server/internal/observability"
)

var (
	// ErrInstanceNotFound covers 403/404 responses: the instance does not
	// exist or the API key has no access to it. Never retried.
	ErrInstanceNotFound = errors.New("gateway instance not found or not accessible")
	// ErrGatewayUnavailable covers 5xx responses and transport failures.
	ErrGatewayUnavailable = errors.New("gateway unavailable")
)

// StatusReport is the gateway's view of one device. Status is a raw string;
// validation against the known set happens at the reconcile boundary.
type StatusReport struct {
	Status          string  `json:"status"`
	PhoneNumber     *string `json:"phone_number,omitempty"`
	QRCode          *string `json:"qr_code,omitempty"`
	CredentialToken *string `json:"credential_token,omitempty"`
}

// ConnectionResponse is returned when a pairing session is opened.
type ConnectionResponse struct {
	Status string  `json:"status"`
	QRCode *string `json:"qr_code,omitempty"`
}

// SendMessageRequest carries one outbound message.
type SendMessageRequest struct {
	Phone string `json:"phone"`
	Body  string `json:"body"`
}

// Client talks to the messaging gateway's REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *observability.Logger
}

// NewClient creates a gateway client from configuration.
func NewClient(cfg config.GatewayConfig, logger *observability.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// RequestConnection asks the gateway to open a pairing session for the
// given store instance and device slot.
func (c *Client) RequestConnection(ctx context.Context, storeSlug, role string) (ConnectionResponse, error) {
	var resp ConnectionResponse
	path := fmt.Sprintf("/instances/%s/%s/connect", storeSlug, role)
	if err := c.do(ctx, http.MethodPost, path, nil, &resp); err != nil {
		return ConnectionResponse{}, err
	}
	return resp, nil
}

// GetStatus fetches the gateway's current report for a device slot.
func (c *Client) GetStatus(ctx context.Context, storeSlug, role string) (StatusReport, error) {
	var report StatusReport
	path := fmt.Sprintf("/instances/%s/%s/status", storeSlug, role)
	if err := c.do(ctx, http.MethodGet, path, nil, &report); err != nil {
		return StatusReport{}, err
	}
	return report, nil
}

// SendMessage transmits one message through a device slot.
func (c *Client) SendMessage(ctx context.Context, storeSlug, role string, req SendMessageRequest) error {
	path := fmt.Sprintf("/instances/%s/%s/messages", storeSlug, role)
	return c.do(ctx, http.MethodPost, path, req, nil)
}

// Disconnect logs the device slot out of its session.
func (c *Client) Disconnect(ctx context.Context, storeSlug, role string) error {
	path := fmt.Sprintf("/instances/%s/%s/logout", storeSlug, role)
	return c.do(ctx, http.MethodPost, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal gateway request: %w", err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "gateway request failed", err)
		return fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s %s returned %d", ErrInstanceNotFound, method, path, resp.StatusCode)
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: %s %s returned %d", ErrGatewayUnavailable, method, path, resp.StatusCode)
	case resp.StatusCode >= 400:
		return fmt.Errorf("gateway rejected %s %s with status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode gateway response: %w", err)
		}
	}
	return nil
}
