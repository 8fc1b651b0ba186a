package events

import (
	"context"
	"time"

	"dispatch-server/internal/clients/kafka"
	"dispatch-server/internal/observability"
	"dispatch-server/internal/store"

	"github.com/google/uuid"
)

// Event types emitted on the events topic.
const (
	TypeCampaignScheduled = "campaign.scheduled"
	TypeCampaignPaused    = "campaign.paused"
	TypeCampaignResumed   = "campaign.resumed"
	TypeCampaignCancelled = "campaign.cancelled"
	TypeCampaignCompleted = "campaign.completed"
	TypeDeviceConnected   = "device.connected"
)

// Publisher handles publishing domain events to Kafka. Publishing is
// best-effort: failures are logged and never propagate to the operation
// that raised the event.
type Publisher struct {
	kafkaProducer *kafka.Producer
	logger        *observability.Logger
}

// NewPublisher creates a new event publisher
func NewPublisher(kafkaProducer *kafka.Producer, logger *observability.Logger) *Publisher {
	return &Publisher{
		kafkaProducer: kafkaProducer,
		logger:        logger,
	}
}

// CampaignScheduled publishes a campaign.scheduled event
func (p *Publisher) CampaignScheduled(ctx context.Context, c store.Campaign) {
	p.publishCampaignEvent(ctx, TypeCampaignScheduled, c)
}

// CampaignPaused publishes a campaign.paused event
func (p *Publisher) CampaignPaused(ctx context.Context, c store.Campaign) {
	p.publishCampaignEvent(ctx, TypeCampaignPaused, c)
}

// CampaignResumed publishes a campaign.resumed event
func (p *Publisher) CampaignResumed(ctx context.Context, c store.Campaign) {
	p.publishCampaignEvent(ctx, TypeCampaignResumed, c)
}

// CampaignCancelled publishes a campaign.cancelled event
func (p *Publisher) CampaignCancelled(ctx context.Context, c store.Campaign) {
	p.publishCampaignEvent(ctx, TypeCampaignCancelled, c)
}

// CampaignCompleted publishes a campaign.completed event
func (p *Publisher) CampaignCompleted(ctx context.Context, c store.Campaign) {
	p.publishCampaignEvent(ctx, TypeCampaignCompleted, c)
}

func (p *Publisher) publishCampaignEvent(ctx context.Context, eventType string, c store.Campaign) {
	campaignID := c.ID.String()
	event := kafka.EventMessage{
		ID:         uuid.New().String(),
		Type:       eventType,
		StoreSlug:  c.StoreSlug,
		CampaignID: &campaignID,
		Data: map[string]interface{}{
			"campaign_id":      campaignID,
			"name":             c.Name,
			"status":           c.Status,
			"total_recipients": c.TotalRecipients,
			"sent_count":       c.SentCount,
			"failed_count":     c.FailedCount,
			"risk_level":       c.RiskLevel,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if err := p.kafkaProducer.PublishEvent(ctx, event); err != nil {
		p.logger.Error(ctx, "failed to publish campaign event", err)
	}
}

// DeviceUpdated implements the device status sink: it publishes a
// device.connected event when a reconciled snapshot lands on connected.
// Other statuses stay off the events topic; the websocket stream carries
// those.
func (p *Publisher) DeviceUpdated(ctx context.Context, d store.Device) {
	if d.Status != store.DeviceStatusConnected {
		return
	}

	event := kafka.EventMessage{
		ID:        uuid.New().String(),
		Type:      TypeDeviceConnected,
		StoreSlug: d.StoreSlug,
		Data: map[string]interface{}{
			"device_id": d.ID.String(),
			"role":      d.Role,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if err := p.kafkaProducer.PublishEvent(ctx, event); err != nil {
		p.logger.Error(ctx, "failed to publish device event", err)
	}
}
