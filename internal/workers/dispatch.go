// Package workers contains the dispatch worker that turns claimed queue rows
// into gateway sends and keeps the campaign counters honest.
package workers

import (
	"context"
	"errors"
	"fmt"

	"dispatch-server/internal/clients/gateway"
	"dispatch-server/internal/clients/kafka"
	"dispatch-server/internal/observability"
	"dispatch-server/internal/retry"
	"dispatch-server/internal/store"

	"github.com/google/uuid"
)

//go:generate mockgen -source=dispatch.go -destination=mocks_test.go -package=workers

// DispatchStore is the persistence surface the worker needs.
type DispatchStore interface {
	ClaimQueuedMessage(ctx context.Context, id uuid.UUID) (store.QueuedMessage, error)
	MarkQueuedMessageSent(ctx context.Context, id uuid.UUID) error
	MarkQueuedMessageFailed(ctx context.Context, id uuid.UUID, errDetail string) error
	GetCampaignByID(ctx context.Context, id uuid.UUID) (store.Campaign, error)
	GetDeviceByID(ctx context.Context, id uuid.UUID) (store.Device, error)
	IncrementCampaignCounters(ctx context.Context, id uuid.UUID, sentDelta, failedDelta int) (store.Campaign, error)
	TransitionCampaignStatus(ctx context.Context, id uuid.UUID, from []string, params store.TransitionCampaignParams) (store.Campaign, error)
}

// Sender delivers one message through a connected gateway instance.
type Sender interface {
	SendMessage(ctx context.Context, storeSlug, role string, req gateway.SendMessageRequest) error
}

// CompletionPublisher receives the campaign.completed event when the last
// queue row lands.
type CompletionPublisher interface {
	CampaignCompleted(ctx context.Context, c store.Campaign)
}

// DispatchWorker processes dispatch jobs from the queue topic. Every row goes
// through a conditional claim first, so replays and competing consumers
// resolve to exactly one send attempt per row.
type DispatchWorker struct {
	store    DispatchStore
	sender   Sender
	events   CompletionPublisher
	retryCfg retry.Config
	logger   *observability.Logger
}

// NewDispatchWorker creates a dispatch worker.
func NewDispatchWorker(dispatchStore DispatchStore, sender Sender, events CompletionPublisher, logger *observability.Logger) *DispatchWorker {
	return &DispatchWorker{
		store:    dispatchStore,
		sender:   sender,
		events:   events,
		retryCfg: retry.DefaultConfig(),
		logger:   logger,
	}
}

// Handle processes one dispatch job. A nil return commits the Kafka offset;
// errors are returned only for transient failures worth redelivering.
func (w *DispatchWorker) Handle(ctx context.Context, job kafka.DispatchMessage) error {
	msgID, err := uuid.Parse(job.MessageID)
	if err != nil {
		w.logger.Error(ctx, "dispatch job carries malformed message id, skipping", err)
		return nil
	}

	msg, err := w.store.ClaimQueuedMessage(ctx, msgID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Lost the claim race, the row was cancelled, or it is not
			// due yet. The planner will republish due rows.
			w.logger.Debug(ctx, "queued message not claimable, skipping")
			return nil
		}
		return fmt.Errorf("failed to claim queued message: %w", err)
	}

	campaign, err := w.store.GetCampaignByID(ctx, msg.CampaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			w.logger.Warn(ctx, "claimed message belongs to a missing campaign")
			if markErr := w.store.MarkQueuedMessageFailed(ctx, msg.ID, "campaign not found"); markErr != nil {
				w.logger.Error(ctx, "failed to fail orphaned queue row", markErr)
			}
			return nil
		}
		return fmt.Errorf("failed to load campaign for dispatch: %w", err)
	}

	role := w.resolveRole(ctx, msg)

	sendErr := retry.Do(ctx, w.retryCfg, func(ctx context.Context) error {
		err := w.sender.SendMessage(ctx, campaign.StoreSlug, role, gateway.SendMessageRequest{
			Phone: msg.RecipientPhone,
			Body:  msg.Body,
		})
		if errors.Is(err, gateway.ErrInstanceNotFound) {
			return retry.Permanent(err)
		}
		return err
	})

	if sendErr != nil {
		sendCtx := observability.WithFields(ctx,
			observability.Field{Key: "role", Value: role})
		w.logger.Error(sendCtx, "message send failed", sendErr)
		if err := w.store.MarkQueuedMessageFailed(ctx, msg.ID, sendErr.Error()); err != nil {
			w.logger.Error(ctx, "failed to record send failure", err)
			return nil
		}
		return w.settle(ctx, campaign.ID, 0, 1)
	}

	if err := w.store.MarkQueuedMessageSent(ctx, msg.ID); err != nil {
		// The message went out. Never return an error here, a kafka
		// redelivery would double-send immediately; if the write was
		// lost the planner's stale-sending sweep requeues the row
		// later, which is the accepted at-least-once tradeoff.
		w.logger.Error(ctx, "failed to record successful send", err)
		return nil
	}
	return w.settle(ctx, campaign.ID, 1, 0)
}

// resolveRole maps the row's device assignment to a gateway slot. Rows with
// no assignment go out through the primary.
func (w *DispatchWorker) resolveRole(ctx context.Context, msg store.QueuedMessage) string {
	if msg.DeviceID == nil {
		return store.DeviceRolePrimary
	}
	device, err := w.store.GetDeviceByID(ctx, *msg.DeviceID)
	if err != nil {
		deviceCtx := observability.WithFields(ctx,
			observability.Field{Key: "device_id", Value: msg.DeviceID.String()})
		w.logger.Warn(deviceCtx, "assigned device not found, falling back to primary")
		return store.DeviceRolePrimary
	}
	return device.Role
}

// settle bumps the campaign counters and flips the campaign to completed when
// the last row has been accounted for.
func (w *DispatchWorker) settle(ctx context.Context, campaignID uuid.UUID, sentDelta, failedDelta int) error {
	campaign, err := w.store.IncrementCampaignCounters(ctx, campaignID, sentDelta, failedDelta)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// The guard refused the increment: the counters already
			// cover every recipient. Something replayed; don't retry.
			w.logger.Warn(ctx, "campaign counter increment rejected by guard")
			return nil
		}
		w.logger.Error(ctx, "failed to increment campaign counters", err)
		return nil
	}

	if campaign.SentCount+campaign.FailedCount < campaign.TotalRecipients {
		return nil
	}
	if campaign.Status != store.CampaignStatusRunning {
		return nil
	}

	completed, err := w.store.TransitionCampaignStatus(ctx, campaignID,
		[]string{store.CampaignStatusRunning},
		store.TransitionCampaignParams{To: store.CampaignStatusCompleted, SetCompletedAt: true})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Another worker completed it first.
			return nil
		}
		w.logger.Error(ctx, "failed to complete campaign", err)
		return nil
	}

	w.logger.Info(ctx, "campaign completed",
		observability.Field{Key: "campaign_id", Value: completed.ID.String()},
		observability.Field{Key: "sent_count", Value: completed.SentCount},
		observability.Field{Key: "failed_count", Value: completed.FailedCount})
	w.events.CampaignCompleted(ctx, completed)
	return nil
}
