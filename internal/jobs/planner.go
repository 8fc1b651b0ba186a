package jobs

import (
	"context"
	"fmt"
	"time"

	"dispatch-server/internal/clients/kafka"
	"dispatch-server/internal/observability"
	"dispatch-server/internal/store"
)

// A sending row whose last update is older than this was abandoned mid-send
// (worker crash or a lost status write) and gets swept back to pending.
const staleSendingAfter = 10 * time.Minute

// PlannerStore defines the database operations the dispatch planner needs.
type PlannerStore interface {
	ListDueQueuedMessages(ctx context.Context, now time.Time, limit int) ([]store.QueuedMessage, error)
	RequeueStaleSendingMessages(ctx context.Context, olderThan time.Time) (int64, error)
}

// DispatchPublisher hands message ids to the dispatch workers.
type DispatchPublisher interface {
	PublishDispatchJobs(ctx context.Context, jobs []kafka.DispatchMessage) error
}

// PlannerJob selects due queue rows of running campaigns and publishes their
// ids to the dispatch topic. The workers do the claiming, so publishing the
// same id twice is harmless.
type PlannerJob struct {
	store     PlannerStore
	publisher DispatchPublisher
	interval  time.Duration
	batchSize int
	logger    *observability.Logger
	now       func() time.Time
}

// NewPlannerJob creates the dispatch planner job.
func NewPlannerJob(s PlannerStore, publisher DispatchPublisher, interval time.Duration, batchSize int, logger *observability.Logger) *PlannerJob {
	return &PlannerJob{
		store:     s,
		publisher: publisher,
		interval:  interval,
		batchSize: batchSize,
		logger:    logger,
		now:       time.Now,
	}
}

// Name returns the job name for logging
func (j *PlannerJob) Name() string { return "dispatch-planner" }

// Schedule returns the interval between runs
func (j *PlannerJob) Schedule() time.Duration { return j.interval }

// Run sweeps stale sending rows back to pending, then publishes one batch of
// due messages.
func (j *PlannerJob) Run(ctx context.Context) error {
	now := j.now()

	swept, err := j.store.RequeueStaleSendingMessages(ctx, now.Add(-staleSendingAfter))
	if err != nil {
		return fmt.Errorf("failed to sweep stale sending messages: %w", err)
	}
	if swept > 0 {
		j.logger.Warn(ctx, fmt.Sprintf("requeued %d messages stuck in sending", swept))
	}

	due, err := j.store.ListDueQueuedMessages(ctx, now, j.batchSize)
	if err != nil {
		return fmt.Errorf("failed to list due messages: %w", err)
	}
	if len(due) == 0 {
		return nil
	}

	batch := make([]kafka.DispatchMessage, 0, len(due))
	for _, msg := range due {
		batch = append(batch, kafka.DispatchMessage{
			MessageID:  msg.ID.String(),
			CampaignID: msg.CampaignID.String(),
		})
	}

	if err := j.publisher.PublishDispatchJobs(ctx, batch); err != nil {
		return fmt.Errorf("failed to publish dispatch jobs: %w", err)
	}

	j.logger.Info(ctx, fmt.Sprintf("planned %d messages for dispatch", len(batch)),
		observability.Field{Key: "batch_size", Value: len(batch)})
	return nil
}
