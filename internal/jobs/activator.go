package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch-server/internal/observability"
	"dispatch-server/internal/store"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=activator.go -destination=mocks_test.go -package=jobs

// ActivatorStore defines the database operations the campaign activator needs.
type ActivatorStore interface {
	GetDueScheduledCampaigns(ctx context.Context, now time.Time) ([]store.Campaign, error)
	TransitionCampaignStatus(ctx context.Context, id uuid.UUID, from []string, params store.TransitionCampaignParams) (store.Campaign, error)
}

// ActivatorJob flips scheduled campaigns to running once their scheduled
// start has passed. The transition is CAS-guarded, so concurrent activator
// instances cannot double-activate a campaign.
type ActivatorJob struct {
	store    ActivatorStore
	interval time.Duration
	logger   *observability.Logger
	now      func() time.Time
}

// NewActivatorJob creates the campaign activator job.
func NewActivatorJob(s ActivatorStore, interval time.Duration, logger *observability.Logger) *ActivatorJob {
	return &ActivatorJob{
		store:    s,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// Name returns the job name for logging
func (j *ActivatorJob) Name() string { return "campaign-activator" }

// Schedule returns the interval between runs
func (j *ActivatorJob) Schedule() time.Duration { return j.interval }

// Run activates every due scheduled campaign.
func (j *ActivatorJob) Run(ctx context.Context) error {
	due, err := j.store.GetDueScheduledCampaigns(ctx, j.now())
	if err != nil {
		return fmt.Errorf("failed to load due campaigns: %w", err)
	}

	var failed int
	for _, campaign := range due {
		cctx := observability.WithFields(ctx,
			observability.Field{Key: "campaign_id", Value: campaign.ID.String()})

		_, err := j.store.TransitionCampaignStatus(cctx, campaign.ID,
			[]string{store.CampaignStatusScheduled},
			store.TransitionCampaignParams{To: store.CampaignStatusRunning, SetStartedAt: true})
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// Lost the race to another instance, or an operator moved it.
				continue
			}
			j.logger.Error(cctx, "failed to activate scheduled campaign", err)
			failed++
			continue
		}
		j.logger.Info(cctx, "scheduled campaign activated")
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d campaign activations failed", failed, len(due))
	}
	return nil
}
