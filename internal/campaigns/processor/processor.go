package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"dispatch-server/internal/observability"
	"dispatch-server/internal/retry"
	"dispatch-server/internal/store"

	"github.com/google/uuid"
)

// CampaignStore defines the database operations the campaign processor needs.
type CampaignStore interface {
	CreateCampaign(ctx context.Context, params store.CreateCampaignParams) (store.Campaign, error)
	GetCampaignByID(ctx context.Context, id uuid.UUID) (store.Campaign, error)
	ListCampaigns(ctx context.Context, params store.ListCampaignsParams) (store.ListCampaignsResult, error)
	TransitionCampaignStatus(ctx context.Context, id uuid.UUID, from []string, params store.TransitionCampaignParams) (store.Campaign, error)
	ActivateCampaignSchedule(ctx context.Context, id uuid.UUID, status string, totalRecipients int, riskLevel string) (store.Campaign, error)
	CampaignQueueStats(ctx context.Context, campaignID uuid.UUID) (map[string]int, error)
	BulkInsertQueuedMessages(ctx context.Context, rows []store.QueuedMessageParams) (int, error)
	CancelQueuedMessages(ctx context.Context, campaignID uuid.UUID, from []string) (int64, error)
	RequeueCancelledMessages(ctx context.Context, campaignID uuid.UUID) (int64, error)
	RequeueFailedMessages(ctx context.Context, campaignID uuid.UUID) (int64, error)
	ListDevices(ctx context.Context, storeSlug string) ([]store.Device, error)
}

// EventPublisher emits domain events for the reporting pipeline. Publishing
// is best-effort: failures are logged by the publisher and never fail the
// operation that triggered them.
type EventPublisher interface {
	CampaignScheduled(ctx context.Context, c store.Campaign)
	CampaignPaused(ctx context.Context, c store.Campaign)
	CampaignResumed(ctx context.Context, c store.Campaign)
	CampaignCancelled(ctx context.Context, c store.Campaign)
}

var (
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrInvalidTransition = errors.New("invalid campaign transition")
	ErrNoEligibleDevices = errors.New("no eligible devices")
	ErrEmptyAudience     = errors.New("no sendable recipients")
	ErrMessageNotFound   = errors.New("queued message not found")
	ErrInvalidSchedule   = errors.New("invalid scheduling parameters")
)

// Processor owns the campaign lifecycle: creation, audience resolution and
// queue generation, and the guarded status transitions.
type Processor struct {
	store    CampaignStore
	events   EventPublisher
	retryCfg retry.Config
	logger   *observability.Logger
	rand     *rand.Rand
	now      func() time.Time
}

// New creates a campaign processor.
func New(campaignStore CampaignStore, events EventPublisher, logger *observability.Logger) *Processor {
	return &Processor{
		store:    campaignStore,
		events:   events,
		retryCfg: retry.DefaultConfig(),
		logger:   logger,
		rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
}

// CreateParams carries the validated campaign parameters from the handler.
type CreateParams struct {
	StoreSlug          string
	Name               string
	Category           string
	DailyLimit         int
	StartHour          int
	EndHour            int
	IntervalMinutes    int
	Weekdays           int
	RotationEnabled    bool
	RotationStrategy   string
	PrimaryShare       int
	PerContactDailyCap int
	ScheduledStart     *time.Time
}

// Create validates the scheduling parameters, annotates the ban-risk level,
// and persists a draft campaign.
func (p *Processor) Create(ctx context.Context, params CreateParams) (store.Campaign, error) {
	if err := validateSchedule(params); err != nil {
		return store.Campaign{}, err
	}

	strategy := params.RotationStrategy
	if strategy == "" {
		strategy = store.RotationRoundRobin
	}

	campaign, err := p.store.CreateCampaign(ctx, store.CreateCampaignParams{
		StoreSlug:          params.StoreSlug,
		Name:               params.Name,
		Category:           params.Category,
		DailyLimit:         params.DailyLimit,
		StartHour:          params.StartHour,
		EndHour:            params.EndHour,
		IntervalMinutes:    params.IntervalMinutes,
		Weekdays:           params.Weekdays,
		RotationEnabled:    params.RotationEnabled,
		RotationStrategy:   strategy,
		PrimaryShare:       params.PrimaryShare,
		PerContactDailyCap: params.PerContactDailyCap,
		RiskLevel:          ScoreRisk(params.IntervalMinutes, params.DailyLimit, params.RotationEnabled),
		ScheduledStart:     params.ScheduledStart,
	})
	if err != nil {
		return store.Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}

	p.logger.Info(ctx, "campaign created",
		observability.Field{Key: "campaign_id", Value: campaign.ID.String()},
		observability.Field{Key: "risk_level", Value: campaign.RiskLevel},
	)
	return campaign, nil
}

func validateSchedule(params CreateParams) error {
	if params.StartHour < 0 || params.StartHour > 23 || params.EndHour < 0 || params.EndHour > 23 {
		return fmt.Errorf("%w: hours must be between 0 and 23", ErrInvalidSchedule)
	}
	if params.EndHour < params.StartHour {
		return fmt.Errorf("%w: end hour %d is before start hour %d", ErrInvalidSchedule, params.EndHour, params.StartHour)
	}
	if params.IntervalMinutes < 1 {
		return fmt.Errorf("%w: interval must be at least one minute", ErrInvalidSchedule)
	}
	if params.RotationStrategy != "" {
		if _, err := store.ParseRotationStrategy(params.RotationStrategy); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
		}
	}
	if params.Weekdays < 0 || params.Weekdays > 127 {
		return fmt.Errorf("%w: weekday mask out of range", ErrInvalidSchedule)
	}
	return nil
}

// ScheduleParams is the audience snapshot plus template variations a draft
// campaign is scheduled with.
type ScheduleParams struct {
	Recipients []Recipient
	Variations []string
	Randomize  bool
}

// ScheduleResult reports what the scheduling run produced.
type ScheduleResult struct {
	Campaign           store.Campaign
	Queued             int
	ExcludedRecipients int
	EstimatedFinish    time.Time
	EstimatedDays      int
}

// Schedule resolves the audience, generates the send queue, and activates
// the campaign: running immediately, or scheduled when a future start is
// set. Legal only from draft.
func (p *Processor) Schedule(ctx context.Context, campaignID uuid.UUID, params ScheduleParams) (ScheduleResult, error) {
	campaign, err := p.getCampaign(ctx, campaignID)
	if err != nil {
		return ScheduleResult{}, err
	}
	if campaign.Status != store.CampaignStatusDraft {
		return ScheduleResult{}, transitionError("schedule", campaign.Status)
	}
	if len(params.Variations) == 0 {
		return ScheduleResult{}, fmt.Errorf("%w: at least one message variation is required", ErrInvalidSchedule)
	}

	now := p.now()
	resolved := ResolveMessages(ResolveParams{
		Recipients: params.Recipients,
		Variations: params.Variations,
		Randomize:  params.Randomize,
		Now:        now,
		Rand:       p.rand,
	})
	if len(resolved.Messages) == 0 {
		return ScheduleResult{}, ErrEmptyAudience
	}

	devices, err := p.store.ListDevices(ctx, campaign.StoreSlug)
	if err != nil {
		return ScheduleResult{}, fmt.Errorf("failed to list devices: %w", err)
	}
	if len(devices) == 0 {
		return ScheduleResult{}, ErrNoEligibleDevices
	}

	rows := BuildQueue(campaign, devices, resolved.Messages, now, p.rand)

	committed, err := p.store.BulkInsertQueuedMessages(ctx, rows)
	if err != nil {
		// Partial failure: surface exactly how many rows made it in.
		return ScheduleResult{}, fmt.Errorf("queue generation failed after %d of %d rows: %w", committed, len(rows), err)
	}

	status := store.CampaignStatusRunning
	if campaign.ScheduledStart != nil && campaign.ScheduledStart.After(now) {
		status = store.CampaignStatusScheduled
	}
	riskLevel := ScoreRisk(campaign.IntervalMinutes, campaign.DailyLimit, campaign.RotationEnabled)

	err = retry.Do(ctx, p.retryCfg, func(ctx context.Context) error {
		var err error
		campaign, err = p.store.ActivateCampaignSchedule(ctx, campaignID, status, len(resolved.Messages), riskLevel)
		if errors.Is(err, store.ErrNotFound) {
			return retry.Permanent(err)
		}
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Another session moved the campaign out of draft underneath us.
			current, readErr := p.getCampaign(ctx, campaignID)
			if readErr != nil {
				return ScheduleResult{}, readErr
			}
			return ScheduleResult{}, transitionError("schedule", current.Status)
		}
		return ScheduleResult{}, fmt.Errorf("failed to activate campaign: %w", err)
	}

	p.events.CampaignScheduled(ctx, campaign)
	p.logger.Info(ctx, "campaign scheduled",
		observability.Field{Key: "campaign_id", Value: campaign.ID.String()},
		observability.Field{Key: "queued", Value: committed},
		observability.Field{Key: "excluded", Value: resolved.Excluded},
		observability.Field{Key: "status", Value: campaign.Status},
	)

	finish, days := EstimateCompletion(campaign, now)
	return ScheduleResult{
		Campaign:           campaign,
		Queued:             committed,
		ExcludedRecipients: resolved.Excluded,
		EstimatedFinish:    finish,
		EstimatedDays:      days,
	}, nil
}

// Pause halts a running campaign. Pending and scheduled queue rows are
// parked as cancelled; rows already claimed by a worker finish their send.
func (p *Processor) Pause(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error) {
	campaign, err := p.transition(ctx, campaignID, "pause",
		[]string{store.CampaignStatusRunning},
		store.TransitionCampaignParams{To: store.CampaignStatusPaused})
	if err != nil {
		return store.Campaign{}, err
	}

	parked, err := p.store.CancelQueuedMessages(ctx, campaignID,
		[]string{store.MessageStatusPending, store.MessageStatusScheduled})
	if err != nil {
		return store.Campaign{}, fmt.Errorf("failed to park queued messages: %w", err)
	}

	p.events.CampaignPaused(ctx, campaign)
	p.logger.Info(ctx, "campaign paused",
		observability.Field{Key: "campaign_id", Value: campaign.ID.String()},
		observability.Field{Key: "parked_messages", Value: parked},
	)
	return campaign, nil
}

// Resume reactivates a paused campaign and requeues the rows pause parked.
// Safe because resume is only legal from paused, so the campaign's cancelled
// rows can only have been parked by pause.
func (p *Processor) Resume(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error) {
	campaign, err := p.transition(ctx, campaignID, "resume",
		[]string{store.CampaignStatusPaused},
		store.TransitionCampaignParams{To: store.CampaignStatusRunning, SetStartedAt: true})
	if err != nil {
		return store.Campaign{}, err
	}

	requeued, err := p.store.RequeueCancelledMessages(ctx, campaignID)
	if err != nil {
		return store.Campaign{}, fmt.Errorf("failed to requeue parked messages: %w", err)
	}

	p.events.CampaignResumed(ctx, campaign)
	p.logger.Info(ctx, "campaign resumed",
		observability.Field{Key: "campaign_id", Value: campaign.ID.String()},
		observability.Field{Key: "requeued_messages", Value: requeued},
	)
	return campaign, nil
}

// Cancel terminates a campaign from any non-terminal state except completed.
// All non-terminal queue rows are cancelled, including sending ones; a send
// already in flight at the gateway still completes.
func (p *Processor) Cancel(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error) {
	campaign, err := p.transition(ctx, campaignID, "cancel",
		[]string{
			store.CampaignStatusDraft,
			store.CampaignStatusScheduled,
			store.CampaignStatusRunning,
			store.CampaignStatusPaused,
			store.CampaignStatusFailed,
		},
		store.TransitionCampaignParams{To: store.CampaignStatusCancelled, SetCompletedAt: true})
	if err != nil {
		return store.Campaign{}, err
	}

	cancelled, err := p.store.CancelQueuedMessages(ctx, campaignID,
		[]string{store.MessageStatusPending, store.MessageStatusScheduled, store.MessageStatusSending})
	if err != nil {
		return store.Campaign{}, fmt.Errorf("failed to cancel queued messages: %w", err)
	}

	p.events.CampaignCancelled(ctx, campaign)
	p.logger.Info(ctx, "campaign cancelled",
		observability.Field{Key: "campaign_id", Value: campaign.ID.String()},
		observability.Field{Key: "cancelled_messages", Value: cancelled},
	)
	return campaign, nil
}

// RetryFailed requeues a campaign's failed messages as pending. Refused on
// terminal campaigns, where nothing would ever pick the rows up again.
func (p *Processor) RetryFailed(ctx context.Context, campaignID uuid.UUID) (int64, error) {
	campaign, err := p.getCampaign(ctx, campaignID)
	if err != nil {
		return 0, err
	}
	if store.CampaignStatusTerminal(campaign.Status) {
		return 0, transitionError("retry failed messages", campaign.Status)
	}

	requeued, err := p.store.RequeueFailedMessages(ctx, campaignID)
	if err != nil {
		return 0, fmt.Errorf("failed to requeue failed messages: %w", err)
	}

	p.logger.Info(ctx, "failed messages requeued",
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "requeued_messages", Value: requeued},
	)
	return requeued, nil
}

// Overview is a campaign plus its live queue breakdown and completion
// projection.
type Overview struct {
	Campaign        store.Campaign `json:"campaign"`
	QueueStats      map[string]int `json:"queue_stats"`
	EstimatedFinish *time.Time     `json:"estimated_finish,omitempty"`
	EstimatedDays   int            `json:"estimated_days"`
}

// GetOverview returns a campaign with queue statistics and, for active
// campaigns, an estimated completion time.
func (p *Processor) GetOverview(ctx context.Context, campaignID uuid.UUID) (Overview, error) {
	campaign, err := p.getCampaign(ctx, campaignID)
	if err != nil {
		return Overview{}, err
	}

	stats, err := p.store.CampaignQueueStats(ctx, campaignID)
	if err != nil {
		return Overview{}, fmt.Errorf("failed to get queue stats: %w", err)
	}

	overview := Overview{Campaign: campaign, QueueStats: stats}
	if campaign.Status == store.CampaignStatusRunning || campaign.Status == store.CampaignStatusScheduled {
		finish, days := EstimateCompletion(campaign, p.now())
		overview.EstimatedFinish = &finish
		overview.EstimatedDays = days
	}
	return overview, nil
}

// List returns a page of a store's campaigns.
func (p *Processor) List(ctx context.Context, params store.ListCampaignsParams) (store.ListCampaignsResult, error) {
	if params.Limit <= 0 || params.Limit > 100 {
		params.Limit = 20
	}
	return p.store.ListCampaigns(ctx, params)
}

// transition performs one guarded status change wrapped in the retry
// utility. A failed guard is re-read to produce the descriptive error naming
// the current status and the attempted action.
func (p *Processor) transition(ctx context.Context, campaignID uuid.UUID, action string, from []string, params store.TransitionCampaignParams) (store.Campaign, error) {
	var campaign store.Campaign
	err := retry.Do(ctx, p.retryCfg, func(ctx context.Context) error {
		var err error
		campaign, err = p.store.TransitionCampaignStatus(ctx, campaignID, from, params)
		if errors.Is(err, store.ErrNotFound) {
			return retry.Permanent(err)
		}
		return err
	})
	if err == nil {
		return campaign, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return store.Campaign{}, fmt.Errorf("failed to %s campaign: %w", action, err)
	}

	// Guard miss or missing row: re-read to tell the two apart.
	current, readErr := p.getCampaign(ctx, campaignID)
	if readErr != nil {
		return store.Campaign{}, readErr
	}
	return store.Campaign{}, transitionError(action, current.Status)
}

func (p *Processor) getCampaign(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error) {
	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		return store.Campaign{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	return campaign, nil
}

func transitionError(action, currentStatus string) error {
	return fmt.Errorf("%w: cannot %s a campaign in status %q", ErrInvalidTransition, action, currentStatus)
}
