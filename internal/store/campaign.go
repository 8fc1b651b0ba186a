package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
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
	RiskLevel          string
	ScheduledStart     *time.Time
}

const campaignColumns = `
id, store_slug, name, category, status, total_recipients, sent_count, failed_count,
daily_limit, start_hour, end_hour, interval_minutes, weekdays,
rotation_enabled, rotation_strategy, primary_share, per_contact_daily_cap,
risk_level, scheduled_start, created_at, started_at, completed_at`

const sqlCreateCampaign = `
INSERT INTO campaigns (
    store_slug, name, category, status,
    daily_limit, start_hour, end_hour, interval_minutes, weekdays,
    rotation_enabled, rotation_strategy, primary_share, per_contact_daily_cap,
    risk_level, scheduled_start
)
VALUES ($1, $2, $3, 'draft', $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING ` + campaignColumns

// CreateCampaign creates a new campaign in draft
func (s *Store) CreateCampaign(ctx context.Context, params CreateCampaignParams) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlCreateCampaign,
		params.StoreSlug,
		params.Name,
		params.Category,
		params.DailyLimit,
		params.StartHour,
		params.EndHour,
		params.IntervalMinutes,
		params.Weekdays,
		params.RotationEnabled,
		params.RotationStrategy,
		params.PrimaryShare,
		params.PerContactDailyCap,
		params.RiskLevel,
		params.ScheduledStart)
	if err != nil {
		s.logger.Error(ctx, "failed to create campaign", err)
		return Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}
	return campaign, nil
}

const sqlGetCampaignByID = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE id = $1
`

// GetCampaignByID fetches a campaign by its identifier
func (s *Store) GetCampaignByID(ctx context.Context, id uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetCampaignByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get campaign", err)
		return Campaign{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	return campaign, nil
}

// ListCampaignsParams represents filtering and pagination for campaign lists
type ListCampaignsParams struct {
	StoreSlug string
	Status    string
	Limit     int
	Offset    int
}

// ListCampaignsResult holds one page of campaigns plus the total count
type ListCampaignsResult struct {
	Campaigns  []Campaign
	TotalCount int
}

// ListCampaigns returns a page of a store's campaigns, newest first
func (s *Store) ListCampaigns(ctx context.Context, params ListCampaignsParams) (ListCampaignsResult, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE store_slug = $1`
	countQuery := `SELECT COUNT(*) FROM campaigns WHERE store_slug = $1`
	args := []interface{}{params.StoreSlug}

	if params.Status != "" {
		query += ` AND status = $2`
		countQuery += ` AND status = $2`
		args = append(args, params.Status)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT %d OFFSET %d`, params.Limit, params.Offset)

	result := ListCampaignsResult{Campaigns: []Campaign{}}
	if err := s.db.SelectContext(ctx, &result.Campaigns, query, args...); err != nil {
		s.logger.Error(ctx, "failed to list campaigns", err)
		return ListCampaignsResult{}, fmt.Errorf("failed to list campaigns: %w", err)
	}
	if err := s.db.GetContext(ctx, &result.TotalCount, countQuery, args...); err != nil {
		s.logger.Error(ctx, "failed to count campaigns", err)
		return ListCampaignsResult{}, fmt.Errorf("failed to count campaigns: %w", err)
	}
	return result, nil
}

// TransitionCampaignParams describes a guarded status transition
type TransitionCampaignParams struct {
	To             string
	SetStartedAt   bool
	SetCompletedAt bool
}

/// TransitionCampaignStatus performs a compare-and-set transition: the row is
// updated only if its current status is in `from`. ErrNotFound is returned
// both when the campaign does not exist and when the guard did not match;
// callers distinguish the two by re-reading the row.
func (s *Store) TransitionCampaignStatus(ctx context.Context, id uuid.UUID, from []string, params TransitionCampaignParams) (Campaign, error) {
	setClause := `status = ?`
	if params.SetStartedAt {
		setClause += `, started_at = NOW()`
	}
	if params.SetCompletedAt {
		setClause += `, completed_at = NOW()`
	}
	query := `UPDATE campaigns SET ` + setClause + ` WHERE id = ? AND status IN (?) RETURNING ` + campaignColumns

	query, args, err := sqlx.In(query, params.To, id, from)
	if err != nil {
		return Campaign{}, fmt.Errorf("failed to build transition query: %w", err)
	}
	query = s.db.Rebind(query)

	var campaign Campaign
	err = s.db.GetContext(ctx, &campaign, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to transition campaign status", err)
		return Campaign{}, fmt.Errorf("failed to transition campaign status: %w", err)
	}
	return campaign, nil
}

const sqlActivateCampaignSchedule = `
UPDATE campaigns
SET status = $2, total_recipients = $3, risk_level = $4, started_at = CASE WHEN $2 = 'running' THEN NOW() ELSE started_at END
WHERE id = $1 AND status IN ('draft', 'scheduled')
RETURNING ` + campaignColumns

// ActivateCampaignSchedule records the resolved audience size and risk level
// once the queue has been generated, and moves the campaign to running (or
// scheduled, when a future start is set).
func (s *Store) ActivateCampaignSchedule(ctx context.Context, id uuid.UUID, status string, totalRecipients int, riskLevel string) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlActivateCampaignSchedule, id, status, totalRecipients, riskLevel)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to activate campaign schedule", err)
		return Campaign{}, fmt.Errorf("failed to activate campaign schedule: %w", err)
	}
	return campaign, nil
}

// The guard keeps sent_count + failed_count from ever exceeding
// total_recipients, no matter how many workers report concurrently.
// counterGuardAllows is the Go statement of the WHERE guard in
// sqlIncrementCampaignCounters: an increment is accepted only while
// sent_count + failed_count never exceeds total_recipients. The guard runs
// inside the UPDATE so it holds under concurrent workers; the two must stay
// in agreement.
func counterGuardAllows(c Campaign, sentDelta, failedDelta int) bool {
	return c.SentCount+c.FailedCount+sentDelta+failedDelta <= c.TotalRecipients
}

const sqlIncrementCampaignCounters = `
UPDATE campaigns
SET sent_count = sent_count + $2, failed_count = failed_count + $3
WHERE id = $1 AND sent_count + failed_count + $2 + $3 <= total_recipients
RETURNING ` + campaignColumns

// IncrementCampaignCounters is the single authoritative update path for the
// sent/failed counters. A zero-row update means the increment would have
// pushed the counters past the recipient total.
func (s *Store) IncrementCampaignCounters(ctx context.Context, id uuid.UUID, sentDelta, failedDelta int) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlIncrementCampaignCounters, id, sentDelta, failedDelta)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to increment campaign counters", err)
		return Campaign{}, fmt.Errorf("failed to increment campaign counters: %w", err)
	}
	return campaign, nil
}

const sqlGetDueScheduledCampaigns = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE status = 'scheduled' AND scheduled_start IS NOT NULL AND scheduled_start <= $1
ORDER BY scheduled_start
`

// GetDueScheduledCampaigns returns campaigns whose scheduled start has passed
func (s *Store) GetDueScheduledCampaigns(ctx context.Context, now time.Time) ([]Campaign, error) {
	campaigns := []Campaign{}
	err := s.db.SelectContext(ctx, &campaigns, sqlGetDueScheduledCampaigns, now)
	if err != nil {
		s.logger.Error(ctx, "failed to get due scheduled campaigns", err)
		return nil, fmt.Errorf("failed to get due scheduled campaigns: %w", err)
	}
	return campaigns, nil
}

const sqlCampaignQueueStats = `
SELECT status, COUNT(*) AS count
FROM queued_messages
WHERE campaign_id = $1
GROUP BY status
`

// CampaignQueueStats returns per-status counts for a campaign's send queue
func (s *Store) CampaignQueueStats(ctx context.Context, campaignID uuid.UUID) (map[string]int, error) {
	rows := []struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}{}
	if err := s.db.SelectContext(ctx, &rows, sqlCampaignQueueStats, campaignID); err != nil {
		s.logger.Error(ctx, "failed to get campaign queue stats", err)
		return nil, fmt.Errorf("failed to get campaign queue stats: %w", err)
	}

	stats := map[string]int{
		MessageStatusPending:   0,
		MessageStatusScheduled: 0,
		MessageStatusSending:   0,
		MessageStatusSent:      0,
		MessageStatusFailed:    0,
		MessageStatusCancelled: 0,
		MessageStatusSkipped:   0,
	}
	total := 0
	for _, row := range rows {
		stats[row.Status] = row.Count
		total += row.Count
	}
	stats["total"] = total
	return stats, nil
}
