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

// QueuedMessageParams represents one row of a campaign's send queue at
// insert time.
type QueuedMessageParams struct {
	CampaignID      uuid.UUID
	RecipientPhone  string
	RecipientName   string
	Body            string
	DeviceID        *uuid.UUID
	Status          string
	ScheduledFor    *time.Time
	StartHour       int
	EndHour         int
	IntervalMinutes int
}

const queuedMessageColumns = `
id, campaign_id, recipient_phone, recipient_name, body, device_id, status,
scheduled_for, retry_count, last_error, start_hour, end_hour, interval_minutes,
created_at, updated_at`

const sqlInsertQueuedMessage = `
INSERT INTO queued_messages (
    campaign_id, recipient_phone, recipient_name, body, device_id, status,
    scheduled_for, start_hour, end_hour, interval_minutes
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

// BulkInsertQueuedMessages inserts the generated queue rows. On failure it
// returns the number of rows committed before the failing row, so a partial
// insert is never silently lost.
func (s *Store) BulkInsertQueuedMessages(ctx context.Context, rows []QueuedMessageParams) (int, error) {
	for i, row := range rows {
		_, err := s.db.ExecContext(ctx, sqlInsertQueuedMessage,
			row.CampaignID,
			row.RecipientPhone,
			row.RecipientName,
			row.Body,
			row.DeviceID,
			row.Status,
			row.ScheduledFor,
			row.StartHour,
			row.EndHour,
			row.IntervalMinutes)
		if err != nil {
			s.logger.Error(ctx, "queued message bulk insert failed partway", err)
			return i, fmt.Errorf("bulk insert failed after %d of %d rows: %w", i, len(rows), err)
		}
	}
	return len(rows), nil
}

const sqlGetQueuedMessageByID = `
SELECT ` + queuedMessageColumns + `
FROM queued_messages
WHERE id = $1
`

// GetQueuedMessageByID fetches one queue row.
func (s *Store) GetQueuedMessageByID(ctx context.Context, id uuid.UUID) (QueuedMessage, error) {
	var msg QueuedMessage
	err := s.db.GetContext(ctx, &msg, sqlGetQueuedMessageByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return QueuedMessage{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get queued message", err)
		return QueuedMessage{}, fmt.Errorf("failed to get queued message: %w", err)
	}
	return msg, nil
}

// The claim is the explicit conditional step that prevents double-sends:
// only one worker can win the pending/scheduled -> sending transition.
const sqlClaimQueuedMessage = `
UPDATE queued_messages
SET status = 'sending', updated_at = NOW()
WHERE id = $1 AND status IN ('pending', 'scheduled')
  AND (scheduled_for IS NULL OR scheduled_for <= NOW())
RETURNING ` + queuedMessageColumns

// ClaimQueuedMessage atomically claims a queue row for sending. ErrNotFound
// means another worker already claimed it, it was cancelled, or its
// not-before timestamp has not passed yet.
func (s *Store) ClaimQueuedMessage(ctx context.Context, id uuid.UUID) (QueuedMessage, error) {
	var msg QueuedMessage
	err := s.db.GetContext(ctx, &msg, sqlClaimQueuedMessage, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return QueuedMessage{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to claim queued message", err)
		return QueuedMessage{}, fmt.Errorf("failed to claim queued message: %w", err)
	}
	return msg, nil
}

const sqlMarkQueuedMessageSent = `
UPDATE queued_messages
SET status = 'sent', last_error = NULL, updated_at = NOW()
WHERE id = $1 AND status = 'sending'
`

// MarkQueuedMessageSent completes a claimed row.
func (s *Store) MarkQueuedMessageSent(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlMarkQueuedMessageSent, id)
	if err != nil {
		s.logger.Error(ctx, "failed to mark queued message sent", err)
		return fmt.Errorf("failed to mark queued message sent: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlMarkQueuedMessageFailed = `
UPDATE queued_messages
SET status = 'failed', last_error = $2, retry_count = retry_count + 1, updated_at = NOW()
WHERE id = $1 AND status = 'sending'
`

// MarkQueuedMessageFailed fails a claimed row and records the error detail.
func (s *Store) MarkQueuedMessageFailed(ctx context.Context, id uuid.UUID, errDetail string) error {
	res, err := s.db.ExecContext(ctx, sqlMarkQueuedMessageFailed, id, errDetail)
	if err != nil {
		s.logger.Error(ctx, "failed to mark queued message failed", err)
		return fmt.Errorf("failed to mark queued message failed: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// CancelQueuedMessages moves a campaign's queue rows in any of the `from`
// statuses to cancelled and returns how many rows were affected.
func (s *Store) CancelQueuedMessages(ctx context.Context, campaignID uuid.UUID, from []string) (int64, error) {
	query, args, err := sqlx.In(
		`UPDATE queued_messages SET status = 'cancelled', updated_at = NOW() WHERE campaign_id = ? AND status IN (?)`,
		campaignID, from)
	if err != nil {
		return 0, fmt.Errorf("failed to build cancel query: %w", err)
	}
	query = s.db.Rebind(query)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		s.logger.Error(ctx, "failed to cancel queued messages", err)
		return 0, fmt.Errorf("failed to cancel queued messages: %w", err)
	}
	affected, _ := res.RowsAffected()
	return affected, nil
}

const sqlRequeueCancelledMessages = `
UPDATE queued_messages
SET status = 'pending', updated_at = NOW()
WHERE campaign_id = $1 AND status = 'cancelled'
`

// RequeueCancelledMessages restores rows parked by a pause back to pending.
// Only reachable through resume, which is guarded to paused campaigns, so it
// never resurrects rows of a cancelled campaign.
func (s *Store) RequeueCancelledMessages(ctx context.Context, campaignID uuid.UUID) (int64, error) {
	res, err := s.db.ExecContext(ctx, sqlRequeueCancelledMessages, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to requeue cancelled messages", err)
		return 0, fmt.Errorf("failed to requeue cancelled messages: %w", err)
	}
	affected, _ := res.RowsAffected()
	return affected, nil
}

const sqlRequeueFailedMessages = `
UPDATE queued_messages
SET status = 'pending', updated_at = NOW()
WHERE campaign_id = $1 AND status = 'failed'
`

// RequeueFailedMessages is the explicit failed -> pending retry request.
func (s *Store) RequeueFailedMessages(ctx context.Context, campaignID uuid.UUID) (int64, error) {
	res, err := s.db.ExecContext(ctx, sqlRequeueFailedMessages, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to requeue failed messages", err)
		return 0, fmt.Errorf("failed to requeue failed messages: %w", err)
	}
	affected, _ := res.RowsAffected()
	return affected, nil
}

const sqlRequeueStaleSendingMessages = `
UPDATE queued_messages
SET status = 'pending', updated_at = NOW()
WHERE status = 'sending' AND updated_at < $1
`

// RequeueStaleSendingMessages returns rows abandoned mid-send (worker crash,
// or a status write that never landed) to pending. Requeueing accepts an
// at-least-once delivery for those rows; without it they would sit in
// sending forever, since no other query revisits that status.
func (s *Store) RequeueStaleSendingMessages(ctx context.Context, olderThan time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, sqlRequeueStaleSendingMessages, olderThan)
	if err != nil {
		s.logger.Error(ctx, "failed to requeue stale sending messages", err)
		return 0, fmt.Errorf("failed to requeue stale sending messages: %w", err)
	}
	affected, _ := res.RowsAffected()
	return affected, nil
}

const sqlListDueQueuedMessages = `
SELECT ` + queuedMessageColumns + `
FROM queued_messages m
WHERE m.status IN ('pending', 'scheduled')
  AND (m.scheduled_for IS NULL OR m.scheduled_for <= $1)
  AND EXISTS (
      SELECT 1 FROM campaigns c WHERE c.id = m.campaign_id AND c.status = 'running'
  )
ORDER BY m.scheduled_for NULLS FIRST
LIMIT $2
`

// ListDueQueuedMessages returns queue rows of running campaigns whose
// not-before timestamp has passed. Publishing the same row twice is
// harmless: the worker's claim is conditional.
func (s *Store) ListDueQueuedMessages(ctx context.Context, now time.Time, limit int) ([]QueuedMessage, error) {
	msgs := []QueuedMessage{}
	err := s.db.SelectContext(ctx, &msgs, sqlListDueQueuedMessages, now, limit)
	if err != nil {
		s.logger.Error(ctx, "failed to list due queued messages", err)
		return nil, fmt.Errorf("failed to list due queued messages: %w", err)
	}
	return msgs, nil
}
