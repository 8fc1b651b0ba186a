package store

import (
	"time"

	"github.com/google/uuid"
)

// Device represents one outbound messaging account attached to a store.
// Rows are created when an admin first requests a slot and are never
// deleted, only disconnected.
type Device struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	StoreSlug       string     `db:"store_slug" json:"store_slug"`
	Role            string     `db:"role" json:"role"`
	Status          string     `db:"status" json:"status"`
	PhoneNumber     *string    `db:"phone_number" json:"phone_number,omitempty"`
	QRCode          *string    `db:"qr_code" json:"qr_code,omitempty"`
	CredentialToken *string    `db:"credential_token" json:"-"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

// Campaign represents one bulk-send job.
// Weekdays is a bitmask with bit 0 = Sunday through bit 6 = Saturday.
type Campaign struct {
	ID                 uuid.UUID  `db:"id" json:"id"`
	StoreSlug          string     `db:"store_slug" json:"store_slug"`
	Name               string     `db:"name" json:"name"`
	Category           string     `db:"category" json:"category"`
	Status             string     `db:"status" json:"status"`
	TotalRecipients    int        `db:"total_recipients" json:"total_recipients"`
	SentCount          int        `db:"sent_count" json:"sent_count"`
	FailedCount        int        `db:"failed_count" json:"failed_count"`
	DailyLimit         int        `db:"daily_limit" json:"daily_limit"`
	StartHour          int        `db:"start_hour" json:"start_hour"`
	EndHour            int        `db:"end_hour" json:"end_hour"`
	IntervalMinutes    int        `db:"interval_minutes" json:"interval_minutes"`
	Weekdays           int        `db:"weekdays" json:"weekdays"`
	RotationEnabled    bool       `db:"rotation_enabled" json:"rotation_enabled"`
	RotationStrategy   string     `db:"rotation_strategy" json:"rotation_strategy"`
	PrimaryShare       int        `db:"primary_share" json:"primary_share"`
	PerContactDailyCap int        `db:"per_contact_daily_cap" json:"per_contact_daily_cap"`
	RiskLevel          string     `db:"risk_level" json:"risk_level"`
	ScheduledStart     *time.Time `db:"scheduled_start" json:"scheduled_start,omitempty"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	StartedAt          *time.Time `db:"started_at" json:"started_at,omitempty"`
	CompletedAt        *time.Time `db:"completed_at" json:"completed_at,omitempty"`
}

// WeekdayActive reports whether the given weekday is in the campaign's
// active set. An empty mask means every day is active.
func (c Campaign) WeekdayActive(d time.Weekday) bool {
	if c.Weekdays == 0 {
		return true
	}
	return c.Weekdays&(1<<uint(d)) != 0
}

// QueuedMessage represents one personalized message bound to one recipient.
// A nil DeviceID means the store's primary device.
type QueuedMessage struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	CampaignID      uuid.UUID  `db:"campaign_id" json:"campaign_id"`
	RecipientPhone  string     `db:"recipient_phone" json:"recipient_phone"`
	RecipientName   string     `db:"recipient_name" json:"recipient_name"`
	Body            string     `db:"body" json:"body"`
	DeviceID        *uuid.UUID `db:"device_id" json:"device_id,omitempty"`
	Status          string     `db:"status" json:"status"`
	ScheduledFor    *time.Time `db:"scheduled_for" json:"scheduled_for,omitempty"`
	RetryCount      int        `db:"retry_count" json:"retry_count"`
	LastError       *string    `db:"last_error" json:"last_error,omitempty"`
	StartHour       int        `db:"start_hour" json:"start_hour"`
	EndHour         int        `db:"end_hour" json:"end_hour"`
	IntervalMinutes int        `db:"interval_minutes" json:"interval_minutes"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}
