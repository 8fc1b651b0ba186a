package processor

import (
	"math/rand"
	"time"

	"dispatch-server/internal/store"

	"github.com/google/uuid"
)

// devicePool is the ordered set of devices a campaign may send through:
// the primary slot first, then the selected connected backups. A nil entry
// stands for the store's primary device before its row exists.
type devicePool struct {
	ids []*uuid.UUID
}

// buildDevicePool applies the eligibility rules: the primary is always
// eligible regardless of its connection state; backups only count while
// connected, and only when rotation is enabled.
func buildDevicePool(c store.Campaign, devices []store.Device) devicePool {
	var primary *uuid.UUID
	for i := range devices {
		if devices[i].Role == store.DeviceRolePrimary {
			id := devices[i].ID
			primary = &id
			break
		}
	}

	pool := devicePool{ids: []*uuid.UUID{primary}}
	if !c.RotationEnabled {
		return pool
	}
	for i := range devices {
		if devices[i].Role != store.DeviceRolePrimary && devices[i].Status == store.DeviceStatusConnected {
			id := devices[i].ID
			pool.ids = append(pool.ids, &id)
		}
	}
	return pool
}

func (p devicePool) size() int { return len(p.ids) }

// pick assigns a device for the i-th message of the day. dayPrimary is how
// many messages the primary has already taken today (primary_first only).
func (p devicePool) pick(c store.Campaign, i, dayPrimary int, rnd *rand.Rand) (*uuid.UUID, bool) {
	if len(p.ids) == 1 {
		return p.ids[0], true
	}
	switch c.RotationStrategy {
	case store.RotationRandom:
		if rnd != nil {
			return p.ids[rnd.Intn(len(p.ids))], false
		}
		return p.ids[i%len(p.ids)], false
	case store.RotationPrimaryFirst:
		share := c.PrimaryShare
		if share <= 0 {
			share = c.DailyLimit
		}
		if share <= 0 || dayPrimary < share {
			return p.ids[0], true
		}
		backups := p.ids[1:]
		return backups[i%len(backups)], false
	default: // round_robin
		id := p.ids[i%len(p.ids)]
		return id, id == p.ids[0]
	}
}

// BuildQueue turns resolved messages into queued-message rows with computed
// scheduled-for timestamps. It only computes timestamps; the dispatch worker
// does the actual sending.
//
// Constraints honored, in order: per-device minimum spacing, the campaign's
// hour window (inclusive start..end:59) and active-weekday set, the
// per-contact daily cap, and the campaign-wide daily cap. A message that
// cannot fit today is deferred to the next eligible day, never dropped.
func BuildQueue(c store.Campaign, devices []store.Device, messages []ResolvedMessage, now time.Time, rnd *rand.Rand) []store.QueuedMessageParams {
	pool := buildDevicePool(c, devices)

	start := now
	if c.ScheduledStart != nil && c.ScheduledStart.After(now) {
		start = *c.ScheduledStart
	}

	interval := time.Duration(c.IntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = time.Minute
	}

	lastSend := make(map[string]time.Time, pool.size())
	campaignDay := make(map[string]int)
	contactDay := make(map[string]int)
	primaryDay := make(map[string]int)

	rows := make([]store.QueuedMessageParams, 0, len(messages))
	for i, msg := range messages {
		t := nextWindowSlot(c, start)
		deviceID, isPrimary := pool.pick(c, i, primaryDay[dayKey(t)], rnd)

		key := deviceKey(deviceID)
		if last, ok := lastSend[key]; ok && t.Before(last.Add(interval)) {
			t = nextWindowSlot(c, last.Add(interval))
		}

		// Daily caps defer to the next eligible day rather than cancel.
		for {
			day := dayKey(t)
			if c.DailyLimit > 0 && campaignDay[day] >= c.DailyLimit {
				t = nextWindowSlot(c, startOfNextDay(t))
				continue
			}
			if c.PerContactDailyCap > 0 && contactDay[msg.Recipient.Phone+"|"+day] >= c.PerContactDailyCap {
				t = nextWindowSlot(c, startOfNextDay(t))
				continue
			}
			break
		}

		day := dayKey(t)
		campaignDay[day]++
		contactDay[msg.Recipient.Phone+"|"+day]++
		if isPrimary {
			primaryDay[day]++
		}
		lastSend[key] = t

		scheduledFor := t
		rows = append(rows, store.QueuedMessageParams{
			CampaignID:      c.ID,
			RecipientPhone:  msg.Recipient.Phone,
			RecipientName:   msg.Recipient.Name,
			Body:            msg.Body,
			DeviceID:        deviceID,
			Status:          store.MessageStatusScheduled,
			ScheduledFor:    &scheduledFor,
			StartHour:       c.StartHour,
			EndHour:         c.EndHour,
			IntervalMinutes: c.IntervalMinutes,
		})
	}
	return rows
}

// nextWindowSlot pushes t forward to the first instant inside the campaign's
// hour window on an active weekday. A time already inside the window is
// returned unchanged. The window is inclusive from start_hour:00 through
// end_hour:59.
func nextWindowSlot(c store.Campaign, t time.Time) time.Time {
	for {
		if !c.WeekdayActive(t.Weekday()) {
			t = startOfNextDay(t)
			continue
		}
		if t.Hour() < c.StartHour {
			t = time.Date(t.Year(), t.Month(), t.Day(), c.StartHour, 0, 0, 0, t.Location())
			continue
		}
		if t.Hour() > c.EndHour {
			t = startOfNextDay(t)
			continue
		}
		return t
	}
}

func startOfNextDay(t time.Time) time.Time {
	next := t.AddDate(0, 0, 1)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, t.Location())
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func deviceKey(id *uuid.UUID) string {
	if id == nil {
		return "primary"
	}
	return id.String()
}

// EstimateCompletion projects when the remaining sends finish:
// remaining = total − sent, perDayCapacity = floor(windowMinutes / interval),
// days = ceil(remaining / perDayCapacity), counted over active weekdays
// starting from the first eligible day (today only if now is still inside
// today's window).
func EstimateCompletion(c store.Campaign, now time.Time) (time.Time, int) {
	remaining := c.TotalRecipients - c.SentCount
	if remaining <= 0 {
		return now, 0
	}

	interval := c.IntervalMinutes
	if interval <= 0 {
		interval = 1
	}
	windowMinutes := (c.EndHour - c.StartHour + 1) * 60
	perDay := windowMinutes / interval
	if c.DailyLimit > 0 && c.DailyLimit < perDay {
		perDay = c.DailyLimit
	}
	if perDay < 1 {
		perDay = 1
	}
	days := (remaining + perDay - 1) / perDay

	// Walk forward one active sending day at a time.
	t := nextWindowSlot(c, now)
	for consumed := 1; consumed < days; consumed++ {
		t = nextWindowSlot(c, startOfNextDay(t))
	}
	end := time.Date(t.Year(), t.Month(), t.Day(), c.EndHour, 59, 0, 0, t.Location())
	return end, days
}
