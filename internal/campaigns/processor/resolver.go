package processor

import (
	"math/rand"
	"strings"
	"time"
)

// Recipient is one entry of the frozen audience snapshot a campaign is
// scheduled against. Attributes carry store-specific merge fields.
type Recipient struct {
	ContactID  string            `json:"contact_id"`
	Name       string            `json:"name"`
	Phone      string            `json:"phone"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// ResolvedMessage is one personalized message body bound to one recipient.
type ResolvedMessage struct {
	Recipient Recipient
	Body      string
}

// ResolveParams describes one resolution run.
type ResolveParams struct {
	Recipients []Recipient
	Variations []string
	// Randomize picks variations uniformly at random instead of by
	// round-robin recipient index.
	Randomize bool
	Now       time.Time
	Rand      *rand.Rand
}

// ResolveResult carries the resolved queue plus the number of recipients
// excluded for lacking a usable phone number. Exclusions are always counted,
// never silently dropped.
type ResolveResult struct {
	Messages []ResolvedMessage
	Excluded int
}

// ResolveMessages selects a template variation per recipient and substitutes
// its placeholders. Unresolved placeholders are left as literal text.
func ResolveMessages(params ResolveParams) ResolveResult {
	result := ResolveResult{Messages: make([]ResolvedMessage, 0, len(params.Recipients))}
	// Excluded counts recipients dropped for an unusable phone, nothing
	// else. With no variations there is nothing to resolve against, so
	// the result is empty rather than all-excluded.
	if len(params.Variations) == 0 {
		return result
	}

	idx := 0
	for _, recipient := range params.Recipients {
		if !sendablePhone(recipient.Phone) {
			result.Excluded++
			continue
		}

		var template string
		if params.Randomize && params.Rand != nil {
			template = params.Variations[params.Rand.Intn(len(params.Variations))]
		} else {
			template = params.Variations[idx%len(params.Variations)]
		}
		idx++

		result.Messages = append(result.Messages, ResolvedMessage{
			Recipient: recipient,
			Body:      substitute(template, recipient, params.Now),
		})
	}
	return result
}

// substitute fills the known placeholders. Attribute keys are matched as
// {key}; anything unknown stays literal.
func substitute(template string, r Recipient, now time.Time) string {
	pairs := []string{
		"{first_name}", firstName(r.Name),
		"{full_name}", r.Name,
		"{greeting}", greeting(now),
		"{phone}", r.Phone,
	}
	for key, value := range r.Attributes {
		pairs = append(pairs, "{"+key+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

func firstName(full string) string {
	full = strings.TrimSpace(full)
	if i := strings.IndexByte(full, ' '); i > 0 {
		return full[:i]
	}
	return full
}

func greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// sendablePhone reports whether a phone number has enough digits to be
// dialable. Formatting characters are ignored.
func sendablePhone(phone string) bool {
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 8
}
