package processor

import "dispatch-server/internal/store"

// ScoreRisk classifies the ban risk of a campaign's scheduling parameters.
// Advisory only: it annotates the campaign for operator review and never
// blocks scheduling.
func ScoreRisk(intervalMinutes, dailyLimit int, rotationEnabled bool) string {
	var intervalScore int
	switch {
	case intervalMinutes <= 1:
		intervalScore = 3
	case intervalMinutes <= 3:
		intervalScore = 2
	default:
		intervalScore = 1
	}

	var volumeScore int
	switch {
	case dailyLimit > 100:
		volumeScore = 3
	case dailyLimit > 50:
		volumeScore = 2
	default:
		volumeScore = 1
	}

	score := intervalScore + volumeScore
	if rotationEnabled {
		score--
	}

	switch {
	case score >= 5:
		return store.RiskLevelHigh
	case score >= 3:
		return store.RiskLevelMedium
	default:
		return store.RiskLevelLow
	}
}
