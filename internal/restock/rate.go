package restock

import (
	"time"

	"github.com/medikit/ClinicStock_Go/internal/domain"
)

// DefaultWindowDays is the trailing window for usage-rate estimation.
const DefaultWindowDays = 30

// DailyUsageRateAt computes an item's average daily consumption over the
// trailing window ending at now. The sum of matching quantities is divided
// by the full window length, not by the number of days that actually saw
// usage, so sparse usage reads as a low rate rather than a bursty one.
// Events exactly windowDays old are included; future-dated events are not.
// Returns 0 when no events match.
func DailyUsageRateAt(events []domain.UsageEvent, itemID string, windowDays int, now time.Time) float64 {
	if windowDays <= 0 {
		return 0
	}

	cutoff := now.AddDate(0, 0, -windowDays)

	total := 0
	for _, ev := range events {
		if ev.ItemID != itemID {
			continue
		}
		if ev.Date.Before(cutoff) || ev.Date.After(now) {
			continue
		}
		total += ev.Quantity
	}

	return float64(total) / float64(windowDays)
}

// DailyUsageRate is DailyUsageRateAt anchored at the current time.
func DailyUsageRate(events []domain.UsageEvent, itemID string, windowDays int) float64 {
	return DailyUsageRateAt(events, itemID, windowDays, time.Now())
}
