package restock

import (
	"math"
	"sort"
	"time"

	"github.com/medikit/ClinicStock_Go/internal/domain"
)

// buildSuggestion derives the reorder recommendation for one item.
// The raw (unrounded) rate drives the projections; rounding is applied to
// the displayed fields only.
func buildSuggestion(item domain.Item, rate float64) domain.RestockSuggestion {
	s := domain.RestockSuggestion{
		ItemID:       item.ID,
		ItemName:     item.Name,
		CurrentStock: item.CurrentStock,
		UsageRate:    math.Round(rate*100) / 100,
	}

	if rate > 0 {
		days := int(math.Round(float64(item.CurrentStock) / rate))
		s.DaysUntilEmpty = &days
	}

	// 30-day supply target; fall back to twice the threshold when there is
	// no usage signal to size the order from.
	s.SuggestedQuantity = int(math.Ceil(rate * DefaultWindowDays))
	if s.SuggestedQuantity <= 0 {
		s.SuggestedQuantity = item.MinThreshold * 2
	}

	if item.IsLowStock() {
		s.Priority = domain.PriorityHigh
	} else {
		s.Priority = domain.PriorityMedium
	}

	return s
}

// daysOrInf treats a missing projection as +infinity so items with any
// numeric urgency sort ahead of items with no observable trend.
func daysOrInf(s domain.RestockSuggestion) float64 {
	if s.DaysUntilEmpty == nil {
		return math.Inf(1)
	}
	return float64(*s.DaysUntilEmpty)
}

// lessSuggestion orders the general suggestion list: priority band first
// (high before medium), then days-until-empty ascending with nil last.
func lessSuggestion(a, b domain.RestockSuggestion) bool {
	if a.Priority.Rank() != b.Priority.Rank() {
		return a.Priority.Rank() < b.Priority.Rank()
	}
	return daysOrInf(a) < daysOrInf(b)
}

// BuildSuggestionsAt computes the ranked restock suggestions for every item
// that is at/below threshold or shows any recent usage. Items failing both
// predicates are excluded entirely.
func BuildSuggestionsAt(items []domain.Item, events []domain.UsageEvent, now time.Time) []domain.RestockSuggestion {
	suggestions := make([]domain.RestockSuggestion, 0, len(items))

	for _, item := range items {
		rate := DailyUsageRateAt(events, item.ID, DefaultWindowDays, now)
		if !item.IsLowStock() && rate <= 0 {
			continue
		}
		suggestions = append(suggestions, buildSuggestion(item, rate))
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return lessSuggestion(suggestions[i], suggestions[j])
	})

	return suggestions
}

// stockRatio is the stock-to-threshold ratio used as the preview tie-break
// for items with no usage signal: proportionally most-depleted first. A
// zero threshold means the item only qualifies at zero stock, which is as
// depleted as it gets, so it ranks first.
func stockRatio(s domain.RestockSuggestion, threshold int) float64 {
	if threshold <= 0 {
		return 0
	}
	return float64(s.CurrentStock) / float64(threshold)
}

// BuildPreviewAt computes the automated-restock batch: strictly the items
// at/below threshold (the general list's usage-trend inclusion rule does
// not apply here). The ordering deliberately differs from the general
// suggestion list: days-until-empty ascending with nil last, and nil-nil
// ties broken by stock-to-threshold ratio ascending. Keep this comparator
// separate from lessSuggestion; the divergence is intentional.
func BuildPreviewAt(items []domain.Item, events []domain.UsageEvent, now time.Time) domain.RestockPreview {
	type previewEntry struct {
		suggestion domain.RestockSuggestion
		threshold  int
	}

	entries := make([]previewEntry, 0, len(items))
	for _, item := range items {
		if !item.IsLowStock() {
			continue
		}
		rate := DailyUsageRateAt(events, item.ID, DefaultWindowDays, now)
		entries = append(entries, previewEntry{
			suggestion: buildSuggestion(item, rate),
			threshold:  item.MinThreshold,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		da, db := daysOrInf(a.suggestion), daysOrInf(b.suggestion)
		if da != db {
			return da < db
		}
		if a.suggestion.DaysUntilEmpty == nil && b.suggestion.DaysUntilEmpty == nil {
			return stockRatio(a.suggestion, a.threshold) < stockRatio(b.suggestion, b.threshold)
		}
		return false
	})

	preview := domain.RestockPreview{
		Items: make([]domain.RestockSuggestion, 0, len(entries)),
	}
	for _, e := range entries {
		preview.Items = append(preview.Items, e.suggestion)
		preview.TotalQuantity += e.suggestion.SuggestedQuantity
	}
	preview.TotalItems = len(preview.Items)

	return preview
}
