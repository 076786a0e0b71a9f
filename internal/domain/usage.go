package domain

import "time"

// UsageEvent is one append-only consumption record. The itemId may dangle
// if the referenced item was later deleted.
type UsageEvent struct {
	ID       string    `json:"id"`
	ItemID   string    `json:"itemId"`
	Quantity int       `json:"quantity"`
	Notes    string    `json:"notes,omitempty"`
	Date     time.Time `json:"date"`
}

// UsageHistoryEntry is a UsageEvent enriched with the item's display name
// for history listings.
type UsageHistoryEntry struct {
	UsageEvent
	ItemName string `json:"itemName"`
}

// UnknownItemName is shown for usage records whose item no longer exists.
const UnknownItemName = "Unknown Item"
