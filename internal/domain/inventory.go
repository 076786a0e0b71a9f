package domain

import "time"

// Item represents a single inventory record. JSON field names follow the
// persisted table format, which doubles as the API wire format.
type Item struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Barcode        string    `json:"barcode,omitempty"`
	CurrentStock   int       `json:"currentStock"`
	MinThreshold   int       `json:"minThreshold"`
	UnitPrice      float64   `json:"unitPrice"`
	Supplier       string    `json:"supplier,omitempty"`
	ExpirationDate string    `json:"expirationDate,omitempty"` // stored as entered, parsed on demand
	Description    string    `json:"description,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// IsLowStock reports whether the item is at or below its minimum threshold.
func (i Item) IsLowStock() bool {
	return i.CurrentStock <= i.MinThreshold
}

// ExpiresAt parses the expiration date, if one is set.
// The date is stored as free text; a malformed value reads as "no date".
func (i Item) ExpiresAt() (time.Time, bool) {
	if i.ExpirationDate == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, i.ExpirationDate); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
