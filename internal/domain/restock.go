package domain

// Priority classifies how urgently an item needs restocking.
// High means stock is at or below the minimum threshold; medium means the
// item is above threshold but has an observable consumption trend.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
)

// Rank returns the sort rank of a priority (high before medium).
func (p Priority) Rank() int {
	if p == PriorityHigh {
		return 0
	}
	return 1
}

// RestockSuggestion is a derived, never-persisted reorder recommendation.
// DaysUntilEmpty is nil when the item has no usage signal: with a zero
// usage rate there is nothing to project, and nil sorts after any number.
type RestockSuggestion struct {
	ItemID            string   `json:"itemId"`
	ItemName          string   `json:"itemName"`
	CurrentStock      int      `json:"currentStock"`
	UsageRate         float64  `json:"usageRate"`
	DaysUntilEmpty    *int     `json:"daysUntilEmpty"`
	SuggestedQuantity int      `json:"suggestedQuantity"`
	Priority          Priority `json:"priority"`
}

// RestockPreview is the dry-run view of an automated restock batch.
type RestockPreview struct {
	Items         []RestockSuggestion `json:"items"`
	TotalItems    int                 `json:"totalItems"`
	TotalQuantity int                 `json:"totalQuantity"`
}

// RestockResult reports the outcome of an executed automated restock.
type RestockResult struct {
	Success        bool           `json:"success"`
	Message        string         `json:"message,omitempty"`
	ItemsRestocked int            `json:"itemsRestocked"`
	TotalQuantity  int            `json:"totalQuantity"`
	Order          *PurchaseOrder `json:"order,omitempty"`
}
