package domain

// Alert types and severities.
const (
	AlertTypeLowStock = "low_stock"
	AlertTypeExpiring = "expiring"

	AlertSeverityWarning  = "warning"
	AlertSeverityCritical = "critical"
)

// Alert is a derived warning about an inventory item. Alerts are computed
// on every read and never persisted.
type Alert struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Item     string `json:"item"`
	Message  string `json:"message"`
	ItemID   string `json:"itemId"`
}
