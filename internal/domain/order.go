package domain

import (
	"bytes"
	"strconv"
	"time"
)

// Purchase order statuses.
const (
	OrderStatusPending    = "pending"
	OrderStatusSuccessful = "successful"
)

// AutomatedSupplierName is the supplier recorded on system-generated orders.
const AutomatedSupplierName = "Automated Restock System"

// Quantity is an integer that tolerates sloppy JSON input: numbers,
// numeric strings, fractional values and null all decode without error.
// Anything unparseable decodes to 0 so a bad line item contributes nothing
// instead of failing the whole order.
type Quantity int

// UnmarshalJSON implements tolerant decoding for order line quantities.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if s == "" || s == "null" {
		*q = 0
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		*q = Quantity(n)
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*q = Quantity(int(f))
		return nil
	}
	*q = 0
	return nil
}

// OrderItem is one line of a purchase order. Lines referencing unknown
// item IDs are kept for audit but never credit stock.
type OrderItem struct {
	ItemID   string   `json:"itemId"`
	Name     string   `json:"name"`
	Quantity Quantity `json:"quantity"`
}

// PurchaseOrder records a restocking purchase. Fulfillment is synchronous:
// stock is credited when the order is created, so there is no separate
// receiving step.
type PurchaseOrder struct {
	ID        string      `json:"id"`
	Supplier  string      `json:"supplier,omitempty"`
	Items     []OrderItem `json:"items"`
	Status    string      `json:"status"`
	Automated bool        `json:"automated,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// TotalQuantity sums the line quantities on the order.
func (o PurchaseOrder) TotalQuantity() int {
	total := 0
	for _, it := range o.Items {
		total += int(it.Quantity)
	}
	return total
}
