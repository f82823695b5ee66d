// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/WebDevchicka/Petal-Pine/internal/domain/catalog"
	"github.com/WebDevchicka/Petal-Pine/internal/domain/pricing"
	"github.com/shopspring/decimal"
)

// MaxNoteLength is the cap on the free-text gift note
const MaxNoteLength = 100

// LineItem is one configured, quantified entry in the cart.
// UnitPrice is computed once when the item is added and frozen; changing
// add-ons means adding a new line, not editing this one.
type LineItem struct {
	LineID    string          `json:"line_id"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Size      catalog.Size    `json:"size"`
	Note      string          `json:"note,omitempty"`
	AddOns    []catalog.AddOn `json:"add_ons,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	AddedAt   time.Time       `json:"added_at"`
}

// PricingLine converts the item for total computation
func (li LineItem) PricingLine() pricing.Line {
	return pricing.Line{UnitPrice: li.UnitPrice, Quantity: li.Quantity}
}

// HasAddOn reports whether the item carries the given add-on
func (li LineItem) HasAddOn(a catalog.AddOn) bool {
	for _, addOn := range li.AddOns {
		if addOn == a {
			return true
		}
	}
	return false
}

// Cart is the ordered sequence of line items for one session.
// Insertion order is display order; identical items are never merged.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []LineItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TotalQuantity is the cart badge count: the sum of all quantities
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Empty reports whether the cart has no items
func (c *Cart) Empty() bool {
	return len(c.Items) == 0
}
