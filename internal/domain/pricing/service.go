// internal/domain/pricing/service.go
package pricing

import (
	"errors"

	"github.com/WebDevchicka/Petal-Pine/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// TaxRate is the flat sales tax applied to the cart subtotal
var TaxRate = decimal.New(7, -2) // 0.07

var (
	// ErrUnknownProduct means the product id is not in the catalog
	ErrUnknownProduct = errors.New("pricing: unknown product")
	// ErrInvalidSize means the size is not one of the sold bundle sizes
	ErrInvalidSize = errors.New("pricing: invalid size")
	// ErrInvalidAddOn means an add-on id is not in the add-on catalog
	ErrInvalidAddOn = errors.New("pricing: invalid add-on")
)

// Engine computes prices from the static catalogs.
// It is stateless and safe to share.
type Engine struct {
	catalog *catalog.Service
}

// NewEngine creates a pricing engine over the given catalog
func NewEngine(c *catalog.Service) *Engine {
	return &Engine{catalog: c}
}

// UnitPrice computes the per-unit price for a product at a size with the
// given add-ons: base price plus the flat surcharge of each distinct add-on.
func (e *Engine) UnitPrice(productID string, size catalog.Size, addOns []catalog.AddOn) (decimal.Decimal, error) {
	product, ok := e.catalog.Product(productID)
	if !ok {
		return decimal.Zero, ErrUnknownProduct
	}
	if !size.Valid() {
		return decimal.Zero, ErrInvalidSize
	}

	price := product.Prices[size]

	seen := make(map[catalog.AddOn]bool, len(addOns))
	for _, addOn := range addOns {
		if seen[addOn] {
			continue
		}
		seen[addOn] = true

		surcharge, ok := e.catalog.AddOnPrice(addOn)
		if !ok {
			return decimal.Zero, ErrInvalidAddOn
		}
		price = price.Add(surcharge)
	}

	return price, nil
}

// Line is one priced cart entry: a frozen unit price and a quantity
type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// Total returns unit price times quantity
func (l Line) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Totals is the cart price breakdown
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Grand    decimal.Decimal `json:"grand_total"`
}

// CartTotals sums the lines and applies the tax rate.
// An empty cart yields all-zero totals.
func CartTotals(lines []Line) Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Total())
	}

	tax := subtotal.Mul(TaxRate).Round(2)

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Grand:    subtotal.Add(tax),
	}
}
