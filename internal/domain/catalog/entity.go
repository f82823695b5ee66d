// internal/domain/catalog/entity.go
package catalog

import (
	"github.com/shopspring/decimal"
)

// Size is one of the four fixed bundle sizes a bouquet is sold in.
type Size int

const (
	SizeSingle    Size = 1
	SizeHalfDozen Size = 6
	SizeDozen     Size = 12
	SizeTwoDozen  Size = 24
)

// Sizes lists every valid size in display order
var Sizes = []Size{SizeSingle, SizeHalfDozen, SizeDozen, SizeTwoDozen}

// Valid reports whether the size is one of the four sold bundles
func (s Size) Valid() bool {
	switch s {
	case SizeSingle, SizeHalfDozen, SizeDozen, SizeTwoDozen:
		return true
	}
	return false
}

// Label returns the display label for the size
func (s Size) Label() string {
	switch s {
	case SizeSingle:
		return "single"
	case SizeHalfDozen:
		return "half dozen"
	case SizeDozen:
		return "dozen"
	case SizeTwoDozen:
		return "two dozen"
	}
	return ""
}

// AddOn is an optional flat-priced extra attachable to any line item
type AddOn string

const (
	AddOnBalloon   AddOn = "balloon"
	AddOnChocolate AddOn = "chocolate"
	AddOnTeddy     AddOn = "teddy"
)

// AddOns lists every add-on in display order
var AddOns = []AddOn{AddOnBalloon, AddOnChocolate, AddOnTeddy}

// ParseAddOn maps a wire identifier to an AddOn
func ParseAddOn(s string) (AddOn, bool) {
	switch AddOn(s) {
	case AddOnBalloon, AddOnChocolate, AddOnTeddy:
		return AddOn(s), true
	}
	return "", false
}

// Product represents a purchasable bouquet with a fixed set of allowed sizes
type Product struct {
	ID     string                   `json:"id"`
	Name   string                   `json:"name"`
	Image  string                   `json:"image"` // resolved by the storefront, opaque here
	Prices map[Size]decimal.Decimal `json:"prices"`
}

// FromPrice returns the cheapest size price, shown as "From $X" on cards
func (p *Product) FromPrice() decimal.Decimal {
	return p.Prices[SizeSingle]
}
