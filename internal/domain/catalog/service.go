// internal/domain/catalog/service.go
package catalog

import (
	"github.com/shopspring/decimal"
)

// Service provides read access to the static bouquet catalog.
// The catalog is fixed at process start and never mutated.
type Service struct {
	products []Product
	index    map[string]*Product
	addOns   map[AddOn]decimal.Decimal
}

// NewService creates a catalog service loaded with the storefront data
func NewService() *Service {
	s := &Service{
		products: defaultProducts(),
		index:    make(map[string]*Product),
		addOns: map[AddOn]decimal.Decimal{
			AddOnBalloon:   decimal.NewFromInt(5),
			AddOnChocolate: decimal.NewFromInt(7),
			AddOnTeddy:     decimal.NewFromInt(8),
		},
	}
	for i := range s.products {
		s.index[s.products[i].ID] = &s.products[i]
	}
	return s
}

// Products returns all products in display order
func (s *Service) Products() []Product {
	return s.products
}

// Product looks up a product by id
func (s *Service) Product(id string) (*Product, bool) {
	p, ok := s.index[id]
	return p, ok
}

// AddOnPrice returns the flat surcharge for an add-on
func (s *Service) AddOnPrice(a AddOn) (decimal.Decimal, bool) {
	price, ok := s.addOns[a]
	return price, ok
}

func priceTable(single, halfDozen, dozen, twoDozen int64) map[Size]decimal.Decimal {
	return map[Size]decimal.Decimal{
		SizeSingle:    decimal.NewFromInt(single),
		SizeHalfDozen: decimal.NewFromInt(halfDozen),
		SizeDozen:     decimal.NewFromInt(dozen),
		SizeTwoDozen:  decimal.NewFromInt(twoDozen),
	}
}

func defaultProducts() []Product {
	return []Product{
		{ID: "tulips", Name: "Tulips", Image: "img/tulips.jpg", Prices: priceTable(5, 20, 40, 60)},
		{ID: "red_roses", Name: "Red Roses", Image: "img/red_roses.jpg", Prices: priceTable(5, 20, 40, 60)},
		{ID: "yellow_roses", Name: "Yellow Roses", Image: "img/yellow_roses.jpg", Prices: priceTable(5, 20, 40, 60)},
		{ID: "lilies", Name: "Lilies", Image: "img/lilies.jpg", Prices: priceTable(6, 24, 48, 72)},
		{ID: "daisies", Name: "Daisies", Image: "img/daisies.jpg", Prices: priceTable(5, 20, 40, 60)},
		{ID: "corsages", Name: "Corsages", Image: "img/corsages.jpg", Prices: priceTable(15, 60, 120, 180)},
	}
}
