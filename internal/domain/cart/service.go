// internal/domain/cart/service.go
package cart

import (
	"context"
	"strings"
	"time"

	"github.com/WebDevchicka/Petal-Pine/internal/domain/catalog"
	"github.com/WebDevchicka/Petal-Pine/internal/domain/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service owns the only mutation surface of the cart. Every mutation
// rewrites the session's durable slot before returning.
type Service struct {
	store   Store
	catalog *catalog.Service
	pricing *pricing.Engine
}

// NewService creates a cart service
func NewService(store Store, cat *catalog.Service, eng *pricing.Engine) *Service {
	return &Service{
		store:   store,
		catalog: cat,
		pricing: eng,
	}
}

// AddItemInput captures one add-to-cart action
type AddItemInput struct {
	ProductID string
	Size      catalog.Size
	Note      string
	AddOns    []catalog.AddOn
	Quantity  int
}

// Get returns the session's current cart
func (s *Service) Get(ctx context.Context, sessionID string) (*Cart, error) {
	return s.store.Load(ctx, sessionID)
}

// AddItem appends a new line item to the cart. Quantity is clamped to at
// least 1 and the note is truncated, never rejected. Identical items are
// not merged; every add creates a new line.
func (s *Service) AddItem(ctx context.Context, sessionID string, in AddItemInput) (*LineItem, error) {
	addOns := normalizeAddOns(in.AddOns)

	unitPrice, err := s.pricing.UnitPrice(in.ProductID, in.Size, addOns)
	if err != nil {
		return nil, err
	}

	// pricing already verified the product exists
	product, _ := s.catalog.Product(in.ProductID)

	quantity := in.Quantity
	if quantity < 1 {
		quantity = 1
	}

	item := LineItem{
		LineID:    uuid.New().String(),
		ProductID: product.ID,
		Name:      product.Name,
		Size:      in.Size,
		Note:      truncateNote(in.Note),
		AddOns:    addOns,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		AddedAt:   time.Now().UTC(),
	}

	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.Items = append(c.Items, item)
	c.UpdatedAt = time.Now().UTC()

	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}
	return &item, nil
}

// ChangeQuantity adjusts a line's quantity by delta, clamped at 1.
// An unknown line id is silently ignored.
func (s *Service) ChangeQuantity(ctx context.Context, sessionID, lineID string, delta int) error {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	for i := range c.Items {
		if c.Items[i].LineID != lineID {
			continue
		}

		quantity := c.Items[i].Quantity + delta
		if quantity < 1 {
			quantity = 1
		}
		c.Items[i].Quantity = quantity
		c.UpdatedAt = time.Now().UTC()

		return s.store.Save(ctx, c)
	}

	return nil
}

// RemoveItem drops the matching line. An unknown line id is silently
// ignored.
func (s *Service) RemoveItem(ctx context.Context, sessionID, lineID string) error {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.LineID != lineID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(c.Items) {
		return nil
	}

	c.Items = kept
	c.UpdatedAt = time.Now().UTC()
	return s.store.Save(ctx, c)
}

// Clear empties the cart and persists the empty sequence
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	c.Items = []LineItem{}
	c.UpdatedAt = time.Now().UTC()
	return s.store.Save(ctx, c)
}

// Count returns the cart badge count: the sum of all quantities
func (s *Service) Count(ctx context.Context, sessionID string) (int, error) {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return c.TotalQuantity(), nil
}

// ItemSummary is a line item enriched for display
type ItemSummary struct {
	LineItem
	SizeLabel string          `json:"size_label"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// Summary is the cart plus its computed totals
type Summary struct {
	SessionID     string         `json:"session_id"`
	Items         []ItemSummary  `json:"items"`
	Totals        pricing.Totals `json:"totals"`
	TotalQuantity int            `json:"total_quantity"`
}

// Summary loads the cart and computes its price breakdown
func (s *Service) Summary(ctx context.Context, sessionID string) (*Summary, error) {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return summarize(c), nil
}

func summarize(c *Cart) *Summary {
	items := make([]ItemSummary, 0, len(c.Items))
	lines := make([]pricing.Line, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, ItemSummary{
			LineItem:  item,
			SizeLabel: item.Size.Label(),
			LineTotal: item.PricingLine().Total(),
		})
		lines = append(lines, item.PricingLine())
	}

	return &Summary{
		SessionID:     c.SessionID,
		Items:         items,
		Totals:        pricing.CartTotals(lines),
		TotalQuantity: c.TotalQuantity(),
	}
}

func truncateNote(note string) string {
	note = strings.TrimSpace(note)
	runes := []rune(note)
	if len(runes) > MaxNoteLength {
		return string(runes[:MaxNoteLength])
	}
	return note
}

// normalizeAddOns drops duplicates while keeping first-seen order
func normalizeAddOns(addOns []catalog.AddOn) []catalog.AddOn {
	if len(addOns) == 0 {
		return nil
	}
	seen := make(map[catalog.AddOn]bool, len(addOns))
	out := make([]catalog.AddOn, 0, len(addOns))
	for _, addOn := range addOns {
		if seen[addOn] {
			continue
		}
		seen[addOn] = true
		out = append(out, addOn)
	}
	return out
}
