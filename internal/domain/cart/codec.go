// internal/domain/cart/codec.go
package cart

import (
	"encoding/json"
	"time"

	"github.com/WebDevchicka/Petal-Pine/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// schemaVersion tags the persisted payload so future field changes do not
// silently corrupt old saved carts. Any mismatch falls back to an empty
// cart, the same policy as a corrupt payload.
const schemaVersion = 1

type persistedCart struct {
	Version   int             `json:"version"`
	SessionID string          `json:"session_id"`
	Items     []persistedItem `json:"items"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// persistedItem keeps the storage slot's original field layout: one boolean
// per add-on rather than the in-memory add-on set
type persistedItem struct {
	LineID    string          `json:"line_id"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Size      int             `json:"size"`
	Quantity  int             `json:"quantity"`
	Note      string          `json:"note,omitempty"`
	Balloon   bool            `json:"balloon"`
	Choco     bool            `json:"choco"`
	Teddy     bool            `json:"teddy"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	AddedAt   time.Time       `json:"added_at"`
}

func encodeCart(c *Cart) ([]byte, error) {
	payload := persistedCart{
		Version:   schemaVersion,
		SessionID: c.SessionID,
		Items:     make([]persistedItem, 0, len(c.Items)),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	for _, item := range c.Items {
		payload.Items = append(payload.Items, persistedItem{
			LineID:    item.LineID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Size:      int(item.Size),
			Quantity:  item.Quantity,
			Note:      item.Note,
			Balloon:   item.HasAddOn(catalog.AddOnBalloon),
			Choco:     item.HasAddOn(catalog.AddOnChocolate),
			Teddy:     item.HasAddOn(catalog.AddOnTeddy),
			UnitPrice: item.UnitPrice,
			AddedAt:   item.AddedAt,
		})
	}
	return json.Marshal(payload)
}

// decodeCart never fails: an unreadable or incompatible payload yields an
// empty cart so a broken slot can never block the storefront
func decodeCart(sessionID string, data []byte) *Cart {
	var payload persistedCart
	if err := json.Unmarshal(data, &payload); err != nil {
		return emptyCart(sessionID)
	}
	if payload.Version != schemaVersion {
		return emptyCart(sessionID)
	}

	c := &Cart{
		SessionID: sessionID,
		Items:     make([]LineItem, 0, len(payload.Items)),
		CreatedAt: payload.CreatedAt,
		UpdatedAt: payload.UpdatedAt,
	}
	for _, item := range payload.Items {
		var addOns []catalog.AddOn
		if item.Balloon {
			addOns = append(addOns, catalog.AddOnBalloon)
		}
		if item.Choco {
			addOns = append(addOns, catalog.AddOnChocolate)
		}
		if item.Teddy {
			addOns = append(addOns, catalog.AddOnTeddy)
		}
		c.Items = append(c.Items, LineItem{
			LineID:    item.LineID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Size:      catalog.Size(item.Size),
			Note:      item.Note,
			AddOns:    addOns,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			AddedAt:   item.AddedAt,
		})
	}
	return c
}
