// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/WebDevchicka/Petal-Pine/internal/domain/cart"
	"github.com/WebDevchicka/Petal-Pine/internal/domain/pricing"
)

// ErrEmptyCart means checkout was attempted on an empty cart. It is a
// benign notice for the shopper, not a failure; the cart is left untouched.
var ErrEmptyCart = errors.New("checkout: cart is empty")

// ConfirmationMessage is shown to the shopper after a successful checkout
const ConfirmationMessage = "Thank you for your order, you will get an email confirmation when your order is ready for pick-up"

// Service handles checkout. There is no payment and no order record:
// checkout confirms the cart contents and then empties the cart.
type Service struct {
	cartService *cart.Service
}

// NewService creates a checkout service over the cart service
func NewService(cartService *cart.Service) *Service {
	return &Service{cartService: cartService}
}

// Confirmation is the order summary returned to the shopper
type Confirmation struct {
	Message  string             `json:"message"`
	Items    []cart.ItemSummary `json:"items"`
	Totals   pricing.Totals     `json:"totals"`
	PlacedAt time.Time          `json:"placed_at"`
}

// PlaceOrder validates the cart is non-empty, builds the confirmation,
// then clears and persists the cart. The whole operation is synchronous;
// there is no in-progress state to resume.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string) (*Confirmation, error) {
	summary, err := s.cartService.Summary(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(summary.Items) == 0 {
		return nil, ErrEmptyCart
	}

	confirmation := &Confirmation{
		Message:  ConfirmationMessage,
		Items:    summary.Items,
		Totals:   summary.Totals,
		PlacedAt: time.Now().UTC(),
	}

	if err := s.cartService.Clear(ctx, sessionID); err != nil {
		return nil, err
	}
	return confirmation, nil
}
