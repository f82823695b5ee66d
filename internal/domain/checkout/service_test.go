// internal/domain/checkout/service_test.go
package checkout

import (
	"context"
	"testing"

	"github.com/WebDevchicka/Petal-Pine/internal/domain/cart"
	"github.com/WebDevchicka/Petal-Pine/internal/domain/catalog"
	"github.com/WebDevchicka/Petal-Pine/internal/domain/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	carts map[string]*cart.Cart
}

func (m *memoryStore) Load(_ context.Context, sessionID string) (*cart.Cart, error) {
	if c, ok := m.carts[sessionID]; ok {
		return c, nil
	}
	return &cart.Cart{SessionID: sessionID, Items: []cart.LineItem{}}, nil
}

func (m *memoryStore) Save(_ context.Context, c *cart.Cart) error {
	m.carts[c.SessionID] = c
	return nil
}

func newTestServices() (*Service, *cart.Service) {
	cat := catalog.NewService()
	cartSvc := cart.NewService(&memoryStore{carts: make(map[string]*cart.Cart)}, cat, pricing.NewEngine(cat))
	return NewService(cartSvc), cartSvc
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	t.Parallel()

	svc, _ := newTestServices()

	_, err := svc.PlaceOrder(context.Background(), "s1")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderClearsCart(t *testing.T) {
	t.Parallel()

	svc, cartSvc := newTestServices()
	ctx := context.Background()

	_, err := cartSvc.AddItem(ctx, "s1", cart.AddItemInput{
		ProductID: "tulips",
		Size:      catalog.SizeHalfDozen,
		AddOns:    []catalog.AddOn{catalog.AddOnBalloon},
		Quantity:  2,
	})
	require.NoError(t, err)

	confirmation, err := svc.PlaceOrder(ctx, "s1")
	require.NoError(t, err)

	assert.Equal(t, ConfirmationMessage, confirmation.Message)
	require.Len(t, confirmation.Items, 1)
	assert.Equal(t, "53.50", confirmation.Totals.Grand.StringFixed(2))
	assert.False(t, confirmation.PlacedAt.IsZero())

	// the cart is empty and persisted empty once the order is placed
	c, err := cartSvc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)

	// a second checkout on the now-empty cart is the benign notice again
	_, err = svc.PlaceOrder(ctx, "s1")
	assert.ErrorIs(t, err, ErrEmptyCart)
}
