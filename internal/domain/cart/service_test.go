// internal/domain/cart/service_test.go
package cart

import (
	"context"
	"strings"
	"testing"

	"github.com/WebDevchicka/Petal-Pine/internal/domain/catalog"
	"github.com/WebDevchicka/Petal-Pine/internal/domain/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStore keeps encoded payloads in memory so every test exercises the
// same codec the redis slot uses
type stubStore struct {
	data map[string][]byte
}

func newStubStore() *stubStore {
	return &stubStore{data: make(map[string][]byte)}
}

func (s *stubStore) Load(_ context.Context, sessionID string) (*Cart, error) {
	data, ok := s.data[sessionID]
	if !ok {
		return emptyCart(sessionID), nil
	}
	return decodeCart(sessionID, data), nil
}

func (s *stubStore) Save(_ context.Context, c *Cart) error {
	data, err := encodeCart(c)
	if err != nil {
		return err
	}
	s.data[c.SessionID] = data
	return nil
}

func newTestService(store Store) *Service {
	cat := catalog.NewService()
	return NewService(store, cat, pricing.NewEngine(cat))
}

func TestAddItemAlwaysAppends(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	svc := newTestService(store)
	ctx := context.Background()

	in := AddItemInput{ProductID: "tulips", Size: catalog.SizeHalfDozen, Quantity: 1}

	first, err := svc.AddItem(ctx, "s1", in)
	require.NoError(t, err)
	second, err := svc.AddItem(ctx, "s1", in)
	require.NoError(t, err)

	// identical configurations still get separate lines and distinct ids
	assert.NotEqual(t, first.LineID, second.LineID)

	c, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, c.Items, 2)
	assert.Equal(t, first.LineID, c.Items[0].LineID)
	assert.Equal(t, second.LineID, c.Items[1].LineID)
}

func TestAddItemComputesFrozenUnitPrice(t *testing.T) {
	t.Parallel()

	svc := newTestService(newStubStore())
	ctx := context.Background()

	item, err := svc.AddItem(ctx, "s1", AddItemInput{
		ProductID: "tulips",
		Size:      catalog.SizeHalfDozen,
		AddOns:    []catalog.AddOn{catalog.AddOnBalloon},
		Quantity:  2,
	})
	require.NoError(t, err)

	assert.Equal(t, "Tulips", item.Name)
	assert.Equal(t, "25", item.UnitPrice.String())

	// quantity changes never touch the unit price
	require.NoError(t, svc.ChangeQuantity(ctx, "s1", item.LineID, 5))

	c, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "25", c.Items[0].UnitPrice.String())
	assert.Equal(t, 7, c.Items[0].Quantity)
}

func TestAddItemClampsQuantityAndTruncatesNote(t *testing.T) {
	t.Parallel()

	svc := newTestService(newStubStore())
	ctx := context.Background()

	longNote := strings.Repeat("x", 150)
	item, err := svc.AddItem(ctx, "s1", AddItemInput{
		ProductID: "daisies",
		Size:      catalog.SizeSingle,
		Note:      longNote,
		Quantity:  0,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, item.Quantity)
	assert.Len(t, item.Note, MaxNoteLength)
}

func TestAddItemRejectsBadCatalogLookups(t *testing.T) {
	t.Parallel()

	svc := newTestService(newStubStore())
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", AddItemInput{ProductID: "orchids", Size: catalog.SizeSingle, Quantity: 1})
	assert.ErrorIs(t, err, pricing.ErrUnknownProduct)

	_, err = svc.AddItem(ctx, "s1", AddItemInput{ProductID: "tulips", Size: catalog.Size(7), Quantity: 1})
	assert.ErrorIs(t, err, pricing.ErrInvalidSize)

	// failed adds must not touch the cart
	c, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

func TestChangeQuantityClampsAtOne(t *testing.T) {
	t.Parallel()

	svc := newTestService(newStubStore())
	ctx := context.Background()

	item, err := svc.AddItem(ctx, "s1", AddItemInput{ProductID: "tulips", Size: catalog.SizeSingle, Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, svc.ChangeQuantity(ctx, "s1", item.LineID, -100))

	c, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestChangeQuantityUnknownLineIsNoOp(t *testing.T) {
	t.Parallel()

	svc := newTestService(newStubStore())
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", AddItemInput{ProductID: "tulips", Size: catalog.SizeSingle, Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, svc.ChangeQuantity(ctx, "s1", "no-such-line", 3))

	c, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Items[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	t.Parallel()

	svc := newTestService(newStubStore())
	ctx := context.Background()

	first, err := svc.AddItem(ctx, "s1", AddItemInput{ProductID: "tulips", Size: catalog.SizeSingle, Quantity: 1})
	require.NoError(t, err)
	second, err := svc.AddItem(ctx, "s1", AddItemInput{ProductID: "lilies", Size: catalog.SizeDozen, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(ctx, "s1", first.LineID))

	c, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, second.LineID, c.Items[0].LineID)

	// removing a line that does not exist leaves the cart unchanged
	require.NoError(t, svc.RemoveItem(ctx, "s1", "no-such-line"))

	c, err = svc.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
}

func TestClearPersistsEmptySequence(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	svc := newTestService(store)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", AddItemInput{ProductID: "corsages", Size: catalog.SizeSingle, Quantity: 3})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "s1"))

	summary, err := svc.Summary(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, summary.Items)
	assert.True(t, summary.Totals.Subtotal.IsZero())
	assert.True(t, summary.Totals.Tax.IsZero())
	assert.True(t, summary.Totals.Grand.IsZero())

	// the slot holds an empty sequence, not nothing
	require.Contains(t, store.data, "s1")
	assert.Empty(t, decodeCart("s1", store.data["s1"]).Items)
}

func TestPersistedCartRoundTrip(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	svc := newTestService(store)
	ctx := context.Background()

	added, err := svc.AddItem(ctx, "s1", AddItemInput{
		ProductID: "corsages",
		Size:      catalog.SizeSingle,
		Note:      "happy birthday",
		AddOns:    []catalog.AddOn{catalog.AddOnTeddy, catalog.AddOnChocolate},
		Quantity:  3,
	})
	require.NoError(t, err)

	// a fresh service over the same slot sees the identical line
	reloaded, err := newTestService(store).Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 1)

	got := reloaded.Items[0]
	assert.Equal(t, added.LineID, got.LineID)
	assert.Equal(t, "corsages", got.ProductID)
	assert.Equal(t, "Corsages", got.Name)
	assert.Equal(t, catalog.SizeSingle, got.Size)
	assert.Equal(t, "happy birthday", got.Note)
	assert.Equal(t, 3, got.Quantity)
	assert.True(t, got.HasAddOn(catalog.AddOnTeddy))
	assert.True(t, got.HasAddOn(catalog.AddOnChocolate))
	assert.False(t, got.HasAddOn(catalog.AddOnBalloon))
	assert.True(t, got.UnitPrice.Equal(added.UnitPrice), "unit price %s want %s", got.UnitPrice, added.UnitPrice)
}

func TestLoadCorruptPayloadYieldsEmptyCart(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	store.data["s1"] = []byte("{not json")

	c, err := newTestService(store).Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

func TestLoadVersionMismatchYieldsEmptyCart(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	// a payload from before versioning (or from a future schema)
	store.data["s1"] = []byte(`{"version":0,"items":[{"line_id":"a","product_id":"tulips","quantity":1}]}`)

	c, err := newTestService(store).Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

func TestSummaryTotals(t *testing.T) {
	t.Parallel()

	svc := newTestService(newStubStore())
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", AddItemInput{ProductID: "lilies", Size: catalog.SizeTwoDozen, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "s1", AddItemInput{
		ProductID: "corsages",
		Size:      catalog.SizeSingle,
		AddOns:    []catalog.AddOn{catalog.AddOnTeddy},
		Quantity:  3,
	})
	require.NoError(t, err)

	summary, err := svc.Summary(ctx, "s1")
	require.NoError(t, err)

	require.Len(t, summary.Items, 2)
	assert.Equal(t, "two dozen", summary.Items[0].SizeLabel)
	assert.Equal(t, "72", summary.Items[0].LineTotal.String())
	assert.Equal(t, "69", summary.Items[1].LineTotal.String())
	assert.Equal(t, 4, summary.TotalQuantity)
	assert.Equal(t, "141.00", summary.Totals.Subtotal.StringFixed(2))
	assert.Equal(t, "9.87", summary.Totals.Tax.StringFixed(2))
	assert.Equal(t, "150.87", summary.Totals.Grand.StringFixed(2))
}

func TestCountSumsQuantities(t *testing.T) {
	t.Parallel()

	svc := newTestService(newStubStore())
	ctx := context.Background()

	count, err := svc.Count(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = svc.AddItem(ctx, "s1", AddItemInput{ProductID: "tulips", Size: catalog.SizeSingle, Quantity: 2})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "s1", AddItemInput{ProductID: "daisies", Size: catalog.SizeDozen, Quantity: 3})
	require.NoError(t, err)

	count, err = svc.Count(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}
