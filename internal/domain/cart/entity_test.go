//go:build unit

package cart_test

import (
	"encoding/json"
	"testing"

	"storefront-api/internal/domain/cart"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func mustMoney(t *testing.T, amount string) cart.Money {
	t.Helper()
	m, err := cart.ParseMoney(amount, "USD")
	require.NoError(t, err)
	return m
}

func mustItem(t *testing.T, variantID string, amount string, quantity int) cart.Item {
	t.Helper()
	item, err := cart.NewItem(variantID, "Gift Card "+variantID, mustMoney(t, amount), quantity, nil)
	require.NoError(t, err)
	return item
}

func TestCart_AddMergesSameVariant(t *testing.T) {
	c := cart.New()

	require.NoError(t, c.Add(mustItem(t, "gid://shop/ProductVariant/1", "25.00", 1)))
	require.NoError(t, c.Add(mustItem(t, "gid://shop/ProductVariant/1", "25.00", 2)))

	items := c.Items()
	require.Len(t, items, 1, "same variant must not duplicate")
	assert.Equal(t, 3, items[0].Quantity)
}

func TestCart_NoDuplicateIdentifiers(t *testing.T) {
	c := cart.New()

	variants := []string{"v1", "v2", "v1", "v3", "v2", "v1"}
	for _, v := range variants {
		require.NoError(t, c.Add(mustItem(t, v, "10.00", 1)))
	}

	seen := map[string]bool{}
	for _, item := range c.Items() {
		require.False(t, seen[item.VariantID], "duplicate identifier %s", item.VariantID)
		seen[item.VariantID] = true
	}
	assert.Len(t, c.Items(), 3)
}

func TestCart_InsertionOrderPreserved(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(mustItem(t, "v1", "10.00", 1)))
	require.NoError(t, c.Add(mustItem(t, "v2", "10.00", 1)))
	require.NoError(t, c.Add(mustItem(t, "v3", "10.00", 1)))
	require.NoError(t, c.Add(mustItem(t, "v2", "10.00", 5))) // merge must not reorder

	var order []string
	for _, item := range c.Items() {
		order = append(order, item.VariantID)
	}
	assert.Equal(t, []string{"v1", "v2", "v3"}, order)
}

func TestCart_RemoveAbsentIsNoOp(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(mustItem(t, "v1", "10.00", 2)))

	before := c.Items()
	removed := c.Remove("missing")

	assert.False(t, removed)
	if diff := cmp.Diff(before, c.Items()); diff != "" {
		t.Errorf("cart changed by no-op remove (-before +after):\n%s", diff)
	}
}

func TestCart_UpdateClampsQuantity(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(mustItem(t, "v1", "10.00", 3)))

	updated := c.Update("v1", 0, nil, nil)
	require.True(t, updated)

	item, ok := c.Find("v1")
	require.True(t, ok)
	assert.Equal(t, 1, item.Quantity, "quantity clamps to 1")
}

func TestCart_UpdateAbsentIsNoOp(t *testing.T) {
	c := cart.New()
	assert.False(t, c.Update("missing", 2, nil, nil))
	assert.True(t, c.IsEmpty())
}

func TestCart_UpdateSelectionFields(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(mustItem(t, "v1", "10.00", 1)))

	size := "L"
	color := "navy"
	require.True(t, c.Update("v1", 2, &size, &color))

	item, _ := c.Find("v1")
	assert.Equal(t, "L", item.Size)
	assert.Equal(t, "navy", item.Color)
	assert.Equal(t, 2, item.Quantity)
}

func TestCart_TotalAndItemCount(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(mustItem(t, "v1", "25.50", 2))) // 51.00
	require.NoError(t, c.Add(mustItem(t, "v2", "9.99", 3)))  // 29.97

	total := c.Total()
	assert.True(t, decimal.RequireFromString("80.97").Equal(total.Amount), "got %s", total.Amount)
	assert.Equal(t, currency.USD, total.Currency)
	assert.Equal(t, 5, c.ItemCount())
}

func TestCart_TotalRecomputedAfterMutation(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(mustItem(t, "v1", "10.00", 1)))
	require.NoError(t, c.Add(mustItem(t, "v2", "5.00", 2)))

	c.Remove("v2")
	assert.True(t, decimal.RequireFromString("10.00").Equal(c.Total().Amount))

	c.Update("v1", 4, nil, nil)
	assert.True(t, decimal.RequireFromString("40.00").Equal(c.Total().Amount))
}

func TestCart_AddRejectsCurrencyMismatch(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(mustItem(t, "v1", "10.00", 1)))

	eur, err := cart.ParseMoney("10.00", "EUR")
	require.NoError(t, err)
	item, err := cart.NewItem("v2", "EUR item", eur, 1, nil)
	require.NoError(t, err)

	assert.ErrorIs(t, c.Add(item), cart.ErrCurrencyMismatch)
}

func TestCart_ItemsSnapshotIsImmutable(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(mustItem(t, "v1", "10.00", 1)))

	snapshot := c.Items()
	snapshot[0].Quantity = 99

	item, _ := c.Find("v1")
	assert.Equal(t, 1, item.Quantity)
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	m := mustMoney(t, "25.00")

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded cart.Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, m.Amount.Equal(decoded.Amount))
	assert.Equal(t, m.Currency, decoded.Currency)
}

func TestParseMoney_RejectsBadInput(t *testing.T) {
	_, err := cart.ParseMoney("-1.00", "USD")
	assert.ErrorIs(t, err, cart.ErrNegativeAmount)

	_, err = cart.ParseMoney("10.00", "notacurrency")
	assert.ErrorIs(t, err, cart.ErrInvalidCurrency)
}
