//go:build unit

package order_test

import (
	"fmt"
	"testing"
	"time"

	"storefront-api/internal/domain/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer_BuildsDisplayName(t *testing.T) {
	c, err := order.NewCustomer(42, " Hanako ", "Yamada", "hanako@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Hanako Yamada", c.Name())

	c, err = order.NewCustomer(42, "", "Yamada", "hanako@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Yamada", c.Name())
}

func TestNewCustomer_RequiresEmail(t *testing.T) {
	_, err := order.NewCustomer(42, "Hanako", "Yamada", "  ")
	assert.ErrorIs(t, err, order.ErrEmptyEmail)
}

func TestNewPurchase_RequiresPaymentReference(t *testing.T) {
	_, err := order.NewPurchase(nil, decimal.NewFromInt(10), "USD", "", time.Now())
	assert.ErrorIs(t, err, order.ErrEmptyPaymentReference)
}

func TestNewPurchase_RejectsNegativeAmount(t *testing.T) {
	_, err := order.NewPurchase(nil, decimal.NewFromInt(-1), "USD", "order-1", time.Now())
	assert.ErrorIs(t, err, order.ErrNegativeAmount)
}

func TestIssueGiftCards_OnePerUnit(t *testing.T) {
	n := 0
	gen := func() string {
		n++
		return fmt.Sprintf("CODE-%d", n)
	}

	cards := order.IssueGiftCards([]order.LineItem{
		{Title: "Gift Card $25", Quantity: 2, UnitPrice: decimal.NewFromInt(25)},
		{Title: "Gift Card $50", Quantity: 1, UnitPrice: decimal.NewFromInt(50)},
	}, "buyer@example.com", gen)

	require.Len(t, cards, 3)
	assert.Equal(t, "CODE-1", cards[0].Code())
	assert.Equal(t, "Gift Card $25", cards[1].Title())
	assert.Equal(t, "Gift Card $50", cards[2].Title())
	for _, card := range cards {
		assert.Equal(t, "buyer@example.com", card.RecipientEmail())
	}
}

func TestIssueGiftCards_ClampsZeroQuantity(t *testing.T) {
	cards := order.IssueGiftCards([]order.LineItem{
		{Title: "Gift Card", Quantity: 0, UnitPrice: decimal.NewFromInt(25)},
	}, "", func() string { return "X" })

	assert.Len(t, cards, 1)
}
