//go:build unit

package shortlist_test

import (
	"testing"

	"storefront-api/internal/domain/shortlist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_AddIsIdempotent(t *testing.T) {
	l := shortlist.New()

	ref := shortlist.ProductRef{ProductID: "p1", Handle: "gift-card-25"}
	require.NoError(t, l.Add(ref))
	require.NoError(t, l.Add(ref))
	require.NoError(t, l.Add(ref))

	assert.Equal(t, 1, l.Len())
	assert.True(t, l.Contains("p1"))
}

func TestList_RemoveAbsentIsNoOp(t *testing.T) {
	l := shortlist.New()
	require.NoError(t, l.Add(shortlist.ProductRef{ProductID: "p1"}))

	assert.False(t, l.Remove("p2"))
	assert.Equal(t, 1, l.Len())

	assert.True(t, l.Remove("p1"))
	assert.Equal(t, 0, l.Len())
}

func TestList_RejectsEmptyProductID(t *testing.T) {
	l := shortlist.New()
	assert.ErrorIs(t, l.Add(shortlist.ProductRef{}), shortlist.ErrEmptyProductID)
}

func TestList_PreservesInsertionOrder(t *testing.T) {
	l := shortlist.New()
	for _, id := range []string{"p3", "p1", "p2"} {
		require.NoError(t, l.Add(shortlist.ProductRef{ProductID: id}))
	}

	var order []string
	for _, ref := range l.Refs() {
		order = append(order, ref.ProductID)
	}
	assert.Equal(t, []string{"p3", "p1", "p2"}, order)
}
