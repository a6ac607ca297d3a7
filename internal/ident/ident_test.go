package ident

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseID_Deterministic(t *testing.T) {
	first, firstErr := PurchaseID(42)
	require.NoError(t, firstErr)

	second, secondErr := PurchaseID(42)
	require.NoError(t, secondErr)

	assert.Equal(t, first, second)
}

func TestPurchaseID_NoCollisions(t *testing.T) {
	seen := make(map[int64]int64)
	for itemID := int64(0); itemID < 10000; itemID++ {
		id, err := PurchaseID(itemID)
		require.NoError(t, err)

		prev, ok := seen[id]
		require.Falsef(t, ok, "purchase id %d collides: items %d and %d", id, prev, itemID)
		seen[id] = itemID
	}
}

func TestElementID_DistinctElements(t *testing.T) {
	a, aErr := ElementID(7, 0)
	require.NoError(t, aErr)
	b, bErr := ElementID(7, 1)
	require.NoError(t, bErr)

	assert.NotEqual(t, a, b)
}

func TestElementID_Range(t *testing.T) {
	cases := []struct {
		name    string
		itemID  int64
		element int64
	}{
		{name: "negative element", itemID: 1, element: -1},
		{name: "element too big", itemID: 1, element: ElementsPerItem},
		{name: "negative item id", itemID: -1, element: 0},
		{name: "overflow", itemID: math.MaxInt64, element: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ElementID(tc.itemID, tc.element)
			assert.Error(t, err)
		})
	}
}
