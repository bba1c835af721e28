package pos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddSnapshotsPriceAndMerges(t *testing.T) {
	c := NewCart(RoleKasir)
	require.NoError(t, c.Add(CartLine{ID: "1", Name: "Coffee", Price: 150000, Quantity: 1}))
	// harga katalog berubah di tengah sesi, snapshot pertama yang dipakai
	require.NoError(t, c.Add(CartLine{ID: "1", Name: "Coffee", Price: 999, Quantity: 1}))
	require.NoError(t, c.Add(CartLine{ID: "2", Name: "Milk", Price: 25000, Quantity: 1}))

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 150000, items[0].Price)
	assert.Equal(t, 2, items[0].Quantity)

	totals, err := c.Totals(0)
	require.NoError(t, err)
	assert.Equal(t, 325000, totals.Subtotal)
}

func TestCartQuantityClamp(t *testing.T) {
	c := NewCart(RoleSales)
	require.NoError(t, c.Add(CartLine{ID: "1", Price: 10, Quantity: 0}))
	assert.Equal(t, 1, c.Items()[0].Quantity)

	require.NoError(t, c.Add(CartLine{ID: "1", Price: 10, Quantity: -5}))
	assert.Equal(t, 2, c.Items()[0].Quantity)

	require.NoError(t, c.Add(CartLine{ID: "1", Price: 10, Quantity: MaxQuantity}))
	assert.Equal(t, MaxQuantity, c.Items()[0].Quantity)
}

func TestCartItemsIsCopy(t *testing.T) {
	c := NewCart(RoleAdmin)
	require.NoError(t, c.Add(CartLine{ID: "1", Price: 10, Quantity: 1}))
	items := c.Items()
	items[0].Quantity = 50
	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestCartBlockedRoles(t *testing.T) {
	for _, role := range []Role{RoleGudang, "", "Manager"} {
		c := NewCart(role)
		assert.ErrorIs(t, c.Add(CartLine{ID: "1"}), ErrCheckoutForbidden)
		assert.Equal(t, 0, c.Len())
	}
}
