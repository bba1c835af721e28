package pos

// Cart adalah keranjang milik satu checkout. Bukan untuk dipakai
// bersamaan dari beberapa goroutine.
type Cart struct {
	owner Role
	items []CartItem
}

func NewCart(owner Role) *Cart { return &Cart{owner: owner} }

// Add: harga di-snapshot dari baris pertama; baris dengan id yang sama
// digabung dan qty dijumlah (tetap di-clamp).
func (c *Cart) Add(l CartLine) error {
	if !c.owner.CanCheckout() {
		return ErrCheckoutForbidden
	}
	qty := ClampQuantity(int(l.Quantity))
	for i := range c.items {
		if c.items[i].ID == l.ID {
			c.items[i].Quantity = ClampQuantity(c.items[i].Quantity + qty)
			return nil
		}
	}
	c.items = append(c.items, CartItem{ID: l.ID, Name: l.Name, Price: l.Price, Quantity: qty})
	return nil
}

func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int { return len(c.items) }

func (c *Cart) Totals(discountPct int) (Totals, error) {
	return ComputeTotals(c.items, discountPct)
}
