package pos

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCustomerVisibleScenario(t *testing.T) {
	c := Customer{ID: "c1", CreatedBy: "u1", CreatedByRole: RoleSales}

	assert.True(t, CustomerVisible(User{ID: "u1", Role: RoleSales}, c))
	assert.False(t, CustomerVisible(User{ID: "u2", Role: RoleSales}, c))
	assert.True(t, CustomerVisible(User{ID: "any", Role: RoleAdmin}, c))
	assert.False(t, CustomerVisible(User{ID: "k", Role: RoleKasir}, c))
	assert.False(t, CustomerVisible(User{ID: "u1", Role: RoleGudang}, c))
}

func TestVisibleCustomersByRole(t *testing.T) {
	all := []Customer{
		{ID: "a", CreatedBy: "admin-1", CreatedByRole: RoleAdmin},
		{ID: "k1", CreatedBy: "cashier-1", CreatedByRole: RoleKasir},
		{ID: "k2", CreatedBy: "cashier-2", CreatedByRole: "KASIR"},
		{ID: "s1", CreatedBy: "sales-1", CreatedByRole: RoleSales},
		{ID: "s2", CreatedBy: "sales-2", CreatedByRole: RoleSales},
	}
	ids := func(cs []Customer) []string {
		out := []string{}
		for _, c := range cs {
			out = append(out, c.ID)
		}
		return out
	}

	assert.Equal(t, []string{"a", "k1", "k2", "s1", "s2"}, ids(VisibleCustomers(User{ID: "admin-1", Role: RoleAdmin}, all)))
	assert.Equal(t, []string{"a", "k1", "k2"}, ids(VisibleCustomers(User{ID: "cashier-9", Role: RoleKasir}, all)))
	assert.Equal(t, []string{"s1"}, ids(VisibleCustomers(User{ID: "sales-1", Role: RoleSales}, all)))
	assert.Empty(t, VisibleCustomers(User{ID: "gudang-1", Role: RoleGudang}, all))
}

func TestCustomerVisibilityTotal(t *testing.T) {
	roles := []Role{RoleAdmin, RoleKasir, RoleSales, RoleGudang}
	for _, actorRole := range roles {
		for _, ownerRole := range roles {
			for _, owner := range []string{"u1", "u2"} {
				actor := User{ID: "u1", Role: actorRole}
				c := Customer{CreatedBy: owner, CreatedByRole: ownerRole}
				got := CustomerVisible(actor, c)

				var want bool
				switch actorRole {
				case RoleAdmin:
					want = true
				case RoleSales:
					want = owner == "u1"
				case RoleKasir:
					want = ownerRole == RoleKasir || ownerRole == RoleAdmin
				}
				assert.Equal(t, want, got, fmt.Sprintf("actor=%s owner=%s/%s", actorRole, owner, ownerRole))
			}
		}
	}
}

func TestVisibleOrders(t *testing.T) {
	d1 := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	orders := []Order{
		{ID: "o3", UserID: "cashier-1", CreatedAt: d2},
		{ID: "o2", UserID: "sales-1", CreatedAt: d1},
		{ID: "o1", UserID: "cashier-1", CreatedAt: d1},
	}

	assert.Len(t, VisibleOrders(User{ID: "admin-1", Role: RoleAdmin}, orders, ""), 3)
	assert.Len(t, VisibleOrders(User{ID: "gudang-1", Role: RoleGudang}, orders, ""), 3)

	mine := VisibleOrders(User{ID: "cashier-1", Role: RoleKasir}, orders, "")
	assert.Equal(t, []string{"o3", "o1"}, []string{mine[0].ID, mine[1].ID})

	dated := VisibleOrders(User{ID: "cashier-1", Role: RoleKasir}, orders, "2024-05-01")
	assert.Len(t, dated, 1)
	assert.Equal(t, "o1", dated[0].ID)
}

func TestVisibleOrdersLimit(t *testing.T) {
	orders := make([]Order, 0, 150)
	for i := 0; i < 150; i++ {
		orders = append(orders, Order{ID: fmt.Sprint(i), UserID: "u"})
	}
	assert.Len(t, VisibleOrders(User{ID: "u", Role: RoleKasir}, orders, ""), HistoryLimit)
}
