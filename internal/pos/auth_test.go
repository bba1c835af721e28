package pos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	users := DefaultUsers()

	u, err := Authenticate(users, "0000")
	require.NoError(t, err)
	assert.Equal(t, "cashier-1", u.ID)

	_, err = Authenticate(users, "9999")
	assert.ErrorIs(t, err, ErrInvalidPIN)
	assert.EqualError(t, err, "PIN tidak valid")

	_, err = Authenticate(users, "")
	assert.ErrorIs(t, err, ErrInvalidPIN)
}

func TestValidatePIN(t *testing.T) {
	for _, ok := range []string{"1234", "000000", "123456789012"} {
		assert.NoError(t, ValidatePIN(ok), ok)
	}
	for _, bad := range []string{"", "123", "1234567890123", "12a4", "12 34"} {
		assert.ErrorIs(t, ValidatePIN(bad), ErrPINFormat, bad)
	}
}

func TestParseRole(t *testing.T) {
	for in, want := range map[string]Role{
		"Admin": RoleAdmin, "ADMIN": RoleAdmin, "kasir": RoleKasir, "cashier": RoleKasir,
		"SALES": RoleSales, "Gudang": RoleGudang, "warehouse": RoleGudang,
	} {
		got, err := ParseRole(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseRole("manager")
	assert.ErrorIs(t, err, ErrUnknownRole)

	assert.False(t, RoleGudang.CanCheckout())
	assert.True(t, Role("KASIR").CanCheckout())
	assert.False(t, Role("").CanCheckout())
	assert.False(t, Role("Manager").CanCheckout())
	assert.True(t, RoleGudang.SeesAllOrders())
	assert.False(t, RoleSales.SeesAllOrders())
}
