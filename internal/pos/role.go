package pos

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleKasir  Role = "Kasir"
	RoleSales  Role = "Sales"
	RoleGudang Role = "Gudang"
)

var roleAliases = map[string]Role{
	"admin":     RoleAdmin,
	"kasir":     RoleKasir,
	"cashier":   RoleKasir,
	"sales":     RoleSales,
	"gudang":    RoleGudang,
	"warehouse": RoleGudang,
}

// ParseRole menerima nilai wire ("Kasir") maupun konstanta ("KASIR").
func ParseRole(s string) (Role, error) {
	if r, ok := roleAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return r, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// Normalize mengembalikan bentuk kanonik; role tak dikenal dibiarkan apa adanya.
func (r Role) Normalize() Role {
	if n, err := ParseRole(string(r)); err == nil {
		return n
	}
	return r
}

// Gudang dan role tak dikenal tidak punya akses keranjang/checkout.
func (r Role) CanCheckout() bool { return r.Valid() && r.Normalize() != RoleGudang }

func (r Role) IsAdmin() bool { return r.Normalize() == RoleAdmin }

// Riwayat: Admin & Gudang lihat semua order, selain itu hanya milik sendiri.
func (r Role) SeesAllOrders() bool {
	n := r.Normalize()
	return n == RoleAdmin || n == RoleGudang
}
