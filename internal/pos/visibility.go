package pos

import "strings"

// HistoryLimit: batas jumlah baris riwayat yang dikembalikan.
const HistoryLimit = 100

// CustomerVisible menentukan apakah actor boleh melihat customer c.
//   - Admin: semua
//   - Sales: hanya yang dia buat sendiri
//   - Kasir: pool milik role Kasir & Admin
//   - Gudang: tidak ada
func CustomerVisible(actor User, c Customer) bool {
	switch actor.Role.Normalize() {
	case RoleAdmin:
		return true
	case RoleSales:
		return c.CreatedBy == actor.ID
	case RoleKasir:
		owner := c.CreatedByRole.Normalize()
		return owner == RoleKasir || owner == RoleAdmin
	default:
		return false
	}
}

func VisibleCustomers(actor User, all []Customer) []Customer {
	out := make([]Customer, 0, len(all))
	for _, c := range all {
		if CustomerVisible(actor, c) {
			out = append(out, c)
		}
	}
	return out
}

func OrderVisible(actor User, o Order) bool {
	return actor.Role.SeesAllOrders() || o.UserID == actor.ID
}

// VisibleOrders: filter role, lalu filter tanggal (prefix "YYYY-MM-DD" dari
// created_at, UTC), dibatasi HistoryLimit. Urutan input dipertahankan.
func VisibleOrders(actor User, all []Order, date string) []Order {
	date = strings.TrimSpace(date)
	out := make([]Order, 0, min(len(all), HistoryLimit))
	for _, o := range all {
		if len(out) == HistoryLimit {
			break
		}
		if !OrderVisible(actor, o) {
			continue
		}
		if date != "" && !strings.HasPrefix(o.CreatedAt.UTC().Format("2006-01-02"), date) {
			continue
		}
		out = append(out, o)
	}
	return out
}
