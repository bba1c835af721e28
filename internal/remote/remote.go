// Package remote berisi backend relasional yang di-hosting: PostgREST
// (Supabase) lewat HTTP, atau PostgreSQL langsung lewat pgx.
package remote

import (
	"context"
	"errors"
	"fmt"

	"github.com/ariefcatur/smartpos/internal/pos"
)

var (
	ErrUnknownCollection = errors.New("unknown collection")
	ErrUnsupportedRow    = errors.New("unsupported row type")
)

// Remote adalah kontrak backend yang dipakai gateway.
//
// List mengisi dst (pointer ke slice tipe koleksi). Orders selalu
// diurutkan created_at DESC.
type Remote interface {
	Name() string
	List(ctx context.Context, c pos.Collection, dst any) error
	Upsert(ctx context.Context, c pos.Collection, row any) error
	Delete(ctx context.Context, c pos.Collection, ids ...string) error
	TransferCustomers(ctx context.Context, ids []string, ownerID string, ownerRole pos.Role) error
	// CreateOrder menyimpan order beserta efek sampingnya (stok, total_spent).
	// customerSpent = total_spent customer setelah order menurut mirror lokal;
	// nil kalau customer tidak dikenal secara lokal.
	CreateOrder(ctx context.Context, o pos.Order, customerSpent *int) error
}

var tables = map[pos.Collection]string{
	pos.CollectionProducts:  "products",
	pos.CollectionUsers:     "users",
	pos.CollectionOrders:    "orders",
	pos.CollectionCustomers: "customers",
}

func tableFor(c pos.Collection) (string, error) {
	t, ok := tables[c]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCollection, c)
	}
	return t, nil
}
