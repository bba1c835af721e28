package gateway

import (
	"context"
	"time"

	"github.com/ariefcatur/smartpos/internal/pos"
)

type traceKey struct{}

// WithTraceID menempelkan request id ke ctx; ikut ke envelope event.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceKey{}, id)
}

func TraceID(ctx context.Context) string {
	id, _ := ctx.Value(traceKey{}).(string)
	return id
}

// Login mencari user dengan PIN yang cocok (plaintext).
func (g *Gateway) Login(ctx context.Context, pin string) (pos.User, error) {
	res, err := g.Users.List(ctx)
	if err != nil {
		return pos.User{}, err
	}
	return pos.Authenticate(res.Data, pin)
}

func (g *Gateway) FindUser(ctx context.Context, id string) (pos.User, bool, error) {
	res, err := g.Users.List(ctx)
	if err != nil {
		return pos.User{}, false, err
	}
	u, ok := pos.FindUser(res.Data, id)
	return u, ok, nil
}

// VisibleCustomers: daftar customer setelah filter role actor.
func (g *Gateway) VisibleCustomers(ctx context.Context, actor pos.User) (Result[pos.Customer], error) {
	res, err := g.Customers.List(ctx)
	res.Data = pos.VisibleCustomers(actor, res.Data)
	return res, err
}

// History: riwayat order sesuai role, opsional filter tanggal YYYY-MM-DD.
func (g *Gateway) History(ctx context.Context, actor pos.User, date string) (Result[pos.Order], error) {
	res, err := g.Orders.List(ctx)
	res.Data = pos.VisibleOrders(actor, res.Data, date)
	return res, err
}

// SalesReport dihitung ulang tiap panggilan dari orders + products.
func (g *Gateway) SalesReport(ctx context.Context, p pos.Period, now time.Time) (pos.SalesReport, Source, error) {
	orders, err := g.Orders.List(ctx)
	if err != nil {
		return pos.SalesReport{}, orders.Source, err
	}
	products, err := g.Products.List(ctx)
	if err != nil {
		return pos.SalesReport{}, products.Source, err
	}
	src := SourceRemote
	if orders.Source == SourceCache || products.Source == SourceCache {
		src = SourceCache
	}
	return pos.BuildReport(orders.Data, products.Data, p, now), src, nil
}

// Catalog: query katalog di atas list produk.
func (g *Gateway) Catalog(ctx context.Context, q pos.CatalogQuery) (pos.CatalogPage, Source, error) {
	res, err := g.Products.List(ctx)
	if err != nil {
		return pos.CatalogPage{}, res.Source, err
	}
	return pos.QueryCatalog(res.Data, q), res.Source, nil
}
