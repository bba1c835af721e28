package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariefcatur/smartpos/internal/pos"
)

type recorded struct {
	Method string
	Path   string
	Query  string
	Body   string
	Prefer string
}

type fakeRest struct {
	mu       sync.Mutex
	calls    []recorded
	stock    map[string]int
	failPath string
}

func (f *fakeRest) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "anon", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon", r.Header.Get("Authorization"))

		b, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.calls = append(f.calls, recorded{r.Method, r.URL.Path, r.URL.RawQuery, string(b), r.Header.Get("Prefer")})
		f.mu.Unlock()

		if f.failPath != "" && r.URL.Path == f.failPath {
			http.Error(w, `{"message":"boom"}`, http.StatusInternalServerError)
			return
		}

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/rest/v1/products" && r.URL.Query().Get("select") == "stock":
			id := r.URL.Query().Get("id")[len("eq."):]
			s, ok := f.stock[id]
			if !ok {
				_, _ = w.Write([]byte(`[]`))
				return
			}
			_ = json.NewEncoder(w).Encode([]map[string]int{{"stock": s}})
		case r.Method == http.MethodGet && r.URL.Path == "/rest/v1/products":
			_, _ = w.Write([]byte(`[{"id":"1","name":"Coffee","category":"Coffee","price":150000,"stock":45,"image_url":""}]`))
		case r.Method == http.MethodGet && r.URL.Path == "/rest/v1/orders":
			_, _ = w.Write([]byte(`[{"id":"o1","receipt_number":"010120241234","user_id":"u","user_name":"U","total_amount":10,"discount":0,"items":[{"id":"1","name":"Coffee","price":10,"quantity":1}],"created_at":"2024-01-01T10:00:00+00:00"}]`))
		default:
			w.WriteHeader(http.StatusCreated)
		}
	})
}

func newFake(t *testing.T) (*fakeRest, *Supabase) {
	f := &fakeRest{stock: map[string]int{"1": 10, "2": 3}}
	srv := httptest.NewServer(f.handler(t))
	t.Cleanup(srv.Close)
	return f, NewSupabase(SupabaseConfig{URL: srv.URL + "/", AnonKey: "anon"}, srv.Client())
}

func TestSupabaseConfigured(t *testing.T) {
	assert.False(t, SupabaseConfig{}.Configured())
	assert.False(t, SupabaseConfig{URL: "http://x"}.Configured())
	assert.True(t, SupabaseConfig{URL: "http://x", AnonKey: "k"}.Configured())
}

func TestSupabaseList(t *testing.T) {
	f, s := newFake(t)
	ctx := context.Background()

	var products []pos.Product
	require.NoError(t, s.List(ctx, pos.CollectionProducts, &products))
	require.Len(t, products, 1)
	assert.Equal(t, 150000, products[0].Price)

	var orders []pos.Order
	require.NoError(t, s.List(ctx, pos.CollectionOrders, &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), orders[0].CreatedAt.UTC())
	assert.Contains(t, f.calls[1].Query, "order=created_at.desc")

	assert.ErrorIs(t, s.List(ctx, "widgets", &products), ErrUnknownCollection)
}

func TestSupabaseWrites(t *testing.T) {
	f, s := newFake(t)
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, pos.CollectionUsers, pos.User{ID: "u1", Name: "Ani", PIN: "0000", Role: pos.RoleKasir}))
	require.NoError(t, s.Delete(ctx, pos.CollectionProducts, "7"))
	require.NoError(t, s.Delete(ctx, pos.CollectionCustomers, "a", "b"))
	require.NoError(t, s.TransferCustomers(ctx, []string{"a", "b"}, "sales-1", pos.RoleSales))

	require.Len(t, f.calls, 4)
	assert.Equal(t, http.MethodPost, f.calls[0].Method)
	assert.Contains(t, f.calls[0].Prefer, "merge-duplicates")
	assert.JSONEq(t, `{"id":"u1","name":"Ani","pin":"0000","role":"Kasir"}`, f.calls[0].Body)

	assert.Equal(t, http.MethodDelete, f.calls[1].Method)
	assert.Equal(t, "id=eq.7", f.calls[1].Query)

	assert.Equal(t, "/rest/v1/customers", f.calls[2].Path)
	assert.Equal(t, `id=in.%28%22a%22%2C%22b%22%29`, f.calls[2].Query)

	assert.Equal(t, http.MethodPatch, f.calls[3].Method)
	assert.JSONEq(t, `{"created_by":"sales-1","created_by_role":"Sales"}`, f.calls[3].Body)
}

func TestSupabaseCreateOrder(t *testing.T) {
	f, s := newFake(t)
	o := pos.Order{
		ID:         "o1",
		Items:      []pos.CartItem{{ID: "1", Quantity: 4}, {ID: "2", Quantity: 5}, {ID: "ghost", Quantity: 1}},
		CustomerID: "c1",
	}
	spent := 77000
	require.NoError(t, s.CreateOrder(context.Background(), o, &spent))

	var patches []string
	for _, c := range f.calls {
		if c.Method == http.MethodPatch {
			patches = append(patches, c.Path+"?"+c.Query+" "+c.Body)
		}
	}
	assert.Equal(t, []string{
		`/rest/v1/products?id=eq.1 {"stock":6}`,
		`/rest/v1/products?id=eq.2 {"stock":-2}`,
		`/rest/v1/customers?id=eq.c1 {"total_spent":77000}`,
	}, patches)
}

func TestSupabaseCreateOrderInsertFails(t *testing.T) {
	f, s := newFake(t)
	f.failPath = "/rest/v1/orders"
	err := s.CreateOrder(context.Background(), pos.Order{ID: "o1", Items: []pos.CartItem{{ID: "1", Quantity: 1}}}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Len(t, f.calls, 1)
}

func TestSupabaseCreateOrderUnknownCustomerSkipsSpend(t *testing.T) {
	f, s := newFake(t)
	o := pos.Order{ID: "o2", Items: []pos.CartItem{{ID: "1", Quantity: 1}}, CustomerID: "missing"}
	require.NoError(t, s.CreateOrder(context.Background(), o, nil))
	for _, c := range f.calls {
		assert.NotEqual(t, "/rest/v1/customers", c.Path)
	}
}
