package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ariefcatur/smartpos/internal/pos"
)

type SupabaseConfig struct {
	URL     string
	AnonKey string
}

// Configured: keduanya wajib ada, kalau tidak gateway jalan local-only.
func (c SupabaseConfig) Configured() bool { return c.URL != "" && c.AnonKey != "" }

// Supabase berbicara ke PostgREST (/rest/v1/{table}).
type Supabase struct {
	cfg    SupabaseConfig
	client *http.Client
}

func NewSupabase(cfg SupabaseConfig, client *http.Client) *Supabase {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	cfg.URL = strings.TrimRight(cfg.URL, "/")
	return &Supabase{cfg: cfg, client: client}
}

func (s *Supabase) Name() string { return "supabase" }

func (s *Supabase) restURL(table string, q url.Values) string {
	u := s.cfg.URL + "/rest/v1/" + table
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

func (s *Supabase) setHeaders(req *http.Request) {
	req.Header.Set("apikey", s.cfg.AnonKey)
	req.Header.Set("Authorization", "Bearer "+s.cfg.AnonKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}

func (s *Supabase) do(ctx context.Context, method, table string, q url.Values, body, out any, prefer string) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal error: %w", err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, s.restURL(table, q), rd)
	if err != nil {
		return err
	}
	s.setHeaders(req)
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("supabase %s %s: %d %s", method, table, resp.StatusCode, strings.TrimSpace(string(b)))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode error: %w", err)
	}
	return nil
}

func (s *Supabase) List(ctx context.Context, c pos.Collection, dst any) error {
	table, err := tableFor(c)
	if err != nil {
		return err
	}
	q := url.Values{"select": {"*"}}
	if c == pos.CollectionOrders {
		q.Set("order", "created_at.desc")
	}
	return s.do(ctx, http.MethodGet, table, q, nil, dst, "")
}

func (s *Supabase) Upsert(ctx context.Context, c pos.Collection, row any) error {
	table, err := tableFor(c)
	if err != nil {
		return err
	}
	return s.do(ctx, http.MethodPost, table, nil, row, nil, "resolution=merge-duplicates,return=minimal")
}

func (s *Supabase) Delete(ctx context.Context, c pos.Collection, ids ...string) error {
	table, err := tableFor(c)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	return s.do(ctx, http.MethodDelete, table, idFilter(ids), nil, nil, "")
}

func (s *Supabase) TransferCustomers(ctx context.Context, ids []string, ownerID string, ownerRole pos.Role) error {
	if len(ids) == 0 {
		return nil
	}
	patch := map[string]any{"created_by": ownerID, "created_by_role": ownerRole}
	return s.do(ctx, http.MethodPatch, "customers", idFilter(ids), patch, nil, "return=minimal")
}

// CreateOrder: insert order, lalu per item baca stok remote dan tulis stok-qty.
// Read-modify-write tanpa compare-and-swap: dua checkout bersamaan untuk produk
// yang sama bisa kehilangan update. Kegagalan per item tidak menghentikan item lain.
func (s *Supabase) CreateOrder(ctx context.Context, o pos.Order, customerSpent *int) error {
	if err := s.do(ctx, http.MethodPost, "orders", nil, o, nil, "return=minimal"); err != nil {
		return fmt.Errorf("insert order %s: %w", o.ID, err)
	}

	var errs []error
	for _, it := range o.Items {
		if err := s.decrementStock(ctx, it.ID, it.Quantity); err != nil {
			errs = append(errs, fmt.Errorf("stock %s: %w", it.ID, err))
		}
	}
	if o.CustomerID != "" && customerSpent != nil {
		patch := map[string]any{"total_spent": *customerSpent}
		if err := s.do(ctx, http.MethodPatch, "customers", idFilter([]string{o.CustomerID}), patch, nil, "return=minimal"); err != nil {
			errs = append(errs, fmt.Errorf("customer %s: %w", o.CustomerID, err))
		}
	}
	return errors.Join(errs...)
}

func (s *Supabase) decrementStock(ctx context.Context, productID string, qty int) error {
	var rows []struct {
		Stock int `json:"stock"`
	}
	q := idFilter([]string{productID})
	q.Set("select", "stock")
	if err := s.do(ctx, http.MethodGet, "products", q, nil, &rows, ""); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil // produk tidak ada di remote, lewati
	}
	patch := map[string]any{"stock": rows[0].Stock - qty}
	return s.do(ctx, http.MethodPatch, "products", idFilter([]string{productID}), patch, nil, "return=minimal")
}

func idFilter(ids []string) url.Values {
	if len(ids) == 1 {
		return url.Values{"id": {"eq." + ids[0]}}
	}
	quoted := make([]string, len(ids))
	for i, id := range ids {
		quoted[i] = `"` + strings.ReplaceAll(id, `"`, `\"`) + `"`
	}
	return url.Values{"id": {"in.(" + strings.Join(quoted, ",") + ")"}}
}
