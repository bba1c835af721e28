package pos

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	receiptDateLayout = "02012006" // DDMMYYYY
	receiptSuffixMin  = 1000
	receiptSuffixSpan = 9000
)

// MaxQuantity: batas atas qty per baris keranjang.
const MaxQuantity = 9999

// unquote menerima angka, string angka, string kosong, atau null.
func unquote(b []byte) string {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return ""
	}
	s := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return ""
		}
	}
	return s
}

// Quantity di JSON: input rusak jadi 1, selalu di [1, MaxQuantity].
type Quantity int

func (q *Quantity) UnmarshalJSON(b []byte) error {
	*q = Quantity(ParseQuantity(unquote(b)))
	return nil
}

// Percent di JSON: input rusak jadi 0, selalu di [0, 100].
type Percent int

func (p *Percent) UnmarshalJSON(b []byte) error {
	*p = Percent(ParseDiscount(unquote(b)))
	return nil
}

// ParseInt: string kosong / rusak / di luar jangkauan int -> def. Pecahan dibulatkan.
func ParseInt(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return def
	}
	x = math.Round(x)
	if x >= math.MaxInt64 || x < math.MinInt64 {
		return def
	}
	return int(x)
}

// ParseQuantity: input kosong/rusak -> 1, lalu di-clamp ke [1, MaxQuantity].
func ParseQuantity(s string) int { return ClampQuantity(ParseInt(s, 1)) }

// ParseDiscount: input kosong/rusak -> 0, lalu di-clamp ke [0,100].
func ParseDiscount(s string) int { return ClampPercent(ParseInt(s, 0)) }

func ClampQuantity(q int) int {
	return min(max(q, 1), MaxQuantity)
}

func ClampPercent(p int) int {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// Subtotal menolak harga negatif dan hasil yang melewati batas int.
func Subtotal(items []CartItem) (int, error) {
	sum := 0
	for _, it := range items {
		if it.Price < 0 || it.Quantity < 0 {
			return 0, fmt.Errorf("%w: item %s", ErrInvalidAmount, it.ID)
		}
		if it.Price > 0 && it.Quantity > (math.MaxInt-sum)/it.Price {
			return 0, fmt.Errorf("%w: subtotal terlalu besar", ErrInvalidAmount)
		}
		sum += it.Price * it.Quantity
	}
	return sum, nil
}

// DiscountAmount = round(subtotal * pct / 100), pct di-clamp dulu.
func DiscountAmount(subtotal, pct int) int {
	return int(math.Round(float64(subtotal) * float64(ClampPercent(pct)) / 100))
}

type Totals struct {
	Subtotal int `json:"subtotal"`
	Discount int `json:"discount"`
	Total    int `json:"total"`
}

func ComputeTotals(items []CartItem, discountPct int) (Totals, error) {
	sub, err := Subtotal(items)
	if err != nil {
		return Totals{}, err
	}
	disc := DiscountAmount(sub, discountPct)
	return Totals{Subtotal: sub, Discount: disc, Total: max(0, sub-disc)}, nil
}

// ReceiptNumber: DDMMYYYY + 4 digit acak. Bisa bentrok, tidak dicek;
// identitas unik order tetap ada di ID (uuid).
func ReceiptNumber(t time.Time, suffix int) string {
	return t.Format(receiptDateLayout) + fmt.Sprintf("%04d", suffix)
}

func randomSuffix() int { return receiptSuffixMin + rand.Intn(receiptSuffixSpan) }

type CartLine struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    int      `json:"price"`
	Quantity Quantity `json:"quantity"`
}

type CheckoutRequest struct {
	Items           []CartLine `json:"items"`
	DiscountPercent Percent    `json:"discount_percent"`
	BuyerName       string     `json:"buyer_name,omitempty"`
	BuyerPhone      string     `json:"buyer_phone,omitempty"`
	CustomerID      string     `json:"customer_id,omitempty"`
}

// OrderBuilder menyusun Order dari keranjang. Field nil memakai default
// (jam sekarang, suffix acak, uuid).
type OrderBuilder struct {
	Now    func() time.Time
	Suffix func() int
	NewID  func() string
}

func (b OrderBuilder) Build(actor User, req CheckoutRequest) (Order, error) {
	if !actor.Role.CanCheckout() {
		return Order{}, fmt.Errorf("%w: %s", ErrCheckoutForbidden, actor.Role)
	}
	cart := NewCart(actor.Role)
	for _, l := range req.Items {
		if err := cart.Add(l); err != nil {
			return Order{}, err
		}
	}
	if cart.Len() == 0 {
		return Order{}, ErrEmptyCart
	}
	totals, err := cart.Totals(int(req.DiscountPercent))
	if err != nil {
		return Order{}, err
	}

	now, suffix, newID := time.Now, randomSuffix, uuid.NewString
	if b.Now != nil {
		now = b.Now
	}
	if b.Suffix != nil {
		suffix = b.Suffix
	}
	if b.NewID != nil {
		newID = b.NewID
	}

	ts := now()
	return Order{
		ID:            newID(),
		ReceiptNumber: ReceiptNumber(ts, suffix()),
		UserID:        actor.ID,
		UserName:      actor.Name,
		TotalAmount:   totals.Total,
		Discount:      totals.Discount,
		Items:         cart.Items(),
		CreatedAt:     ts.UTC(),
		BuyerName:     strings.TrimSpace(req.BuyerName),
		BuyerPhone:    strings.TrimSpace(req.BuyerPhone),
		CustomerID:    req.CustomerID,
	}, nil
}
