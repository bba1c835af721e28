package pos

import (
	"fmt"
	"strings"
	"time"
)

type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodAll     Period = "all"
)

const UncategorizedLabel = "Uncategorized"

func ParsePeriod(s string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PeriodAll, nil
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodAll:
		return p, nil
	}
	return "", fmt.Errorf("unknown period %q", s)
}

// Since mengembalikan batas bawah periode relatif ke now (zona waktu now).
// PeriodAll -> zero time.
func (p Period) Since(now time.Time) time.Time {
	switch p {
	case PeriodDaily:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case PeriodWeekly:
		return now.Add(-7 * 24 * time.Hour)
	case PeriodMonthly:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
	return time.Time{}
}

type SalesReport struct {
	Period        Period         `json:"period"`
	TotalRevenue  int            `json:"total_revenue"`
	OrderCount    int            `json:"order_count"`
	AvgOrderValue float64        `json:"avg_order_value"`
	UserStats     map[string]int `json:"user_stats"`
	CategoryStats map[string]int `json:"category_stats"`
}

func FilterOrders(orders []Order, p Period, now time.Time) []Order {
	since := p.Since(now)
	if since.IsZero() {
		return orders
	}
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if !o.CreatedAt.Before(since) {
			out = append(out, o)
		}
	}
	return out
}

// BuildReport: proyeksi read-side, dihitung ulang setiap dipanggil.
// Revenue per kategori pakai price*qty baris (sebelum diskon), kategori
// diambil dari katalog saat ini.
func BuildReport(orders []Order, products []Product, p Period, now time.Time) SalesReport {
	category := make(map[string]string, len(products))
	for _, pr := range products {
		category[pr.ID] = pr.Category
	}

	filtered := FilterOrders(orders, p, now)
	r := SalesReport{
		Period:        p,
		OrderCount:    len(filtered),
		UserStats:     map[string]int{},
		CategoryStats: map[string]int{},
	}
	for _, o := range filtered {
		r.TotalRevenue += o.TotalAmount
		r.UserStats[o.UserName] += o.TotalAmount
		for _, it := range o.Items {
			cat := category[it.ID]
			if cat == "" {
				cat = UncategorizedLabel
			}
			r.CategoryStats[cat] += it.Price * it.Quantity
		}
	}
	if r.OrderCount > 0 {
		r.AvgOrderValue = float64(r.TotalRevenue) / float64(r.OrderCount)
	}
	return r
}
