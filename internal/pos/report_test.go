package pos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReport(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	products := []Product{
		{ID: "1", Category: "Coffee"},
		{ID: "2", Category: "Dairy"},
	}
	orders := []Order{
		{UserName: "Ani", TotalAmount: 270000, CreatedAt: now.Add(-time.Hour),
			Items: []CartItem{{ID: "1", Price: 150000, Quantity: 2}}},
		{UserName: "Budi", TotalAmount: 25000, CreatedAt: now.Add(-3 * 24 * time.Hour),
			Items: []CartItem{{ID: "2", Price: 25000, Quantity: 1}}},
		{UserName: "Ani", TotalAmount: 10000, CreatedAt: now.AddDate(0, -2, 0),
			Items: []CartItem{{ID: "gone", Price: 10000, Quantity: 1}}},
	}

	all := BuildReport(orders, products, PeriodAll, now)
	assert.Equal(t, 305000, all.TotalRevenue)
	assert.Equal(t, 3, all.OrderCount)
	assert.InDelta(t, 101666.67, all.AvgOrderValue, 0.01)
	assert.Equal(t, map[string]int{"Ani": 280000, "Budi": 25000}, all.UserStats)
	assert.Equal(t, map[string]int{"Coffee": 300000, "Dairy": 25000, UncategorizedLabel: 10000}, all.CategoryStats)

	daily := BuildReport(orders, products, PeriodDaily, now)
	assert.Equal(t, 1, daily.OrderCount)
	assert.Equal(t, 270000, daily.TotalRevenue)

	weekly := BuildReport(orders, products, PeriodWeekly, now)
	assert.Equal(t, 2, weekly.OrderCount)

	monthly := BuildReport(orders, products, PeriodMonthly, now)
	assert.Equal(t, 2, monthly.OrderCount)
}

func TestBuildReportEmpty(t *testing.T) {
	r := BuildReport(nil, nil, PeriodAll, time.Now())
	assert.Zero(t, r.OrderCount)
	assert.Zero(t, r.AvgOrderValue)
	assert.NotNil(t, r.UserStats)
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("")
	require.NoError(t, err)
	assert.Equal(t, PeriodAll, p)
	p, err = ParsePeriod("Weekly")
	require.NoError(t, err)
	assert.Equal(t, PeriodWeekly, p)
	_, err = ParsePeriod("yearly")
	assert.Error(t, err)
}
