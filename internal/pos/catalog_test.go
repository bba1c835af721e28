package pos

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryCatalogDefaults(t *testing.T) {
	page := QueryCatalog(DefaultProducts(), CatalogQuery{})
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 12, page.Total)
	assert.Len(t, page.Items, PageSize)
	assert.Equal(t, []string{"Bakery", "Beverage", "Coffee", "Dairy", "Misc", "Snacks", "Tea"}, page.Categories)

	second := QueryCatalog(DefaultProducts(), CatalogQuery{Page: 2})
	assert.Len(t, second.Items, 2)

	beyond := QueryCatalog(DefaultProducts(), CatalogQuery{Page: 9})
	assert.Equal(t, 2, beyond.Page)
	assert.Len(t, beyond.Items, 2)
}

func TestQueryCatalogHugePage(t *testing.T) {
	page := QueryCatalog(DefaultProducts(), CatalogQuery{Page: ParseInt("1000000000000000000", 1)})
	assert.Equal(t, 2, page.Page)
	assert.Len(t, page.Items, 2)

	empty := QueryCatalog(nil, CatalogQuery{Page: math.MaxInt})
	assert.Equal(t, 1, empty.Page)
	assert.Equal(t, 0, empty.TotalPages)
	assert.Empty(t, empty.Items)
}

func TestQueryCatalogSearchFilterSort(t *testing.T) {
	page := QueryCatalog(DefaultProducts(), CatalogQuery{Search: "MILK"})
	assert.Equal(t, 2, page.Total)

	page = QueryCatalog(DefaultProducts(), CatalogQuery{Category: "Misc", Sort: SortAsc})
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, []int{20, 150, 500}, []int{page.Items[0].Stock, page.Items[1].Stock, page.Items[2].Stock})

	page = QueryCatalog(DefaultProducts(), CatalogQuery{Category: AllCategory, Sort: SortDesc})
	assert.Equal(t, 500, page.Items[0].Stock)
}
