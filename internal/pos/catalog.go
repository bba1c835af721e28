package pos

import (
	"sort"
	"strings"
)

const (
	PageSize    = 10
	AllCategory = "Semua"
)

type StockSort string

const (
	SortNone StockSort = ""
	SortAsc  StockSort = "asc"
	SortDesc StockSort = "desc"
)

type CatalogQuery struct {
	Search   string
	Category string
	Sort     StockSort
	Page     int // mulai dari 1
}

type CatalogPage struct {
	Items      []Product `json:"items"`
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
	Total      int       `json:"total"`
	Categories []string  `json:"categories"`
}

func Categories(products []Product) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, p := range products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out
}

func QueryCatalog(products []Product, q CatalogQuery) CatalogPage {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	allCat := q.Category == "" || strings.EqualFold(q.Category, AllCategory)

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if !allCat && p.Category != q.Category {
			continue
		}
		filtered = append(filtered, p)
	}
	switch q.Sort {
	case SortAsc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Stock < filtered[j].Stock })
	case SortDesc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Stock > filtered[j].Stock })
	}

	pages := (len(filtered) + PageSize - 1) / PageSize
	page := min(max(q.Page, 1), max(pages, 1))
	start := min((page-1)*PageSize, len(filtered))
	end := min(start+PageSize, len(filtered))
	return CatalogPage{
		Items:      filtered[start:end],
		Page:       page,
		TotalPages: pages,
		Total:      len(filtered),
		Categories: Categories(products),
	}
}
