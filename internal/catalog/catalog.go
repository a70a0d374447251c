// Package catalog holds the storefront's product catalog: the product model,
// and the pure filter/sort derivations used by the store page.
package catalog

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Product represents a catalog entry. It is externally sourced and read-only
// to the storefront core; the catalog is replaced wholesale on refetch, never
// mutated in place.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
}

// Query describes the storefront's catalog filters. Both fields are optional
// and AND-combined: Text is a case-insensitive substring match on the product
// name, Category is an exact match.
type Query struct {
	Text     string
	Category string
}

// SortOrder enumerates the supported catalog sort modes.
type SortOrder string

const (
	SortNone      SortOrder = "none"
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
)

// ParseSortOrder maps a query parameter to a SortOrder, defaulting to SortNone.
func ParseSortOrder(s string) SortOrder {
	switch SortOrder(s) {
	case SortPriceAsc:
		return SortPriceAsc
	case SortPriceDesc:
		return SortPriceDesc
	default:
		return SortNone
	}
}

// Filter returns the products matching the query. It never mutates its input.
func Filter(products []Product, q Query) []Product {
	text := strings.ToLower(q.Text)
	matched := make([]Product, 0, len(products))
	for _, p := range products {
		if text != "" && !strings.Contains(strings.ToLower(p.Name), text) {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

// SortByPrice returns a copy of products ordered by price. The sort is stable,
// so equally priced products keep their catalog order. SortNone returns the
// copy unordered.
func SortByPrice(products []Product, order SortOrder) []Product {
	sorted := make([]Product, len(products))
	copy(sorted, products)
	switch order {
	case SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })
	case SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	}
	return sorted
}

// Categories returns the distinct categories present in the catalog, in first
// occurrence order. The store page uses it to populate the category dropdown.
func Categories(products []Product) []string {
	seen := make(map[string]struct{}, len(products))
	categories := make([]string, 0, len(products))
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}
